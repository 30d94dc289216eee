package usecase

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-stake/internal/domain"
)

// NetworkConnector opens a signer-bound session against the configured endpoint
type NetworkConnector interface {
	Connect(ctx context.Context, cfg *domain.DeploymentConfig) (NetworkSession, error)
}

// NetworkSession is a live connection with a signer bound to it
type NetworkSession interface {
	TokenReader
	ContractDeployer

	// Network returns the chain id, signer and balance resolved at connection time.
	Network() domain.NetworkContext
	Close()
}

// TokenReader gives read-only access to token contracts
type TokenReader interface {
	CodeAt(ctx context.Context, address common.Address) ([]byte, error)
	Token(address common.Address) TokenContract
}

// TokenContract is the read capability shared by ERC20 and liquidity-pair tokens.
// Pair-only methods fail on plain ERC20 tokens.
type TokenContract interface {
	Address() common.Address
	Name(ctx context.Context) (string, error)
	Symbol(ctx context.Context) (string, error)
	Decimals(ctx context.Context) (uint8, error)
	Token0(ctx context.Context) (common.Address, error)
	Token1(ctx context.Context) (common.Address, error)
}

// ContractDeployer submits contract creation transactions
type ContractDeployer interface {
	// SubmitDeployment signs and broadcasts the creation transaction and returns
	// the address the contract will live at.
	SubmitDeployment(ctx context.Context, artifact *domain.Artifact, args ...any) (common.Address, common.Hash, error)
	// WaitDeployed blocks until the transaction is mined and returns the deployed address.
	WaitDeployed(ctx context.Context, txHash common.Hash) (common.Address, error)
}

// ArtifactLoader loads compiled contract artifacts
type ArtifactLoader interface {
	LoadArtifact(ctx context.Context, contractName string, path string) (*domain.Artifact, error)
}

// Prompter asks the operator a single question
type Prompter interface {
	// Ask writes the question and reads one line of input, without its line terminator.
	Ask(ctx context.Context, question string) (string, error)
	Close() error
}

// Progress tracking interfaces

// ExecutionStage represents a stage of the deployment workflow
type ExecutionStage string

const (
	StageConnecting     ExecutionStage = "Connecting"
	StageBalanceCheck   ExecutionStage = "BalanceCheck"
	StageRewardVerify   ExecutionStage = "RewardTokenVerify"
	StagePairResolution ExecutionStage = "PairResolution"
	StageConfirm        ExecutionStage = "Confirm"
	StageDeploying      ExecutionStage = "Deploy"
	StageCompleted      ExecutionStage = "Done"
	StageInspecting     ExecutionStage = "Inspect"
)

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    ExecutionStage
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}

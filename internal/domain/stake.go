package domain

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Fixed identity of the reward token and of liquidity-pair tokens.
const (
	RewardTokenName     = "OX"
	RewardTokenSymbol   = "OX"
	RewardTokenDecimals = 18

	// PairSymbol is the symbol every liquidity-pair token of the dex reports.
	PairSymbol = "OXLP"

	// ConfirmAnswer is the only input accepted by the confirmation prompt.
	ConfirmAnswer = "Y"

	// StakingRewardsContract is the contract name the artifact is looked up by.
	StakingRewardsContract = "StakingRewards"
)

var (
	// DefaultRewardToken is the address of the OX token.
	DefaultRewardToken = common.HexToAddress("0xfbb70f04b1a209160fe1a155dda35a569d1ec93b")

	// MinDeployerBalance is the minimum balance (0.2 native units) the deployer must hold.
	MinDeployerBalance = big.NewInt(200_000_000_000_000_000)
)

// DefaultDerivationPath is the BIP-44 path used to derive the deployer key from the mnemonic.
const DefaultDerivationPath = "m/44'/60'/0'/0/0"

// DefaultDeployTimeout bounds the wait for the deployment transaction to be mined.
const DefaultDeployTimeout = 5 * time.Minute

// DeploymentConfig is the immutable input of a deployment run.
type DeploymentConfig struct {
	Endpoint       string
	Mnemonic       string
	DerivationPath string
	StakingToken   common.Address
	RewardToken    common.Address
	ArtifactPath   string
	Timeout        time.Duration
}

// String never includes the mnemonic.
func (c DeploymentConfig) String() string {
	return fmt.Sprintf("DeploymentConfig{endpoint=%s staking=%s reward=%s}", c.Endpoint, c.StakingToken.Hex(), c.RewardToken.Hex())
}

// NetworkContext describes the network the signer is connected to.
type NetworkContext struct {
	ChainID uint64
	Signer  common.Address
	Balance *big.Int
}

// TokenDescriptor holds the ERC20 metadata read from a token contract.
type TokenDescriptor struct {
	Address  common.Address `json:"address"`
	Name     string         `json:"name"`
	Symbol   string         `json:"symbol"`
	Decimals uint8          `json:"decimals"`
}

// IsRewardToken reports whether the metadata matches the reward token.
func (t *TokenDescriptor) IsRewardToken() bool {
	return t.Name == RewardTokenName && t.Symbol == RewardTokenSymbol && t.Decimals == RewardTokenDecimals
}

// PairDescriptor holds the metadata of a liquidity-pair token.
type PairDescriptor struct {
	Address common.Address `json:"address"`
	Symbol  string         `json:"symbol"`
	Token0  common.Address `json:"token0"`
	Token1  common.Address `json:"token1"`
}

// StakeTarget is what the deployed contract will accept as stake.
// It is either a DirectTarget or a PairTarget.
type StakeTarget interface {
	// Description is the human readable form shown at confirmation.
	Description() string
	isStakeTarget()
}

// DirectTarget stakes the reward token itself.
type DirectTarget struct {
	Token *TokenDescriptor
}

func (DirectTarget) Description() string { return "OX-Based" }
func (DirectTarget) isStakeTarget()      {}

// PairTarget stakes a liquidity-pair token made of Token0 and Token1.
type PairTarget struct {
	Pair   *PairDescriptor
	Token0 *TokenDescriptor
	Token1 *TokenDescriptor
}

func (p PairTarget) Description() string {
	return fmt.Sprintf("Pair %s/%s", p.Token0.Symbol, p.Token1.Symbol)
}
func (PairTarget) isStakeTarget() {}

// ConfirmationStatus is the outcome tag of the confirmation prompt.
type ConfirmationStatus int

const (
	Rejected ConfirmationStatus = iota
	Confirmed
)

// Confirmation is the result of asking the operator to approve a deployment.
type Confirmation struct {
	Status ConfirmationStatus
	Answer string
	Reason string
}

func (c Confirmation) Confirmed() bool { return c.Status == Confirmed }

// DeploymentResult is the outcome of a successful deployment.
type DeploymentResult struct {
	ContractAddress common.Address `json:"contractAddress"`
	TxHash          common.Hash    `json:"txHash"`
	ChainID         uint64         `json:"chainId"`
	Target          string         `json:"target"`
}

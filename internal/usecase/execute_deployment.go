package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/trebuchet-org/treb-stake/internal/domain"
)

// DeploymentExecutor submits the StakingRewards creation transaction
type DeploymentExecutor struct {
	deployer ContractDeployer
	timeout  time.Duration
	progress ProgressSink
}

// NewDeploymentExecutor creates a new DeploymentExecutor
func NewDeploymentExecutor(deployer ContractDeployer, timeout time.Duration, progress ProgressSink) *DeploymentExecutor {
	if timeout <= 0 {
		timeout = domain.DefaultDeployTimeout
	}
	if progress == nil {
		progress = NopProgress{}
	}
	return &DeploymentExecutor{
		deployer: deployer,
		timeout:  timeout,
		progress: progress,
	}
}

// ConstructorArgs returns the StakingRewards constructor arguments:
// owner, rewards distributor, rewards token, staking token.
func ConstructorArgs(signer, rewardToken, stakingToken common.Address) []any {
	return []any{signer, signer, rewardToken, stakingToken}
}

// Execute deploys the contract and waits for it to be mined. Failures are not retried.
func (e *DeploymentExecutor) Execute(ctx context.Context, artifact *domain.Artifact, signer, rewardToken, stakingToken common.Address) (*domain.DeploymentResult, error) {
	args := ConstructorArgs(signer, rewardToken, stakingToken)

	expected, txHash, err := e.deployer.SubmitDeployment(ctx, artifact, args...)
	if err != nil {
		return nil, domain.DeploymentErr{Err: err}
	}

	e.progress.OnProgress(ctx, ProgressEvent{
		Stage:   StageDeploying,
		Message: fmt.Sprintf("Waiting for %s to be mined (contract %s)", txHash.Hex(), expected.Hex()),
		Spinner: true,
	})

	waitCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	address, err := e.deployer.WaitDeployed(waitCtx, txHash)
	if err != nil {
		return nil, domain.DeploymentErr{TxHash: txHash, Err: err}
	}

	return &domain.DeploymentResult{
		ContractAddress: address,
		TxHash:          txHash,
	}, nil
}

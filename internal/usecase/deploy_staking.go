package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/treb-stake/internal/domain"
)

// DeployStakingParams contains parameters for a deployment run
type DeployStakingParams struct {
	Config *domain.DeploymentConfig
	// DryRun stops after the stake target is resolved, before confirmation.
	DryRun bool
}

// DeployStakingResult contains the result of a deployment run
type DeployStakingResult struct {
	Network     domain.NetworkContext
	RewardToken *domain.TokenDescriptor
	Target      domain.StakeTarget
	Artifact    *domain.Artifact
	Deployment  *domain.DeploymentResult // nil on dry runs
	DryRun      bool
}

// DeployStaking runs the whole workflow:
// BalanceCheck -> RewardTokenVerify -> {Direct | PairResolution} -> Confirm -> Deploy.
// Every failure aborts the run; nothing is retried.
type DeployStaking struct {
	connector NetworkConnector
	artifacts ArtifactLoader
	prompter  Prompter
	progress  ProgressSink
	log       *slog.Logger
}

// NewDeployStaking creates a new DeployStaking use case
func NewDeployStaking(
	connector NetworkConnector,
	artifacts ArtifactLoader,
	prompter Prompter,
	progress ProgressSink,
	log *slog.Logger,
) *DeployStaking {
	return &DeployStaking{
		connector: connector,
		artifacts: artifacts,
		prompter:  prompter,
		progress:  progress,
		log:       log.With("component", "DeployStaking"),
	}
}

// Run executes the use case
func (uc *DeployStaking) Run(ctx context.Context, params DeployStakingParams) (*DeployStakingResult, error) {
	cfg := params.Config
	if cfg == nil {
		return nil, fmt.Errorf("deployment config is required")
	}
	uc.log.Debug("starting deployment", "config", cfg.String(), "dry_run", params.DryRun)

	artifact, err := uc.artifacts.LoadArtifact(ctx, domain.StakingRewardsContract, cfg.ArtifactPath)
	if err != nil {
		return nil, err
	}
	uc.log.Debug("loaded artifact", "path", artifact.Path, "bytecode_size", len(artifact.Bytecode))

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageConnecting, Message: "Connecting to " + cfg.Endpoint, Spinner: true})
	session, err := uc.connector.Connect(ctx, cfg)
	if err != nil {
		uc.stopSpinner(ctx)
		return nil, err
	}
	defer session.Close()

	network := session.Network()
	uc.log.Debug("connected", "chain_id", network.ChainID, "signer", network.Signer.Hex())

	result := &DeployStakingResult{
		Network:  network,
		Artifact: artifact,
		DryRun:   params.DryRun,
	}

	// Balance check happens before any contract read.
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageBalanceCheck})
	uc.progress.Info("checking deployer balance...")
	if network.Balance == nil || network.Balance.Cmp(domain.MinDeployerBalance) < 0 {
		return nil, domain.InsufficientFundsErr{
			Account:  network.Signer,
			Balance:  network.Balance,
			Required: domain.MinDeployerBalance,
		}
	}

	introspector := NewTokenIntrospector(session)

	uc.progress.Info("checking OX token info...")
	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageRewardVerify, Message: "Reading " + cfg.RewardToken.Hex(), Spinner: true})
	rewardToken, err := introspector.InspectToken(ctx, cfg.RewardToken)
	if err != nil {
		uc.stopSpinner(ctx)
		return nil, err
	}
	if !rewardToken.IsRewardToken() {
		uc.stopSpinner(ctx)
		return nil, domain.WrongTokenErr{Token: *rewardToken}
	}
	result.RewardToken = rewardToken
	uc.log.Debug("reward token verified", "address", rewardToken.Address.Hex(), "symbol", rewardToken.Symbol)

	resolver := NewStakeTargetResolver(introspector, uc.progress)
	target, err := resolver.Resolve(ctx, rewardToken, cfg.StakingToken)
	uc.stopSpinner(ctx)
	if err != nil {
		return nil, err
	}
	result.Target = target
	uc.log.Debug("stake target resolved", "target", target.Description(), "staking_token", cfg.StakingToken.Hex())

	if params.DryRun {
		return result, nil
	}

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageConfirm, Metadata: result})
	confirmation := NewConfirmationGate(uc.prompter).Confirm(ctx, network.ChainID, target)
	if !confirmation.Confirmed() {
		uc.log.Debug("deployment rejected", "reason", confirmation.Reason)
		return nil, fmt.Errorf("%w: %s", domain.ErrUserRejected, confirmation.Reason)
	}

	uc.progress.Info("deploying...")
	executor := NewDeploymentExecutor(session, cfg.Timeout, uc.progress)
	deployment, err := executor.Execute(ctx, artifact, network.Signer, rewardToken.Address, cfg.StakingToken)
	uc.stopSpinner(ctx)
	if err != nil {
		return nil, err
	}
	deployment.ChainID = network.ChainID
	deployment.Target = target.Description()
	result.Deployment = deployment
	uc.log.Debug("deployed", "address", deployment.ContractAddress.Hex(), "tx", deployment.TxHash.Hex())

	uc.progress.OnProgress(ctx, ProgressEvent{Stage: StageCompleted, Metadata: deployment})
	return result, nil
}

func (uc *DeployStaking) stopSpinner(ctx context.Context) {
	uc.progress.OnProgress(ctx, ProgressEvent{Spinner: false})
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-stake/internal/domain"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploy a StakingRewards contract for the configured staking token",
		Long: `Deploy a StakingRewards contract.

Settings are read from deploy.json in the current directory (or --config),
from TREB_STAKE_* environment variables and .env files, and from flags.
Flags win over the environment, which wins over the config file.

deploy.json keys:
  endpoint        RPC endpoint (the legacy "enpoint" key is accepted)
  mnemonic        BIP-39 mnemonic of the deployer
  stakingToken    OX or an OXLP pair token
  rewardToken     OX token address (optional)
  derivationPath  deployer key path (optional, m/44'/60'/0'/0/0)
  artifact        StakingRewards artifact path (optional)
  timeout         wait for the deployment to be mined (optional, 5m)

Only the exact answer "Y" confirms the deployment. The confirmation prompt and
progress are written to stderr; the summary (or --json output) goes to stdout.

Examples:
  # Deploy with deploy.json in the current directory
  treb-stake deploy

  # Check everything without deploying
  treb-stake deploy --dry-run

  # Override the staking token and print the result as JSON
  treb-stake deploy --staking-token 0x... --json`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runDeploy,
	}

	addDeployFlags(cmd)

	return cmd
}

func addDeployFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Deploy config file (defaults to ./deploy.json)")
	cmd.Flags().String("endpoint", "", "RPC endpoint")
	cmd.Flags().String("staking-token", "", "Staking token address")
	cmd.Flags().String("reward-token", "", "Reward token address")
	cmd.Flags().String("artifact", "", "Path to the StakingRewards artifact")
	cmd.Flags().String("derivation-path", "", "Derivation path of the deployer key")
	cmd.Flags().Duration("timeout", domain.DefaultDeployTimeout, "How long to wait for the deployment to be mined")
	cmd.Flags().Bool("dry-run", false, "Run every check and stop before asking for confirmation")
	cmd.Flags().Bool("json", false, "Output the result as JSON")
}

func runDeploy(cmd *cobra.Command, args []string) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}

	cfg, err := app.Config.DeploymentConfig()
	if err != nil {
		return err
	}

	result, err := app.DeployStaking.Run(cmd.Context(), usecase.DeployStakingParams{
		Config: cfg,
		DryRun: app.Config.DryRun,
	})
	if err != nil {
		return err
	}

	return app.StakeRenderer.Render(result)
}

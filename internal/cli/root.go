package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-stake/internal/app"
	"github.com/trebuchet-org/treb-stake/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// initApp builds the app for a command. Replaced in tests.
var initApp = app.InitApp

// NewRootCmd creates the root command. Without a subcommand it deploys.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "treb-stake",
		Short: "Deploy StakingRewards contracts for OX and OX liquidity pairs",
		Long: `treb-stake deploys a StakingRewards contract that pays OX rewards for staking
either OX itself or an OXLP liquidity-pair token.

The deployer key is derived from the configured mnemonic. Before deploying,
treb-stake checks the deployer balance, verifies the OX token, resolves the
staking token and asks for confirmation.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			projectRoot, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}

			// Set up viper with the flags of the command being run
			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, err := initApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			cmd.SetContext(ctx)

			return nil
		},
		RunE: runDeploy,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable the interactive prompt and spinner")

	// The root command runs a deployment too
	addDeployFlags(rootCmd)

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})

	deployCmd := NewDeployCmd()
	deployCmd.GroupID = "main"
	rootCmd.AddCommand(deployCmd)

	inspectCmd := NewInspectCmd()
	inspectCmd.GroupID = "main"
	rootCmd.AddCommand(inspectCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

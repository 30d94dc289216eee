package cli

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/treb-stake/internal/usecase"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <address>",
		Short: "Read the token metadata at an address",
		Long: `Read name, symbol and decimals of the token at an address. For OXLP pair
tokens the two constituent tokens are read as well. Nothing is sent to the network.

Examples:
  treb-stake inspect 0xfbb70f04b1a209160fe1a155dda35a569d1ec93b
  treb-stake inspect 0x... --endpoint https://rpc.example.org --json`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !common.IsHexAddress(args[0]) {
				return fmt.Errorf("invalid address: %s", args[0])
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			cfg, err := app.Config.ConnectionConfig()
			if err != nil {
				return err
			}

			result, err := app.InspectToken.Run(cmd.Context(), usecase.InspectTokenParams{
				Config:  cfg,
				Address: common.HexToAddress(args[0]),
			})
			if err != nil {
				return err
			}

			return app.InspectRenderer.Render(result)
		},
	}

	cmd.Flags().String("config", "", "Deploy config file (defaults to ./deploy.json)")
	cmd.Flags().String("endpoint", "", "RPC endpoint")
	cmd.Flags().Bool("json", false, "Output the result as JSON")

	return cmd
}

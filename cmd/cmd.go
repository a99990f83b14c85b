package cmd

import (
	"github.com/internetarchive/vegeta-test-server/internal/pkg/config"
	"github.com/internetarchive/vegeta-test-server/internal/pkg/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vegeta-test-server",
		Short: "Fixed HTTP target for Vegeta load tests",
		Long: `vegeta-test-server listens on 127.0.0.1:8080 and answers:

  GET /                 200 "Vegeta test server"
  GET /api/v1/health    200 {"status": "ok"}
  anything else         404 "Not Found"

It stops on SIGINT or SIGTERM.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.InitConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := log.Start(); err != nil {
				return err
			}
			defer log.Stop()

			return serve(cmd.Context(), cmd.OutOrStdout(), config.Get())
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Run the root command
func Run() error {
	return newRootCmd().Execute()
}

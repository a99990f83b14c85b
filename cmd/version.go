package cmd

import (
	"fmt"

	"github.com/internetarchive/vegeta-test-server/internal/pkg/utils"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			version := utils.GetVersion()

			fmt.Fprintln(cmd.OutOrStdout(), "vegeta-test-server", version.Short())
			fmt.Fprintln(cmd.OutOrStdout(), "- go/version:", version.GoVersion)
		},
	}

	versionCmd.AddCommand(&cobra.Command{
		Use:   "deps",
		Short: "Show the dependencies compiled in",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, dep := range utils.GetVersion().Deps {
				if dep.Replace != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s => %s\n", dep.Path, dep.Version, dep.Replace)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", dep.Path, dep.Version)
			}
		},
	})

	return versionCmd
}

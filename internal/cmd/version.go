package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// versionCmd prints the entrypoint version. With flag parsing disabled on
// the root, a literal leading "version" still routes here rather than being
// appended to the launched command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the entrypoint version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "plex-mcp-server entrypoint %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Package cmd implements the container entrypoint command using cobra.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/constructorfleet/plex-mcp-server/internal/config"
	"github.com/constructorfleet/plex-mcp-server/internal/launch"
)

// rootCmd validates the environment and execs the Plex MCP server. Flag
// parsing is disabled so every trailing argument reaches the launched
// command verbatim.
var rootCmd = &cobra.Command{
	Use:   "entrypoint [extra args...]",
	Short: "Validate the environment and launch the Plex MCP server",
	Long: `Container entrypoint for the Plex MCP server.

Validates the required Plex credentials, resolves the transport mode, and
replaces itself with the assembled server command. Any trailing arguments
are appended to that command verbatim.

Required environment variables:
  PLEX_URL       URL of the Plex Media Server (e.g., http://localhost:32400)
  PLEX_TOKEN     X-Plex-Token for authentication
  PLEX_USERNAME  Plex account username

Optional environment variables:
  USE_SSE        Serve over HTTP server-sent events (1/true/yes)
  USE_STDIO      Serve over stdio (the default; conflicts with USE_SSE)
  HOST           Bind address for SSE and proxy (default 0.0.0.0)
  PORT           Inner SSE port (default 3000)
  USE_PROXY      Wrap the server behind the local MCP proxy
  PROXY_PORT     External proxy port (default 3100)
  DEBUG          Pass --debug to the server
  LOG_LEVEL      DEBUG, INFO, WARNING, ERROR or CRITICAL (default INFO)`,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launch.Run(config.Load(), args)
	},
}

// Execute runs the entrypoint and exits with the preflight code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		var exitErr *launch.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

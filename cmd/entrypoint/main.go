package main

import (
	"log"
	"os"

	"github.com/constructorfleet/plex-mcp-server/internal/cmd"
)

func main() {
	// Log to stderr so stdout is clean for the MCP stdio transport.
	log.SetOutput(os.Stderr)

	cmd.Execute()
}

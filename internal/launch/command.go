package launch

import (
	"strconv"

	"github.com/constructorfleet/plex-mcp-server/internal/config"
)

// Assemble builds the final argv as discrete tokens, never a shell string.
// Segments are appended in a fixed order and never reordered or dropped:
//
//  1. the inner server's base invocation
//  2. --transport, plus --host/--port for sse
//  3. --debug when enabled
//  4. the proxy invocation in front, separated from the inner command by a
//     literal "--" so the proxy does not reinterpret inner flags
//  5. the entrypoint's own trailing arguments, verbatim, always last
func Assemble(cfg *config.Config, transport Transport, extra []string) []string {
	argv := append([]string(nil), cfg.ServerCommand...)
	argv = append(argv, "--transport", string(transport))
	if transport == TransportSSE {
		argv = append(argv, "--host", cfg.Host, "--port", strconv.Itoa(cfg.Port))
	}
	if cfg.Debug {
		argv = append(argv, "--debug")
	}

	if cfg.UseProxy {
		outer := append([]string(nil), cfg.ProxyCommand...)
		outer = append(outer, "--host", cfg.Host, "--port", strconv.Itoa(cfg.ProxyPort), "--")
		argv = append(outer, argv...)
	}

	return append(argv, extra...)
}

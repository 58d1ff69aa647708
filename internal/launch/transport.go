package launch

import "github.com/constructorfleet/plex-mcp-server/internal/config"

// Transport is the channel the inner server exposes to its caller.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportSSE   Transport = "sse"
)

// resolveTransport maps the two toggles to a transport. Neither set means
// stdio; both set is a configuration conflict, not a preference.
func resolveTransport(cfg *config.Config) (Transport, error) {
	switch {
	case cfg.UseSSE && cfg.UseStdio:
		return "", &ExitError{
			Code:    ExitTransportConflict,
			Message: "USE_SSE and USE_STDIO are mutually exclusive, set at most one",
		}
	case cfg.UseSSE:
		return TransportSSE, nil
	default:
		return TransportStdio, nil
	}
}

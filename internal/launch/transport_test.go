package launch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constructorfleet/plex-mcp-server/internal/config"
)

func TestResolveTransport(t *testing.T) {
	tests := []struct {
		name     string
		sse      bool
		stdio    bool
		want     Transport
		conflict bool
	}{
		{name: "neither defaults to stdio", want: TransportStdio},
		{name: "sse only", sse: true, want: TransportSSE},
		{name: "stdio only", stdio: true, want: TransportStdio},
		{name: "both is a conflict", sse: true, stdio: true, conflict: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{UseSSE: tt.sse, UseStdio: tt.stdio}

			got, err := resolveTransport(cfg)

			if tt.conflict {
				var exitErr *ExitError
				require.ErrorAs(t, err, &exitErr)
				assert.Equal(t, ExitTransportConflict, exitErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

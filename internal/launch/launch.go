// Package launch holds the entrypoint's decision logic: credential
// validation, transport resolution, command assembly, and the final exec.
package launch

import (
	"log"
	"os"
	"strings"

	"github.com/constructorfleet/plex-mcp-server/internal/config"
)

// Launcher runs the preflight pipeline and hands the assembled command to
// Exec. Tests swap Exec for a capture function.
type Launcher struct {
	Config *config.Config
	Exec   ExecFunc
}

// Run validates cfg, assembles the final command, and replaces the current
// process with it. The extra arguments are appended verbatim. Run only
// returns on preflight failure or when exec itself fails.
func Run(cfg *config.Config, extra []string) error {
	l := &Launcher{Config: cfg, Exec: execProcess}
	return l.Run(extra)
}

// Run executes the pipeline: validate, resolve transport, assemble, exec.
// Each step must succeed before the next runs.
func (l *Launcher) Run(extra []string) error {
	if err := validateCredentials(l.Config); err != nil {
		return err
	}

	transport, err := resolveTransport(l.Config)
	if err != nil {
		return err
	}

	argv := Assemble(l.Config, transport, extra)

	log.Printf("Transport: %s", transport)
	if l.Config.UseProxy {
		log.Printf("Proxy: %s:%d", l.Config.Host, l.Config.ProxyPort)
	}
	log.Printf("Launching: %s", strings.Join(argv, " "))

	return l.Exec(argv, childEnv(l.Config, os.Environ()))
}

// validateCredentials checks the required Plex fields in fixed order so each
// missing field maps to its own exit code.
func validateCredentials(cfg *config.Config) error {
	if cfg.PlexURL == "" {
		return &ExitError{Code: ExitMissingURL, Message: "PLEX_URL is required"}
	}
	if cfg.PlexToken == "" {
		return &ExitError{Code: ExitMissingToken, Message: "PLEX_TOKEN is required"}
	}
	if cfg.PlexUsername == "" {
		return &ExitError{Code: ExitMissingUsername, Message: "PLEX_USERNAME is required"}
	}
	return nil
}

// childEnv returns the environment for the launched process: the inherited
// environment with LOG_LEVEL pinned to the normalized value.
func childEnv(cfg *config.Config, base []string) []string {
	env := make([]string, 0, len(base)+1)
	for _, kv := range base {
		if strings.HasPrefix(kv, "LOG_LEVEL=") {
			continue
		}
		env = append(env, kv)
	}
	return append(env, "LOG_LEVEL="+cfg.LogLevel)
}

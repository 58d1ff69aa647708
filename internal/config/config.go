package config

import (
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when neither the config file nor the environment sets a
// value.
const (
	DefaultHost       = "0.0.0.0"
	DefaultPort       = 3000
	DefaultProxyPort  = 3100
	DefaultLogLevel   = "INFO"
	DefaultConfigPath = "/etc/plex-mcp/entrypoint.yaml"
)

// Non-privileged port range accepted for PORT and PROXY_PORT.
const (
	minPort = 1024
	maxPort = 65535
)

// Config holds the entrypoint configuration. It is built once at startup and
// never mutated afterwards; every launch step receives it explicitly.
type Config struct {
	// PlexURL is the base URL of the Plex Media Server
	// Example: http://localhost:32400 or https://plex.example.com
	PlexURL string

	// PlexToken is the X-Plex-Token used to authenticate
	PlexToken string

	// PlexUsername is the Plex account the server acts as
	PlexUsername string

	// Debug appends --debug to the inner server command
	Debug bool

	// UseSSE and UseStdio select the inner server transport; setting both
	// is a configuration conflict
	UseSSE   bool
	UseStdio bool

	// UseProxy wraps the inner server behind the local MCP proxy
	UseProxy bool

	// Host is the bind address for the SSE transport and the proxy
	Host string

	// Port is the inner server's SSE port; ProxyPort is the external port
	// when proxy wrapping is enabled
	Port      int
	ProxyPort int

	// LogLevel is normalized to upper case and exported to the child
	LogLevel string

	// ServerCommand is the inner server's base invocation; ProxyCommand is
	// the proxy's. Only the config file may override these.
	ServerCommand []string
	ProxyCommand  []string
}

// fileConfig mirrors Config for the optional YAML overlay.
type fileConfig struct {
	PlexURL      string `yaml:"plex_url"`
	PlexToken    string `yaml:"plex_token"`
	PlexUsername string `yaml:"plex_username"`

	Debug    *bool `yaml:"debug"`
	UseSSE   *bool `yaml:"use_sse"`
	UseStdio *bool `yaml:"use_stdio"`
	UseProxy *bool `yaml:"use_proxy"`

	Host      string `yaml:"host"`
	Port      *int   `yaml:"port"`
	ProxyPort *int   `yaml:"proxy_port"`

	LogLevel string `yaml:"log_level"`

	ServerCommand []string `yaml:"server_command"`
	ProxyCommand  []string `yaml:"proxy_command"`
}

// Default returns a Config with only built-in defaults applied.
func Default() *Config {
	return &Config{
		Host:          DefaultHost,
		Port:          DefaultPort,
		ProxyPort:     DefaultProxyPort,
		LogLevel:      DefaultLogLevel,
		ServerCommand: []string{"python", "-m", "app.main"},
		ProxyCommand:  []string{"mcp-proxy"},
	}
}

// Load builds the configuration snapshot: defaults, then the optional YAML
// file at ENTRYPOINT_CONFIG, then environment variables. The environment
// always wins. Out-of-range values fall back to their defaults with a
// warning; Load itself never fails.
func Load() *Config {
	cfg := Default()

	path := os.Getenv("ENTRYPOINT_CONFIG")
	if path == "" {
		path = DefaultConfigPath
	}
	applyFile(cfg, path)
	applyEnv(cfg)
	sanitize(cfg)

	return cfg
}

// ParseBool reports whether s is an accepted truthy token. Matching is
// case-insensitive; only "1", "true" and "yes" count as true, anything else
// (including the empty string) is false.
func ParseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

// applyFile overlays the YAML file at path onto cfg. A missing file is fine;
// a malformed one is reported and ignored.
func applyFile(cfg *Config, path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: cannot read config %s: %v", path, err)
		}
		return
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		log.Printf("Warning: ignoring malformed config %s: %v", path, err)
		return
	}

	if fc.PlexURL != "" {
		cfg.PlexURL = fc.PlexURL
	}
	if fc.PlexToken != "" {
		cfg.PlexToken = fc.PlexToken
	}
	if fc.PlexUsername != "" {
		cfg.PlexUsername = fc.PlexUsername
	}
	if fc.Debug != nil {
		cfg.Debug = *fc.Debug
	}
	if fc.UseSSE != nil {
		cfg.UseSSE = *fc.UseSSE
	}
	if fc.UseStdio != nil {
		cfg.UseStdio = *fc.UseStdio
	}
	if fc.UseProxy != nil {
		cfg.UseProxy = *fc.UseProxy
	}
	if fc.Host != "" {
		cfg.Host = fc.Host
	}
	if fc.Port != nil {
		cfg.Port = *fc.Port
	}
	if fc.ProxyPort != nil {
		cfg.ProxyPort = *fc.ProxyPort
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if len(fc.ServerCommand) > 0 {
		cfg.ServerCommand = fc.ServerCommand
	}
	if len(fc.ProxyCommand) > 0 {
		cfg.ProxyCommand = fc.ProxyCommand
	}
}

// applyEnv overlays environment variables onto cfg. A variable that is set
// always overrides the file, even when set to an empty or falsy value.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv("PLEX_URL"); ok {
		cfg.PlexURL = v
	}
	if v, ok := os.LookupEnv("PLEX_TOKEN"); ok {
		cfg.PlexToken = v
	}
	if v, ok := os.LookupEnv("PLEX_USERNAME"); ok {
		cfg.PlexUsername = v
	}
	if v, ok := os.LookupEnv("DEBUG"); ok {
		cfg.Debug = ParseBool(v)
	}
	if v, ok := os.LookupEnv("USE_SSE"); ok {
		cfg.UseSSE = ParseBool(v)
	}
	if v, ok := os.LookupEnv("USE_STDIO"); ok {
		cfg.UseStdio = ParseBool(v)
	}
	if v, ok := os.LookupEnv("USE_PROXY"); ok {
		cfg.UseProxy = ParseBool(v)
	}
	if v, ok := os.LookupEnv("HOST"); ok && v != "" {
		cfg.Host = v
	}
	if v, ok := os.LookupEnv("PORT"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Port = n
		} else {
			log.Printf("Warning: PORT %q is not a number, using %d", v, cfg.Port)
		}
	}
	if v, ok := os.LookupEnv("PROXY_PORT"); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ProxyPort = n
		} else {
			log.Printf("Warning: PROXY_PORT %q is not a number, using %d", v, cfg.ProxyPort)
		}
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		cfg.LogLevel = v
	}
}

// sanitize clamps values the inner server would reject. Bad values are never
// fatal at this layer; they fall back to defaults with a warning so the
// exit-code contract stays closed.
func sanitize(cfg *Config) {
	if ip := net.ParseIP(cfg.Host); ip == nil || ip.To4() == nil {
		log.Printf("Warning: HOST %q is not an IPv4 address, using %s", cfg.Host, DefaultHost)
		cfg.Host = DefaultHost
	}
	if cfg.Port < minPort || cfg.Port > maxPort {
		log.Printf("Warning: PORT %d outside %d-%d, using %d", cfg.Port, minPort, maxPort, DefaultPort)
		cfg.Port = DefaultPort
	}
	if cfg.ProxyPort < minPort || cfg.ProxyPort > maxPort {
		log.Printf("Warning: PROXY_PORT %d outside %d-%d, using %d", cfg.ProxyPort, minPort, maxPort, DefaultProxyPort)
		cfg.ProxyPort = DefaultProxyPort
	}

	level := strings.ToUpper(strings.TrimSpace(cfg.LogLevel))
	switch level {
	case "DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL":
		cfg.LogLevel = level
	default:
		log.Printf("Warning: LOG_LEVEL %q is not valid, using %s", cfg.LogLevel, DefaultLogLevel)
		cfg.LogLevel = DefaultLogLevel
	}
}

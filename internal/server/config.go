package server

import (
	"os"
	"strconv"
	"time"
)

// Config represents the runtime configuration of the web app
type Config struct {
	// Listen address of the local server
	Addr string
	// Directory holding the SQLite database
	DataDir string
	// How long a session may stay idle before it is pruned
	SessionTTL time.Duration
	// How often the prune job runs
	PruneInterval time.Duration
	// Open the UI in the default browser on startup
	OpenBrowser bool
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Addr:          ":8080",
		DataDir:       "data",
		SessionTTL:    45 * time.Minute,
		PruneInterval: 5 * time.Minute,
		OpenBrowser:   true,
	}
}

// ConfigFromEnv builds the configuration from environment variables,
// falling back to the defaults for anything unset.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if port := os.Getenv("PORT"); port != "" {
		cfg.Addr = ":" + port
	}
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.DataDir = dir
	}
	if ttl := os.Getenv("SESSION_TTL_MINUTES"); ttl != "" {
		if m, err := strconv.Atoi(ttl); err == nil && m > 0 {
			cfg.SessionTTL = time.Duration(m) * time.Minute
		}
	}
	if open := os.Getenv("OPEN_BROWSER"); open != "" {
		if v, err := strconv.ParseBool(open); err == nil {
			cfg.OpenBrowser = v
		}
	}
	return cfg
}

// URL returns the browser-facing address of the server.
func (c Config) URL() string {
	addr := c.Addr
	if addr[0] == ':' {
		addr = "localhost" + addr
	}
	return "http://" + addr
}

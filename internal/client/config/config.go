// Package config loads runtime settings for the QuickTicket CLI.
//
// Sources are applied in order, later ones winning: built-in defaults,
// a JSON file (-c/-config), environment variables (after loading .env
// when present), and command-line flags.
package config

import "time"

// Config holds runtime settings for the QuickTicket CLI.
type Config struct {
	// ServerBaseURL is the backend's base URL.
	ServerBaseURL string `env:"QUICKTICKET_SERVER_URL"`

	// RequestTimeout bounds each backend HTTP call.
	RequestTimeout time.Duration `env:"QUICKTICKET_REQUEST_TIMEOUT"`

	// DatabasePath is the local sqlite file holding preferences and the
	// registered-account cache.
	DatabasePath string `env:"QUICKTICKET_DB_PATH"`

	// TicketRefreshInterval is how often the background watcher
	// re-evaluates the daily ticket state.
	TicketRefreshInterval time.Duration `env:"QUICKTICKET_REFRESH_INTERVAL"`

	// CountdownSeconds is the visible validity window after a claim.
	CountdownSeconds int `env:"QUICKTICKET_COUNTDOWN_SECONDS"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "https://quickticket-backend.onrender.com"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "quickticket.db"
	c.TicketRefreshInterval = 30 * time.Second
	c.CountdownSeconds = 25
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON, the environment, and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

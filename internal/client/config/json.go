package config

import (
	"encoding/json"
	"os"

	"github.com/quickticket/quickticket-cli/internal/flagx"
	"github.com/quickticket/quickticket-cli/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds. Only fields present in the file override the
// running config.
type JsonConfig struct {
	ServerBaseURL         *string         `json:"server_base_url"`
	RequestTimeout        *timex.Duration `json:"request_timeout"`
	DatabasePath          *string         `json:"database_path"`
	TicketRefreshInterval *timex.Duration `json:"ticket_refresh_interval"`
	CountdownSeconds      *int            `json:"countdown_seconds"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. If no file is named, nothing happens. Read or parse
// errors panic; config is resolved once at startup and a broken file should
// stop the program.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.TicketRefreshInterval != nil {
		cfg.TicketRefreshInterval = jc.TicketRefreshInterval.Duration
	}
	if jc.CountdownSeconds != nil {
		cfg.CountdownSeconds = *jc.CountdownSeconds
	}
}

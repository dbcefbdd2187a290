package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/ecgdesk/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is specified in whole seconds; after parsing, values are copied into the
// runtime Config (which uses time.Duration).
type JsonConfig struct {
	BaseURL         string `json:"base_url"`
	RequestTimeoutS int    `json:"request_timeout_s"`
	DatabasePath    string `json:"database_path"`
	DownloadDir     string `json:"download_dir"`
}

// parseJson overlays Config with values loaded from a JSON file given via
// the -c or -config flags. When no file is given, nothing happens. Read or
// unmarshal errors panic; the intended usage is
// defaults -> env -> parseJson -> parseFlags, later stages overriding
// earlier ones.
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

	if jc.BaseURL != "" {
		cfg.BaseURL = jc.BaseURL
	}
	if jc.RequestTimeoutS > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutS) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.DownloadDir != "" {
		cfg.DownloadDir = jc.DownloadDir
	}
}

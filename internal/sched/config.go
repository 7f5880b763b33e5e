package sched

import (
	"os"

	yaml "github.com/goccy/go-yaml"
)

// Config mirrors config.yml and only shapes the demo loop; the registry
// itself takes no configuration.
type Config struct {
	TickMS     int     `yaml:"tick_ms"`     // 16 (by default)
	RunSeconds float64 `yaml:"run_seconds"` // 10 (by default), <= 0 means run until drained
	CSVPath    string  `yaml:"csv_path"`    // empty disables the CSV event log
	LogLevel   string  `yaml:"log_level"`   // "info" (by default)
}

// If the config file is not found, we use default values
func defaultConfig() Config {
	return Config{
		TickMS:     16,
		RunSeconds: 10,
		LogLevel:   "info",
	}
}

// Load reads YAML and overrides defaults; empty path = defaults only
func Load(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		return cfg
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	_ = yaml.Unmarshal(data, &cfg)

	// sanity clamps
	if cfg.TickMS <= 0 {
		cfg.TickMS = 16
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg
}

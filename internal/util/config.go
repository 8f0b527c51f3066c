package util

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// ConfigEnvVar names a config file to load when no --config flag is given.
const ConfigEnvVar = "MINILISP_CONFIG"

type Configuration struct {
	Version   string `toml:"-"`
	BuildDate string `toml:"-"`
	Commit    string `toml:"-"`

	Prompt      string `toml:"prompt"`
	ExitCommand string `toml:"exit_command"`

	// HistoryDSN selects the transcript store, e.g. sqlite3://history.db.
	// Empty disables it.
	HistoryDSN   string `toml:"history_dsn"`
	HistoryLimit int    `toml:"history_limit"`
	HistoryFile  string `toml:"history_file"`

	LogLevel  string `toml:"log_level"`
	LogFile   string `toml:"log_file"`
	LogFormat string `toml:"log_format"`
}

func DefaultConfiguration() Configuration {
	cfg := Configuration{
		Prompt:       "lisp> ",
		ExitCommand:  "exit",
		HistoryLimit: 100,
		LogLevel:     "none",
		LogFormat:    "json",
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.HistoryFile = filepath.Join(home, ".minilisp_history")
	}
	return cfg
}

// LoadConfiguration decodes the TOML file at path over the defaults. Keys
// the file sets but the configuration does not know are rejected.
func LoadConfiguration(path string) (Configuration, error) {
	cfg := DefaultConfiguration()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return cfg, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Configuration) Validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative, got %d", c.HistoryLimit)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("log_format must be json or text, got %q", c.LogFormat)
	}
	return nil
}

package main

import (
	"fmt"
	"os"

	"minilisp/internal/log"
	"minilisp/internal/util"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time with -ldflags "-X main.Version=...".
	Version   = "dev"
	BuildDate = "unknown"
	Commit    = "unknown"
	// config vars
	configPath string
	historyDSN string
	// logging
	logLevel  string
	logFile   string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "minilisp",
	Short: "A small Lisp interpreter",
	Long: `minilisp evaluates a small Lisp: numbers, booleans, define, lambda and
the four arithmetic operators. Without a subcommand it starts a REPL.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "TOML config file (default $"+util.ConfigEnvVar+")")
	flags.StringVar(&historyDSN, "history", "", "Transcript store, e.g. sqlite3://history.db")
	flags.StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error, none")
	flags.StringVar(&logFile, "log-file", "", "Log file path (if not set, logs to stderr)")
	flags.StringVar(&logFormat, "log-format", "", "Log format: json or text")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfiguration merges the config file with flags set on the command
// line; flags win.
func loadConfiguration(cmd *cobra.Command) (util.Configuration, error) {
	path := configPath
	if path == "" {
		path = os.Getenv(util.ConfigEnvVar)
	}
	cfg, err := util.LoadConfiguration(path)
	if err != nil {
		return cfg, err
	}
	cfg.Version = Version
	cfg.BuildDate = BuildDate
	cfg.Commit = Commit

	flags := cmd.Flags()
	if flags.Changed("history") {
		cfg.HistoryDSN = historyDSN
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("log-file") {
		cfg.LogFile = logFile
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = logFormat
	}
	return cfg, cfg.Validate()
}

func setup(cmd *cobra.Command) (util.Configuration, *log.Logger, error) {
	cfg, err := loadConfiguration(cmd)
	if err != nil {
		return cfg, nil, err
	}
	logger := log.Init(log.Options{
		Level:  cfg.LogLevel,
		File:   cfg.LogFile,
		Format: cfg.LogFormat,
	})
	return cfg, logger, nil
}

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"minilisp/internal/history"
	"minilisp/internal/repl"
	"minilisp/internal/util"

	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(cmd *cobra.Command) error {
	cfg, logger, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	session := repl.NewSession(cfg, store)
	if !isTerminal(os.Stdin) {
		session.Start(ctx, os.Stdin, os.Stdout)
		return nil
	}
	fmt.Printf("minilisp %s, type '%s' to leave\n", cfg.Version, cfg.ExitCommand)
	return session.Run(ctx)
}

// openStore returns a nil store when no DSN is configured.
func openStore(ctx context.Context, cfg util.Configuration) (*history.Store, error) {
	if cfg.HistoryDSN == "" {
		return nil, nil
	}
	store, err := history.Open(ctx, cfg.HistoryDSN)
	if err != nil {
		return nil, fmt.Errorf("open history store: %w", err)
	}
	slog.Debug("transcript store ready")
	return store, nil
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

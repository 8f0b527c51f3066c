package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"minilisp/internal/evaluator"
	"minilisp/internal/history"
	"minilisp/internal/object"
	"minilisp/internal/printer"
	"minilisp/internal/util"

	"github.com/peterh/liner"
)

const GOODBYE = "Good bye"

// Session is one interactive run: a root environment that lives as long
// as the session, plus the optional transcript store.
type Session struct {
	Config util.Configuration
	Env    *object.Environment
	Store  *history.Store
	ID     int64
}

func NewSession(cfg util.Configuration, store *history.Store) *Session {
	return &Session{
		Config: cfg,
		Env:    evaluator.NewRootEnvironment(),
		Store:  store,
		ID:     history.NewSession(),
	}
}

// EvalLine evaluates one line of input and returns the text to show.
// Failures are rendered, not returned; the session carries on either way.
func (s *Session) EvalLine(ctx context.Context, line string) string {
	val, err := evaluator.EvalString(line, s.Env)

	entry := history.Entry{Session: s.ID, Source: line}
	var out string
	if err != nil {
		out = printer.RenderError(err)
		entry.Failure = err.Error()
	} else {
		out = printer.Render(val)
		entry.Result = out
	}
	s.record(ctx, entry)
	return out
}

func (s *Session) record(ctx context.Context, e history.Entry) {
	if s.Store == nil {
		return
	}
	if _, err := s.Store.Record(ctx, e); err != nil {
		slog.Warn("failed to record transcript entry", slog.Any("error", err))
	}
}

func (s *Session) isExit(line string) bool {
	return strings.TrimSpace(line) == s.Config.ExitCommand
}

// Start runs the session over plain streams, without line editing. It is
// used when stdin is not a terminal.
func (s *Session) Start(ctx context.Context, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	slog.Info("repl session started", slog.Int64("session", s.ID))

	// input is not echoed, so the prompt is only shown in front of a result
	for scanner.Scan() {
		line := scanner.Text()
		if s.isExit(line) {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fmt.Fprint(out, s.Config.Prompt)
		io.WriteString(out, s.EvalLine(ctx, line))
		io.WriteString(out, "\n")
	}

	io.WriteString(out, GOODBYE+"\n")
	slog.Info("repl session ended", slog.Int64("session", s.ID))
}

// Run runs the session on the terminal with line editing, history and
// completion of bound names.
func (s *Session) Run(ctx context.Context) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(s.complete)

	s.loadHistory(ctx, ln)
	defer s.saveHistory(ln)

	slog.Info("repl session started", slog.Int64("session", s.ID))
	defer slog.Info("repl session ended", slog.Int64("session", s.ID))

	for {
		line, err := ln.Prompt(s.Config.Prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if errors.Is(err, io.EOF) {
			fmt.Println()
			break
		}
		if err != nil {
			return fmt.Errorf("read line: %w", err)
		}
		if s.isExit(line) {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		fmt.Println(s.EvalLine(ctx, line))
	}

	fmt.Println(GOODBYE)
	return nil
}

// complete offers bound names for the word under the cursor.
func (s *Session) complete(line string) []string {
	start := strings.LastIndexAny(line, "() \t") + 1
	prefix := line[start:]
	if prefix == "" {
		return nil
	}
	matches := make([]string, 0)
	for _, name := range s.Env.Names() {
		if strings.HasPrefix(name, prefix) {
			matches = append(matches, line[:start]+name)
		}
	}
	return matches
}

// loadHistory seeds line editing history, from the transcript store when
// there is one and from the history file otherwise.
func (s *Session) loadHistory(ctx context.Context, ln *liner.State) {
	if s.Store != nil {
		entries, err := s.Store.Recent(ctx, s.Config.HistoryLimit)
		if err != nil {
			slog.Warn("failed to load transcript", slog.Any("error", err))
			return
		}
		for _, e := range entries {
			ln.AppendHistory(e.Source)
		}
		return
	}
	if s.Config.HistoryFile == "" {
		return
	}
	if f, err := os.Open(s.Config.HistoryFile); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
}

func (s *Session) saveHistory(ln *liner.State) {
	if s.Store != nil || s.Config.HistoryFile == "" {
		return
	}
	f, err := os.Create(s.Config.HistoryFile)
	if err != nil {
		slog.Warn("failed to write history file", slog.String("path", s.Config.HistoryFile), slog.Any("error", err))
		return
	}
	_, _ = ln.WriteHistory(f)
	_ = f.Close()
}

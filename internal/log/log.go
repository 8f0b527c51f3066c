package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
)

// LevelTrace sits below debug for very chatty output such as scope creation.
const LevelTrace = slog.Level(-8)

// LevelNone is above every level a record can carry, so nothing is logged.
const LevelNone = slog.Level(1 << 10)

type Options struct {
	Level  string
	File   string
	Format string // json or text
}

// Logger owns the log destination so that it can be swapped when the log
// file is rotated underneath us.
type Logger struct {
	mu         sync.Mutex
	out        io.Writer
	fileHandle *os.File
	path       string
	sigs       chan os.Signal
}

func (l *Logger) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.out.Write(p)
}

// Init configures the default slog logger and returns the Logger backing
// it. Call Close when done.
func Init(opts Options) *Logger {
	l := &Logger{out: os.Stderr}

	if opts.File != "" {
		if fh, err := openLogFile(opts.File); err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file '%s': %v; falling back to stderr\n", opts.File, err)
		} else {
			l.fileHandle = fh
			l.out = fh
			l.path = opts.File
			l.setupLogRotation()
		}
	}

	slog.SetDefault(slog.New(NewHandler(l, opts)))
	return l
}

// NewHandler builds the handler Init installs, writing to w.
func NewHandler(w io.Writer, opts Options) slog.Handler {
	handlerOptions := &slog.HandlerOptions{
		AddSource: false,
		Level:     ParseLevel(opts.Level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	if strings.EqualFold(opts.Format, "text") {
		return slog.NewTextHandler(w, handlerOptions)
	}
	return slog.NewJSONHandler(w, handlerOptions)
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "none", "":
		return LevelNone
	default:
		return slog.LevelError
	}
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

func (l *Logger) reopenLogFile() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fileHandle != nil {
		_ = l.fileHandle.Close()
	}
	fh, err := openLogFile(l.path)
	if err != nil {
		l.fileHandle = nil
		l.out = os.Stderr
		fmt.Fprintf(os.Stderr, "could not reopen log file: %v\n", err)
		return
	}
	l.fileHandle = fh
	l.out = fh
}

func (l *Logger) setupLogRotation() {
	/*
	 * if we're logging to a file listen for SIGHUP on log file rotation
	 * mv minilisp.log minilisp.bak && kill -HUP <pid>
	 */
	l.sigs = make(chan os.Signal, 1)
	signal.Notify(l.sigs, syscall.SIGHUP)
	go func() {
		for range l.sigs {
			l.reopenLogFile()
			slog.Log(context.Background(), slog.LevelInfo, "log file reopened", slog.String("path", l.path))
		}
	}()
}

func (l *Logger) Close() {
	if l == nil {
		return
	}
	if l.sigs != nil {
		signal.Stop(l.sigs)
		close(l.sigs)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fileHandle != nil {
		_ = l.fileHandle.Close()
		l.fileHandle = nil
		l.out = os.Stderr
	}
}

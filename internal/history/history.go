// Package history records REPL transcripts in a SQL database. Only the
// text of each exchange is kept; interpreter state is never restored from it.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

type Entry struct {
	ID        int64
	Session   int64
	Source    string
	Result    string
	Failure   string
	CreatedAt time.Time
}

func (e Entry) Failed() bool {
	return e.Failure != ""
}

type Store struct {
	db      *sql.DB
	dialect dialect
}

// Open connects to the store named by dsn, which has the form
// driver://rest. Recognised drivers are sqlite3 (alias sqlite), mysql and
// postgres (alias postgresql). For postgres the whole dsn is handed to the
// driver; for the others only the part after the scheme.
func Open(ctx context.Context, dsn string) (*Store, error) {
	d, connStr, err := parseDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(d.driver, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open connection: %w", err)
	}
	if d.driver == "sqlite3" {
		// a second connection to :memory: would see a different database
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{db: db, dialect: d}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	slog.Debug("history store opened", slog.String("driver", d.driver))
	return s, nil
}

func parseDSN(dsn string) (dialect, string, error) {
	scheme, rest, ok := strings.Cut(dsn, "://")
	if !ok || rest == "" {
		return dialect{}, "", fmt.Errorf("invalid history dsn %q: want driver://connection", dsn)
	}
	switch strings.ToLower(scheme) {
	case "sqlite", "sqlite3":
		return sqliteDialect, rest, nil
	case "mysql":
		return mysqlDialect, rest, nil
	case "postgres", "postgresql":
		return postgresDialect, dsn, nil
	default:
		return dialect{}, "", fmt.Errorf("invalid history dsn %q: unknown driver %q", dsn, scheme)
	}
}

func (s *Store) migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.createTable); err != nil {
		return fmt.Errorf("create transcript table: %w", err)
	}
	return nil
}

// Record appends one exchange and returns its id.
func (s *Store) Record(ctx context.Context, e Entry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	args := []any{e.Session, e.Source, e.Result, e.Failure, e.CreatedAt.UTC()}

	if s.dialect.returningID {
		var id int64
		err := s.db.QueryRowContext(ctx, s.dialect.insert+" RETURNING id", args...).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("record transcript entry: %w", err)
		}
		return id, nil
	}

	result, err := s.db.ExecContext(ctx, s.dialect.insert, args...)
	if err != nil {
		return 0, fmt.Errorf("record transcript entry: %w", err)
	}
	return result.LastInsertId()
}

// Recent returns up to n of the newest entries, oldest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx, s.dialect.recent, n)
	if err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0, n)
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Session, &e.Source, &e.Result, &e.Failure, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transcript: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query transcript: %w", err)
	}

	for i, j := 0, len(entries)-1; i < j; i, j = i+1, j-1 {
		entries[i], entries[j] = entries[j], entries[i]
	}
	return entries, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	if err != nil && !errors.Is(err, sql.ErrConnDone) {
		return err
	}
	return nil
}

// NewSession returns an id grouping the entries of one REPL run.
func NewSession() int64 {
	return time.Now().UnixNano()
}

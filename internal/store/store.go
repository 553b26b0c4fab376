package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

const currentVersion = 1

// ErrNotFound is returned when an id names no record.
var ErrNotFound = errors.New("not found")

// Store keeps every entity in an in-process SQLite database. Nothing outlives
// the process: the database is opened in memory.
type Store struct {
	db  *sql.DB
	log *slog.Logger
}

type options struct {
	seed   bool
	logger *slog.Logger
}

type Option func(*options)

// WithSeed loads the reference data set after migrating.
func WithSeed() Option {
	return func(o *options) { o.seed = true }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New opens an empty in-memory store and runs migrations.
func New(opts ...Option) (*Store, error) {
	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Each connection to :memory: is its own database.
	db.SetMaxOpenConns(1)

	// References between entities are plain ids: deletes never cascade and
	// dangling references are allowed.
	pragmas := []string{
		"PRAGMA journal_mode=MEMORY",
		"PRAGMA foreign_keys=OFF",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	s := &Store{db: db, log: o.logger.With("component", "store")}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if o.seed {
		if err := s.Seed(); err != nil {
			db.Close()
			return nil, fmt.Errorf("seed: %w", err)
		}
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	var version int
	err := s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := s.migrateV1(); err != nil {
			return err
		}
	}

	_, err = s.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (s *Store) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS collaborators (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		name          TEXT NOT NULL,
		email         TEXT NOT NULL DEFAULT '',
		role          TEXT NOT NULL DEFAULT '',
		hourly_rate   REAL NOT NULL DEFAULT 0,
		status        TEXT NOT NULL DEFAULT 'active',
		contract_type TEXT NOT NULL DEFAULT 'CDI',
		start_date    TEXT NOT NULL DEFAULT '',
		end_date      TEXT NOT NULL DEFAULT '',
		hours_per_day REAL NOT NULL DEFAULT 7,
		daily_rate    REAL NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS clients (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		name     TEXT NOT NULL,
		contact  TEXT NOT NULL DEFAULT '',
		phone    TEXT NOT NULL DEFAULT '',
		status   TEXT NOT NULL DEFAULT 'active'
	);

	CREATE TABLE IF NOT EXISTS projects (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		name           TEXT NOT NULL,
		client_id      INTEGER NOT NULL,
		start_date     TEXT NOT NULL DEFAULT '',
		end_date       TEXT NOT NULL DEFAULT '',
		budget         REAL NOT NULL DEFAULT 0,
		daily_rate     REAL NOT NULL DEFAULT 0,
		status         TEXT NOT NULL DEFAULT 'en_cours',
		days_allocated INTEGER NOT NULL DEFAULT 0,
		days_consumed  INTEGER NOT NULL DEFAULT 0,
		days_remaining INTEGER NOT NULL DEFAULT 0
	);

	CREATE TABLE IF NOT EXISTS time_entries (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		collaborator_id INTEGER NOT NULL,
		project_id      INTEGER NOT NULL,
		date            TEXT NOT NULL,
		hours           REAL NOT NULL,
		description     TEXT NOT NULL,
		status          TEXT NOT NULL DEFAULT 'pending'
	);

	CREATE INDEX IF NOT EXISTS idx_entries_date ON time_entries(date);

	CREATE TABLE IF NOT EXISTS working_days (
		date    TEXT PRIMARY KEY,
		working INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	if _, err := s.db.Exec(ddl); err != nil {
		return err
	}

	for key, value := range defaultSettings() {
		if _, err := s.db.Exec(`INSERT OR IGNORE INTO settings (key, value) VALUES (?, ?)`, key, value); err != nil {
			return fmt.Errorf("default setting %q: %w", key, err)
		}
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// querier is satisfied by *sql.DB and *sql.Tx.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

// notFound maps sql.ErrNoRows to ErrNotFound.
func notFound(err error, what string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return fmt.Errorf("get %s %d: %w", what, id, err)
}

// affected turns an UPDATE or DELETE that touched no row into ErrNotFound.
func affected(res sql.Result, what string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", what, id, ErrNotFound)
	}
	return nil
}

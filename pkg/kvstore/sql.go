package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

// dialect holds the statements that differ between SQL backends.
type dialect struct {
	driver string
	create string
	get    string
	upsert string
}

var sqliteDialect = dialect{
	driver: "sqlite3",
	create: `CREATE TABLE IF NOT EXISTS kv (
    k TEXT PRIMARY KEY,
    v TEXT NOT NULL,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	get: `SELECT v FROM kv WHERE k = ?`,
	upsert: `INSERT INTO kv (k, v, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(k) DO UPDATE SET v = excluded.v, updated_at = CURRENT_TIMESTAMP`,
}

var mysqlDialect = dialect{
	driver: "mysql",
	create: `CREATE TABLE IF NOT EXISTS kv (
    k VARCHAR(191) PRIMARY KEY,
    v LONGTEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
)`,
	get:    `SELECT v FROM kv WHERE k = ?`,
	upsert: `INSERT INTO kv (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v)`,
}

// SQL is a Store backed by a single kv table.
type SQL struct {
	db      *sql.DB
	dialect dialect
}

// OpenSQLite opens (and creates if needed) a SQLite database at path.
func OpenSQLite(ctx context.Context, path string) (*SQL, error) {
	if path == "" {
		return nil, errors.New("kvstore: sqlite path is required")
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	return openSQL(ctx, sqliteDialect, dsn)
}

// OpenMySQL connects to MySQL using a go-sql-driver DSN,
// e.g. "user:pass@tcp(127.0.0.1:3306)/todo".
func OpenMySQL(ctx context.Context, dsn string) (*SQL, error) {
	if dsn == "" {
		return nil, errors.New("kvstore: mysql dsn is required")
	}
	return openSQL(ctx, mysqlDialect, dsn)
}

func openSQL(ctx context.Context, d dialect, dsn string) (*SQL, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("kvstore: open %s: %w", d.driver, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("kvstore: ping %s: %w", d.driver, err)
	}
	s, err := newSQL(ctx, db, d)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// newSQL wraps an open database and ensures the kv table exists.
func newSQL(ctx context.Context, db *sql.DB, d dialect) (*SQL, error) {
	if _, err := db.ExecContext(ctx, d.create); err != nil {
		return nil, fmt.Errorf("kvstore: migrate: %w", err)
	}
	return &SQL{db: db, dialect: d}, nil
}

func (s *SQL) Get(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := s.db.QueryRowContext(ctx, s.dialect.get, key).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kvstore: get %q: %w", key, err)
	}
	return v, true, nil
}

func (s *SQL) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.upsert, key, value); err != nil {
		return fmt.Errorf("kvstore: set %q: %w", key, err)
	}
	return nil
}

func (s *SQL) Close() error { return s.db.Close() }

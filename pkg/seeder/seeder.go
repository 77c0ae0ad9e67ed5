package seeder

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultTable = "identifier_fixtures"

// The table name is interpolated into DDL and insert statements, so it is
// restricted to a bare lowercase identifier instead of being quoted.
var validTableName = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Row is one fixture: the scheme slug, the canonical value and, for schemes
// with a grouped form, the formatted rendering.
type Row struct {
	Scheme    string
	Value     string
	Formatted string
}

// Seeder writes fixture rows into one Postgres table.
type Seeder struct {
	pool  *pgxpool.Pool
	table string
}

// Open connects to the database described by cfg, retrying with a linear
// backoff, and verifies the connection with a ping.
func Open(ctx context.Context, cfg Config) (*Seeder, error) {
	if cfg.ConnectionString == "" {
		return nil, ErrEmptyConnectionString
	}

	table := cfg.Table
	if table == "" {
		table = defaultTable
	}
	if !validTableName.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTableName, table)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseConfig, err)
	}

	attempts := cfg.RetryAttempts
	if attempts <= 0 {
		attempts = 1
	}

	// Linear backoff: attempt 1 waits RetryInterval, attempt 2 waits 2x,
	// so a database that is still starting up gets time to come around.
	var lastErr error
	for i := range attempts {
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			lastErr = err
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		return &Seeder{pool: pool, table: table}, nil
	}

	return nil, errors.Join(ErrFailedToConnect, lastErr)
}

// EnsureSchema creates the fixture table when it does not exist yet.
func (s *Seeder) EnsureSchema(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, createTableQuery(s.table)); err != nil {
		return errors.Join(ErrFailedToEnsureSchema, err)
	}
	return nil
}

// Seed batch-inserts rows and returns the number of rows written. A failed
// insert aborts the batch and reports the count inserted before it.
func (s *Seeder) Seed(ctx context.Context, rows []Row) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := insertQuery(s.table)
	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(query, row.Scheme, row.Value, row.Formatted)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	var inserted int64
	for range rows {
		tag, err := results.Exec()
		if err != nil {
			return inserted, errors.Join(ErrFailedToSeed, err)
		}
		inserted += tag.RowsAffected()
	}
	return inserted, nil
}

// Table reports the table rows are written to.
func (s *Seeder) Table() string {
	return s.table
}

// Close releases the underlying connection pool.
func (s *Seeder) Close() {
	s.pool.Close()
}

func createTableQuery(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	scheme TEXT NOT NULL,
	value TEXT NOT NULL,
	formatted TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`, table)
}

func insertQuery(table string) string {
	return fmt.Sprintf("INSERT INTO %s (scheme, value, formatted) VALUES ($1, $2, $3)", table)
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/config"
	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/logger"
	"github.com/pulkit-sachdeva-dev/quantumTimes/migrations"
)

// sqliteStorage is a [KeyValueStorage] backed by a single kv(key, value)
// table in a local SQLite database: string keys, string values, synchronous
// access.
type sqliteStorage struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLiteStorage opens the SQLite database at cfg.DSN (creating the file
// if it does not yet exist), verifies the connection, runs pending schema
// migrations and returns the kv table as a [KeyValueStorage].
func NewSQLiteStorage(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (KeyValueStorage, error) {
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewSQLiteStorage").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file")
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewSQLiteStorage").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB")
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLiteStorage").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewSQLiteStorage").Msg("connected to database successfully")

	if err = migrations.Migrate(conn); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &sqliteStorage{db: conn, logger: log}, nil
}

func (s *sqliteStorage) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select("value").
		From("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %q", ErrKeyNotFound, key)
		}
		s.logger.Err(err).Str("func", "*sqliteStorage.Get").Msg("error querying kv table")
		return "", fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteStorage) Set(ctx context.Context, key, value string) error {
	query, args, err := sq.Insert("kv").
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteStorage.Set").Msg("error upserting kv row")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteStorage) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete("kv").
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*sqliteStorage.Delete").Msg("error deleting kv row")
		return fmt.Errorf("%w: %v", ErrExecutingStatement, err)
	}

	return nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if dbFile == ":memory:" {
		return nil
	}

	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}

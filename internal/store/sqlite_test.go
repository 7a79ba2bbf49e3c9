package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/logger"
)

func newTestSQLiteStorage(t *testing.T) (*sqliteStorage, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	storage := &sqliteStorage{
		db:     db,
		logger: logger.Nop(),
	}
	return storage, mock, db
}

func TestSQLiteStorage_Get_Success(t *testing.T) {
	storage, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow("a@x.com")
	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("rememberedEmail").
		WillReturnRows(rows)

	value, err := storage.Get(context.Background(), "rememberedEmail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if value != "a@x.com" {
		t.Errorf("expected value %q, got %q", "a@x.com", value)
	}
}

func TestSQLiteStorage_Get_NotFound(t *testing.T) {
	storage, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("currentSession").
		WillReturnError(sql.ErrNoRows)

	_, err := storage.Get(context.Background(), "currentSession")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestSQLiteStorage_Get_QueryError(t *testing.T) {
	storage, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv").
		WillReturnError(errors.New("db is locked"))

	_, err := storage.Get(context.Background(), "users")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestSQLiteStorage_Set_Upsert(t *testing.T) {
	storage, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv").
		WithArgs("users", "{}").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := storage.Set(context.Background(), "users", "{}"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSQLiteStorage_Set_ExecError(t *testing.T) {
	storage, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv").
		WillReturnError(errors.New("disk full"))

	err := storage.Set(context.Background(), "users", "{}")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestSQLiteStorage_Delete(t *testing.T) {
	storage, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv").
		WithArgs("currentSession").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := storage.Delete(context.Background(), "currentSession"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSQLiteStorage_Delete_ExecError(t *testing.T) {
	storage, mock, db := newTestSQLiteStorage(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv").
		WillReturnError(errors.New("db is locked"))

	err := storage.Delete(context.Background(), "currentSession")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

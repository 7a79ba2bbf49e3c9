package migrations

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_NilDB(t *testing.T) {
	err := Migrate(nil)
	if err == nil {
		t.Fatal("expected an error for a nil db")
	}
}

func TestMigrate_BrokenConnection(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("db is locked"))
	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("db is locked"))

	if err = Migrate(db); err == nil {
		t.Fatal("expected migration to fail on a broken connection")
	}
}

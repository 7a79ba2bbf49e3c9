package store

import (
	"context"
	"fmt"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/config"
	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/logger"
)

// ClientStorages groups all storage repositories into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// AccountRepository persists the email-keyed account table.
	AccountRepository AccountRepository

	// SessionRepository persists the active session and the remembered
	// email preference.
	SessionRepository SessionRepository
}

// NewClientStorages initialises the storage layer from the supplied
// configuration. When cfg.DB.DSN is set the storage area is a kv table in a
// local SQLite database (schema migrated on open); otherwise it is a JSON
// file at cfg.File.Path, with ":memory:" as a non-persistent fallback.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	var (
		storage KeyValueStorage
		err     error
	)
	if cfg.DB.DSN != "" {
		storage, err = NewSQLiteStorage(context.Background(), cfg.DB, logger)
	} else {
		storage, err = NewFileStorage(cfg.File.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("open local storage: %w", err)
	}

	return NewClientStoragesWith(storage, logger), nil
}

// NewClientStoragesWith wires repositories over an already-open storage
// port. Tests use it to inject the in-memory storage fake.
func NewClientStoragesWith(storage KeyValueStorage, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		AccountRepository: NewAccountRepository(storage, logger),
		SessionRepository: NewSessionRepository(storage, logger),
	}
}

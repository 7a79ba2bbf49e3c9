package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/logger"
	"github.com/pulkit-sachdeva-dev/quantumTimes/models"
)

// sessionRepository is the [SessionRepository] implementation over the
// key-value storage port. The session snapshot lives under "currentSession"
// as a JSON document; the remembered email lives under "rememberedEmail" as
// a plain string with its own lifecycle.
type sessionRepository struct {
	logger  *logger.Logger
	storage KeyValueStorage
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided storage port and logger.
func NewSessionRepository(storage KeyValueStorage, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *sessionRepository) Current(ctx context.Context) (models.Session, error) {
	raw, err := r.storage.Get(ctx, keyCurrentSession)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return models.Session{}, ErrSessionNotFound
		}
		return models.Session{}, err
	}

	var session models.Session
	if err = json.Unmarshal([]byte(raw), &session); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Current").Msg("error decoding session record")
		return models.Session{}, fmt.Errorf("%w: session record: %v", ErrCorruptState, err)
	}

	return session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}
	return r.storage.Set(ctx, keyCurrentSession, string(payload))
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	return r.storage.Delete(ctx, keyCurrentSession)
}

func (r *sessionRepository) RememberedEmail(ctx context.Context) (string, error) {
	email, err := r.storage.Get(ctx, keyRememberedEmail)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return "", nil
		}
		return "", err
	}
	return email, nil
}

func (r *sessionRepository) SetRememberedEmail(ctx context.Context, email string) error {
	return r.storage.Set(ctx, keyRememberedEmail, email)
}

func (r *sessionRepository) ClearRememberedEmail(ctx context.Context) error {
	return r.storage.Delete(ctx, keyRememberedEmail)
}

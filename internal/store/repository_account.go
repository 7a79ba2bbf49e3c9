package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/logger"
	"github.com/pulkit-sachdeva-dev/quantumTimes/models"
)

// Well-known keys of the local storage area. The names are part of the
// persistent layout and must not change between releases.
const (
	keyUsers           = "users"
	keyCurrentSession  = "currentSession"
	keyRememberedEmail = "rememberedEmail"
)

// accountRepository is the [AccountRepository] implementation over the
// key-value storage port. The whole account table is stored as one JSON
// document under the "users" key and rewritten on every save.
type accountRepository struct {
	logger  *logger.Logger
	storage KeyValueStorage
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided storage port and logger.
func NewAccountRepository(storage KeyValueStorage, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		storage: storage,
		logger:  logger,
	}
}

func (r *accountRepository) Initialized(ctx context.Context) (bool, error) {
	if _, err := r.storage.Get(ctx, keyUsers); err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Accounts returns the full account table. A missing "users" key is treated
// as an empty table; a present but undecodable value is [ErrCorruptState].
func (r *accountRepository) Accounts(ctx context.Context) (models.AccountTable, error) {
	raw, err := r.storage.Get(ctx, keyUsers)
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return models.AccountTable{}, nil
		}
		return nil, err
	}

	var accounts models.AccountTable
	if err = json.Unmarshal([]byte(raw), &accounts); err != nil {
		r.logger.Err(err).Str("func", "*accountRepository.Accounts").Msg("error decoding account table")
		return nil, fmt.Errorf("%w: account table: %v", ErrCorruptState, err)
	}
	if accounts == nil {
		accounts = models.AccountTable{}
	}

	return accounts, nil
}

func (r *accountRepository) SaveAccounts(ctx context.Context, accounts models.AccountTable) error {
	payload, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode account table: %w", err)
	}
	return r.storage.Set(ctx, keyUsers, string(payload))
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	accounts, err := r.Accounts(ctx)
	if err != nil {
		return models.Account{}, err
	}

	account, ok := accounts[email]
	if !ok {
		return models.Account{}, fmt.Errorf("%w: email %q", ErrAccountNotFound, email)
	}
	return account, nil
}

// FindByUsername scans the account table for a matching username. Map
// iteration order is unspecified, which is fine: usernames are unique by
// convention, so any match is the match.
func (r *accountRepository) FindByUsername(ctx context.Context, username string) (string, models.Account, error) {
	accounts, err := r.Accounts(ctx)
	if err != nil {
		return "", models.Account{}, err
	}

	for email, account := range accounts {
		if account.Username == username {
			return email, account, nil
		}
	}

	return "", models.Account{}, fmt.Errorf("%w: username %q", ErrAccountNotFound, username)
}

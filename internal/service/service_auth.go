package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/logger"
	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/store"
	"github.com/pulkit-sachdeva-dev/quantumTimes/internal/validators"
	"github.com/pulkit-sachdeva-dev/quantumTimes/models"
)

type authService struct {
	storages  *store.ClientStorages
	validator validators.Validator
	logger    *logger.Logger
}

// NewAuthService constructs the [AuthService] over the storage layer.
func NewAuthService(storages *store.ClientStorages, validator validators.Validator, logger *logger.Logger) AuthService {
	logger.Debug().Msg("creating auth service")
	return &authService{
		storages:  storages,
		validator: validator,
		logger:    logger,
	}
}

func (s *authService) EnsureSeeded(ctx context.Context) error {
	initialized, err := s.storages.AccountRepository.Initialized(ctx)
	if err != nil {
		return fmt.Errorf("check account table: %w", err)
	}
	if initialized {
		return nil
	}

	s.logger.Info().Msg("seeding default accounts")
	return s.storages.AccountRepository.SaveAccounts(ctx, defaultAccounts())
}

// Register checks the preconditions in form order: username, email shape,
// duplicate email, duplicate username, then the password rules. The first
// violated rule wins and nothing is written.
func (s *authService) Register(ctx context.Context, reg models.Registration) (models.Session, error) {
	reg.Username = strings.TrimSpace(reg.Username)
	reg.Email = strings.TrimSpace(reg.Email)

	if err := s.validator.Validate(ctx, reg, validators.FieldUsername); err != nil {
		return models.Session{}, err
	}
	if err := s.validator.Validate(ctx, reg, validators.FieldEmail); err != nil {
		return models.Session{}, err
	}

	accounts, err := s.storages.AccountRepository.Accounts(ctx)
	if err != nil {
		return models.Session{}, err
	}
	if _, exists := accounts[reg.Email]; exists {
		return models.Session{}, fmt.Errorf("%w: %s", ErrDuplicateEmail, reg.Email)
	}
	for _, account := range accounts {
		if account.Username == reg.Username {
			return models.Session{}, fmt.Errorf("%w: %s", ErrDuplicateUsername, reg.Username)
		}
	}

	if err = s.validator.Validate(ctx, reg, validators.FieldPassword); err != nil {
		return models.Session{}, err
	}
	if err = s.validator.Validate(ctx, reg, validators.FieldConfirmPassword); err != nil {
		return models.Session{}, err
	}

	now := time.Now()
	accounts[reg.Email] = models.Account{
		Username:     reg.Username,
		Password:     reg.Password,
		Name:         reg.Username,
		Role:         models.RoleUser,
		RegisteredAt: now,
	}
	if err = s.storages.AccountRepository.SaveAccounts(ctx, accounts); err != nil {
		return models.Session{}, fmt.Errorf("save account table: %w", err)
	}

	session := models.Session{
		Email:      reg.Email,
		Username:   reg.Username,
		Name:       reg.Username,
		Role:       models.RoleUser,
		LoginTime:  now,
		RememberMe: false,
	}
	if err = s.storages.SessionRepository.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	s.logger.Info().Str("email", reg.Email).Msg("new account registered")
	return session, nil
}

func (s *authService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)

	if err := s.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, err
	}

	account, err := s.storages.AccountRepository.FindByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return models.Session{}, ErrInvalidCredentials
		}
		return models.Session{}, err
	}
	if account.Password != creds.Password {
		return models.Session{}, ErrInvalidCredentials
	}

	session := models.Session{
		Email:      creds.Email,
		Username:   account.Username,
		Name:       account.Name,
		Role:       account.Role,
		LoginTime:  time.Now(),
		RememberMe: creds.RememberMe,
	}
	if err = s.storages.SessionRepository.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	if creds.RememberMe {
		err = s.storages.SessionRepository.SetRememberedEmail(ctx, creds.Email)
	} else {
		err = s.storages.SessionRepository.ClearRememberedEmail(ctx)
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("update remembered email: %w", err)
	}

	s.logger.Info().Str("email", creds.Email).Bool("remember_me", creds.RememberMe).Msg("login successful")
	return session, nil
}

func (s *authService) Authenticate(ctx context.Context, email, password string) (bool, error) {
	account, err := s.storages.AccountRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			return false, nil
		}
		return false, err
	}
	return account.Password == password, nil
}

func (s *authService) CurrentSession(ctx context.Context) (models.Session, error) {
	return s.storages.SessionRepository.Current(ctx)
}

func (s *authService) IsAuthenticated(ctx context.Context) (bool, error) {
	_, err := s.storages.SessionRepository.Current(ctx)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.storages.SessionRepository.Clear(ctx)
}

func (s *authService) RememberedEmail(ctx context.Context) (string, error) {
	return s.storages.SessionRepository.RememberedEmail(ctx)
}

func (s *authService) ListAccounts(ctx context.Context) (models.AccountTable, error) {
	return s.storages.AccountRepository.Accounts(ctx)
}

func (s *authService) AccountSummaries(ctx context.Context) ([]models.AccountSummary, error) {
	accounts, err := s.storages.AccountRepository.Accounts(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.AccountSummary, 0, len(accounts))
	for email, account := range accounts {
		summaries = append(summaries, models.AccountSummary{
			Email:    email,
			Username: account.Username,
			Role:     account.Role,
		})
	}
	slices.SortFunc(summaries, func(a, b models.AccountSummary) int {
		return strings.Compare(a.Email, b.Email)
	})

	return summaries, nil
}

func (s *authService) FindAccountByUsername(ctx context.Context, username string) (models.Account, error) {
	_, account, err := s.storages.AccountRepository.FindByUsername(ctx, username)
	return account, err
}

func (s *authService) ResetAllData(ctx context.Context) error {
	if err := s.storages.SessionRepository.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := s.storages.SessionRepository.ClearRememberedEmail(ctx); err != nil {
		return fmt.Errorf("clear remembered email: %w", err)
	}
	if err := s.storages.AccountRepository.SaveAccounts(ctx, defaultAccounts()); err != nil {
		return fmt.Errorf("re-seed account table: %w", err)
	}

	s.logger.Info().Msg("all data cleared and reset to defaults")
	return nil
}

package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/logger"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/sanitizer"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/validator"
)

// LoginParams carries the credentials for one login attempt.
// SecondFactorCode is optional; when the account has a second factor enabled
// and the code is absent, Login answers with TwoFactorRequired instead of a
// session.
type LoginParams struct {
	Email            string
	Password         string
	SecondFactorCode string
}

// Login runs the authentication state machine: resolve the email against
// the primary address or a verified additional address, reject blocked
// accounts and expired passwords, compare the password, then clear the
// second factor if one is enabled. Checks run in a fixed order so earlier
// failures mask later state.
func (s *Service) Login(ctx context.Context, params LoginParams) (*LoginResult, error) {
	email := sanitizer.NormalizeEmail(params.Email)

	if err := validator.Apply(
		validator.Required("email", email),
		validator.Required("password", params.Password),
	); err != nil {
		return nil, err
	}

	account, err := s.storage.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			// Unknown email folds into the generic credential failure.
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if account.IsBlocked {
		s.log.InfoContext(ctx, "login rejected",
			logger.Event("login_blocked"), logger.AccountID(account.ID))
		return nil, ErrAccountBlocked
	}

	if s.policy.Expired(account.PasswordChangedAt, s.now()) {
		return nil, ErrPasswordExpired
	}

	if bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(params.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if account.SecondFactor.Enabled {
		if params.SecondFactorCode == "" {
			return &LoginResult{TwoFactorRequired: true, AccountID: account.ID}, nil
		}

		ok, err := s.second.Validate(account.SecondFactor.Secret, params.SecondFactorCode)
		if err != nil || !ok {
			return nil, ErrInvalidSecondFactor
		}
	}

	return s.issueSession(ctx, account)
}

// VerifySecondFactor completes a login that answered TwoFactorRequired.
// The block check runs again since state may have changed between the two
// steps.
func (s *Service) VerifySecondFactor(ctx context.Context, accountID uuid.UUID, code string) (*LoginResult, error) {
	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if account.IsBlocked {
		return nil, ErrAccountBlocked
	}
	if !account.SecondFactor.Enabled {
		return nil, ErrSecondFactorNotEnrolled
	}

	ok, err := s.second.Validate(account.SecondFactor.Secret, code)
	if err != nil || !ok {
		return nil, ErrInvalidSecondFactor
	}

	return s.issueSession(ctx, account)
}

func (s *Service) issueSession(ctx context.Context, account *Account) (*LoginResult, error) {
	token, expiresAt, err := s.sessions.Issue(account.ID, account.IsAdmin)
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "login succeeded",
		logger.Event("login"), logger.AccountID(account.ID))

	return &LoginResult{
		AccountID: account.ID,
		Token:     token,
		ExpiresAt: expiresAt,
		Account:   account,
	}, nil
}

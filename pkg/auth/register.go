package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/logger"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/sanitizer"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/validator"
)

// RegisterParams carries a registration request. RemoteIP is optional and
// forwarded to the captcha provider.
type RegisterParams struct {
	Name         string
	Email        string
	Password     string
	CaptchaToken string
	RemoteIP     string
}

// Register creates a new account. The registration address is stored
// verified, since completing the flow proves control of the inbox is not
// required for the storefront. The initial hash seeds the password history.
func (s *Service) Register(ctx context.Context, params RegisterParams) (*Account, error) {
	name := sanitizer.PersonName(params.Name)
	email := sanitizer.NormalizeEmail(params.Email)

	if err := validator.Apply(
		validator.Required("name", name),
		validator.PersonName("name", name),
		validator.Required("email", email),
		validator.ValidEmail("email", email),
		validator.Required("password", params.Password),
		validator.StrongPassword("password", params.Password, s.policy.Strength),
	); err != nil {
		return nil, err
	}

	if _, err := s.storage.GetAccountByEmail(ctx, email); err == nil {
		return nil, ErrEmailAlreadyExists
	} else if !errors.Is(err, ErrAccountNotFound) {
		return nil, err
	}

	if err := s.captcha.Verify(ctx, params.CaptchaToken, params.RemoteIP); err != nil {
		return nil, errors.Join(ErrCaptchaFailed, err)
	}

	hash, err := s.hashPassword(params.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	account := &Account{
		ID:                uuid.New(),
		Name:              name,
		Email:             email,
		Emails:            []EmailEntry{{Address: email, Verified: true}},
		PasswordHash:      hash,
		PasswordHistory:   [][]byte{hash},
		PasswordChangedAt: now,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.storage.CreateAccount(ctx, account); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "account registered",
		logger.Event("register"), logger.AccountID(account.ID))

	return account, nil
}

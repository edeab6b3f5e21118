package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/logger"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/qrcode"
)

const qrCodeSize = 256

// EnrollSecondFactor generates a fresh secret and stores it in the pending
// state. The account keeps logging in without a code until the enrollment
// is confirmed. Re-enrolling while pending replaces the secret.
func (s *Service) EnrollSecondFactor(ctx context.Context, accountID uuid.UUID) (*SecondFactorEnrollment, error) {
	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.SecondFactor.Enabled {
		return nil, ErrSecondFactorAlreadyEnabled
	}

	secret, err := s.second.GenerateSecret()
	if err != nil {
		return nil, err
	}

	if err := s.storage.SetSecondFactor(ctx, account.ID, SecondFactor{Secret: secret}); err != nil {
		return nil, err
	}

	uri, err := s.second.ProvisioningURI(secret, account.Email)
	if err != nil {
		return nil, err
	}

	qr, err := qrcode.GenerateDataURI(uri, qrCodeSize)
	if err != nil {
		return nil, err
	}

	return &SecondFactorEnrollment{Secret: secret, URI: uri, QRCode: qr}, nil
}

// ConfirmSecondFactor promotes a pending enrollment once the account proves
// it can produce a valid code.
func (s *Service) ConfirmSecondFactor(ctx context.Context, accountID uuid.UUID, code string) error {
	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.SecondFactor.Secret == "" {
		return ErrSecondFactorNotEnrolled
	}

	ok, err := s.second.Validate(account.SecondFactor.Secret, code)
	if err != nil || !ok {
		return ErrInvalidSecondFactor
	}

	if err := s.storage.SetSecondFactor(ctx, account.ID, SecondFactor{
		Enabled: true,
		Secret:  account.SecondFactor.Secret,
	}); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "second factor enabled",
		logger.Event("second_factor_enabled"), logger.AccountID(account.ID))
	return nil
}

// DisableSecondFactor clears the enrollment. The session credential alone
// authorizes the change; no code is requested.
func (s *Service) DisableSecondFactor(ctx context.Context, accountID uuid.UUID) error {
	if err := s.storage.ClearSecondFactor(ctx, accountID); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "second factor disabled",
		logger.Event("second_factor_disabled"), logger.AccountID(accountID))
	return nil
}

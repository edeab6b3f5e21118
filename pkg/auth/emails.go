package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/logger"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/sanitizer"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/token"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/validator"
)

// AddEmail attaches an additional address in the unverified state and mails
// a verification link. Unverified addresses never resolve at login.
func (s *Service) AddEmail(ctx context.Context, accountID uuid.UUID, address string) error {
	address = sanitizer.NormalizeEmail(address)
	if err := validator.Apply(
		validator.Required("email", address),
		validator.ValidEmail("email", address),
	); err != nil {
		return err
	}

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account.HasEmail(address) {
		return ErrEmailAlreadyExists
	}

	if err := s.storage.AddEmail(ctx, account.ID, EmailEntry{Address: address}); err != nil {
		return err
	}

	raw, digest, err := token.Generate()
	if err != nil {
		return err
	}

	verification := &EmailVerification{
		Digest:    digest,
		Address:   address,
		ExpiresAt: s.now().Add(s.verifyTokenTTL),
	}
	if err := s.storage.SetEmailVerification(ctx, account.ID, verification); err != nil {
		return err
	}

	if s.notifier == nil {
		return ErrNotificationFailed
	}
	if err := s.notifier.EmailVerification(ctx, account, address, raw); err != nil {
		s.log.ErrorContext(ctx, "verification email failed",
			logger.Event("add_email"), logger.AccountID(account.ID), logger.Error(err))
		return errors.Join(ErrNotificationFailed, err)
	}

	return nil
}

// ConfirmEmail consumes a verification token and marks the address
// verified, making it usable as a login identifier.
func (s *Service) ConfirmEmail(ctx context.Context, rawToken string) error {
	if rawToken == "" {
		return ErrTokenInvalid
	}

	account, err := s.storage.GetAccountByEmailVerification(ctx, token.Digest(rawToken))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrTokenInvalid
		}
		return err
	}

	v := account.EmailVerification
	if v == nil || s.now().After(v.ExpiresAt) {
		return ErrTokenExpired
	}

	if err := s.storage.MarkEmailVerified(ctx, account.ID, v.Address); err != nil {
		return err
	}
	if err := s.storage.SetEmailVerification(ctx, account.ID, nil); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "email verified",
		logger.Event("email_verified"), logger.AccountID(account.ID))
	return nil
}

// RemoveEmail detaches an additional address. The primary address anchors
// the account and cannot be removed.
func (s *Service) RemoveEmail(ctx context.Context, accountID uuid.UUID, address string) error {
	address = sanitizer.NormalizeEmail(address)

	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	if strings.EqualFold(account.Email, address) {
		return ErrCannotRemovePrimaryEmail
	}
	if !account.HasEmail(address) {
		return ErrEmailNotFound
	}

	return s.storage.RemoveEmail(ctx, account.ID, address)
}

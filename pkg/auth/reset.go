package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/logger"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/sanitizer"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/token"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/validator"
)

// ForgotPassword issues a single-use reset token and mails it. Only the
// primary address is accepted here; additional addresses cannot trigger a
// reset. Requesting again replaces any outstanding token.
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	email = sanitizer.NormalizeEmail(email)
	if err := validator.Apply(
		validator.Required("email", email),
		validator.ValidEmail("email", email),
	); err != nil {
		return err
	}

	account, err := s.storage.GetAccountByPrimaryEmail(ctx, email)
	if err != nil {
		return err
	}

	raw, digest, err := token.Generate()
	if err != nil {
		return err
	}

	slot := &TokenSlot{Digest: digest, ExpiresAt: s.now().Add(s.resetTokenTTL)}
	if err := s.storage.SetResetToken(ctx, account.ID, slot); err != nil {
		return err
	}

	if s.notifier == nil {
		return ErrNotificationFailed
	}
	if err := s.notifier.PasswordReset(ctx, account, raw); err != nil {
		s.log.ErrorContext(ctx, "password reset email failed",
			logger.Event("forgot_password"), logger.AccountID(account.ID), logger.Error(err))
		return errors.Join(ErrNotificationFailed, err)
	}

	s.log.InfoContext(ctx, "password reset requested",
		logger.Event("forgot_password"), logger.AccountID(account.ID))
	return nil
}

// ResetPassword consumes a reset token and installs the new password. The
// token is single-use: the atomic password update clears the slot, so a
// second submission of the same token fails the lookup.
func (s *Service) ResetPassword(ctx context.Context, rawToken, newPassword string) error {
	if rawToken == "" {
		return ErrTokenInvalid
	}

	account, err := s.storage.GetAccountByResetToken(ctx, token.Digest(rawToken))
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return ErrTokenInvalid
		}
		return err
	}

	if account.ResetToken == nil || s.now().After(account.ResetToken.ExpiresAt) {
		return ErrTokenExpired
	}

	return s.installPassword(ctx, account, newPassword)
}

// ChangePassword rotates the password for an authenticated account after
// re-verifying the current one.
func (s *Service) ChangePassword(ctx context.Context, accountID uuid.UUID, current, newPassword string) error {
	account, err := s.storage.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword(account.PasswordHash, []byte(current)) != nil {
		return ErrInvalidCredentials
	}

	return s.installPassword(ctx, account, newPassword)
}

// installPassword runs the policy checks and performs the atomic update:
// new hash installed, history rotated, changedAt stamped, reset slot
// cleared.
func (s *Service) installPassword(ctx context.Context, account *Account, newPassword string) error {
	if err := s.policy.ValidateStrength(newPassword); err != nil {
		return err
	}
	if err := s.policy.CheckReuse(newPassword, account.PasswordHistory); err != nil {
		return err
	}

	hash, err := s.hashPassword(newPassword)
	if err != nil {
		return err
	}

	if err := s.storage.UpdatePassword(ctx, account.ID, hash, s.now(), s.policy.HistoryDepth); err != nil {
		return err
	}

	s.log.InfoContext(ctx, "password changed",
		logger.Event("password_change"), logger.AccountID(account.ID))
	return nil
}

package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/logger"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/sanitizer"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/validator"
)

// GetAccount fetches one account by ID.
func (s *Service) GetAccount(ctx context.Context, accountID uuid.UUID) (*Account, error) {
	return s.storage.GetAccountByID(ctx, accountID)
}

// UpdateName changes the display name.
func (s *Service) UpdateName(ctx context.Context, accountID uuid.UUID, name string) error {
	name = sanitizer.PersonName(name)
	if err := validator.Apply(
		validator.Required("name", name),
		validator.PersonName("name", name),
	); err != nil {
		return err
	}

	return s.storage.UpdateName(ctx, accountID, name)
}

// SetBlocked flips the administrative block flag. Blocked accounts fail
// login with a distinct error until unblocked.
func (s *Service) SetBlocked(ctx context.Context, accountID uuid.UUID, blocked bool) error {
	if err := s.storage.SetBlocked(ctx, accountID, blocked); err != nil {
		return err
	}

	event := "account_unblocked"
	if blocked {
		event = "account_blocked"
	}
	s.log.InfoContext(ctx, "block flag changed",
		logger.Event(event), logger.AccountID(accountID))
	return nil
}

// ListAccounts returns every account. Admin surface only.
func (s *Service) ListAccounts(ctx context.Context) ([]Account, error) {
	return s.storage.ListAccounts(ctx)
}

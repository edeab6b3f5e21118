package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Storage persists accounts. Implementations return ErrAccountNotFound for
// missing records and ErrEmailAlreadyExists on unique address violations.
type Storage interface {
	// CreateAccount inserts a new account. Every address in account.Emails
	// must be globally unique.
	CreateAccount(ctx context.Context, account *Account) error

	GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error)

	// GetAccountByEmail resolves a login identifier: the primary address of
	// any account, or a verified additional address.
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)

	// GetAccountByPrimaryEmail matches the primary address only. Password
	// reset requests go through this narrower lookup.
	GetAccountByPrimaryEmail(ctx context.Context, email string) (*Account, error)

	ListAccounts(ctx context.Context) ([]Account, error)

	UpdateName(ctx context.Context, id uuid.UUID, name string) error

	// UpdatePassword atomically sets the new hash, prepends it to the
	// history (truncated to historyLimit), stamps changedAt, and clears any
	// outstanding reset token.
	UpdatePassword(ctx context.Context, id uuid.UUID, hash []byte, changedAt time.Time, historyLimit int) error

	SetBlocked(ctx context.Context, id uuid.UUID, blocked bool) error

	// SetResetToken stores the reset token slot; nil clears it.
	SetResetToken(ctx context.Context, id uuid.UUID, slot *TokenSlot) error

	// GetAccountByResetToken looks up the account holding the given token
	// digest. Expiry is the caller's concern.
	GetAccountByResetToken(ctx context.Context, digest string) (*Account, error)

	SetSecondFactor(ctx context.Context, id uuid.UUID, sf SecondFactor) error
	ClearSecondFactor(ctx context.Context, id uuid.UUID) error

	AddEmail(ctx context.Context, id uuid.UUID, entry EmailEntry) error
	RemoveEmail(ctx context.Context, id uuid.UUID, address string) error

	// SetEmailVerification stores the pending verification; nil clears it.
	SetEmailVerification(ctx context.Context, id uuid.UUID, v *EmailVerification) error
	GetAccountByEmailVerification(ctx context.Context, digest string) (*Account, error)
	MarkEmailVerified(ctx context.Context, id uuid.UUID, address string) error
}

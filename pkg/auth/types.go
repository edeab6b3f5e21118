package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// EmailEntry is one address attached to an account. The primary address is
// mirrored in Account.Email and is always present in Emails as verified.
type EmailEntry struct {
	Address  string
	Verified bool
}

// TokenSlot holds the digest and expiry of an outstanding single-use token.
// The raw token never touches storage.
type TokenSlot struct {
	Digest    string
	ExpiresAt time.Time
}

// EmailVerification tracks a pending verification for one additional
// address. Only one verification can be outstanding per account.
type EmailVerification struct {
	Digest    string
	Address   string
	ExpiresAt time.Time
}

// SecondFactor holds TOTP enrollment state. A non-empty Secret with Enabled
// false is a pending enrollment awaiting its first valid code.
type SecondFactor struct {
	Enabled bool
	Secret  string
}

// Account is the credential record for one customer.
type Account struct {
	ID                uuid.UUID
	Name              string
	Email             string // primary address, unique, login anchor
	Emails            []EmailEntry
	PasswordHash      []byte
	PasswordHistory   [][]byte // newest first, current hash included
	PasswordChangedAt time.Time
	IsBlocked         bool
	IsAdmin           bool
	SecondFactor      SecondFactor
	ResetToken        *TokenSlot
	EmailVerification *EmailVerification
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// HasEmail reports whether address is attached to the account, primary or
// additional. Comparison is case-insensitive.
func (a *Account) HasEmail(address string) bool {
	for _, e := range a.Emails {
		if strings.EqualFold(e.Address, address) {
			return true
		}
	}
	return strings.EqualFold(a.Email, address)
}

// EmailVerified reports whether address is attached and verified.
func (a *Account) EmailVerified(address string) bool {
	for _, e := range a.Emails {
		if strings.EqualFold(e.Address, address) {
			return e.Verified
		}
	}
	return false
}

// LoginResult is the outcome of a successful Login call. When
// TwoFactorRequired is set the credential check passed but a one-time code
// is still needed; Token is empty and AccountID identifies the pending
// login.
type LoginResult struct {
	TwoFactorRequired bool
	AccountID         uuid.UUID
	Token             string
	ExpiresAt         time.Time
	Account           *Account
}

// SecondFactorEnrollment is returned by EnrollSecondFactor. QRCode is a PNG
// data URI of the provisioning URI for authenticator apps.
type SecondFactorEnrollment struct {
	Secret string
	URI    string
	QRCode string
}

package auth

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/validator"
)

// PasswordPolicy bundles the complexity, reuse, and age rules applied to
// every password the service accepts.
type PasswordPolicy struct {
	Strength     validator.PasswordStrengthConfig
	HistoryDepth int           // hashes retained for the reuse check, current included
	MaxAge       time.Duration // 0 disables expiry
}

// DefaultPasswordPolicy returns the storefront policy: 8+ characters with
// all four character classes, five retained hashes, 90-day expiry.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		Strength:     validator.DefaultPasswordStrength(),
		HistoryDepth: 5,
		MaxAge:       90 * 24 * time.Hour,
	}
}

// ValidateStrength checks the candidate against the complexity rules,
// returning validator.ValidationErrors on failure.
func (p PasswordPolicy) ValidateStrength(password string) error {
	return validator.Apply(
		validator.Required("password", password),
		validator.StrongPassword("password", password, p.Strength),
	)
}

// CheckReuse compares the candidate against every retained hash and returns
// ErrPasswordReused on a match. bcrypt comparison is used so the plaintext
// history is never needed.
func (p PasswordPolicy) CheckReuse(password string, history [][]byte) error {
	for _, hash := range history {
		if bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil {
			return ErrPasswordReused
		}
	}
	return nil
}

// Expired reports whether a password set at changedAt has outlived MaxAge.
// A zero changedAt is treated as current so legacy records without the
// timestamp are not locked out.
func (p PasswordPolicy) Expired(changedAt, now time.Time) bool {
	if p.MaxAge <= 0 || changedAt.IsZero() {
		return false
	}
	return now.Sub(changedAt) > p.MaxAge
}

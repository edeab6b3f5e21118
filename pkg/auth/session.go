package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultSessionTTL = 7 * 24 * time.Hour

// SessionClaims is the payload of a session credential.
type SessionClaims struct {
	IsAdmin bool `json:"adm,omitempty"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim.
func (c *SessionClaims) AccountID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, errors.Join(ErrSessionInvalid, err)
	}
	return id, nil
}

// Sessions issues and verifies HMAC-signed session credentials.
type Sessions struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// SessionOption configures Sessions.
type SessionOption func(*Sessions)

// WithSessionTTL overrides the default seven-day credential lifetime.
func WithSessionTTL(ttl time.Duration) SessionOption {
	if ttl <= 0 {
		panic("WithSessionTTL: ttl must be > 0")
	}
	return func(s *Sessions) { s.ttl = ttl }
}

// WithSessionIssuer sets the iss claim.
func WithSessionIssuer(issuer string) SessionOption {
	return func(s *Sessions) { s.issuer = issuer }
}

// WithSessionTimeSource overrides the clock. Used in tests.
func WithSessionTimeSource(now func() time.Time) SessionOption {
	return func(s *Sessions) { s.now = now }
}

// NewSessions creates a session issuer signing with the given secret.
func NewSessions(secret []byte, opts ...SessionOption) (*Sessions, error) {
	if len(secret) == 0 {
		return nil, errors.New("session secret is required")
	}

	s := &Sessions{
		secret: secret,
		ttl:    defaultSessionTTL,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Issue signs a credential for the account.
func (s *Sessions) Issue(accountID uuid.UUID, isAdmin bool) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)

	claims := SessionClaims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session credential: %w", err)
	}
	return token, expiresAt, nil
}

// Verify parses and validates a credential. Expired credentials return
// ErrSessionExpired; everything else invalid returns ErrSessionInvalid.
func (s *Sessions) Verify(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Join(ErrSessionExpired, err)
		}
		return nil, errors.Join(ErrSessionInvalid, err)
	}
	return claims, nil
}

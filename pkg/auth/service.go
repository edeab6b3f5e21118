package auth

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/captcha"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/logger"
)

const (
	defaultBcryptCost     = 10
	defaultResetTokenTTL  = time.Hour
	defaultVerifyTokenTTL = 24 * time.Hour
	defaultIssuerName     = "Dryvana"
)

// Notifier delivers account emails. Raw tokens are handed to the notifier
// exactly once; only digests are persisted.
type Notifier interface {
	PasswordReset(ctx context.Context, account *Account, rawToken string) error
	EmailVerification(ctx context.Context, account *Account, address, rawToken string) error
}

// Service orchestrates every authentication and account-security flow.
type Service struct {
	storage  Storage
	sessions *Sessions
	notifier Notifier
	captcha  captcha.Verifier
	second   SecondFactorVerifier
	policy   PasswordPolicy

	log            *slog.Logger
	bcryptCost     int
	resetTokenTTL  time.Duration
	verifyTokenTTL time.Duration
	now            func() time.Time
}

// Option configures the Service.
type Option func(*Service)

// WithLogger attaches a structured logger. Logs are discarded by default.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) { s.log = log }
}

// WithNotifier attaches the email notifier. Without one, flows that send
// mail fail with ErrNotificationFailed.
func WithNotifier(n Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithCaptcha attaches human verification for registration. Defaults to a
// verifier that accepts everything.
func WithCaptcha(v captcha.Verifier) Option {
	return func(s *Service) { s.captcha = v }
}

// WithSecondFactor overrides the one-time-code scheme.
func WithSecondFactor(v SecondFactorVerifier) Option {
	return func(s *Service) { s.second = v }
}

// WithPasswordPolicy overrides the default password policy.
func WithPasswordPolicy(p PasswordPolicy) Option {
	return func(s *Service) { s.policy = p }
}

// WithBcryptCost overrides the hashing cost.
func WithBcryptCost(cost int) Option {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		panic("WithBcryptCost: cost out of range")
	}
	return func(s *Service) { s.bcryptCost = cost }
}

// WithResetTokenTTL overrides the one-hour reset token lifetime.
func WithResetTokenTTL(ttl time.Duration) Option {
	if ttl <= 0 {
		panic("WithResetTokenTTL: ttl must be > 0")
	}
	return func(s *Service) { s.resetTokenTTL = ttl }
}

// WithVerificationTokenTTL overrides the email verification token lifetime.
func WithVerificationTokenTTL(ttl time.Duration) Option {
	if ttl <= 0 {
		panic("WithVerificationTokenTTL: ttl must be > 0")
	}
	return func(s *Service) { s.verifyTokenTTL = ttl }
}

// WithTimeSource overrides the clock. Used in tests.
func WithTimeSource(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates the orchestrator. storage and sessions are required.
func NewService(storage Storage, sessions *Sessions, opts ...Option) (*Service, error) {
	if storage == nil {
		return nil, ErrNilStorage
	}
	if sessions == nil {
		return nil, ErrNilSessions
	}

	s := &Service{
		storage:        storage,
		sessions:       sessions,
		captcha:        captcha.NoopVerifier(),
		second:         NewTOTPVerifier(defaultIssuerName),
		policy:         DefaultPasswordPolicy(),
		log:            logger.Discard(),
		bcryptCost:     defaultBcryptCost,
		resetTokenTTL:  defaultResetTokenTTL,
		verifyTokenTTL: defaultVerifyTokenTTL,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Sessions exposes the credential issuer so transports can verify tokens.
func (s *Service) Sessions() *Sessions {
	return s.sessions
}

// PasswordPolicy exposes the effective policy.
func (s *Service) PasswordPolicy() PasswordPolicy {
	return s.policy
}

func (s *Service) hashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
}

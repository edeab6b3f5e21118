package totp

import "errors"

var (
	ErrFailedToGenerateSecret = errors.New("failed to generate TOTP secret")
	ErrInvalidSecret          = errors.New("invalid TOTP secret")
	ErrInvalidCodeFormat      = errors.New("invalid code format")
	ErrMissingAccountName     = errors.New("missing account name")
	ErrMissingIssuer          = errors.New("missing issuer")

	ErrFailedToEncryptSecret      = errors.New("failed to encrypt TOTP secret")
	ErrFailedToDecryptSecret      = errors.New("failed to decrypt TOTP secret")
	ErrCipherTooShort             = errors.New("cipher text too short")
	ErrInvalidEncryptionKeyLength = errors.New("invalid encryption key length")
	ErrFailedToGenerateKey        = errors.New("failed to generate encryption key")
)

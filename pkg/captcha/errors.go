package captcha

import "errors"

var (
	// ErrVerificationFailed means the token was rejected by the provider.
	ErrVerificationFailed = errors.New("captcha verification failed")
	// ErrUnavailable means the provider could not be reached or answered
	// with something other than a verdict.
	ErrUnavailable = errors.New("captcha service unavailable")
	// ErrMissingToken means no token was supplied by the client.
	ErrMissingToken = errors.New("captcha token is required")
	// ErrInvalidConfig means the verifier cannot be constructed.
	ErrInvalidConfig = errors.New("invalid captcha config")
)

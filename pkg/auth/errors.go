package auth

import "errors"

var (
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// responses do not reveal which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountBlocked is returned for administratively blocked accounts.
	// Deliberately distinct from ErrInvalidCredentials.
	ErrAccountBlocked = errors.New("your account has been blocked")

	// ErrPasswordExpired means the password is older than the policy allows
	// and must be reset before login can succeed.
	ErrPasswordExpired = errors.New("password has expired, please reset it")

	// ErrInvalidSecondFactor means the submitted one-time code did not match.
	ErrInvalidSecondFactor = errors.New("invalid two-factor code")

	// ErrSecondFactorAlreadyEnabled guards repeated enrollment.
	ErrSecondFactorAlreadyEnabled = errors.New("two-factor authentication is already enabled")

	// ErrSecondFactorNotEnrolled means confirmation or verification was
	// attempted without a stored secret.
	ErrSecondFactorNotEnrolled = errors.New("two-factor authentication is not set up")

	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists means the address is attached to some account.
	ErrEmailAlreadyExists = errors.New("email address is already in use")

	// ErrEmailNotFound means the address is not attached to the account.
	ErrEmailNotFound = errors.New("email address not found")

	// ErrCannotRemovePrimaryEmail guards the login anchor address.
	ErrCannotRemovePrimaryEmail = errors.New("primary email cannot be removed")

	// ErrPasswordReused means the candidate password matches one of the
	// retained previous hashes.
	ErrPasswordReused = errors.New("new password must not match recently used passwords")

	// ErrCaptchaFailed means human verification did not pass.
	ErrCaptchaFailed = errors.New("captcha verification failed")

	// ErrNotificationFailed means an email could not be dispatched.
	ErrNotificationFailed = errors.New("failed to send notification email")

	// ErrTokenInvalid and ErrTokenExpired are distinct for logging but carry
	// the same outward message so callers cannot probe token validity.
	ErrTokenInvalid = errors.New("invalid or expired token")
	ErrTokenExpired = errors.New("token has expired")

	// ErrSessionInvalid means the session credential failed verification.
	ErrSessionInvalid = errors.New("invalid session token")

	// ErrSessionExpired means the session credential is past its expiry.
	ErrSessionExpired = errors.New("session has expired")

	// Construction errors.
	ErrNilStorage  = errors.New("storage is required")
	ErrNilSessions = errors.New("sessions is required")
)

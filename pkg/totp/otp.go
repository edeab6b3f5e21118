package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base32"
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	// Digits is the code length. Authenticator apps assume 6.
	Digits = 6
	// Period is the validity window in seconds (RFC 6238 standard).
	Period = 30
	// SkewSteps is how many adjacent time steps are accepted on either side
	// of the current one to absorb clock drift.
	SkewSteps = 1

	secretSize = 20 // 160-bit secret per RFC 4226 recommendation
)

var (
	secretRegex = regexp.MustCompile(`^[A-Z2-7]+=*$`)
	codeRegex   = regexp.MustCompile(fmt.Sprintf(`^\d{%d}$`, Digits))

	b32 = base32.StdEncoding.WithPadding(base32.NoPadding)
)

// GenerateSecret returns a new base32-encoded shared secret.
func GenerateSecret() (string, error) {
	buf := make([]byte, secretSize)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecret, err)
	}
	return b32.EncodeToString(buf), nil
}

// Params describes a provisioning URI for authenticator apps.
type Params struct {
	Secret      string // base32-encoded shared secret (required)
	AccountName string // user identifier shown in the app, usually an email (required)
	Issuer      string // service name shown in the app (required)
}

func (p Params) validate() error {
	if p.Secret == "" || !secretRegex.MatchString(p.Secret) {
		return ErrInvalidSecret
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// ProvisioningURI builds an otpauth:// URI following the Key Uri Format
// understood by Google Authenticator and compatible apps.
func ProvisioningURI(params Params) (string, error) {
	if err := params.validate(); err != nil {
		return "", err
	}

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", params.Secret)
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", "SHA1")
	query.Set("digits", fmt.Sprintf("%d", Digits))
	query.Set("period", fmt.Sprintf("%d", Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}

// Validate checks a submitted code against the secret for the current time
// window, accepting SkewSteps adjacent windows on either side.
func Validate(secret, code string) (bool, error) {
	return ValidateAt(secret, code, time.Now())
}

// ValidateAt checks a submitted code against the secret for the window
// containing t. Exposed for deterministic tests.
func ValidateAt(secret, code string, t time.Time) (bool, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return false, err
	}

	code = strings.TrimSpace(code)
	if !codeRegex.MatchString(code) {
		return false, ErrInvalidCodeFormat
	}

	counter := t.Unix() / Period
	for i := -SkewSteps; i <= SkewSteps; i++ {
		expected := hotp(key, counter+int64(i), Digits)
		if fmt.Sprintf("%0*d", Digits, expected) == code {
			return true, nil
		}
	}

	return false, nil
}

// CodeAt generates the code for the window containing t. Used by enrollment
// previews and tests.
func CodeAt(secret string, t time.Time) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}

	counter := t.Unix() / Period
	return fmt.Sprintf("%0*d", Digits, hotp(key, counter, Digits)), nil
}

func decodeSecret(secret string) ([]byte, error) {
	secret = strings.ToUpper(strings.TrimSpace(secret))
	if !secretRegex.MatchString(secret) {
		return nil, ErrInvalidSecret
	}

	key, err := b32.DecodeString(strings.TrimRight(secret, "="))
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	return key, nil
}

// hotp implements the RFC 4226 HMAC-based one-time password: HMAC-SHA1 over
// the big-endian counter, dynamic truncation, then reduction to digits.
func hotp(key []byte, counter int64, digits int) int {
	counterBytes := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		counterBytes[i] = byte(counter & 0xff)
		counter >>= 8
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(counterBytes)
	sum := mac.Sum(nil)

	// Dynamic truncation: last 4 bits select the offset, MSB cleared to keep
	// the extracted value positive.
	offset := sum[len(sum)-1] & 0x0f
	value := (int(sum[offset]&0x7f) << 24) |
		(int(sum[offset+1]) << 16) |
		(int(sum[offset+2]) << 8) |
		int(sum[offset+3])

	return value % int(math.Pow10(digits))
}

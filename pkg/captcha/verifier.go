package captcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Verifier checks that a request was produced by a human. Implementations
// return ErrVerificationFailed when the token is rejected and ErrUnavailable
// when no verdict could be obtained.
type Verifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// GoogleVerifier verifies tokens against the reCAPTCHA siteverify endpoint.
type GoogleVerifier struct {
	secretKey string
	endpoint  string
	client    *http.Client
}

// NewGoogleVerifier creates a verifier from cfg.
func NewGoogleVerifier(cfg Config) (*GoogleVerifier, error) {
	if strings.TrimSpace(cfg.SecretKey) == "" {
		return nil, fmt.Errorf("%w: secret key is required", ErrInvalidConfig)
	}
	if cfg.Endpoint == "" {
		cfg.Endpoint = "https://www.google.com/recaptcha/api/siteverify"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	return &GoogleVerifier{
		secretKey: cfg.SecretKey,
		endpoint:  cfg.Endpoint,
		client:    &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify posts the token to the siteverify endpoint. remoteIP is optional
// and forwarded to the provider when present.
func (v *GoogleVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if strings.TrimSpace(token) == "" {
		return ErrMissingToken
	}

	form := url.Values{}
	form.Set("secret", v.secretKey)
	form.Set("response", token)
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", ErrUnavailable, resp.StatusCode)
	}

	var result siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !result.Success {
		if len(result.ErrorCodes) > 0 {
			return fmt.Errorf("%w: %s", ErrVerificationFailed, strings.Join(result.ErrorCodes, ", "))
		}
		return ErrVerificationFailed
	}
	return nil
}

// VerifierFunc adapts a function to the Verifier interface.
type VerifierFunc func(ctx context.Context, token, remoteIP string) error

// Verify calls f.
func (f VerifierFunc) Verify(ctx context.Context, token, remoteIP string) error {
	return f(ctx, token, remoteIP)
}

// NoopVerifier accepts every token. Intended for development environments
// where no reCAPTCHA keys are configured.
func NoopVerifier() Verifier {
	return VerifierFunc(func(context.Context, string, string) error { return nil })
}

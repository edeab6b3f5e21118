package auth

import (
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/totp"
)

// SecondFactorVerifier abstracts the one-time-code scheme so enrollment and
// verification do not depend on TOTP directly.
type SecondFactorVerifier interface {
	GenerateSecret() (string, error)
	ProvisioningURI(secret, accountName string) (string, error)
	Validate(secret, code string) (bool, error)
}

type totpVerifier struct {
	issuer string
}

// NewTOTPVerifier returns a SecondFactorVerifier backed by RFC 6238 TOTP
// codes. issuer is the service name shown in authenticator apps.
func NewTOTPVerifier(issuer string) SecondFactorVerifier {
	return &totpVerifier{issuer: issuer}
}

func (v *totpVerifier) GenerateSecret() (string, error) {
	return totp.GenerateSecret()
}

func (v *totpVerifier) ProvisioningURI(secret, accountName string) (string, error) {
	return totp.ProvisioningURI(totp.Params{
		Secret:      secret,
		AccountName: accountName,
		Issuer:      v.issuer,
	})
}

func (v *totpVerifier) Validate(secret, code string) (bool, error) {
	return totp.Validate(secret, code)
}

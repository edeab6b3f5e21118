// Package totp implements the time-based one-time password algorithm of
// RFC 6238 on top of the HOTP construction of RFC 4226.
//
// It covers everything the second-factor gate needs: secret generation
// (base32, 160 bits), provisioning URI construction for authenticator apps,
// code validation with a one-step clock-skew window, and AES-256-GCM helpers
// so the credential store can keep secrets encrypted at rest.
package totp

// Package auth implements the account-security core of the storefront:
// credential storage semantics, password policy, single-use reset and
// verification tokens, TOTP second factor, and the login state machine that
// ties them together.
//
// The Service orchestrates every flow against a pluggable Storage backend.
// Login resolves the submitted email against the primary address or any
// verified additional address, rejects blocked accounts and expired
// passwords before touching the second factor, and issues a signed session
// credential on success. When a second factor is enabled and no code was
// submitted, Login returns a non-error LoginResult with TwoFactorRequired
// set so the transport layer can challenge the client.
//
// Password changes go through the policy engine: complexity rules, a
// reuse check against the retained hash history, and an atomic storage
// update that rotates the history and invalidates any outstanding reset
// token.
package auth

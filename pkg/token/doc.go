// Package token issues opaque, single-use tokens for password reset and
// email verification links.
//
// A token is 32 bytes of cryptographic randomness, hex-encoded. The raw
// value goes to the user inside a link; only its SHA-256 digest is ever
// persisted, so a database read alone cannot forge a usable token. Expiry
// and the single-slot invariant are enforced by the credential store, not
// here.
package token

// Package captcha verifies human-verification tokens issued by Google
// reCAPTCHA.
//
// Callers depend on the Verifier interface; the concrete client posts the
// client-supplied token to the siteverify endpoint with a bounded timeout.
// A verification failure is terminal for the surrounding operation; the
// package never retries.
package captcha

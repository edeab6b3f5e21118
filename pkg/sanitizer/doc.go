// Package sanitizer normalizes untrusted input before it reaches validation.
//
// The helpers are pure string transformations with no I/O. They deliberately
// preserve the original value when the input is too malformed to normalize,
// leaving rejection to the validator package.
package sanitizer

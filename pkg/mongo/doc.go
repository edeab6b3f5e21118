// Package mongo connects to the MongoDB deployment that stores customer
// accounts.
//
// Connect retries with a linear backoff so a service starting alongside the
// database does not crash-loop on the first refused connection. Healthcheck
// returns a probe function for readiness endpoints, and IsDuplicateKeyError
// recognizes unique-index violations for email uniqueness handling.
package mongo

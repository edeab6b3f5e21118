// Package httpserver wraps net/http with graceful shutdown for the
// storefront API.
//
// Run blocks until the context is cancelled, an interrupt or TERM signal
// arrives, or the listener fails, then drains in-flight requests within the
// configured shutdown timeout. Construction is done through New with Option
// helpers, or NewFromConfig when settings come from the environment.
// HealthCheckHandler serves liveness and readiness probes backed by the
// MongoDB and Redis healthcheck closures.
package httpserver

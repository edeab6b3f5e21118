// Package redis connects to the Redis server backing the login rate
// limiter.
//
// Connect retries with the configured interval so the service survives a
// Redis that comes up slightly later than the application. Healthcheck
// returns a probe function for readiness endpoints.
package redis

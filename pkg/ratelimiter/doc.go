// Package ratelimiter throttles authentication endpoints.
//
// The Limiter front-end consumes tokens from a pluggable Store. Two stores
// are provided: an in-memory token bucket for single-instance deployments
// and a Redis fixed-window counter that shares limits across replicas.
// Middleware adapts a Limiter to net/http with the conventional
// X-RateLimit-* response headers.
package ratelimiter

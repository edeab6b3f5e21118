package mongo

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

var (
	ErrFailedToConnect      = errors.New("failed to connect to mongodb")
	ErrFailedToParseConnURL = errors.New("failed to parse mongodb connection url")
	ErrHealthcheckFailed    = errors.New("mongodb healthcheck failed")
	ErrEmptyConnectionURL   = errors.New("empty mongodb connection url")
)

// IsNotFoundError detects the driver's "no documents" result for consistent
// not-found handling across queries.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, mongo.ErrNoDocuments)
}

// IsDuplicateKeyError detects unique-index violations. Used to map account
// email collisions onto domain errors.
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	return mongo.IsDuplicateKeyError(err)
}

package mongo_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	driver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/mongo"
)

func TestConnect_EmptyURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.Connect(context.Background(), mongo.Config{
		ConnectionURL:  "   ",
		ConnectTimeout: time.Second,
		RetryAttempts:  1,
		RetryInterval:  time.Millisecond,
	})
	assert.ErrorIs(t, err, mongo.ErrEmptyConnectionURL)
}

func TestConnect_InvalidURL(t *testing.T) {
	t.Parallel()

	_, err := mongo.Connect(context.Background(), mongo.Config{
		ConnectionURL:  "http://not-mongo",
		ConnectTimeout: time.Second,
		RetryAttempts:  1,
		RetryInterval:  time.Millisecond,
	})
	assert.ErrorIs(t, err, mongo.ErrFailedToParseConnURL)
}

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.False(t, mongo.IsNotFoundError(nil))
	assert.False(t, mongo.IsNotFoundError(errors.New("boom")))
	assert.True(t, mongo.IsNotFoundError(driver.ErrNoDocuments))
	assert.True(t, mongo.IsNotFoundError(errors.Join(errors.New("query"), driver.ErrNoDocuments)))
}

func TestIsDuplicateKeyError(t *testing.T) {
	t.Parallel()

	assert.False(t, mongo.IsDuplicateKeyError(nil))
	assert.False(t, mongo.IsDuplicateKeyError(errors.New("boom")))

	dup := driver.WriteException{WriteErrors: []driver.WriteError{{Code: 11000}}}
	assert.True(t, mongo.IsDuplicateKeyError(dup))
}

package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// Connect establishes a MongoDB client with linear backoff: attempt 1 waits
// RetryInterval, attempt 2 waits 2x, and so on. Each attempt is verified
// with a ping before the client is returned.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if strings.TrimSpace(cfg.ConnectionURL) == "" {
		return nil, ErrEmptyConnectionURL
	}

	opts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize)
	if err := opts.Validate(); err != nil {
		return nil, errors.Join(ErrFailedToParseConnURL, err)
	}

	var lastErr error
	for i := 0; i < cfg.RetryAttempts; i++ {
		client, err := mongo.Connect(opts)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		err = client.Ping(pingCtx, readpref.Primary())
		cancel()
		if err != nil {
			lastErr = err
			_ = client.Disconnect(ctx)
			time.Sleep(time.Duration(i+1) * cfg.RetryInterval)
			continue
		}

		return client, nil
	}

	return nil, errors.Join(ErrFailedToConnect, lastErr)
}

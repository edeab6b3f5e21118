package mongo

import "time"

type Config struct {
	ConnectionURL  string        `env:"MONGO_URL,required"`                     // ConnectionURL is the deployment URI, e.g. "mongodb://localhost:27017".
	Database       string        `env:"MONGO_DATABASE" envDefault:"dryvana"`    // Database is the application database name.
	ConnectTimeout time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"` // ConnectTimeout bounds each connection attempt.
	MaxPoolSize    uint64        `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`   // MaxPoolSize caps the driver connection pool.

	RetryAttempts int           `env:"MONGO_RETRY_ATTEMPTS" envDefault:"3"`  // RetryAttempts is the number of connection attempts before giving up.
	RetryInterval time.Duration `env:"MONGO_RETRY_INTERVAL" envDefault:"5s"` // RetryInterval is the base pause between attempts.
}

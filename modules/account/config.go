package account

import "time"

// Config carries the module settings. TOTPEncryptionKey is the base64
// AES-256 key protecting second-factor secrets at rest; JWTSecret signs
// session credentials.
type Config struct {
	AppName           string        `env:"APP_NAME" envDefault:"Dryvana"`
	FrontendBaseURL   string        `env:"FRONTEND_BASE_URL" envDefault:"http://localhost:3000"`
	JWTSecret         string        `env:"JWT_SECRET,required"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"168h"`
	BcryptCost        int           `env:"BCRYPT_COST" envDefault:"10"`
	TOTPEncryptionKey string        `env:"TOTP_ENCRYPTION_KEY,required"`
	ResetTokenTTL     time.Duration `env:"RESET_TOKEN_TTL" envDefault:"1h"`
	VerifyTokenTTL    time.Duration `env:"VERIFY_TOKEN_TTL" envDefault:"24h"`
}

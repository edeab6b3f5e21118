package captcha

import "time"

// Config holds reCAPTCHA verification settings. Timeout bounds the
// siteverify call; on expiry the surrounding operation fails rather than
// waiting on the provider.
type Config struct {
	SecretKey string        `env:"RECAPTCHA_SECRET_KEY,required"`
	Endpoint  string        `env:"RECAPTCHA_ENDPOINT" envDefault:"https://www.google.com/recaptcha/api/siteverify"`
	Timeout   time.Duration `env:"RECAPTCHA_TIMEOUT" envDefault:"5s"`
}

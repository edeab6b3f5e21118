package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/joho/godotenv/autoload"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/modules/account"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/auth"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/captcha"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/email"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/httpserver"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/logger"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/mongo"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/ratelimiter"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/redis"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/totp"
)

type appConfig struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"json"`

	Account account.Config
	Mongo   mongo.Config
	Redis   redis.Config
	Email   email.Config
	HTTP    httpserver.Config

	RecaptchaSecretKey string `env:"RECAPTCHA_SECRET_KEY"`

	LoginRateLimit  int           `env:"LOGIN_RATE_LIMIT" envDefault:"10"`
	LoginRateWindow time.Duration `env:"LOGIN_RATE_WINDOW" envDefault:"1m"`
}

func main() {
	var cfg appConfig
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse configuration", logger.Error(err))
		os.Exit(1)
	}

	format := logger.FormatJSON
	if cfg.LogFormat == "text" {
		format = logger.FormatText
	}
	log := logger.New(
		logger.WithFormat(format),
		logger.WithOutput(os.Stdout),
	)

	if err := run(context.Background(), cfg, log); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, log *slog.Logger) error {
	mongoClient, err := mongo.Connect(ctx, cfg.Mongo)
	if err != nil {
		return err
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer func() { _ = redisClient.Close() }()

	encryptionKey, err := totp.DecodeEncryptionKey(cfg.Account.TOTPEncryptionKey)
	if err != nil {
		return err
	}

	storage, err := account.NewMongoStorage(mongoClient.Database(cfg.Mongo.Database), encryptionKey)
	if err != nil {
		return err
	}
	if err := storage.EnsureIndexes(ctx); err != nil {
		return err
	}

	sessions, err := auth.NewSessions(
		[]byte(cfg.Account.JWTSecret),
		auth.WithSessionTTL(cfg.Account.SessionTTL),
		auth.WithSessionIssuer(cfg.Account.AppName),
	)
	if err != nil {
		return err
	}

	// Postmark delivers in production; without tokens mail lands on disk.
	var sender email.EmailSender
	if cfg.Email.PostmarkServerToken != "" {
		sender, err = email.NewPostmarkClient(cfg.Email)
		if err != nil {
			return err
		}
	} else {
		log.Warn("postmark is not configured, writing emails to disk",
			logger.Component("email"))
		sender = email.NewDevSender(cfg.Email.DevOutputDir)
	}
	notifier := account.NewNotifier(sender, cfg.Account.AppName, cfg.Account.FrontendBaseURL)

	var captchaVerifier captcha.Verifier
	if cfg.RecaptchaSecretKey != "" {
		captchaVerifier, err = captcha.NewGoogleVerifier(captcha.Config{SecretKey: cfg.RecaptchaSecretKey})
		if err != nil {
			return err
		}
	} else {
		log.Warn("recaptcha is not configured, accepting all registrations",
			logger.Component("captcha"))
		captchaVerifier = captcha.NoopVerifier()
	}

	svc, err := auth.NewService(storage, sessions,
		auth.WithLogger(log.With(logger.Component("auth"))),
		auth.WithNotifier(notifier),
		auth.WithCaptcha(captchaVerifier),
		auth.WithSecondFactor(auth.NewTOTPVerifier(cfg.Account.AppName)),
		auth.WithBcryptCost(cfg.Account.BcryptCost),
		auth.WithResetTokenTTL(cfg.Account.ResetTokenTTL),
		auth.WithVerificationTokenTTL(cfg.Account.VerifyTokenTTL),
	)
	if err != nil {
		return err
	}

	loginLimiter, err := ratelimiter.NewLimiter(
		ratelimiter.NewRedisStore(redisClient, ratelimiter.WithKeyPrefix("login:")),
		ratelimiter.Config{
			Capacity:       cfg.LoginRateLimit,
			RefillRate:     cfg.LoginRateLimit,
			RefillInterval: cfg.LoginRateWindow,
		},
	)
	if err != nil {
		return err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Get("/healthz", httpserver.HealthCheckHandler(ctx, log))
	r.Get("/readyz", httpserver.HealthCheckHandler(ctx, log,
		mongo.Healthcheck(mongoClient),
		redis.Healthcheck(redisClient),
	))
	r.Mount("/", account.Router(
		account.NewHandlers(svc),
		sessions,
		account.RouterOptions{LoginLimiter: loginLimiter},
	))

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("server listening", "addr", cfg.HTTP.Addr, "env", cfg.Environment)
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.Info("server stopped")
		}),
	)

	return srv.Run(ctx, r)
}

package account

import (
	"github.com/go-chi/chi/v5"

	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/auth"
	"github.com/SambridhiGhimire/Dryvana-Ecom-Store/pkg/ratelimiter"
)

// RouterOptions configures the account API router.
type RouterOptions struct {
	// LoginLimiter throttles credential-guessing endpoints by client IP.
	// Optional; nil disables throttling.
	LoginLimiter *ratelimiter.Limiter
}

// Router mounts the account API. Public authentication endpoints live under
// /auth, the authenticated self-service surface under /account, and the
// admin surface under /admin.
func Router(h *Handlers, sessions *auth.Sessions, opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Route("/auth", func(pub chi.Router) {
		if opts.LoginLimiter != nil {
			limited := pub.With(ratelimiter.Middleware(opts.LoginLimiter, ratelimiter.ByClientIP))
			limited.Post("/register", h.register)
			limited.Post("/login", h.login)
			limited.Post("/2fa/verify", h.verifySecondFactor)
			limited.Post("/forgot-password", h.forgotPassword)
		} else {
			pub.Post("/register", h.register)
			pub.Post("/login", h.login)
			pub.Post("/2fa/verify", h.verifySecondFactor)
			pub.Post("/forgot-password", h.forgotPassword)
		}

		pub.Post("/reset-password/{token}", h.resetPassword)
		pub.Get("/verify-email/{token}", h.verifyEmail)
	})

	r.Route("/account", func(priv chi.Router) {
		priv.Use(RequireAuth(sessions))

		priv.Get("/me", h.me)
		priv.Patch("/me", h.updateName)
		priv.Post("/password", h.changePassword)

		priv.Post("/2fa/enroll", h.enrollSecondFactor)
		priv.Post("/2fa/confirm", h.confirmSecondFactor)
		priv.Delete("/2fa", h.disableSecondFactor)

		priv.Post("/emails", h.addEmail)
		priv.Delete("/emails", h.removeEmail)
	})

	r.Route("/admin", func(adm chi.Router) {
		adm.Use(RequireAuth(sessions), RequireAdmin)

		adm.Get("/accounts", h.listAccounts)
		adm.Post("/accounts/{id}/block", h.setBlocked(true))
		adm.Post("/accounts/{id}/unblock", h.setBlocked(false))
	})

	return r
}

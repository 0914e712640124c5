// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"walletgate/internal/api/handler"
	"walletgate/internal/service"
)

// Handlers groups the HTTP handlers mounted by the router.
type Handlers struct {
	Auth     *handler.AuthHandler
	Project  *handler.ProjectHandler
	Account  *handler.AccountHandler
	APIKey   *handler.APIKeyHandler
	Provider *handler.ProviderHandler
	Wallet   *handler.WalletHandler
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(h Handlers, authService service.AuthService, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Operator session endpoints
	r.Post("/auth/register", h.Auth.Register)
	r.Post("/auth/login", h.Auth.Login)

	// Operator console routes, guarded by a session token
	r.Group(func(r chi.Router) {
		r.Use(handler.SessionMiddleware(authService, logger))

		r.Route("/users/keys", func(r chi.Router) {
			r.Post("/", h.APIKey.IssueUserKey)
			r.Get("/", h.APIKey.ListUserKeys)
			r.Delete("/{keyID}", h.APIKey.RevokeUserKey)
		})

		r.Route("/projects", func(r chi.Router) {
			r.Post("/", h.Project.Create)
			r.Get("/", h.Project.List)

			r.Route("/{projectID}", func(r chi.Router) {
				r.Get("/", h.Project.Get)

				r.Post("/accounts", h.Account.Create)
				r.Get("/accounts", h.Account.List)

				r.Post("/keys", h.APIKey.IssueProjectKey)
				r.Get("/keys", h.APIKey.ListProjectKeys)
				r.Delete("/keys/{keyID}", h.APIKey.RevokeProjectKey)

				r.Post("/providers", h.Provider.Configure)
				r.Get("/providers", h.Provider.List)
			})
		})

		// Provider directory administration
		r.Route("/providers", func(r chi.Router) {
			r.Get("/", h.Provider.Directory)
			r.Post("/", h.Provider.AddProvider)
			r.Delete("/{type}", h.Provider.RemoveProvider)
		})
	})

	// Wallet API routes, authenticated per request by a project API key
	r.Route("/wallets", func(r chi.Router) {
		r.Post("/", h.Wallet.CreateWallet)
		r.Get("/", h.Wallet.ListWallets)
		r.Post("/transfer", h.Wallet.Transfer)
		r.Post("/credit", h.Wallet.Credit)
		r.Post("/debit", h.Wallet.Debit)
		r.Get("/{walletID}", h.Wallet.GetWallet)
	})

	return r
}

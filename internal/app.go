// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "walletgate/internal/api"
	"walletgate/internal/api/handler"
	"walletgate/internal/config"
	"walletgate/internal/domain"
	"walletgate/internal/ledger"
	"walletgate/internal/provider"
	"walletgate/internal/repository"
	"walletgate/internal/repository/postgres"
	"walletgate/internal/service"
	"walletgate/internal/util"
	"walletgate/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	OperatorRepository       repository.OperatorRepository
	ProjectRepository        repository.ProjectRepository
	APIKeyRepository         repository.APIKeyRepository
	ProviderConfigRepository repository.ProviderConfigRepository
	WalletRepository         repository.WalletRepository
	AccountRepository        repository.AccountRepository

	// Provider dispatch
	Registry *provider.Registry

	// Services
	AuthService           service.AuthService
	ProjectService        service.ProjectService
	AccountService        service.AccountService
	APIKeyService         service.APIKeyService
	ProviderConfigService service.ProviderConfigService
	WalletService         service.WalletService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	// 2. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	// 4. Initialize Repositories
	app.OperatorRepository = postgres.NewOperatorRepository(app.DB)
	app.ProjectRepository = postgres.NewProjectRepository(app.DB)
	app.APIKeyRepository = postgres.NewAPIKeyRepository(app.DB)
	app.ProviderConfigRepository = postgres.NewProviderConfigRepository(app.DB)
	app.WalletRepository = postgres.NewWalletRepository(app.DB)
	app.AccountRepository = postgres.NewAccountRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize the provider registry with the built-in adapters
	app.Registry = provider.NewRegistry()
	app.Registry.Register(domain.ProviderPaystack, provider.NewPaystack(app.Config.PaystackBaseURL, app.Config.ProviderTimeout))
	app.Registry.Register(domain.ProviderFlutterwave, provider.NewFlutterwave(app.Config.FlutterwaveBaseURL, app.Config.ProviderTimeout))
	app.Registry.Register(domain.ProviderPaga, provider.NewPaga(app.Config.PagaBaseURL, app.Config.ProviderTimeout))
	app.Registry.Register(domain.ProviderFingra, provider.NewFingra(app.Config.FingraBaseURL, app.Config.ProviderTimeout))
	app.Logger.Info("Provider registry initialized.")

	// 6. Initialize the ledger client
	ledgerClient := ledger.NewHTTPClient(app.Config.LedgerBaseURL, ledger.DefaultTimeout)

	// 7. Initialize Services
	// Pass the concrete db.BeginTx, db.CommitTx, db.RollbackTx functions from pkg/db
	app.AuthService = service.NewAuthService(
		app.DB, // This is the DBTxBeginner
		app.DB, // This is the DBExecutor
		app.OperatorRepository,
		app.ProjectRepository,
		[]byte(app.Config.JWTSecret),
		db.BeginTx,
		db.CommitTx,
		db.RollbackTx,
	)
	app.ProjectService = service.NewProjectService(app.DB, app.ProjectRepository)
	app.AccountService = service.NewAccountService(app.DB, app.AccountRepository)
	app.APIKeyService = service.NewAPIKeyService(app.DB, app.APIKeyRepository)
	app.ProviderConfigService = service.NewProviderConfigService(app.DB, app.ProviderConfigRepository)
	app.WalletService = service.NewWalletService(
		app.DB,
		app.APIKeyService,
		app.ProviderConfigService,
		app.Registry,
		ledgerClient,
		app.WalletRepository,
		app.AccountRepository,
	)
	app.Logger.Info("Services initialized.")

	// 8. Initialize HTTP Handlers and Router
	handlers := router.Handlers{
		Auth:     handler.NewAuthHandler(app.AuthService, app.Logger),
		Project:  handler.NewProjectHandler(app.ProjectService, app.Logger),
		Account:  handler.NewAccountHandler(app.AccountService, app.ProjectService, app.Logger),
		APIKey:   handler.NewAPIKeyHandler(app.APIKeyService, app.ProjectService, app.Logger),
		Provider: handler.NewProviderHandler(app.ProviderConfigService, app.ProjectService, app.Registry, app.Logger),
		Wallet:   handler.NewWalletHandler(app.WalletService, app.Logger),
	}
	app.HTTPHandler = router.NewRouter(handlers, app.AuthService, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}

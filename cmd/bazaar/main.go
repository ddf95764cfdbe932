package main

import (
	"context"
	"log/slog"
	"os"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/delivery/http"
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/auth"
	"bazaar/internal/infra/catalog"
	"bazaar/internal/infra/kv"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence/kvstore"
	"bazaar/internal/infra/qrcode"
	"bazaar/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		newStore,
		newKeys,
	)
}

// newStore picks the key-value backend from configuration.
func newStore(cfg *config.Config) (kv.Store, error) {
	switch cfg.Store.Backend {
	case kv.BackendMemory:
		return kv.NewMemoryStore(), nil
	case kv.BackendFile:
		return kv.NewFileStore(cfg.Store.Path)
	case kv.BackendSQLite:
		return kv.NewSQLiteStore(cfg.Store.Path)
	default:
		return nil, errors.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

func newKeys(cfg *config.Config) kvstore.Keys {
	return kvstore.NewKeys(cfg.Store.Namespace)
}

// newBaseCatalog generates the immutable base product set once at startup.
func newBaseCatalog(cfg *config.Config) []entity.Product {
	return catalog.Generate(cfg.Catalog.Seed)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			newBaseCatalog,
			kvstore.NewUserRepository,
			kvstore.NewSessionRepository,
			kvstore.NewCatalogRepository,
			kvstore.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newPasswordHasher,
			auth.NewFingerprintService,
			newQRCodeService,
		),
	)
}

// newPasswordHasher picks the hashing scheme from configuration. The demo
// checksum hasher is the default; bcrypt is the opt-in hardened variant.
func newPasswordHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth.Hasher == "bcrypt" {
		return auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	}

	return auth.NewDemoHasher()
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAccountService,
			impl.NewSessionService,
			impl.NewCatalogService,
			impl.NewCartService,
			impl.NewOrderService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAccountHandler,
			handler.NewCatalogHandler,
			handler.NewCartHandler,
			handler.NewOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

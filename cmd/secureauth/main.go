package main

import (
	"context"
	"log/slog"
	"os"

	"secureauth/config"
	"secureauth/internal/delivery"
	"secureauth/internal/delivery/http"
	httpmw "secureauth/internal/delivery/http/middleware"
	"secureauth/internal/delivery/http/router/handler"
	deliverymw "secureauth/internal/delivery/middleware"
	"secureauth/internal/domain/service"
	"secureauth/internal/infra/auth"
	logs "secureauth/internal/infra/log"
	"secureauth/internal/infra/persistence/postgres"
	"secureauth/internal/infra/session"
	"secureauth/internal/usecase/impl"

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
			postgres.Migrate,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewCredentialRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newCredentialHasher,
			newSessionStore,
		),
	)
}

// newCredentialHasher builds the bcrypt hasher with the configured cost.
func newCredentialHasher(cfg *config.Config) service.CredentialHasher {
	if cfg.Auth == nil || cfg.Auth.BcryptCost == 0 {
		return auth.NewBcryptHasher()
	}

	return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
}

type sessionStoreParams struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// newSessionStore builds the in-memory session store and runs its expiry
// janitor for the lifetime of the application.
func newSessionStore(params sessionStoreParams) service.SessionStore {
	store := session.NewMemoryStore()

	tick := config.DefaultJanitorTick
	if params.Config.Session != nil && params.Config.Session.JanitorTick > 0 {
		tick = params.Config.Session.JanitorTick
	}

	janitorCtx, cancel := context.WithCancel(params.Ctx)
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go store.Janitor(janitorCtx, tick)

			return nil
		},
		OnStop: func(context.Context) error {
			cancel()

			return nil
		},
	})

	return store
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewSessionService,
			impl.NewProfileService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			deliverymw.NewRequestIDMiddleware,
			deliverymw.NewLoggerMiddleware,
			httpmw.NewSessionMiddleware,
			httpmw.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewProfileHandler,
			handler.NewAdminHandler,
			handler.NewDemoHandler,
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

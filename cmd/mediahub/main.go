package main

import (
	"context"
	"log/slog"
	"os"

	"mediahub/config"
	"mediahub/internal/delivery"
	"mediahub/internal/delivery/http"
	"mediahub/internal/delivery/http/middleware"
	"mediahub/internal/delivery/http/router/handler"
	"mediahub/internal/domain/service"
	"mediahub/internal/infra/auth"
	logs "mediahub/internal/infra/log"
	"mediahub/internal/infra/metrics"
	"mediahub/internal/infra/persistence/postgres"
	"mediahub/internal/infra/pubsub"
	"mediahub/internal/infra/qrcode"
	"mediahub/internal/infra/ratelimit"
	"mediahub/internal/infra/storage"
	"mediahub/internal/usecase/impl"

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
		postgres.New,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewIdentityRepository,
			postgres.NewVideoRepository,
			postgres.NewCommentRepository,
			postgres.NewPlaylistRepository,
			postgres.NewRelationRepository,
			postgres.NewTransactionManager,
			postgres.NewHealthChecker,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			auth.NewBcryptHasherFromConfig,
			auth.NewJWTService,
			storage.New,
			ratelimit.New,
			qrcode.NewFromConfig,
			newMetricsRecorder,
		),
	)
}

// newMetricsRecorder hands the use cases the Prometheus recorder unless metrics are disabled.
func newMetricsRecorder(cfg *config.Config, m *metrics.Metrics) service.MetricsRecorder {
	if cfg.Metrics.Disabled {
		return nil
	}

	return m
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewSessionService,
			impl.NewVideoService,
			impl.NewCommentService,
			impl.NewPlaylistService,
			impl.NewRelationService,
			impl.NewChannelService,
			impl.NewHealthService,
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
			handler.NewUserHandler,
			handler.NewVideoHandler,
			handler.NewCommentHandler,
			handler.NewPlaylistHandler,
			handler.NewSubscriptionHandler,
			handler.NewLikeHandler,
			handler.NewDashboardHandler,
			handler.NewHealthHandler,
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

package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/AjaXium2/greenolivechain/config"
	"github.com/AjaXium2/greenolivechain/internal/delivery"
	"github.com/AjaXium2/greenolivechain/internal/delivery/http"
	httpmiddleware "github.com/AjaXium2/greenolivechain/internal/delivery/http/middleware"
	"github.com/AjaXium2/greenolivechain/internal/delivery/http/router/handler"
	"github.com/AjaXium2/greenolivechain/internal/delivery/middleware"
	"github.com/AjaXium2/greenolivechain/internal/delivery/worker"
	"github.com/AjaXium2/greenolivechain/internal/domain/service"
	"github.com/AjaXium2/greenolivechain/internal/infra/ledger"
	logs "github.com/AjaXium2/greenolivechain/internal/infra/log"
	"github.com/AjaXium2/greenolivechain/internal/infra/persistence/postgres"
	"github.com/AjaXium2/greenolivechain/internal/usecase/impl"

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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewFarmWasteRepository,
			postgres.NewExtractionWasteRepository,
			postgres.NewExtractionRecordRepository,
			postgres.NewWasteRecordRepository,
			postgres.NewRecyclingProcessRepository,
			postgres.NewRecyclingRecordRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newLedgerGateway,
		),
	)
}

// newLedgerGateway creates the blockchain gateway client from configuration
func newLedgerGateway(cfg *config.Config, logger *slog.Logger) service.LedgerGateway {
	return ledger.NewGatewayClient(cfg.Ledger, logger)
}

// newDashboardConfig extracts the dashboard limits for the traceability service
func newDashboardConfig(cfg *config.Config) *config.DashboardConfig {
	return cfg.Dashboard
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			newDashboardConfig,
			impl.NewWasteService,
			impl.NewExtractionService,
			impl.NewRecyclingService,
			impl.NewTraceabilityService,
			impl.NewLedgerService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			httpmiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewWasteHandler,
			handler.NewExtractionHandler,
			handler.NewRecyclingHandler,
			handler.NewTraceabilityHandler,
			handler.NewLedgerHandler,
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
			fx.Annotate(
				worker.NewServer,
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

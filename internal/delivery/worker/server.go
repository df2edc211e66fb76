// Package worker provides the background delivery that keeps the cached
// ledger status fresh by polling the gateway bridge on a fixed interval.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/AjaXium2/greenolivechain/config"
	"github.com/AjaXium2/greenolivechain/internal/delivery"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"go.uber.org/fx"
)

type syncWorker struct {
	cfg    *config.Config
	logger *slog.Logger
	ledger usecase.LedgerUsecase
	done   chan struct{}
}

// ServerParams holds dependencies for the ledger sync worker
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Ledger usecase.LedgerUsecase
}

// NewServer creates the periodic ledger status poller
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &syncWorker{
		cfg:    params.Cfg,
		logger: params.Logger,
		ledger: params.Ledger,
		done:   make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve runs the poll loop until the context is cancelled or the
// worker is stopped. A disabled sync config turns the worker into a no-op.
func (s *syncWorker) Serve(ctx context.Context) error {
	if s.cfg.Sync == nil || !s.cfg.Sync.Enabled {
		s.logger.Info("Ledger sync disabled, worker idle")
		<-s.done

		return nil
	}

	interval := s.cfg.Sync.Interval
	s.logger.Info("Starting ledger sync worker", slog.Duration("interval", interval))

	// Prime the cache before the first tick so the status endpoint
	// has an observation as soon as the service is up.
	s.poll(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.done:
			return nil
		case <-ticker.C:
			s.poll(ctx)
		}
	}
}

func (s *syncWorker) poll(ctx context.Context) {
	if err := s.ledger.Refresh(ctx); err != nil {
		s.logger.Warn("Ledger status poll failed", slog.Any("error", err))
	}
}

func (s *syncWorker) stop(ctx context.Context) error {
	s.logger.Info("Shutting down ledger sync worker")
	close(s.done)

	return nil
}

package usecase

import (
	"context"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"

	"github.com/google/uuid"
)

// DashboardStats summarizes the tracked collections for the dashboard.
type DashboardStats struct {
	TotalWastes            int   `json:"totalWastes"`
	TotalExtractions       int   `json:"totalExtractions"`
	TotalRecyclings        int   `json:"totalRecyclings"`
	BlockchainTransactions int64 `json:"blockchainTransactions"`
}

// TraceabilityUsecase defines the read-side aggregation use cases.
type TraceabilityUsecase interface {
	// GetTraceability assembles the full lineage of a waste batch.
	// Assembly is all-or-nothing: if the batch is unknown or any lookup
	// fails, an error is returned and never a partial chain.
	GetTraceability(ctx context.Context, wasteID uuid.UUID) (*entity.TraceabilityChain, error)

	// RecentActivity merges the newest waste, extraction and recycling
	// summaries into a single feed, newest first.
	RecentActivity(ctx context.Context) ([]entity.ActivityEvent, error)

	// Stats computes the dashboard totals.
	Stats(ctx context.Context) (*DashboardStats, error)
}

// LedgerUsecase exposes the blockchain gateway's status to the delivery layer.
type LedgerUsecase interface {
	// Status reports the last known ledger connection state, serving the
	// cached observation when one exists.
	Status(ctx context.Context) (*entity.BlockchainStatus, error)

	// Refresh polls the gateway and updates the cached observation.
	// Responses that lose the race against a later poll are discarded, so
	// the cache converges on the last-issued observation rather than the
	// last-arrived one.
	Refresh(ctx context.Context) error
}

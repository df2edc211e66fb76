// Package service declares interfaces for external collaborators of the domain.
package service

import (
	"context"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"

	"github.com/google/uuid"
)

// LedgerGateway is the narrow contract to the blockchain gateway bridge.
// The ledger itself is an external service of record; the core only reads
// its status and per-batch history through this interface.
type LedgerGateway interface {
	// Status reports the gateway's current view of the ledger connection.
	Status(ctx context.Context) (*entity.BlockchainStatus, error)

	// WasteHistory returns the on-chain history of a waste batch,
	// oldest event first.
	WasteHistory(ctx context.Context, wasteID uuid.UUID) ([]entity.LedgerEvent, error)
}

package impl

import (
	"context"
	"sync"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	domainerrors "github.com/AjaXium2/greenolivechain/internal/domain/errors"
	"github.com/AjaXium2/greenolivechain/internal/domain/service"
	"github.com/AjaXium2/greenolivechain/internal/usecase"

	"github.com/pkg/errors"
)

type ledgerService struct {
	gateway service.LedgerGateway

	mu      sync.Mutex
	issued  uint64
	applied uint64
	cached  *entity.BlockchainStatus
}

// NewLedgerService creates the ledger status service.
func NewLedgerService(gateway service.LedgerGateway) usecase.LedgerUsecase {
	return &ledgerService{gateway: gateway}
}

// Status serves the cached observation when one exists; the first call before
// any successful refresh polls the gateway directly.
func (s *ledgerService) Status(ctx context.Context) (*entity.BlockchainStatus, error) {
	s.mu.Lock()
	cached := s.cached
	s.mu.Unlock()

	if cached != nil {
		return cached, nil
	}

	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cached == nil {
		return nil, domainerrors.ErrLedgerUnavailable
	}

	return s.cached, nil
}

// Refresh polls the gateway and stores the observation. Each poll takes a
// sequence number before the request goes out; a response whose sequence is
// below the last applied one lost the race to a later poll and is dropped.
func (s *ledgerService) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	status, err := s.gateway.Status(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to poll ledger gateway")
	}

	s.store(seq, status)

	return nil
}

func (s *ledgerService) store(seq uint64, status *entity.BlockchainStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.applied {
		return
	}

	s.applied = seq
	s.cached = status
}

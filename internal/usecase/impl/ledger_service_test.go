package impl

import (
	"context"
	"testing"
	"time"

	"github.com/AjaXium2/greenolivechain/internal/domain/entity"
	mockService "github.com/AjaXium2/greenolivechain/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerService_Status_PollsOnEmptyCache(t *testing.T) {
	gateway := mockService.NewMockLedgerGateway(t)
	service := NewLedgerService(gateway)

	ctx := context.Background()
	observed := &entity.BlockchainStatus{
		Initialized: true,
		Connected:   true,
		Timestamp:   time.Now(),
		Network: entity.LedgerNetwork{
			Organization: "recycling",
			Channel:      "olivechannel",
			Chaincode:    "wastetracking",
			Status:       "active",
		},
	}

	gateway.EXPECT().Status(ctx).Return(observed, nil).Once()

	status, err := service.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, observed, status)

	// The second call serves the cache without touching the gateway.
	status, err = service.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, observed, status)
}

func TestLedgerService_Status_GatewayDown(t *testing.T) {
	gateway := mockService.NewMockLedgerGateway(t)
	service := NewLedgerService(gateway)

	ctx := context.Background()

	gateway.EXPECT().
		Status(ctx).
		Return(nil, errors.New("dial tcp: connection refused")).
		Once()

	status, err := service.Status(ctx)
	require.Error(t, err)
	assert.Nil(t, status)
}

func TestLedgerService_Refresh_UpdatesCache(t *testing.T) {
	gateway := mockService.NewMockLedgerGateway(t)
	service := NewLedgerService(gateway)

	ctx := context.Background()
	first := &entity.BlockchainStatus{Initialized: true, Connected: false, Timestamp: time.Now()}
	second := &entity.BlockchainStatus{Initialized: true, Connected: true, Timestamp: time.Now()}

	gateway.EXPECT().Status(ctx).Return(first, nil).Once()
	require.NoError(t, service.Refresh(ctx))

	gateway.EXPECT().Status(ctx).Return(second, nil).Once()
	require.NoError(t, service.Refresh(ctx))

	status, err := service.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, status)
}

func TestLedgerService_Store_DiscardsStaleObservation(t *testing.T) {
	gateway := mockService.NewMockLedgerGateway(t)
	service := NewLedgerService(gateway).(*ledgerService)

	fresh := &entity.BlockchainStatus{Connected: true, Timestamp: time.Now()}
	stale := &entity.BlockchainStatus{Connected: false, Timestamp: time.Now().Add(-time.Minute)}

	// The later poll's response arrives first; the earlier poll's response
	// must not overwrite it.
	service.store(2, fresh)
	service.store(1, stale)

	status, err := service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, status)

	// A newer observation still replaces the cache.
	newest := &entity.BlockchainStatus{Connected: true, Initialized: true, Timestamp: time.Now()}
	service.store(3, newest)

	status, err = service.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, newest, status)
}

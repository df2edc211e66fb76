package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFarmerWaste_Transfer(t *testing.T) {
	now := time.Date(2025, 11, 5, 14, 0, 0, 0, time.UTC)
	waste := &FarmerWaste{Type: WasteTypeBranches, Status: StageStatusReady}

	require.True(t, waste.Transfer(now))
	assert.Equal(t, StageStatusTransferred, waste.Status)
	require.NotNil(t, waste.TransferDate)
	assert.Equal(t, now, *waste.TransferDate)

	// Transferring twice keeps the first transfer date.
	later := now.Add(time.Hour)
	require.False(t, waste.Transfer(later))
	assert.Equal(t, now, *waste.TransferDate)
}

func TestExtractionWaste_Transfer(t *testing.T) {
	now := time.Now()
	waste := &ExtractionWaste{Type: WasteTypeOlivePaste, Status: StageStatusReady}

	require.True(t, waste.Transfer(now))
	assert.Equal(t, StageStatusTransferred, waste.Status)

	require.False(t, waste.Transfer(now.Add(time.Minute)))
}

func TestWasteRecord_Receive(t *testing.T) {
	record := &WasteRecord{Status: RecordStatusPending}

	require.True(t, record.Receive())
	assert.Equal(t, RecordStatusTransferred, record.Status)

	require.False(t, record.Receive())

	record.Status = RecordStatusProcessed
	require.False(t, record.Receive())
	assert.Equal(t, RecordStatusProcessed, record.Status)
}

func TestWasteRecord_MarkProcessed(t *testing.T) {
	record := &WasteRecord{Status: RecordStatusTransferred}

	require.True(t, record.MarkProcessed())
	assert.Equal(t, RecordStatusProcessed, record.Status)

	require.False(t, record.MarkProcessed())
}

func TestRecyclingProcess_Complete(t *testing.T) {
	now := time.Now()
	process := &RecyclingProcess{Status: ProcessStatusInProgress}

	require.True(t, process.Complete(now))
	assert.Equal(t, ProcessStatusCompleted, process.Status)
	require.NotNil(t, process.EndDate)
	assert.Equal(t, now, *process.EndDate)

	require.False(t, process.Complete(now.Add(time.Hour)))
	assert.Equal(t, now, *process.EndDate)
}

func TestWasteType_IsValid(t *testing.T) {
	for _, wt := range []WasteType{
		WasteTypeBranches, WasteTypeLeaves, WasteTypeOlives,
		WasteTypeOlivePaste, WasteTypeResidualWater, WasteTypePits, WasteTypeOther,
	} {
		assert.True(t, wt.IsValid(), wt.String())
	}

	assert.False(t, WasteType("PLASTIC").IsValid())
	assert.False(t, WasteType("").IsValid())
}

func TestStageStatus_IsValid(t *testing.T) {
	assert.True(t, StageStatusReady.IsValid())
	assert.True(t, StageStatusTransferred.IsValid())
	assert.False(t, StageStatus("SHIPPED").IsValid())
}

func TestMergeActivity(t *testing.T) {
	base := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	events := []ActivityEvent{
		{ID: "a", Timestamp: base.Add(10 * time.Minute)},
		{ID: "b", Timestamp: base.Add(30 * time.Minute)},
		{ID: "c", Timestamp: base.Add(20 * time.Minute)},
	}

	merged := MergeActivity(events, 2)
	require.Len(t, merged, 2)
	assert.Equal(t, "b", merged[0].ID)
	assert.Equal(t, "c", merged[1].ID)

	// The input slice keeps its order.
	assert.Equal(t, "a", events[0].ID)
}

func TestMergeActivity_StableForEqualTimestamps(t *testing.T) {
	at := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	events := []ActivityEvent{
		{ID: "first", Timestamp: at},
		{ID: "second", Timestamp: at},
	}

	merged := MergeActivity(events, 10)
	require.Len(t, merged, 2)
	assert.Equal(t, "first", merged[0].ID)
	assert.Equal(t, "second", merged[1].ID)
}

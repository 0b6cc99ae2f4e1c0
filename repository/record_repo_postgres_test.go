package repository_test

import (
	"testing"
	"time"

	"vizagaggregates/models"
	"vizagaggregates/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() *models.Record {
	return &models.Record{
		AccountingDate:    "2025-03-10",
		TransactionDate:   "2025-03-10",
		Shift:             "A",
		WeighmentSlipNo:   strPtr("WS-1001"),
		DeliveryChallanNo: strPtr("DC-2001"),
		RoyaltyPermitNo:   strPtr("RP-3001"),
		PermitQty:         floatPtr(25),
		RoyaltyRate:       floatPtr(60),
		TransportRate:     floatPtr(110),
		GrossWt:           floatPtr(42.5),
		TareWt:            floatPtr(16.5),
		NetWt:             floatPtr(26),
		RatePerTone:       floatPtr(450),
		SaleAmount:        floatPtr(11700),
		CashReceived:      floatPtr(5000),
		AdvanceReceived:   floatPtr(0),
		CustomerBalance:   floatPtr(6700),
		RoyaltyAmount:     floatPtr(1560),
		TransportAmount:   floatPtr(2860),
		TotalAmount:       floatPtr(11700),
		ClientDetails:     "KEC – Rambali",
		PaymentMode:       strPtr("CASH"),
		MaterialType:      "Gravel",
		VehicleNo:         "AP39UJ1166",
		Remarks:           strPtr("first trip of the day"),
	}
}

func TestCreateRecordRoundTrip(t *testing.T) {
	conn := setupTestDB(t)
	repo := repository.NewPostgresRecordRepo(conn)

	rec := sampleRecord()
	require.NoError(t, repo.CreateRecord(rec))
	assert.NotZero(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	list, err := repo.GetAllRecords()
	require.NoError(t, err)
	require.Len(t, list, 1)

	got := list[0]
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "2025-03-10", got.AccountingDate)
	assert.Equal(t, "2025-03-10", got.TransactionDate)
	assert.Equal(t, "A", got.Shift)
	assert.Equal(t, "KEC – Rambali", got.ClientDetails)
	assert.Equal(t, "Gravel", got.MaterialType)
	assert.Equal(t, "AP39UJ1166", got.VehicleNo)
	require.NotNil(t, got.NetWt)
	assert.InDelta(t, 26, *got.NetWt, 0.001)
	require.NotNil(t, got.TransportAmount)
	assert.InDelta(t, 2860, *got.TransportAmount, 0.001)
	require.NotNil(t, got.Remarks)
	assert.Equal(t, "first trip of the day", *got.Remarks)
}

func TestCreateRecordMalformedDate(t *testing.T) {
	conn := setupTestDB(t)
	repo := repository.NewPostgresRecordRepo(conn)

	rec := sampleRecord()
	rec.TransactionDate = "not-a-date"
	assert.Error(t, repo.CreateRecord(rec))
}

func TestGetAllRecordsOrder(t *testing.T) {
	conn := setupTestDB(t)
	repo := repository.NewPostgresRecordRepo(conn)

	first := sampleRecord()
	require.NoError(t, repo.CreateRecord(first))
	time.Sleep(20 * time.Millisecond)
	second := sampleRecord()
	second.VehicleNo = "AP39UJ2399"
	require.NoError(t, repo.CreateRecord(second))

	list, err := repo.GetAllRecords()
	require.NoError(t, err)
	require.Len(t, list, 2)
	// most recent first
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestDeleteRecord(t *testing.T) {
	conn := setupTestDB(t)
	repo := repository.NewPostgresRecordRepo(conn)

	rec := sampleRecord()
	require.NoError(t, repo.CreateRecord(rec))

	require.NoError(t, repo.DeleteRecord(rec.ID))

	list, err := repo.GetAllRecords()
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteRecordMissingID(t *testing.T) {
	conn := setupTestDB(t)
	repo := repository.NewPostgresRecordRepo(conn)

	rec := sampleRecord()
	require.NoError(t, repo.CreateRecord(rec))

	// deleting an id that never existed is not an error
	require.NoError(t, repo.DeleteRecord(99999))

	list, err := repo.GetAllRecords()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/pos/backend/internal/domain/printing"
	"github.com/pos/backend/internal/domain/shared"
)

// newMockDeliveryRecordRepository creates a GormDeliveryRecordRepository with a mocked SQL connection
func newMockDeliveryRecordRepository(t *testing.T) (*GormDeliveryRecordRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormDeliveryRecordRepository(gormDB), mock, mockDB
}

func recordRows(id uuid.UUID) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{
		"id", "created_at", "updated_at", "version",
		"kind", "station", "bill_number", "location_key", "location_text",
		"width", "body", "status", "channel", "attempts", "escalated", "failure_msg", "delivered_at",
	}).AddRow(
		id, now, now, 1,
		"BILL", "", "UDP-20260823-7", "TABLE:5", "Table 5",
		"NARROW", "** Kitchen **", "DELIVERED", "SILENT", 1, false, "", &now,
	)
}

func TestGormDeliveryRecordRepository_FindByID(t *testing.T) {
	t.Run("finds existing record", func(t *testing.T) {
		repo, mock, mockDB := newMockDeliveryRecordRepository(t)
		defer mockDB.Close()

		recordID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "delivery_records" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(recordID, 1).
			WillReturnRows(recordRows(recordID))

		rec, err := repo.FindByID(context.Background(), recordID)

		assert.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, recordID, rec.ID)
		assert.Equal(t, printing.KindBill, rec.Kind)
		assert.Equal(t, printing.StatusDelivered, rec.Status)
		assert.Equal(t, printing.ChannelSilent, rec.Channel)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing record", func(t *testing.T) {
		repo, mock, mockDB := newMockDeliveryRecordRepository(t)
		defer mockDB.Close()

		recordID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "delivery_records" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(recordID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		rec, err := repo.FindByID(context.Background(), recordID)

		assert.Nil(t, rec)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormDeliveryRecordRepository_FindRecent(t *testing.T) {
	t.Run("pages newest first", func(t *testing.T) {
		repo, mock, mockDB := newMockDeliveryRecordRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "delivery_records"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(41))

		mock.ExpectQuery(`SELECT \* FROM "delivery_records" ORDER BY created_at DESC LIMIT .*`).
			WillReturnRows(recordRows(uuid.New()))

		page, err := repo.FindRecent(context.Background(), shared.DefaultFilter())

		require.NoError(t, err)
		assert.Equal(t, int64(41), page.Total)
		assert.Len(t, page.Items, 1)
		assert.Equal(t, 3, page.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects unknown sort fields", func(t *testing.T) {
		repo, mock, mockDB := newMockDeliveryRecordRepository(t)
		defer mockDB.Close()

		mock.ExpectQuery(`SELECT count\(\*\) FROM "delivery_records"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		// injected field falls back to created_at
		mock.ExpectQuery(`SELECT \* FROM "delivery_records" ORDER BY created_at DESC LIMIT .*`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		filter := shared.DefaultFilter()
		filter.OrderBy = "body; DROP TABLE delivery_records"

		_, err := repo.FindRecent(context.Background(), filter)
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormDeliveryRecordRepository_CountBillsOn(t *testing.T) {
	repo, mock, mockDB := newMockDeliveryRecordRepository(t)
	defer mockDB.Close()

	day := time.Date(2026, 8, 23, 14, 30, 0, 0, time.UTC)
	start := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "delivery_records" WHERE kind = \$1 AND created_at >= \$2 AND created_at < \$3`).
		WithArgs("BILL", start, end).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(6))

	count, err := repo.CountBillsOn(context.Background(), day)

	require.NoError(t, err)
	assert.Equal(t, int64(6), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormDeliveryRecordRepository_Save(t *testing.T) {
	repo, mock, mockDB := newMockDeliveryRecordRepository(t)
	defer mockDB.Close()

	doc := renderedTicket(t)
	rec, err := printing.NewDeliveryRecord(doc, "TABLE:5", printing.ProfileNarrow)
	require.NoError(t, err)

	// Save updates first and falls back to an insert for a fresh record
	mock.ExpectExec(`UPDATE "delivery_records" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "delivery_records"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Save(context.Background(), rec)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

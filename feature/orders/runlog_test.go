package orders_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/Ahsana-fragrantsouq/trendyol-airtable-integration/feature/orders"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestRunRecorderDisabled(t *testing.T) {
	recorder := orders.NewRunRecorder(nil, zap.NewNop())

	assert.False(t, recorder.Enabled())
	assert.NoError(t, recorder.Migrate())

	// Record must be a safe no-op without a database.
	recorder.Record(&orders.SyncRun{Status: orders.RunStatusSuccess})

	runs, err := recorder.Recent(10)
	assert.ErrorIs(t, err, orders.ErrRunHistoryDisabled)
	assert.Nil(t, runs)
}

func TestRunRecorderRecord(t *testing.T) {
	db, mock := setupMockDB(t)
	recorder := orders.NewRunRecorder(db, zap.NewNop())

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO `sync_runs`")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	recorder.Record(&orders.SyncRun{
		StartedAt:  time.Now().Add(-time.Second),
		FinishedAt: time.Now(),
		Status:     orders.RunStatusSuccess,
		Processed:  2,
		Created:    2,
		Watermark:  1714557000000,
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunRecorderRecent(t *testing.T) {
	db, mock := setupMockDB(t)
	recorder := orders.NewRunRecorder(db, zap.NewNop())

	rows := sqlmock.NewRows([]string{"id", "status", "processed", "created", "skipped", "failed", "watermark"}).
		AddRow(2, orders.RunStatusFailed, 0, 0, 0, 0, 0).
		AddRow(1, orders.RunStatusSuccess, 5, 5, 0, 0, 1714557000000)

	mock.ExpectQuery("SELECT \\* FROM `sync_runs` ORDER BY id DESC LIMIT").
		WillReturnRows(rows)

	runs, err := recorder.Recent(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, orders.RunStatusFailed, runs[0].Status)
	assert.Equal(t, int64(1714557000000), runs[1].Watermark)
	assert.NoError(t, mock.ExpectationsWereMet())
}

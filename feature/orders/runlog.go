package orders

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SyncRun is one persisted reconciliation pass in the run-history database.
type SyncRun struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	// Status is success or failed.
	Status    string `gorm:"size:16" json:"status"`
	Processed int    `json:"processed"`
	Created   int    `json:"created"`
	Skipped   int    `json:"skipped"`
	Failed    int    `json:"failed"`
	Watermark int64  `json:"watermark_ms"`
	Error     string `gorm:"type:text" json:"error,omitempty"`
}

// TableName sets the table name for GORM.
func (SyncRun) TableName() string {
	return "sync_runs"
}

// Run statuses.
const (
	RunStatusSuccess = "success"
	RunStatusFailed  = "failed"
)

// RunRecorder persists pass outcomes. The database is optional: with a nil
// connection every method is a no-op and Recent reports the history as disabled.
type RunRecorder struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewRunRecorder creates a run recorder over an optional database connection.
func NewRunRecorder(db *gorm.DB, logger *zap.Logger) *RunRecorder {
	return &RunRecorder{db: db, logger: logger}
}

// Enabled reports whether run history is being persisted.
func (r *RunRecorder) Enabled() bool {
	return r.db != nil
}

// Migrate creates the sync_runs table if needed.
func (r *RunRecorder) Migrate() error {
	if r.db == nil {
		return nil
	}
	return r.db.AutoMigrate(&SyncRun{})
}

// Record persists one pass outcome. Failures are logged, never propagated:
// losing a history row must not fail a pass that already synced orders.
func (r *RunRecorder) Record(run *SyncRun) {
	if r.db == nil {
		return
	}
	if err := r.db.Create(run).Error; err != nil {
		r.logger.Error("Failed to record sync run", zap.Error(err))
	}
}

// Recent returns the most recent runs, newest first.
func (r *RunRecorder) Recent(limit int) ([]SyncRun, error) {
	if r.db == nil {
		return nil, ErrRunHistoryDisabled
	}
	if limit <= 0 {
		limit = 20
	}

	var runs []SyncRun
	if err := r.db.Order("id DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

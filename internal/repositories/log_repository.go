package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskboard.com/taskboard/internal/models"
)

// LogRepository only ever inserts and reads; log rows are immutable and are
// not cascade-deleted with their task or list.
type LogRepository struct {
	db *gorm.DB
}

func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

func (r *LogRepository) Create(ctx context.Context, entry *model.Log) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *LogRepository) ListByTask(ctx context.Context, taskID string) ([]model.Log, error) {
	var logs []model.Log
	err := r.db.WithContext(ctx).
		Where("task_id = ?", taskID).
		Order("timestamp desc").
		Find(&logs).Error
	return logs, err
}

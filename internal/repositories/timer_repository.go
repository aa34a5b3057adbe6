package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
)

type TimerRepository struct {
	db *gorm.DB
}

func NewTimerRepository(db *gorm.DB) *TimerRepository {
	return &TimerRepository{db: db}
}

func (r *TimerRepository) Create(ctx context.Context, timer *model.Timer) error {
	if timer.ID == "" {
		timer.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(timer).Error
}

func (r *TimerRepository) FindByID(ctx context.Context, id string) (*model.Timer, error) {
	var timer model.Timer
	err := r.db.WithContext(ctx).First(&timer, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &timer, nil
}

func (r *TimerRepository) Update(ctx context.Context, timer *model.Timer) error {
	res := r.db.WithContext(ctx).Model(&model.Timer{}).
		Where("id = ?", timer.ID).
		Updates(map[string]interface{}{
			"status": timer.Status,
			"time":   timer.Time,
			"start":  timer.Start,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TimerRepository) ListByUser(ctx context.Context, userID string) ([]model.Timer, error) {
	var timers []model.Timer
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&timers).Error
	return timers, err
}

func (r *TimerRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Timer{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

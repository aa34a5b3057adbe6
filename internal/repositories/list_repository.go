package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
)

type ListRepository struct {
	db *gorm.DB
}

func NewListRepository(db *gorm.DB) *ListRepository {
	return &ListRepository{db: db}
}

func (r *ListRepository) Create(ctx context.Context, list *model.List) error {
	if list.ID == "" {
		list.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(list).Error
}

func (r *ListRepository) ListByBoard(ctx context.Context, ref model.BoardRef) ([]model.List, error) {
	var lists []model.List
	err := r.db.WithContext(ctx).
		Where("board = ? AND board_type = ?", ref.ID, ref.Kind).
		Find(&lists).Error
	return lists, err
}

func (r *ListRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.List{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskboard.com/taskboard/internal/models"
)

type MilestoneRepository struct {
	db *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) Create(ctx context.Context, milestone *model.Milestone) error {
	if milestone.ID == "" {
		milestone.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(milestone).Error
}

func (r *MilestoneRepository) ListByBoard(ctx context.Context, ref model.BoardRef) ([]model.Milestone, error) {
	var milestones []model.Milestone
	err := r.db.WithContext(ctx).
		Where("board_id = ? AND board_type = ?", ref.ID, ref.Kind).
		Find(&milestones).Error
	return milestones, err
}

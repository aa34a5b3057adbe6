package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
)

type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

func (r *BoardRepository) CreatePrivate(ctx context.Context, name, owner string) (*model.PrivateBoard, error) {
	board := &model.PrivateBoard{
		ID:    uuid.NewString(),
		Name:  name,
		Owner: owner,
	}
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return nil, err
	}
	return board, nil
}

func (r *BoardRepository) CreateTeam(ctx context.Context, name, owner string) (*model.TeamBoard, error) {
	board := &model.TeamBoard{
		ID:    uuid.NewString(),
		Name:  name,
		Owner: owner,
	}
	if err := r.db.WithContext(ctx).Create(board).Error; err != nil {
		return nil, err
	}
	return board, nil
}

func (r *BoardRepository) ListPrivateByOwner(ctx context.Context, owner string) ([]model.PrivateBoard, error) {
	var boards []model.PrivateBoard
	err := r.db.WithContext(ctx).Where("owner = ?", owner).Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) UpdatePrivate(ctx context.Context, id, name string) error {
	res := r.db.WithContext(ctx).Model(&model.PrivateBoard{}).
		Where("id = ?", id).
		Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BoardRepository) UpdateTeam(ctx context.Context, id, name string) error {
	res := r.db.WithContext(ctx).Model(&model.TeamBoard{}).
		Where("id = ?", id).
		Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeletePrivate removes the board together with its lists and their tasks.
// Audit logs stay behind; the trail outlives the entities it describes.
func (r *BoardRepository) DeletePrivate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.PrivateBoard{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return deleteBoardContents(tx, model.BoardRef{ID: id, Kind: model.BoardPrivate})
	})
}

func (r *BoardRepository) DeleteTeam(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.TeamBoard{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrNotFound
		}
		return deleteBoardContents(tx, model.BoardRef{ID: id, Kind: model.BoardTeam})
	})
}

func deleteBoardContents(tx *gorm.DB, ref model.BoardRef) error {
	var listIDs []string
	err := tx.Model(&model.List{}).
		Where("board = ? AND board_type = ?", ref.ID, ref.Kind).
		Pluck("id", &listIDs).Error
	if err != nil {
		return err
	}
	if len(listIDs) == 0 {
		return nil
	}
	if err := tx.Delete(&model.Task{}, "list IN ?", listIDs).Error; err != nil {
		return err
	}
	return tx.Delete(&model.List{}, "id IN ?", listIDs).Error
}

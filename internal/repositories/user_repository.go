package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, username, password string) (*model.User, error) {
	user := &model.User{
		ID:       uuid.NewString(),
		Username: username,
		Password: password,
	}

	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}

	return user, nil
}

// FindByCredentials matches username and password together; a wrong password
// and an unknown username are indistinguishable to the caller.
func (r *UserRepository) FindByCredentials(ctx context.Context, username, password string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND password = ?", username, password).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindIDByUsername(ctx context.Context, username string) (string, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Select("id").
		Where("username = ?", username).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", apperrors.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

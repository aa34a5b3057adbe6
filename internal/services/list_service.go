package services

import (
	"context"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

type ListService struct {
	lists *repository.ListRepository
}

func NewListService(lists *repository.ListRepository) *ListService {
	return &ListService{lists: lists}
}

func (s *ListService) Create(ctx context.Context, list *model.List) error {
	ref := model.BoardRef{ID: list.Board, Kind: list.BoardType}
	if !ref.Valid() {
		return apperrors.ErrNotFound
	}
	return s.lists.Create(ctx, list)
}

func (s *ListService) Get(ctx context.Context, ref model.BoardRef) ([]model.List, error) {
	if !ref.Valid() {
		return nil, apperrors.ErrNotFound
	}
	return s.lists.ListByBoard(ctx, ref)
}

func (s *ListService) Delete(ctx context.Context, id string) error {
	return s.lists.Delete(ctx, id)
}

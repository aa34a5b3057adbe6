package services

import (
	"context"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

type BoardService struct {
	boards *repository.BoardRepository
	teams  *repository.TeamRepository
	users  *repository.UserRepository
}

func NewBoardService(
	boards *repository.BoardRepository,
	teams *repository.TeamRepository,
	users *repository.UserRepository,
) *BoardService {
	return &BoardService{boards: boards, teams: teams, users: users}
}

func (s *BoardService) CreatePrivate(ctx context.Context, username, name string) error {
	userID, err := s.users.FindIDByUsername(ctx, username)
	if err != nil {
		return err
	}
	_, err = s.boards.CreatePrivate(ctx, name, userID)
	return err
}

// CreateTeam refuses before any row is written unless the creator is already
// a member of the owning team. Denial reads the same as not-found.
func (s *BoardService) CreateTeam(ctx context.Context, username, teamID, name string) error {
	userID, err := s.users.FindIDByUsername(ctx, username)
	if err != nil {
		return err
	}

	ok, err := s.teams.HasAccess(ctx, teamID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.ErrNotFound
	}

	_, err = s.boards.CreateTeam(ctx, name, teamID)
	return err
}

func (s *BoardService) PrivateBoards(ctx context.Context, username string) ([]model.PrivateBoard, error) {
	userID, err := s.users.FindIDByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.boards.ListPrivateByOwner(ctx, userID)
}

func (s *BoardService) TeamBoards(ctx context.Context, username string) ([]model.TeamBoardWithName, error) {
	userID, err := s.users.FindIDByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.teams.ListBoardsForUser(ctx, userID)
}

func (s *BoardService) UpdatePrivate(ctx context.Context, id, name string) error {
	return s.boards.UpdatePrivate(ctx, id, name)
}

func (s *BoardService) UpdateTeam(ctx context.Context, id, name string) error {
	return s.boards.UpdateTeam(ctx, id, name)
}

func (s *BoardService) DeletePrivate(ctx context.Context, id string) error {
	return s.boards.DeletePrivate(ctx, id)
}

func (s *BoardService) DeleteTeam(ctx context.Context, id string) error {
	return s.boards.DeleteTeam(ctx, id)
}

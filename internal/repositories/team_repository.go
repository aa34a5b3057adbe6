package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "taskboard.com/taskboard/internal/models"
)

type TeamRepository struct {
	db *gorm.DB
}

func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) Create(ctx context.Context, name, owner string) (*model.Team, error) {
	team := &model.Team{
		ID:    uuid.NewString(),
		Name:  name,
		Owner: owner,
	}

	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		return nil, err
	}

	return team, nil
}

func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID string) error {
	member := &model.TeamMember{
		ID:   uuid.NewString(),
		Team: teamID,
		User: userID,
	}
	return r.db.WithContext(ctx).Create(member).Error
}

// HasAccess reports whether a membership row exists for the pair. A missing
// row is false, not an error; callers treat false like not-found so team
// existence never leaks to non-members.
func (r *TeamRepository) HasAccess(ctx context.Context, teamID, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TeamMember{}).
		Where("team = ? AND user = ?", teamID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *TeamRepository) ListOwned(ctx context.Context, userID string) ([]model.Team, error) {
	var teams []model.Team
	err := r.db.WithContext(ctx).Where("owner = ?", userID).Find(&teams).Error
	return teams, err
}

// ListBoardsForUser returns every team board reachable through the user's
// memberships, joined with the team name, in one query.
func (r *TeamRepository) ListBoardsForUser(ctx context.Context, userID string) ([]model.TeamBoardWithName, error) {
	var boards []model.TeamBoardWithName
	err := r.db.WithContext(ctx).
		Table("team_boards").
		Select("team_boards.id, team_boards.name, team_boards.owner, teams.name AS team_name").
		Joins("JOIN teams ON teams.id = team_boards.owner").
		Joins("JOIN team_members ON team_members.team = teams.id").
		Where("team_members.user = ?", userID).
		Scan(&boards).Error
	if err != nil {
		return nil, err
	}
	return boards, nil
}

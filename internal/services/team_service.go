package services

import (
	"context"
	"log"
	"strings"

	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

type TeamService struct {
	teams *repository.TeamRepository
	users *repository.UserRepository
}

func NewTeamService(teams *repository.TeamRepository, users *repository.UserRepository) *TeamService {
	return &TeamService{teams: teams, users: users}
}

// Create makes a team owned by the creator and resolves the semicolon-joined
// member usernames. Unresolved usernames are skipped and failed membership
// inserts are dropped after logging; the creator always ends up a member.
func (s *TeamService) Create(ctx context.Context, name, members, creator string) error {
	ownerID, err := s.users.FindIDByUsername(ctx, creator)
	if err != nil {
		return err
	}

	team, err := s.teams.Create(ctx, name, ownerID)
	if err != nil {
		return err
	}

	for _, username := range strings.Split(members, ";") {
		if username == "" || username == creator {
			continue
		}
		userID, err := s.users.FindIDByUsername(ctx, username)
		if err != nil {
			continue
		}
		s.addMemberBestEffort(ctx, team.ID, userID)
	}
	s.addMemberBestEffort(ctx, team.ID, ownerID)

	return nil
}

func (s *TeamService) addMemberBestEffort(ctx context.Context, teamID, userID string) {
	if err := s.teams.AddMember(ctx, teamID, userID); err != nil {
		log.Printf("team %s: dropping membership for user %s: %v", teamID, userID, err)
	}
}

func (s *TeamService) Owned(ctx context.Context, username string) ([]model.Team, error) {
	userID, err := s.users.FindIDByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.teams.ListOwned(ctx, userID)
}

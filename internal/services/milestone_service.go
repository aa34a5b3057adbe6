package services

import (
	"context"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

type MilestoneService struct {
	milestones *repository.MilestoneRepository
	lists      *repository.ListRepository
	tasks      *repository.TaskRepository
}

func NewMilestoneService(
	milestones *repository.MilestoneRepository,
	lists *repository.ListRepository,
	tasks *repository.TaskRepository,
) *MilestoneService {
	return &MilestoneService{milestones: milestones, lists: lists, tasks: tasks}
}

func (s *MilestoneService) Create(ctx context.Context, milestone *model.Milestone) error {
	ref := model.BoardRef{ID: milestone.BoardID, Kind: milestone.BoardType}
	if !ref.Valid() {
		return apperrors.ErrNotFound
	}
	return s.milestones.Create(ctx, milestone)
}

// Stats computes done/total per milestone in one pass over the board's
// tasks: total counts the tasks referencing the milestone, done those with
// the done flag set. Counters are derived on every call and never stored, so
// they cannot go stale. Any read failure aborts the whole aggregation.
func (s *MilestoneService) Stats(ctx context.Context, ref model.BoardRef) ([]model.MilestoneStats, error) {
	if !ref.Valid() {
		return nil, apperrors.ErrNotFound
	}

	milestones, err := s.milestones.ListByBoard(ctx, ref)
	if err != nil {
		return nil, err
	}

	lists, err := s.lists.ListByBoard(ctx, ref)
	if err != nil {
		return nil, err
	}
	listIDs := make([]string, 0, len(lists))
	for _, l := range lists {
		listIDs = append(listIDs, l.ID)
	}

	tasks, err := s.tasks.ListByLists(ctx, listIDs)
	if err != nil {
		return nil, err
	}

	type counter struct {
		done  int
		total int
	}
	counts := make(map[string]counter, len(milestones))
	for _, t := range tasks {
		if t.Milestone == nil {
			continue
		}
		c := counts[*t.Milestone]
		c.total++
		if t.Done == 1 {
			c.done++
		}
		counts[*t.Milestone] = c
	}

	stats := make([]model.MilestoneStats, 0, len(milestones))
	for _, m := range milestones {
		c := counts[m.ID]
		stats = append(stats, model.MilestoneStats{
			ID:        m.ID,
			Name:      m.Name,
			Done:      c.done,
			Total:     c.total,
			BoardID:   m.BoardID,
			BoardType: m.BoardType,
		})
	}
	return stats, nil
}

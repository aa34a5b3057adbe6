package services

import (
	"context"
	"time"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

type TimerService struct {
	timers *repository.TimerRepository
	users  *repository.UserRepository
	now    func() time.Time
}

func NewTimerService(timers *repository.TimerRepository, users *repository.UserRepository) *TimerService {
	return &TimerService{
		timers: timers,
		users:  users,
		now:    time.Now,
	}
}

// Create starts a timer immediately: active, zero accumulated time, start at
// now. Every active timer therefore carries a start timestamp.
func (s *TimerService) Create(ctx context.Context, username, name string) error {
	userID, err := s.users.FindIDByUsername(ctx, username)
	if err != nil {
		return err
	}

	start := s.now().Unix()
	timer := &model.Timer{
		Name:   name,
		UserID: userID,
		Status: model.TimerActive,
		Time:   0,
		Start:  &start,
	}
	return s.timers.Create(ctx, timer)
}

// Toggle flips the timer between active and stopped. Stopping folds the
// running span into the accumulated time; restarting leaves it untouched.
// Start is re-stamped on every toggle, including the stopping one where it
// is unused until the next restart.
func (s *TimerService) Toggle(ctx context.Context, id string) error {
	timer, err := s.timers.FindByID(ctx, id)
	if err != nil {
		return err
	}

	now := s.now().Unix()
	if timer.Status == model.TimerActive {
		if timer.Start == nil {
			return apperrors.ErrTimerCorrupt
		}
		timer.Time += now - *timer.Start
		timer.Status = model.TimerStopped
	} else {
		timer.Status = model.TimerActive
	}
	timer.Start = &now

	return s.timers.Update(ctx, timer)
}

// List returns the user's timers with the display elapsed value filled in.
// Elapsed is derived per call because "now" keeps moving while a timer is
// active.
func (s *TimerService) List(ctx context.Context, username string) ([]model.Timer, error) {
	userID, err := s.users.FindIDByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	timers, err := s.timers.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now().Unix()
	for i := range timers {
		timers[i].Elapsed = elapsed(&timers[i], now)
	}
	return timers, nil
}

func (s *TimerService) Delete(ctx context.Context, id string) error {
	return s.timers.Delete(ctx, id)
}

func elapsed(t *model.Timer, now int64) int64 {
	if t.Status == model.TimerActive && t.Start != nil {
		return t.Time + now - *t.Start
	}
	return t.Time
}

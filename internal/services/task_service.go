package services

import (
	"context"
	"log"

	model "taskboard.com/taskboard/internal/models"
	repository "taskboard.com/taskboard/internal/repositories"
)

type TaskService struct {
	tasks *repository.TaskRepository
	logs  *repository.LogRepository
}

func NewTaskService(tasks *repository.TaskRepository, logs *repository.LogRepository) *TaskService {
	return &TaskService{tasks: tasks, logs: logs}
}

func (s *TaskService) Create(ctx context.Context, task *model.Task) error {
	if err := s.tasks.Create(ctx, task); err != nil {
		return err
	}
	s.logBestEffort(ctx, task, model.LogActionCreated)
	return nil
}

func (s *TaskService) Update(ctx context.Context, task *model.Task) error {
	if err := s.tasks.Update(ctx, task); err != nil {
		return err
	}
	s.logBestEffort(ctx, task, model.LogActionUpdated)
	return nil
}

func (s *TaskService) Get(ctx context.Context, listID string) ([]model.Task, error) {
	return s.tasks.ListByList(ctx, listID)
}

func (s *TaskService) Filter(ctx context.Context, listID string, f model.TaskFilter) ([]model.Task, error) {
	return s.tasks.Filter(ctx, listID, f)
}

func (s *TaskService) Single(ctx context.Context, id string) (*model.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

func (s *TaskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

func (s *TaskService) Logs(ctx context.Context, taskID string) ([]model.Log, error) {
	return s.logs.ListByTask(ctx, taskID)
}

// logBestEffort writes the audit snapshot after a successful mutation. A
// failed write never fails the mutation that triggered it; the error stops
// here.
func (s *TaskService) logBestEffort(ctx context.Context, task *model.Task, action string) {
	entry := model.LogFromTask(task, task.ID, action)
	if err := s.logs.Create(ctx, &entry); err != nil {
		log.Printf("audit log for task %s dropped: %v", task.ID, err)
	}
}

package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "taskboard.com/taskboard/internal/errors"
	model "taskboard.com/taskboard/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) Update(ctx context.Context, task *model.Task) error {
	res := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", task.ID).
		Updates(map[string]interface{}{
			"name":      task.Name,
			"list":      task.List,
			"note":      task.Note,
			"place":     task.Place,
			"members":   task.Members,
			"deadline":  task.Deadline,
			"subtasks":  task.Subtasks,
			"points":    task.Points,
			"tags":      task.Tags,
			"done":      task.Done,
			"milestone": task.Milestone,
		})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByList(ctx context.Context, listID string) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).Where("list = ?", listID).Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) ListByLists(ctx context.Context, listIDs []string) ([]model.Task, error) {
	if len(listIDs) == 0 {
		return nil, nil
	}
	var tasks []model.Task
	err := r.db.WithContext(ctx).Where("list IN ?", listIDs).Find(&tasks).Error
	return tasks, err
}

// Filter applies every supplied criterion conjunctively on top of the list
// constraint. Empty criteria are skipped rather than bound, so an absent
// (NULL) field matches only the empty pattern: a non-empty LIKE against NULL
// never matches.
func (r *TaskRepository) Filter(ctx context.Context, listID string, f model.TaskFilter) ([]model.Task, error) {
	q := r.db.WithContext(ctx).Where("list = ?", listID)

	if f.Name != "" {
		q = q.Where("name LIKE ?", contains(f.Name))
	}
	if f.Place != "" {
		q = q.Where("place LIKE ?", contains(f.Place))
	}
	for _, term := range splitTerms(f.Members) {
		q = q.Where("members LIKE ?", contains(term))
	}
	for _, term := range splitTerms(f.Tags) {
		q = q.Where("tags LIKE ?", contains(term))
	}
	if f.PointsMin != nil {
		q = q.Where("points >= ?", *f.PointsMin)
	}
	if f.PointsMax != nil {
		q = q.Where("points <= ?", *f.PointsMax)
	}
	if f.DeadlineStart != "" {
		q = q.Where("deadline >= ?", f.DeadlineStart)
	}
	if f.DeadlineEnd != "" {
		q = q.Where("deadline <= ?", f.DeadlineEnd)
	}

	var tasks []model.Task
	err := q.Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func contains(v string) string {
	return "%" + v + "%"
}

// splitTerms turns a semicolon-joined criterion into its required substrings.
// Every returned term must match; an empty criterion yields none.
func splitTerms(v string) []string {
	if v == "" {
		return nil
	}
	var terms []string
	for _, t := range strings.Split(v, ";") {
		if t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

package model

import "time"

// logTimestampLayout is fixed-width so timestamps compare lexically in the
// order they were taken.
const logTimestampLayout = "2006-01-02 15:04:05.000000000"

// Log is an immutable snapshot of a task at the moment of a mutation.
// Logs are never updated and never cascade-deleted; the audit trail outlives
// its task.
type Log struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	List      string  `gorm:"size:36;not null" json:"list"`
	Note      *string `json:"note"`
	Place     *string `json:"place"`
	Members   *string `json:"members"`
	Timestamp string  `gorm:"not null;index" json:"timestamp"`
	Action    string  `gorm:"not null" json:"action"`
	TaskID    string  `gorm:"size:36;not null;index" json:"task_id"`
	Deadline  string  `json:"deadline"`
	Subtasks  string  `json:"subtasks"`
	Points    int     `json:"points"`
	Tags      string  `json:"tags"`
}

const (
	LogActionCreated = "created"
	LogActionUpdated = "updated"
)

// LogFromTask copies every mutable field of the task snapshot and stamps the
// current wall-clock time. taskID is supplied by the caller because the
// snapshot may predate id assignment.
func LogFromTask(task *Task, taskID, action string) Log {
	return Log{
		Name:      task.Name,
		List:      task.List,
		Note:      task.Note,
		Place:     task.Place,
		Members:   task.Members,
		Timestamp: time.Now().UTC().Format(logTimestampLayout),
		Action:    action,
		TaskID:    taskID,
		Deadline:  task.Deadline,
		Subtasks:  task.Subtasks,
		Points:    task.Points,
		Tags:      task.Tags,
	}
}

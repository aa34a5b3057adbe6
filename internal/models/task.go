package model

// Task is a single entry on a list. Members, subtasks and tags are
// semicolon-joined strings; Done is 0 or 1; Milestone, when set, references a
// milestone on the same board as the task's list.
type Task struct {
	ID        string  `gorm:"primaryKey;size:36" json:"id"`
	Name      string  `gorm:"not null" json:"name"`
	List      string  `gorm:"size:36;not null;index" json:"list"`
	Note      *string `json:"note"`
	Place     *string `json:"place"`
	Members   *string `json:"members"`
	Deadline  string  `json:"deadline"`
	Subtasks  string  `json:"subtasks"`
	Points    int     `json:"points"`
	Tags      string  `json:"tags"`
	Done      int     `gorm:"not null;default:0" json:"done"`
	Milestone *string `gorm:"size:36" json:"milestone"`
}

// TaskFilter narrows a list's tasks. All criteria are conjunctive; empty
// strings and nil bounds mean unconstrained. Members and Tags are themselves
// semicolon-joined: every split term must be contained in the task's field.
type TaskFilter struct {
	Name          string `json:"name"`
	Place         string `json:"place"`
	Members       string `json:"members"`
	DeadlineStart string `json:"deadline_start"`
	DeadlineEnd   string `json:"deadline_end"`
	PointsMin     *int   `json:"points_min"`
	PointsMax     *int   `json:"points_max"`
	Tags          string `json:"tags"`
}

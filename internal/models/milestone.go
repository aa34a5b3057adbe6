package model

type Milestone struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	BoardID   string    `gorm:"size:36;not null;index" json:"board_id"`
	BoardType BoardKind `gorm:"type:varchar(10);not null" json:"board_type"`
}

// MilestoneStats is a milestone with its completion counters. Done and Total
// are derived from task state on every read and never persisted.
type MilestoneStats struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Done      int       `json:"done"`
	Total     int       `json:"total"`
	BoardID   string    `json:"board_id"`
	BoardType BoardKind `json:"board_type"`
}

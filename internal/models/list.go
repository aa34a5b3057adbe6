package model

type List struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Board     string    `gorm:"size:36;not null;index" json:"board"`
	BoardType BoardKind `gorm:"type:varchar(10);not null" json:"board_type"`
}

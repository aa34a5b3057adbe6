package model

type Team struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Owner string `gorm:"size:36;not null;index" json:"owner"`
}

// TeamMember grants a user access to a team's boards. The owning user is
// always inserted as a member when the team is created.
type TeamMember struct {
	ID   string `gorm:"primaryKey;size:36" json:"id"`
	Team string `gorm:"size:36;not null;index" json:"team"`
	User string `gorm:"size:36;not null;index" json:"user"`
}

package model

// BoardKind discriminates the two board variants wherever a board is
// referenced generically (lists, milestones).
type BoardKind string

const (
	BoardPrivate BoardKind = "private"
	BoardTeam    BoardKind = "team"
)

// BoardRef identifies a board of either variant.
type BoardRef struct {
	ID   string
	Kind BoardKind
}

func (r BoardRef) Valid() bool {
	return r.ID != "" && (r.Kind == BoardPrivate || r.Kind == BoardTeam)
}

// PrivateBoard is owned by a single user.
type PrivateBoard struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Owner string `gorm:"size:36;not null;index" json:"owner"`
}

// TeamBoard is owned by a team; access goes through team membership.
type TeamBoard struct {
	ID    string `gorm:"primaryKey;size:36" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Owner string `gorm:"size:36;not null;index" json:"owner"`
}

// TeamBoardWithName is a TeamBoard joined with its team's name for listings.
type TeamBoardWithName struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Owner    string `json:"owner"`
	TeamName string `json:"team_name"`
}

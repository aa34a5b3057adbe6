package model

const (
	TimerActive  = "active"
	TimerStopped = "stopped"
)

// Timer is a per-user stopwatch. Time holds the accumulated seconds across
// finished runs; Start is the unix timestamp of the current run and is set
// whenever the timer is active.
type Timer struct {
	ID     string `gorm:"primaryKey;size:36" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	UserID string `gorm:"size:36;not null;index" json:"user_id"`
	Status string `gorm:"type:varchar(10);not null" json:"status"`
	Time   int64  `gorm:"not null;default:0" json:"time"`
	Start  *int64 `json:"start"`

	// Elapsed is the display value: Time plus the running span when active.
	// Recomputed on every read, never stored.
	Elapsed int64 `gorm:"-" json:"elapsed"`
}

package dto

type TimerData struct {
	Name string `json:"name"`
}

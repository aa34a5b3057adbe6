package dto

// TeamData lists the initial members as a semicolon-joined username string.
type TeamData struct {
	Name    string `json:"name"`
	Members string `json:"members"`
}

package dto

type PrivateBoardData struct {
	Name string `json:"name"`
}

// TeamBoardData carries the target team in Owner.
type TeamBoardData struct {
	Name  string `json:"name"`
	Owner string `json:"owner"`
}

type BoardUpdate struct {
	Name string `json:"name"`
}

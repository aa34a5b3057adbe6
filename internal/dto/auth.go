package dto

type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

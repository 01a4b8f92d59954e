package domain

type AdminToken struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

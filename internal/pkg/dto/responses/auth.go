package responses

type AdminLogin struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

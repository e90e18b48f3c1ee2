package payload

type LoginRequest struct {
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type LogoutResponse struct {
	Message string `json:"message"`
}

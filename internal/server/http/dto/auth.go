package dto

// LoginRequest carries operator credentials.
type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse returns the issued session token.
type TokenResponse struct {
	Token string `json:"token"`
}

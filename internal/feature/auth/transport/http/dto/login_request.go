package dto

// LoginReq represents the request body for the /auth/login endpoint.
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserSummary is the user payload embedded in auth responses.
type UserSummary struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	Email    *string `json:"email"`
}

// TokenResponse is the payload returned by a successful login.
type TokenResponse struct {
	Token     string      `json:"token"`
	TokenType string      `json:"token_type"`
	User      UserSummary `json:"user"`
}

package actor

// LoginRequest carries dashboard login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued token and actor profile.
type LoginResponse struct {
	Token string `json:"token"`
	Actor *Actor `json:"actor"`
}

package request

// RegisterRequest is the /api/register payload. The password hash is
// computed by the caller; this service never sees the plain password.
type RegisterRequest struct {
	Username     string `json:"username" binding:"required"`
	PasswordHash string `json:"password_hash" binding:"required"`
	Email        string `json:"email"`
}

// LoginRequest is the /api/login payload.
type LoginRequest struct {
	Username     string `json:"username" binding:"required"`
	PasswordHash string `json:"password_hash" binding:"required"`
}

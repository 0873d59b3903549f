package response

import (
	"time"

	"foodcourt_api/internal/domain/entities"
)

// AccountResponse never carries the password hash.
type AccountResponse struct {
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromAccount(a entities.Account) AccountResponse {
	return AccountResponse{
		Username:  a.Username,
		Email:     a.Email,
		CreatedAt: a.CreatedAt,
	}
}

type LoginResponse struct {
	Username string `json:"username"`
	Token    string `json:"token,omitempty"`
}

func FromLogin(a entities.Account, token string) LoginResponse {
	return LoginResponse{Username: a.Username, Token: token}
}

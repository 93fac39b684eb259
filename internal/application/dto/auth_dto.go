package dto

import "github.com/jhoicas/mistica-api/internal/domain/entity"

// LoginRequest credenciales de login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse sesión actual (la misma forma que el blob persistido).
type SessionResponse struct {
	User            *entity.User `json:"user"`
	Token           string       `json:"token"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

package auth

import "pictgram/internal/domain"

type SignupRequest struct {
	Email    string `json:"email" binding:"required" validate:"required,email"`
	Name     string `json:"name" binding:"required" validate:"required,max=64"`
	Password string `json:"password" binding:"required" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

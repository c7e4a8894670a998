package dto

import (
	"github.com/goat-farm/backend/internal/application/usecase/auth"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	IsAdmin  bool   `json:"is_admin"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RegisterResponse represents the response for user registration.
type RegisterResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse represents the response for user login.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// ToRegisterResponse converts a registration output to its response DTO.
func ToRegisterResponse(output *auth.RegisterUserOutput) RegisterResponse {
	return RegisterResponse{
		ID:    output.UserID,
		Name:  output.Name,
		Email: output.Email,
	}
}

// ToLoginResponse converts a login output to its response DTO.
func ToLoginResponse(output *auth.LoginUserOutput) LoginResponse {
	return LoginResponse{
		AccessToken: output.AccessToken,
		User: UserResponse{
			ID:      output.UserID,
			Name:    output.Name,
			Email:   output.Email,
			IsAdmin: output.IsAdmin,
		},
	}
}

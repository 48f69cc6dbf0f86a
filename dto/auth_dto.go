package dto

import "rental-api/domain"

// RegisterRequest representa el request de registro de un usuario
type RegisterRequest struct {
	Name     string      `json:"name" binding:"required"`
	Email    string      `json:"email" binding:"required,email"`
	Password string      `json:"password" binding:"required,min=6"`
	Role     domain.Role `json:"role" binding:"omitempty,oneof=tenant landlord"`
}

// LoginRequest representa el request de login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse es lo que devuelven register y login: el token JWT
// y los datos del usuario autenticado
type AuthResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

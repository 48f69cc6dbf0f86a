package dto

import "rental-api/domain"

// UpdateUserRequest representa el request para actualizar un usuario
// Todos los campos son opcionales. Password y Role se ignoran cuando
// el que actualiza no es admin
type UpdateUserRequest struct {
	Name     string      `json:"name,omitempty"`
	Email    string      `json:"email,omitempty" binding:"omitempty,email"`
	Password string      `json:"password,omitempty" binding:"omitempty,min=6"`
	Role     domain.Role `json:"role,omitempty" binding:"omitempty,oneof=tenant landlord admin"`
	Phone    string      `json:"phone,omitempty"`
	Avatar   string      `json:"avatar,omitempty"`
	IsActive *bool       `json:"isActive,omitempty"`
}

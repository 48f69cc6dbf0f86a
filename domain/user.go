package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role define los roles que existen en el marketplace
type Role string

const (
	RoleTenant   Role = "tenant"   // Inquilino: reserva propiedades y escribe reseñas
	RoleLandlord Role = "landlord" // Propietario: publica y administra propiedades
	RoleAdmin    Role = "admin"    // Administrador: acceso total
)

// User representa un usuario del sistema
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"unique;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"` // El "-" oculta el password en JSON
	Role      Role      `gorm:"type:varchar(20);default:'tenant'" json:"role"`
	Phone     string    `json:"phone,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName especifica el nombre de la tabla en MySQL
func (User) TableName() string {
	return "users"
}

// BeforeCreate asigna un UUID como identificador opaco
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// Identity es la identidad autenticada que viaja con cada request
// Se arma en el middleware a partir de los claims del JWT
type Identity struct {
	UserID string
	Name   string
	Role   Role
}

// IsAdmin indica si la identidad tiene rol de administrador
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

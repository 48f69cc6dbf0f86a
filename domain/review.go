package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review representa la reseña de un tenant sobre una propiedad
// Un tenant puede dejar a lo sumo una reseña por propiedad, y solo
// después de tener una reserva completada
type Review struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	PropertyID string    `gorm:"type:varchar(36);index;not null" json:"propertyId"`
	TenantID   string    `gorm:"type:varchar(36);index;not null" json:"tenantId"`
	TenantName string    `json:"tenantName"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName especifica el nombre de la tabla en MySQL
func (Review) TableName() string {
	return "reviews"
}

// BeforeCreate asigna un UUID como identificador opaco
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

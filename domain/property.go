package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PropertyStatus define los estados posibles de una propiedad
type PropertyStatus string

const (
	PropertyStatusAvailable   PropertyStatus = "available"
	PropertyStatusBooked      PropertyStatus = "booked"
	PropertyStatusMaintenance PropertyStatus = "maintenance"
	PropertyStatusPending     PropertyStatus = "pending"
	PropertyStatusRejected    PropertyStatus = "rejected"
)

// Address es la dirección estructurada de una propiedad
// Se guarda embebida en la misma tabla con prefijo address_
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// AvailabilityDate es una entrada del calendario de disponibilidad
type AvailabilityDate struct {
	Date        time.Time `json:"date"`
	IsAvailable bool      `json:"isAvailable"`
}

// Property representa una propiedad de alquiler publicada por un landlord
type Property struct {
	ID                   string             `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title                string             `gorm:"not null" json:"title"`
	Description          string             `gorm:"type:text;not null" json:"description"`
	Address              Address            `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Price                float64            `gorm:"not null" json:"price"`
	Bedrooms             int                `gorm:"not null" json:"bedrooms"`
	Bathrooms            float64            `gorm:"not null" json:"bathrooms"`
	Area                 float64            `gorm:"not null" json:"area"`
	Amenities            []string           `gorm:"serializer:json" json:"amenities"`
	Images               []string           `gorm:"serializer:json" json:"images"`
	AvailabilityCalendar []AvailabilityDate `gorm:"serializer:json" json:"availabilityCalendar"`
	LandlordID           string             `gorm:"type:varchar(36);index;not null" json:"landlordId"`
	LandlordName         string             `json:"landlordName"`
	Status               PropertyStatus     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Reviews              []Review           `gorm:"foreignKey:PropertyID" json:"reviews"`
	AverageRating        float64            `gorm:"default:0" json:"averageRating"`
	CreatedAt            time.Time          `json:"createdAt"`
	UpdatedAt            time.Time          `json:"updatedAt"`
}

// TableName especifica el nombre de la tabla en MySQL
func (Property) TableName() string {
	return "properties"
}

// BeforeCreate asigna un UUID como identificador opaco
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

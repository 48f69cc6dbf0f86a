package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BookingStatus define los estados de una reserva
// Las transiciones (pending -> confirmed -> completed, cancelled desde
// pending/confirmed) se disparan por updates directos, no hay máquina de
// estados automática
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

// PaymentStatus define los estados del pago de una reserva
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
	PaymentStatusFailed   PaymentStatus = "failed"
)

// Booking representa una reserva de un tenant sobre una propiedad
// LandlordID está desnormalizado para poder filtrar sin joins
type Booking struct {
	ID            string        `gorm:"primaryKey;type:varchar(36)" json:"id"`
	PropertyID    string        `gorm:"type:varchar(36);index;not null" json:"propertyId"`
	TenantID      string        `gorm:"type:varchar(36);index;not null" json:"tenantId"`
	LandlordID    string        `gorm:"type:varchar(36);index;not null" json:"landlordId"`
	StartDate     time.Time     `gorm:"not null" json:"startDate"`
	EndDate       time.Time     `gorm:"not null" json:"endDate"`
	TotalPrice    float64       `gorm:"not null" json:"totalPrice"`
	Status        BookingStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:varchar(20);default:'pending'" json:"paymentStatus"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// TableName especifica el nombre de la tabla en MySQL
func (Booking) TableName() string {
	return "bookings"
}

// BeforeCreate asigna un UUID como identificador opaco
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

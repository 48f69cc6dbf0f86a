package dto

import (
	"time"

	"rental-api/domain"
)

// CreateBookingRequest representa el request para reservar una propiedad
// tenantId y landlordId se completan desde el contexto, nunca del body
type CreateBookingRequest struct {
	PropertyID string    `json:"propertyId" binding:"required"`
	StartDate  time.Time `json:"startDate" binding:"required"`
	EndDate    time.Time `json:"endDate" binding:"required"`
	TotalPrice float64   `json:"totalPrice" binding:"required,gte=0"`
}

// UpdateBookingRequest representa el request para actualizar una reserva
// Los cambios de estado (confirmar, cancelar, completar) llegan por acá
type UpdateBookingRequest struct {
	StartDate     *time.Time           `json:"startDate,omitempty"`
	EndDate       *time.Time           `json:"endDate,omitempty"`
	TotalPrice    *float64             `json:"totalPrice,omitempty" binding:"omitempty,gte=0"`
	Status        domain.BookingStatus `json:"status,omitempty" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	PaymentStatus domain.PaymentStatus `json:"paymentStatus,omitempty" binding:"omitempty,oneof=pending paid refunded failed"`
}

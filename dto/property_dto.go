package dto

import "rental-api/domain"

// CreatePropertyRequest representa el request para publicar una propiedad
// landlordId y landlordName NO se aceptan del caller: se completan con
// la identidad autenticada
type CreatePropertyRequest struct {
	Title                string                    `json:"title" binding:"required"`
	Description          string                    `json:"description" binding:"required"`
	Address              domain.Address            `json:"address" binding:"required"`
	Price                float64                   `json:"price" binding:"required,gte=0"`
	Bedrooms             int                       `json:"bedrooms" binding:"gte=0"`
	Bathrooms            float64                   `json:"bathrooms" binding:"gte=0"`
	Area                 float64                   `json:"area" binding:"required,gte=0"`
	Amenities            []string                  `json:"amenities"`
	Images               []string                  `json:"images" binding:"required"`
	AvailabilityCalendar []domain.AvailabilityDate `json:"availabilityCalendar"`
}

// UpdatePropertyRequest representa el request para editar una propiedad
// Campos en nil/vacío no modifican nada
type UpdatePropertyRequest struct {
	Title                string                     `json:"title,omitempty"`
	Description          string                     `json:"description,omitempty"`
	Address              *domain.Address            `json:"address,omitempty"`
	Price                *float64                   `json:"price,omitempty" binding:"omitempty,gte=0"`
	Bedrooms             *int                       `json:"bedrooms,omitempty" binding:"omitempty,gte=0"`
	Bathrooms            *float64                   `json:"bathrooms,omitempty" binding:"omitempty,gte=0"`
	Area                 *float64                   `json:"area,omitempty" binding:"omitempty,gte=0"`
	Amenities            []string                   `json:"amenities,omitempty"`
	Images               []string                   `json:"images,omitempty"`
	AvailabilityCalendar []domain.AvailabilityDate  `json:"availabilityCalendar,omitempty"`
	Status               domain.PropertyStatus      `json:"status,omitempty" binding:"omitempty,oneof=available booked maintenance pending rejected"`
}

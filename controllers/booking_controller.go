package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-api/dto"
	"rental-api/services"
)

// BookingController maneja los endpoints HTTP de reservas
type BookingController struct {
	service services.BookingService
}

// NewBookingController crea una nueva instancia del controlador
func NewBookingController(service services.BookingService) *BookingController {
	return &BookingController{service: service}
}

// GetBookings maneja GET /api/bookings
// La visibilidad depende del rol: el servicio decide qué se ve
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.service.List(identityFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, bookings)
}

// GetBooking maneja GET /api/bookings/:id
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	booking, err := ctrl.service.GetByID(identityFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, booking)
}

// CreateBooking maneja POST /api/bookings
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	booking, err := ctrl.service.Create(identityFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, booking)
}

// UpdateBooking maneja PUT /api/bookings/:id
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	booking, err := ctrl.service.Update(identityFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, booking)
}

// DeleteBooking maneja DELETE /api/bookings/:id
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	if err := ctrl.service.Delete(identityFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{})
}

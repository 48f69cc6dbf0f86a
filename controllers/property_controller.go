package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-api/dto"
	"rental-api/services"
)

// PropertyController maneja los endpoints HTTP de propiedades
type PropertyController struct {
	service services.PropertyService
}

// NewPropertyController crea una nueva instancia del controlador
func NewPropertyController(service services.PropertyService) *PropertyController {
	return &PropertyController{service: service}
}

// GetProperties maneja GET /api/properties
func (ctrl *PropertyController) GetProperties(c *gin.Context) {
	properties, err := ctrl.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, properties)
}

// GetProperty maneja GET /api/properties/:id
func (ctrl *PropertyController) GetProperty(c *gin.Context) {
	property, err := ctrl.service.GetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, property)
}

// CreateProperty maneja POST /api/properties
// Solo landlord o admin llegan acá (lo corta el middleware de roles)
func (ctrl *PropertyController) CreateProperty(c *gin.Context) {
	var req dto.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	property, err := ctrl.service.Create(identityFromContext(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusCreated, property)
}

// UpdateProperty maneja PUT /api/properties/:id
func (ctrl *PropertyController) UpdateProperty(c *gin.Context) {
	var req dto.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	property, err := ctrl.service.Update(identityFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, property)
}

// DeleteProperty maneja DELETE /api/properties/:id
func (ctrl *PropertyController) DeleteProperty(c *gin.Context) {
	if err := ctrl.service.Delete(identityFromContext(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{})
}

// GetLandlordProperties maneja GET /api/properties/landlord/properties
func (ctrl *PropertyController) GetLandlordProperties(c *gin.Context) {
	properties, err := ctrl.service.GetByLandlord(identityFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, properties)
}

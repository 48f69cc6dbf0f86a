package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-api/dto"
	"rental-api/services"
)

// UserController maneja los endpoints HTTP de usuarios
type UserController struct {
	service services.UserService
}

// NewUserController crea una nueva instancia del controlador
func NewUserController(service services.UserService) *UserController {
	return &UserController{service: service}
}

// GetUsers maneja GET /api/users (solo admin)
func (ctrl *UserController) GetUsers(c *gin.Context) {
	users, err := ctrl.service.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, users)
}

// GetUser maneja GET /api/users/:id
func (ctrl *UserController) GetUser(c *gin.Context) {
	user, err := ctrl.service.GetByID(identityFromContext(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, user)
}

// UpdateUser maneja PUT /api/users/:id
func (ctrl *UserController) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	user, err := ctrl.service.Update(identityFromContext(c), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, user)
}

// DeleteUser maneja DELETE /api/users/:id (solo admin)
func (ctrl *UserController) DeleteUser(c *gin.Context) {
	if err := ctrl.service.Delete(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, gin.H{})
}

// HealthCheck maneja GET /health
func (ctrl *UserController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "rental-api",
	})
}

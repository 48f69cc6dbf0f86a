package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-api/domain"
	"rental-api/dto"
	"rental-api/middleware"
	"rental-api/utils"
)

// respondError es el responder central de errores: traduce cualquier
// falla de los servicios al sobre {success:false, error} con el status
// que corresponde. Errores no tipados son un 500 genérico
func respondError(c *gin.Context, err error) {
	var apiErr *utils.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Status, dto.APIResponse{
			Success: false,
			Error:   apiErr.Message,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, dto.APIResponse{
		Success: false,
		Error:   "Internal server error",
	})
}

// respondData envuelve una respuesta exitosa en el sobre estándar
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, dto.APIResponse{
		Success: true,
		Data:    data,
	})
}

// respondValidationError traduce un error de binding de gin a un 400
func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.APIResponse{
		Success: false,
		Error:   err.Error(),
	})
}

// identityFromContext recupera la identidad que dejó el middleware de auth
func identityFromContext(c *gin.Context) domain.Identity {
	return middleware.IdentityFromContext(c)
}

package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rental-api/dto"
	"rental-api/services"
)

// Expiración de la cookie de sesión: 30 días, igual que el original
const tokenCookieMaxAge = 30 * 24 * 60 * 60

// AuthController maneja los endpoints de autenticación
type AuthController struct {
	service services.AuthService
}

// NewAuthController crea una nueva instancia del controlador
func NewAuthController(service services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Register maneja POST /api/auth/register
func (ctrl *AuthController) Register(c *gin.Context) {
	// 1. Leer y validar el body
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	// 2. Crear el usuario y emitir la credencial
	response, err := ctrl.service.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}

	// 3. Token en el body y espejado en cookie httpOnly
	ctrl.sendTokenResponse(c, http.StatusCreated, response)
}

// Login maneja POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err)
		return
	}

	response, err := ctrl.service.Login(req)
	if err != nil {
		respondError(c, err)
		return
	}

	ctrl.sendTokenResponse(c, http.StatusOK, response)
}

// Logout maneja GET /api/auth/logout
// No hay sesión del lado del servidor: se pisa la cookie con un valor
// centinela que expira enseguida
func (ctrl *AuthController) Logout(c *gin.Context) {
	c.SetCookie("token", "none", 10, "/", "", false, true)
	respondData(c, http.StatusOK, gin.H{})
}

// Me maneja GET /api/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	identity := identityFromContext(c)

	user, err := ctrl.service.GetCurrentUser(identity)
	if err != nil {
		respondError(c, err)
		return
	}

	respondData(c, http.StatusOK, user)
}

// sendTokenResponse devuelve el token en el body y lo espeja en una
// cookie httpOnly con expiración fija
func (ctrl *AuthController) sendTokenResponse(c *gin.Context, status int, response *dto.AuthResponse) {
	c.SetCookie("token", response.Token, tokenCookieMaxAge, "/", "", false, true)
	c.JSON(status, dto.APIResponse{
		Success: true,
		Token:   response.Token,
		Data:    response.User,
	})
}

package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"rental-api/domain"
	"rental-api/dto"
	"rental-api/utils"
)

// Clave bajo la que viaja la identidad en el contexto de gin
const identityKey = "identity"

// AuthMiddleware valida la credencial JWT de cada request
// El token puede venir en el header "Authorization: Bearer <token>"
// o en la cookie httpOnly "token" que setean login y register
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractToken(c)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, dto.APIResponse{
				Success: false,
				Error:   "Not authorized to access this route",
			})
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.APIResponse{
				Success: false,
				Error:   "Not authorized to access this route",
			})
			c.Abort()
			return
		}

		// Guardar la identidad en el contexto para los controllers
		c.Set(identityKey, domain.Identity{
			UserID: claims.UserID,
			Name:   claims.Name,
			Role:   claims.Role,
		})

		c.Next()
	}
}

// RequireRoles valida que el rol del caller esté dentro de los permitidos
// Se usa DESPUÉS de AuthMiddleware
func RequireRoles(roles ...domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := IdentityFromContext(c)

		for _, role := range roles {
			if identity.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, dto.APIResponse{
			Success: false,
			Error:   "User role is not authorized to access this route",
		})
		c.Abort()
	}
}

// IdentityFromContext recupera la identidad autenticada del contexto
func IdentityFromContext(c *gin.Context) domain.Identity {
	value, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}
	}
	identity, ok := value.(domain.Identity)
	if !ok {
		return domain.Identity{}
	}
	return identity
}

// extractToken busca el token primero en el header y después en la cookie
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie("token")
	if err == nil && cookie != "" && cookie != "none" {
		return cookie
	}

	return ""
}

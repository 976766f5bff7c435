package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/lucas2b/ponto-inteligente-api/core"
	"github.com/lucas2b/ponto-inteligente-api/security"
	"github.com/lucas2b/ponto-inteligente-api/web/common"
)

const claimsKey = "claims"

// Authentication checks for a valid Bearer token and stores its claims
// in the request context.
func Authentication(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("Token não informado"))
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("Token não informado"))
			return
		}

		claims, err := security.ParseIdentityToken(parts[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("Token inválido ou expirado"))
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireAdmin rejects requests whose token does not carry the admin perfil.
// Must run after Authentication.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		value, ok := c.Get(claimsKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, common.NewErrorResponse("Token não informado"))
			return
		}

		claims, ok := value.(*security.IdentityClaims)
		if !ok || claims.Perfil != core.PerfilAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, common.NewErrorResponse("Acesso permitido somente para administradores"))
			return
		}

		c.Next()
	}
}

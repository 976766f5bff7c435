package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucas2b/ponto-inteligente-api/services"
	"github.com/lucas2b/ponto-inteligente-api/web/common"
)

type AuthEndpoint struct {
	auth services.AuthService
}

func RegisterAuth(r *gin.RouterGroup, svc services.AuthService) {
	endpoint := &AuthEndpoint{auth: svc}
	r.POST("/auth", endpoint.Login)
}

func (ep *AuthEndpoint) Login(c *gin.Context) {
	var dto services.LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingErrors(err)...))
		return
	}

	token, err := ep.auth.Login(c.Request.Context(), dto)
	if err != nil {
		if errors.Is(err, services.ErrCredenciaisInvalidas) {
			c.JSON(http.StatusUnauthorized, common.NewErrorResponse("Email ou senha inválidos"))
			return
		}
		log.Printf("erro autenticando %s: %v", dto.Email, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Erro ao autenticar"))
		return
	}

	c.JSON(http.StatusOK, common.NewResponse(token))
}

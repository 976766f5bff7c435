package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucas2b/ponto-inteligente-api/services"
	"github.com/lucas2b/ponto-inteligente-api/web/common"
)

type CadastroEndpoint struct {
	cadastro services.CadastroService
}

func RegisterCadastro(r *gin.RouterGroup, svc services.CadastroService) {
	endpoint := &CadastroEndpoint{cadastro: svc}
	r.POST("/cadastrar-pf", endpoint.CadastrarPF)
	r.POST("/cadastrar-pj", endpoint.CadastrarPJ)
}

func (ep *CadastroEndpoint) CadastrarPF(c *gin.Context) {
	var dto services.CadastroPFDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingErrors(err)...))
		return
	}

	out, erros, err := ep.cadastro.CadastrarPF(c.Request.Context(), dto)
	if err != nil {
		log.Printf("erro cadastrando PF: %v", err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Erro ao cadastrar funcionário"))
		return
	}
	if erros.HasErrors() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(erros.Messages()...))
		return
	}

	c.JSON(http.StatusOK, common.NewResponse(out))
}

func (ep *CadastroEndpoint) CadastrarPJ(c *gin.Context) {
	var dto services.CadastroPJDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingErrors(err)...))
		return
	}

	out, erros, err := ep.cadastro.CadastrarPJ(c.Request.Context(), dto)
	if err != nil {
		log.Printf("erro cadastrando PJ: %v", err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Erro ao cadastrar empresa"))
		return
	}
	if erros.HasErrors() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(erros.Messages()...))
		return
	}

	c.JSON(http.StatusOK, common.NewResponse(out))
}

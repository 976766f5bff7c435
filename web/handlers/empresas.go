package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lucas2b/ponto-inteligente-api/services"
	"github.com/lucas2b/ponto-inteligente-api/web/common"
)

type EmpresaEndpoint struct {
	empresas services.EmpresaService
}

func RegisterEmpresas(r *gin.RouterGroup, svc services.EmpresaService) {
	endpoint := &EmpresaEndpoint{empresas: svc}
	r.GET("/empresas/cnpj/:cnpj", endpoint.BuscarPorCnpj)
}

func (ep *EmpresaEndpoint) BuscarPorCnpj(c *gin.Context) {
	cnpj := c.Param("cnpj")

	dto, erros, err := ep.empresas.BuscarPorCnpj(c.Request.Context(), cnpj)
	if err != nil {
		log.Printf("erro buscando empresa %s: %v", cnpj, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Erro ao buscar empresa"))
		return
	}
	if erros.HasErrors() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(erros.Messages()...))
		return
	}

	c.JSON(http.StatusOK, common.NewResponse(dto))
}

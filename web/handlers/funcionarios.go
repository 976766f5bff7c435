package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lucas2b/ponto-inteligente-api/services"
	"github.com/lucas2b/ponto-inteligente-api/web/common"
)

type FuncionarioEndpoint struct {
	funcionarios services.FuncionarioService
}

func RegisterFuncionarios(r *gin.RouterGroup, svc services.FuncionarioService) {
	endpoint := &FuncionarioEndpoint{funcionarios: svc}
	r.PUT("/funcionarios/:id", endpoint.Atualizar)
}

func (ep *FuncionarioEndpoint) Atualizar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Id inválido"))
		return
	}

	var dto services.FuncionarioDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingErrors(err)...))
		return
	}

	out, erros, err := ep.funcionarios.Atualizar(c.Request.Context(), id, dto)
	if err != nil {
		log.Printf("erro atualizando funcionário %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Erro ao atualizar funcionário"))
		return
	}
	if erros.HasErrors() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(erros.Messages()...))
		return
	}

	c.JSON(http.StatusOK, common.NewResponse(out))
}

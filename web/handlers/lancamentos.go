// Package handlers wires the ponto services to their REST routes.
package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/lucas2b/ponto-inteligente-api/repositories"
	"github.com/lucas2b/ponto-inteligente-api/services"
	"github.com/lucas2b/ponto-inteligente-api/web/common"
)

type LancamentoEndpoint struct {
	lancamentos  services.LancamentoService
	qtdPorPagina int
}

// RegisterLancamentos mounts the time punch routes. Removal is mounted on
// the admin group, everything else on the authenticated one.
func RegisterLancamentos(r, admin *gin.RouterGroup, svc services.LancamentoService, qtdPorPagina int) {
	endpoint := &LancamentoEndpoint{lancamentos: svc, qtdPorPagina: qtdPorPagina}
	r.GET("/lancamentos/funcionario/:funcionarioId", endpoint.ListarPorFuncionario)
	r.GET("/lancamentos/funcionario/:funcionarioId/relatorio", endpoint.Relatorio)
	r.GET("/lancamentos/:id", endpoint.BuscarPorID)
	r.POST("/lancamentos", endpoint.Cadastrar)
	r.PUT("/lancamentos/:id", endpoint.Atualizar)
	admin.DELETE("/lancamentos/:id", endpoint.Remover)
}

func (ep *LancamentoEndpoint) ListarPorFuncionario(c *gin.Context) {
	funcionarioID, err := strconv.ParseUint(c.Param("funcionarioId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Id de funcionário inválido"))
		return
	}

	page := repositories.PageRequest{
		Tamanho: ep.qtdPorPagina,
		Ord:     c.DefaultQuery("ord", "id"),
		Dir:     c.DefaultQuery("dir", "DESC"),
	}
	if pag, err := strconv.Atoi(c.DefaultQuery("pag", "0")); err == nil {
		page.Pagina = pag
	}

	log.Printf("buscando lançamentos do funcionário %d, página %d", funcionarioID, page.Pagina)

	dtos, total, err := ep.lancamentos.Listar(c.Request.Context(), funcionarioID, page)
	if err != nil {
		log.Printf("erro listando lançamentos: %v", err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Erro ao listar lançamentos"))
		return
	}

	c.JSON(http.StatusOK, common.NewResponse(common.NewPage(dtos, total, page.Pagina, page.Limit())))
}

func (ep *LancamentoEndpoint) BuscarPorID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Id inválido"))
		return
	}

	dto, erros, err := ep.lancamentos.BuscarPorID(c.Request.Context(), id)
	if err != nil {
		log.Printf("erro buscando lançamento %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Erro ao buscar lançamento"))
		return
	}
	if erros.HasErrors() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(erros.Messages()...))
		return
	}

	c.JSON(http.StatusOK, common.NewResponse(dto))
}

func (ep *LancamentoEndpoint) Cadastrar(c *gin.Context) {
	var dto services.LancamentoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingErrors(err)...))
		return
	}

	out, erros, err := ep.lancamentos.Cadastrar(c.Request.Context(), dto)
	if err != nil {
		log.Printf("erro cadastrando lançamento: %v", err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Erro ao cadastrar lançamento"))
		return
	}
	if erros.HasErrors() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(erros.Messages()...))
		return
	}

	c.JSON(http.StatusOK, common.NewResponse(out))
}

func (ep *LancamentoEndpoint) Atualizar(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Id inválido"))
		return
	}

	var dto services.LancamentoDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(common.FormatBindingErrors(err)...))
		return
	}

	out, erros, err := ep.lancamentos.Atualizar(c.Request.Context(), id, dto)
	if err != nil {
		log.Printf("erro atualizando lançamento %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Erro ao atualizar lançamento"))
		return
	}
	if erros.HasErrors() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(erros.Messages()...))
		return
	}

	c.JSON(http.StatusOK, common.NewResponse(out))
}

func (ep *LancamentoEndpoint) Remover(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse("Id inválido"))
		return
	}

	erros, err := ep.lancamentos.Remover(c.Request.Context(), id)
	if err != nil {
		log.Printf("erro removendo lançamento %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, common.NewErrorResponse("Erro ao remover lançamento"))
		return
	}
	if erros.HasErrors() {
		c.JSON(http.StatusBadRequest, common.NewErrorResponse(erros.Messages()...))
		return
	}

	c.JSON(http.StatusOK, common.NewResponse(gin.H{}))
}

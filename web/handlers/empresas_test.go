package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lucas2b/ponto-inteligente-api/services"
	"github.com/lucas2b/ponto-inteligente-api/validation"
)

type mockEmpresaService struct {
	buscarPorCnpjFunc func(ctx context.Context, cnpj string) (*services.EmpresaDTO, *validation.Errors, error)
}

func (m *mockEmpresaService) BuscarPorCnpj(ctx context.Context, cnpj string) (*services.EmpresaDTO, *validation.Errors, error) {
	return m.buscarPorCnpjFunc(ctx, cnpj)
}

func empresaRouter(svc services.EmpresaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterEmpresas(r.Group("/api"), svc)
	return r
}

func TestBuscarEmpresaPorCnpj(t *testing.T) {
	svc := &mockEmpresaService{
		buscarPorCnpjFunc: func(ctx context.Context, cnpj string) (*services.EmpresaDTO, *validation.Errors, error) {
			assert.Equal(t, "51463645000100", cnpj)
			return &services.EmpresaDTO{
				ID:          1,
				RazaoSocial: "Empresa de Exemplo",
				Cnpj:        cnpj,
				DataCriacao: "2024-01-10 08:00:00",
			}, validation.New(), nil
		},
	}

	rec := doJSON(t, empresaRouter(svc), http.MethodGet, "/api/empresas/cnpj/51463645000100", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Empty(t, env.Errors)
	assert.Equal(t, "Empresa de Exemplo", env.Data["razaoSocial"])
	assert.Equal(t, "51463645000100", env.Data["cnpj"])
}

func TestBuscarEmpresaPorCnpjInexistente(t *testing.T) {
	svc := &mockEmpresaService{
		buscarPorCnpjFunc: func(ctx context.Context, cnpj string) (*services.EmpresaDTO, *validation.Errors, error) {
			erros := validation.New()
			erros.Add("empresa", "Empresa não encontrada para o CNPJ: "+cnpj)
			return nil, erros, nil
		},
	}

	rec := doJSON(t, empresaRouter(svc), http.MethodGet, "/api/empresas/cnpj/00000000000000", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, []string{"Empresa não encontrada para o CNPJ: 00000000000000"}, env.Errors)
}

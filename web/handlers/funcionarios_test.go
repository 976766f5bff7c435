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

type mockFuncionarioService struct {
	atualizarFunc func(ctx context.Context, id uint64, dto services.FuncionarioDTO) (*services.FuncionarioDTO, *validation.Errors, error)
}

func (m *mockFuncionarioService) Atualizar(ctx context.Context, id uint64, dto services.FuncionarioDTO) (*services.FuncionarioDTO, *validation.Errors, error) {
	return m.atualizarFunc(ctx, id, dto)
}

func funcionarioRouter(svc services.FuncionarioService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterFuncionarios(r.Group("/api"), svc)
	return r
}

func TestAtualizarFuncionario(t *testing.T) {
	svc := &mockFuncionarioService{
		atualizarFunc: func(ctx context.Context, id uint64, dto services.FuncionarioDTO) (*services.FuncionarioDTO, *validation.Errors, error) {
			assert.Equal(t, uint64(4), id)
			out := dto
			out.ID = id
			out.Senha = nil
			return &out, validation.New(), nil
		},
	}

	rec := doJSON(t, funcionarioRouter(svc), http.MethodPut, "/api/funcionarios/4", services.FuncionarioDTO{
		Nome:  "Fulano Atualizado",
		Email: "fulano@example.com",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Empty(t, env.Errors)
	assert.Equal(t, float64(4), env.Data["id"])
	assert.Equal(t, "Fulano Atualizado", env.Data["nome"])
	assert.NotContains(t, env.Data, "senha")
}

func TestAtualizarFuncionarioInexistente(t *testing.T) {
	svc := &mockFuncionarioService{
		atualizarFunc: func(ctx context.Context, id uint64, dto services.FuncionarioDTO) (*services.FuncionarioDTO, *validation.Errors, error) {
			erros := validation.New()
			erros.Add("funcionario", "Funcionário não encontrado na base de dados")
			return nil, erros, nil
		},
	}

	rec := doJSON(t, funcionarioRouter(svc), http.MethodPut, "/api/funcionarios/999", services.FuncionarioDTO{
		Nome:  "Fulano",
		Email: "fulano@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, []string{"Funcionário não encontrado na base de dados"}, env.Errors)
}

func TestAtualizarFuncionarioIDInvalido(t *testing.T) {
	svc := &mockFuncionarioService{}
	rec := doJSON(t, funcionarioRouter(svc), http.MethodPut, "/api/funcionarios/abc", services.FuncionarioDTO{
		Nome:  "Fulano",
		Email: "fulano@example.com",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, []string{"Id inválido"}, env.Errors)
}

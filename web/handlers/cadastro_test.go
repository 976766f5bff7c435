package handlers

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lucas2b/ponto-inteligente-api/services"
	"github.com/lucas2b/ponto-inteligente-api/validation"
)

type mockCadastroService struct {
	cadastrarPFFunc func(ctx context.Context, dto services.CadastroPFDTO) (*services.CadastroPFDTO, *validation.Errors, error)
	cadastrarPJFunc func(ctx context.Context, dto services.CadastroPJDTO) (*services.CadastroPJDTO, *validation.Errors, error)
}

func (m *mockCadastroService) CadastrarPF(ctx context.Context, dto services.CadastroPFDTO) (*services.CadastroPFDTO, *validation.Errors, error) {
	return m.cadastrarPFFunc(ctx, dto)
}

func (m *mockCadastroService) CadastrarPJ(ctx context.Context, dto services.CadastroPJDTO) (*services.CadastroPJDTO, *validation.Errors, error) {
	return m.cadastrarPJFunc(ctx, dto)
}

func cadastroRouter(svc services.CadastroService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterCadastro(r.Group("/api"), svc)
	return r
}

func TestCadastrarPJ(t *testing.T) {
	svc := &mockCadastroService{
		cadastrarPJFunc: func(ctx context.Context, dto services.CadastroPJDTO) (*services.CadastroPJDTO, *validation.Errors, error) {
			out := dto
			out.ID = 1
			out.Senha = ""
			return &out, validation.New(), nil
		},
	}

	rec := doJSON(t, cadastroRouter(svc), http.MethodPost, "/api/cadastrar-pj", services.CadastroPJDTO{
		Nome:        "Fulano de Tal",
		Email:       "fulano@example.com",
		Senha:       "123456",
		Cpf:         "24291173474",
		RazaoSocial: "Empresa de Exemplo",
		Cnpj:        "51463645000100",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Empty(t, env.Errors)
	assert.Equal(t, float64(1), env.Data["id"])
	assert.Equal(t, "51463645000100", env.Data["cnpj"])
	assert.NotContains(t, env.Data, "senha")
}

func TestCadastrarPJEmpresaExistente(t *testing.T) {
	svc := &mockCadastroService{
		cadastrarPJFunc: func(ctx context.Context, dto services.CadastroPJDTO) (*services.CadastroPJDTO, *validation.Errors, error) {
			erros := validation.New()
			erros.Add("empresa", "Empresa já existente.")
			return nil, erros, nil
		},
	}

	rec := doJSON(t, cadastroRouter(svc), http.MethodPost, "/api/cadastrar-pj", services.CadastroPJDTO{
		Nome:        "Fulano de Tal",
		Email:       "fulano@example.com",
		Senha:       "123456",
		Cpf:         "24291173474",
		RazaoSocial: "Empresa de Exemplo",
		Cnpj:        "51463645000100",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, []string{"Empresa já existente."}, env.Errors)
}

func TestCadastrarPFEmailInvalido(t *testing.T) {
	svc := &mockCadastroService{
		cadastrarPFFunc: func(ctx context.Context, dto services.CadastroPFDTO) (*services.CadastroPFDTO, *validation.Errors, error) {
			t.Fatal("service não deveria ser chamado com corpo inválido")
			return nil, nil, nil
		},
	}

	rec := doJSON(t, cadastroRouter(svc), http.MethodPost, "/api/cadastrar-pf", map[string]interface{}{
		"nome":  "Fulano de Tal",
		"email": "sem-arroba",
		"senha": "123456",
		"cpf":   "24291173474",
		"cnpj":  "51463645000100",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.NotEmpty(t, env.Errors)
}

func TestCadastrarPFErroDeInfraestrutura(t *testing.T) {
	svc := &mockCadastroService{
		cadastrarPFFunc: func(ctx context.Context, dto services.CadastroPFDTO) (*services.CadastroPFDTO, *validation.Errors, error) {
			return nil, nil, errors.New("conexão recusada")
		},
	}

	rec := doJSON(t, cadastroRouter(svc), http.MethodPost, "/api/cadastrar-pf", services.CadastroPFDTO{
		Nome:  "Fulano de Tal",
		Email: "fulano@example.com",
		Senha: "123456",
		Cpf:   "24291173474",
		Cnpj:  "51463645000100",
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, []string{"Erro ao cadastrar funcionário"}, env.Errors)
}

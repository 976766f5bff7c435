package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lucas2b/ponto-inteligente-api/services"
)

type mockAuthService struct {
	loginFunc func(ctx context.Context, dto services.LoginDTO) (*services.TokenDTO, error)
}

func (m *mockAuthService) Login(ctx context.Context, dto services.LoginDTO) (*services.TokenDTO, error) {
	return m.loginFunc(ctx, dto)
}

func authRouter(svc services.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterAuth(r.Group("/api"), svc)
	return r
}

func TestLoginEndpoint(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, dto services.LoginDTO) (*services.TokenDTO, error) {
			assert.Equal(t, "fulano@example.com", dto.Email)
			return &services.TokenDTO{Token: "assinado"}, nil
		},
	}

	rec := doJSON(t, authRouter(svc), http.MethodPost, "/api/auth", services.LoginDTO{
		Email: "fulano@example.com",
		Senha: "123456",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Empty(t, env.Errors)
	assert.Equal(t, "assinado", env.Data["token"])
}

func TestLoginEndpointCredenciaisInvalidas(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, dto services.LoginDTO) (*services.TokenDTO, error) {
			return nil, services.ErrCredenciaisInvalidas
		},
	}

	rec := doJSON(t, authRouter(svc), http.MethodPost, "/api/auth", services.LoginDTO{
		Email: "fulano@example.com",
		Senha: "errada",
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, []string{"Email ou senha inválidos"}, env.Errors)
}

func TestLoginEndpointCorpoVazio(t *testing.T) {
	svc := &mockAuthService{
		loginFunc: func(ctx context.Context, dto services.LoginDTO) (*services.TokenDTO, error) {
			t.Fatal("service não deveria ser chamado com corpo inválido")
			return nil, nil
		},
	}

	rec := doJSON(t, authRouter(svc), http.MethodPost, "/api/auth", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, []string{"Corpo da requisição vazio"}, env.Errors)
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/lucas2b/ponto-inteligente-api/core"
	"github.com/lucas2b/ponto-inteligente-api/security"
)

var authTestSecret = []byte("segredo-de-teste")

func authTestRepo(t *testing.T) *mockFuncionarioRepo {
	t.Helper()
	hash, err := security.GerarBcrypt("123456", bcrypt.MinCost)
	require.NoError(t, err)
	funcionario := &core.Funcionario{
		ID:     42,
		Nome:   "Fulano de Tal",
		Email:  "fulano@example.com",
		Senha:  hash,
		Perfil: core.PerfilUsuario,
	}
	return &mockFuncionarioRepo{
		buscarPorEmailFunc: func(ctx context.Context, email string) (*core.Funcionario, error) {
			if email == funcionario.Email {
				return funcionario, nil
			}
			return nil, nil
		},
	}
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(authTestRepo(t), authTestSecret, time.Hour)

	token, err := svc.Login(context.Background(), LoginDTO{Email: "fulano@example.com", Senha: "123456"})
	assert.NoError(t, err)
	require.NotNil(t, token)

	claims, err := security.ParseIdentityToken(token.Token, authTestSecret)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.FuncionarioID)
	assert.Equal(t, "fulano@example.com", claims.Email)
	assert.Equal(t, core.PerfilUsuario, claims.Perfil)
}

func TestLoginSenhaIncorreta(t *testing.T) {
	svc := NewAuthService(authTestRepo(t), authTestSecret, time.Hour)

	token, err := svc.Login(context.Background(), LoginDTO{Email: "fulano@example.com", Senha: "errada"})
	assert.Nil(t, token)
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestLoginEmailDesconhecido(t *testing.T) {
	svc := NewAuthService(authTestRepo(t), authTestSecret, time.Hour)

	token, err := svc.Login(context.Background(), LoginDTO{Email: "ninguem@example.com", Senha: "123456"})
	assert.Nil(t, token)
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestLoginErroDeInfraestrutura(t *testing.T) {
	falha := errors.New("conexão recusada")
	repo := &mockFuncionarioRepo{
		buscarPorEmailFunc: func(ctx context.Context, email string) (*core.Funcionario, error) {
			return nil, falha
		},
	}
	svc := NewAuthService(repo, authTestSecret, time.Hour)

	token, err := svc.Login(context.Background(), LoginDTO{Email: "fulano@example.com", Senha: "123456"})
	assert.Nil(t, token)
	assert.ErrorIs(t, err, falha)
}

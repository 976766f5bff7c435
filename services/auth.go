package services

import (
	"context"
	"errors"
	"time"

	"github.com/lucas2b/ponto-inteligente-api/repositories"
	"github.com/lucas2b/ponto-inteligente-api/security"
)

var ErrCredenciaisInvalidas = errors.New("email ou senha inválidos")

type AuthService interface {
	Login(ctx context.Context, dto LoginDTO) (*TokenDTO, error)
}

type authService struct {
	funcionarioRepo repositories.FuncionarioRepository
	jwtSecret       []byte
	jwtExpiry       time.Duration
}

func NewAuthService(funcionarioRepo repositories.FuncionarioRepository, jwtSecret []byte, jwtExpiry time.Duration) AuthService {
	return &authService{
		funcionarioRepo: funcionarioRepo,
		jwtSecret:       jwtSecret,
		jwtExpiry:       jwtExpiry,
	}
}

func (s *authService) Login(ctx context.Context, dto LoginDTO) (*TokenDTO, error) {
	funcionario, err := s.funcionarioRepo.BuscarPorEmail(ctx, dto.Email)
	if err != nil {
		return nil, err
	}
	if funcionario == nil || !security.SenhaValida(dto.Senha, funcionario.Senha) {
		return nil, ErrCredenciaisInvalidas
	}

	token, err := security.CreateIdentityToken(security.Identity{
		FuncionarioID: funcionario.ID,
		Email:         funcionario.Email,
		Perfil:        funcionario.Perfil,
	}, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return nil, err
	}

	return &TokenDTO{Token: token}, nil
}

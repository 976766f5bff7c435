package services

import (
	"context"
	"fmt"
	"log"

	"github.com/lucas2b/ponto-inteligente-api/repositories"
	"github.com/lucas2b/ponto-inteligente-api/security"
	"github.com/lucas2b/ponto-inteligente-api/validation"
)

type FuncionarioService interface {
	Atualizar(ctx context.Context, id uint64, dto FuncionarioDTO) (*FuncionarioDTO, *validation.Errors, error)
}

type funcionarioService struct {
	funcionarioRepo repositories.FuncionarioRepository
	bcryptCost      int
}

func NewFuncionarioService(funcionarioRepo repositories.FuncionarioRepository, bcryptCost int) FuncionarioService {
	return &funcionarioService{
		funcionarioRepo: funcionarioRepo,
		bcryptCost:      bcryptCost,
	}
}

// Atualizar applies full-replace semantics to the three optional
// numeric fields: a value absent from the submission clears the stored
// one instead of preserving it.
func (s *funcionarioService) Atualizar(ctx context.Context, id uint64, dto FuncionarioDTO) (*FuncionarioDTO, *validation.Errors, error) {
	erros := validation.New()

	funcionario, err := s.funcionarioRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if funcionario == nil {
		erros.Add("funcionario", "Funcionário não encontrado na base de dados")
		return nil, erros, nil
	}

	funcionario.Nome = dto.Nome

	if funcionario.Email != dto.Email {
		outro, err := s.funcionarioRepo.BuscarPorEmail(ctx, dto.Email)
		if err != nil {
			return nil, nil, err
		}
		if outro != nil {
			erros.Add("email", "Email já cadastrado.")
		}
		funcionario.Email = dto.Email
	}

	funcionario.QtdHorasAlmoco = nil
	if dto.QtdHorasAlmoco != nil {
		funcionario.QtdHorasAlmoco = parseOptionalFloat("qtdHorasAlmoco", *dto.QtdHorasAlmoco, erros)
	}

	funcionario.QtdHorasTrabalhoDia = nil
	if dto.QtdHorasTrabalhoDia != nil {
		funcionario.QtdHorasTrabalhoDia = parseOptionalFloat("qtdHorasTrabalhoDia", *dto.QtdHorasTrabalhoDia, erros)
	}

	funcionario.ValorHora = nil
	if dto.ValorHora != nil {
		funcionario.ValorHora = parseOptionalFloat("valorHora", *dto.ValorHora, erros)
	}

	if dto.Senha != nil && *dto.Senha != "" {
		funcionario.Senha, err = security.GerarBcrypt(*dto.Senha, s.bcryptCost)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	if erros.HasErrors() {
		log.Printf("erro validando dados do funcionário: %v", erros.Messages())
		return nil, erros, nil
	}

	if err := s.funcionarioRepo.Salvar(ctx, funcionario); err != nil {
		return nil, nil, err
	}

	out := FuncionarioDTO{
		ID:    funcionario.ID,
		Nome:  funcionario.Nome,
		Email: funcionario.Email,
	}
	formatOptionalFloat(funcionario.QtdHorasAlmoco, &out.QtdHorasAlmoco)
	formatOptionalFloat(funcionario.QtdHorasTrabalhoDia, &out.QtdHorasTrabalhoDia)
	formatOptionalFloat(funcionario.ValorHora, &out.ValorHora)

	return &out, erros, nil
}

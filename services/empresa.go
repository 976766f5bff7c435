package services

import (
	"context"

	"github.com/lucas2b/ponto-inteligente-api/repositories"
	"github.com/lucas2b/ponto-inteligente-api/utils"
	"github.com/lucas2b/ponto-inteligente-api/validation"
)

type EmpresaService interface {
	BuscarPorCnpj(ctx context.Context, cnpj string) (*EmpresaDTO, *validation.Errors, error)
}

type empresaService struct {
	empresaRepo repositories.EmpresaRepository
}

func NewEmpresaService(empresaRepo repositories.EmpresaRepository) EmpresaService {
	return &empresaService{empresaRepo: empresaRepo}
}

func (s *empresaService) BuscarPorCnpj(ctx context.Context, cnpj string) (*EmpresaDTO, *validation.Errors, error) {
	erros := validation.New()

	empresa, err := s.empresaRepo.BuscarPorCnpj(ctx, cnpj)
	if err != nil {
		return nil, nil, err
	}
	if empresa == nil {
		erros.Add("empresa", "Empresa não encontrada para o CNPJ: "+cnpj)
		return nil, erros, nil
	}

	dto := EmpresaDTO{
		ID:          empresa.ID,
		RazaoSocial: empresa.RazaoSocial,
		Cnpj:        empresa.Cnpj,
		DataCriacao: utils.FormatDateTime(empresa.DataCriacao),
	}
	return &dto, erros, nil
}

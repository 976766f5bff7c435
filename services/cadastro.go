package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"gorm.io/gorm"

	"github.com/lucas2b/ponto-inteligente-api/core"
	"github.com/lucas2b/ponto-inteligente-api/repositories"
	"github.com/lucas2b/ponto-inteligente-api/security"
	"github.com/lucas2b/ponto-inteligente-api/validation"
)

type CadastroService interface {
	CadastrarPF(ctx context.Context, dto CadastroPFDTO) (*CadastroPFDTO, *validation.Errors, error)
	CadastrarPJ(ctx context.Context, dto CadastroPJDTO) (*CadastroPJDTO, *validation.Errors, error)
}

type cadastroService struct {
	db              *gorm.DB
	empresaRepo     repositories.EmpresaRepository
	funcionarioRepo repositories.FuncionarioRepository
	bcryptCost      int
}

func NewCadastroService(db *gorm.DB, empresaRepo repositories.EmpresaRepository, funcionarioRepo repositories.FuncionarioRepository, bcryptCost int) CadastroService {
	return &cadastroService{
		db:              db,
		empresaRepo:     empresaRepo,
		funcionarioRepo: funcionarioRepo,
		bcryptCost:      bcryptCost,
	}
}

func (s *cadastroService) CadastrarPF(ctx context.Context, dto CadastroPFDTO) (*CadastroPFDTO, *validation.Errors, error) {
	erros := validation.New()

	empresa, err := s.empresaRepo.BuscarPorCnpj(ctx, dto.Cnpj)
	if err != nil {
		return nil, nil, err
	}
	if empresa == nil {
		erros.Add("empresa", "Empresa não cadastrada com esse CNPJ")
	}

	if err := s.validarFuncionarioUnico(ctx, dto.Cpf, dto.Email, erros); err != nil {
		return nil, nil, err
	}

	funcionario := &core.Funcionario{
		Nome:   dto.Nome,
		Email:  dto.Email,
		Cpf:    dto.Cpf,
		Perfil: core.PerfilUsuario,
	}

	funcionario.Senha, err = security.GerarBcrypt(dto.Senha, s.bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	if dto.QtdHorasAlmoco != nil {
		funcionario.QtdHorasAlmoco = parseOptionalFloat("qtdHorasAlmoco", *dto.QtdHorasAlmoco, erros)
	}
	if dto.QtdHorasTrabalhoDia != nil {
		funcionario.QtdHorasTrabalhoDia = parseOptionalFloat("qtdHorasTrabalhoDia", *dto.QtdHorasTrabalhoDia, erros)
	}
	if dto.ValorHora != nil {
		funcionario.ValorHora = parseOptionalFloat("valorHora", *dto.ValorHora, erros)
	}

	if erros.HasErrors() {
		log.Printf("erro validando cadastro de PF: %v", erros.Messages())
		return nil, erros, nil
	}

	funcionario.EmpresaID = empresa.ID
	if err := s.funcionarioRepo.Salvar(ctx, funcionario); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// A concurrent registration slipped past the explicit checks.
			erros.Add("funcionario", "Funcionário já cadastrado com este CPF ou email")
			return nil, erros, nil
		}
		return nil, nil, err
	}

	out := CadastroPFDTO{
		ID:    funcionario.ID,
		Nome:  funcionario.Nome,
		Email: funcionario.Email,
		Cpf:   funcionario.Cpf,
		Cnpj:  empresa.Cnpj,
	}
	formatOptionalFloat(funcionario.QtdHorasAlmoco, &out.QtdHorasAlmoco)
	formatOptionalFloat(funcionario.QtdHorasTrabalhoDia, &out.QtdHorasTrabalhoDia)
	formatOptionalFloat(funcionario.ValorHora, &out.ValorHora)

	return &out, erros, nil
}

func (s *cadastroService) CadastrarPJ(ctx context.Context, dto CadastroPJDTO) (*CadastroPJDTO, *validation.Errors, error) {
	erros := validation.New()

	empresaExistente, err := s.empresaRepo.BuscarPorCnpj(ctx, dto.Cnpj)
	if err != nil {
		return nil, nil, err
	}
	if empresaExistente != nil {
		erros.Add("empresa", "Empresa já existente.")
	}

	if err := s.validarFuncionarioUnico(ctx, dto.Cpf, dto.Email, erros); err != nil {
		return nil, nil, err
	}

	if erros.HasErrors() {
		log.Printf("erro validando cadastro de PJ: %v", erros.Messages())
		return nil, erros, nil
	}

	empresa := &core.Empresa{
		RazaoSocial: dto.RazaoSocial,
		Cnpj:        dto.Cnpj,
	}

	funcionario := &core.Funcionario{
		Nome:   dto.Nome,
		Email:  dto.Email,
		Cpf:    dto.Cpf,
		Perfil: core.PerfilAdmin,
	}

	funcionario.Senha, err = security.GerarBcrypt(dto.Senha, s.bcryptCost)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	// Empresa and its admin are created together or not at all.
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repositories.NewEmpresaRepository(tx).Salvar(ctx, empresa); err != nil {
			return err
		}
		funcionario.EmpresaID = empresa.ID
		return repositories.NewFuncionarioRepository(tx).Salvar(ctx, funcionario)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			erros.Add("cadastro", "CNPJ, CPF ou email já cadastrado")
			return nil, erros, nil
		}
		return nil, nil, err
	}

	out := CadastroPJDTO{
		ID:          funcionario.ID,
		Nome:        funcionario.Nome,
		Email:       funcionario.Email,
		Cpf:         funcionario.Cpf,
		RazaoSocial: empresa.RazaoSocial,
		Cnpj:        empresa.Cnpj,
	}
	return &out, erros, nil
}

func (s *cadastroService) validarFuncionarioUnico(ctx context.Context, cpf, email string, erros *validation.Errors) error {
	existente, err := s.funcionarioRepo.BuscarPorCpf(ctx, cpf)
	if err != nil {
		return err
	}
	if existente != nil {
		erros.Add("funcionario", "Funcionário já cadastrado com este CPF: "+existente.Cpf)
	}

	existente, err = s.funcionarioRepo.BuscarPorEmail(ctx, email)
	if err != nil {
		return err
	}
	if existente != nil {
		erros.Add("funcionario", "Funcionário já cadastrado com este email: "+existente.Email)
	}
	return nil
}

func parseOptionalFloat(campo, valor string, erros *validation.Errors) *float64 {
	f, err := strconv.ParseFloat(valor, 64)
	if err != nil {
		erros.Add(campo, fmt.Sprintf("Valor inválido para %s: %s", campo, valor))
		return nil
	}
	return &f
}

func formatOptionalFloat(valor *float64, destino **string) {
	if valor == nil {
		return
	}
	s := strconv.FormatFloat(*valor, 'f', -1, 64)
	*destino = &s
}

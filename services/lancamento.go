// Package services implements the registration, update and time punch
// pipelines. Every method reports domain problems through a
// validation.Errors accumulator and reserves the error return for
// infrastructure failures.
package services

import (
	"context"
	"fmt"
	"log"

	"github.com/lucas2b/ponto-inteligente-api/core"
	"github.com/lucas2b/ponto-inteligente-api/repositories"
	"github.com/lucas2b/ponto-inteligente-api/utils"
	"github.com/lucas2b/ponto-inteligente-api/validation"
)

type LancamentoService interface {
	BuscarPorID(ctx context.Context, id uint64) (*LancamentoDTO, *validation.Errors, error)
	Listar(ctx context.Context, funcionarioID uint64, page repositories.PageRequest) ([]LancamentoDTO, int64, error)
	Cadastrar(ctx context.Context, dto LancamentoDTO) (*LancamentoDTO, *validation.Errors, error)
	Atualizar(ctx context.Context, id uint64, dto LancamentoDTO) (*LancamentoDTO, *validation.Errors, error)
	Remover(ctx context.Context, id uint64) (*validation.Errors, error)
}

type lancamentoService struct {
	lancamentoRepo  repositories.LancamentoRepository
	funcionarioRepo repositories.FuncionarioRepository
}

func NewLancamentoService(lancamentoRepo repositories.LancamentoRepository, funcionarioRepo repositories.FuncionarioRepository) LancamentoService {
	return &lancamentoService{
		lancamentoRepo:  lancamentoRepo,
		funcionarioRepo: funcionarioRepo,
	}
}

func (s *lancamentoService) BuscarPorID(ctx context.Context, id uint64) (*LancamentoDTO, *validation.Errors, error) {
	erros := validation.New()

	lancamento, err := s.lancamentoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if lancamento == nil {
		erros.Add("lancamento", fmt.Sprintf("Lançamento não encontrado para o id %d", id))
		return nil, erros, nil
	}

	dto := converterLancamentoEmDTO(lancamento)
	return &dto, erros, nil
}

func (s *lancamentoService) Listar(ctx context.Context, funcionarioID uint64, page repositories.PageRequest) ([]LancamentoDTO, int64, error) {
	lancamentos, total, err := s.lancamentoRepo.BuscarPorFuncionarioID(ctx, funcionarioID, page)
	if err != nil {
		return nil, 0, err
	}

	dtos := make([]LancamentoDTO, len(lancamentos))
	for i := range lancamentos {
		dtos[i] = converterLancamentoEmDTO(&lancamentos[i])
	}
	return dtos, total, nil
}

func (s *lancamentoService) Cadastrar(ctx context.Context, dto LancamentoDTO) (*LancamentoDTO, *validation.Errors, error) {
	dto.ID = nil
	return s.persistir(ctx, dto)
}

func (s *lancamentoService) Atualizar(ctx context.Context, id uint64, dto LancamentoDTO) (*LancamentoDTO, *validation.Errors, error) {
	dto.ID = &id
	return s.persistir(ctx, dto)
}

func (s *lancamentoService) persistir(ctx context.Context, dto LancamentoDTO) (*LancamentoDTO, *validation.Errors, error) {
	erros := validation.New()

	if err := s.validarFuncionario(ctx, dto, erros); err != nil {
		return nil, nil, err
	}

	lancamento, err := s.converterDTOEmLancamento(ctx, dto, erros)
	if err != nil {
		return nil, nil, err
	}

	if erros.HasErrors() {
		log.Printf("erro validando lançamento: %v", erros.Messages())
		return nil, erros, nil
	}

	if err := s.lancamentoRepo.Salvar(ctx, lancamento); err != nil {
		return nil, nil, err
	}

	out := converterLancamentoEmDTO(lancamento)
	return &out, erros, nil
}

func (s *lancamentoService) Remover(ctx context.Context, id uint64) (*validation.Errors, error) {
	erros := validation.New()

	lancamento, err := s.lancamentoRepo.BuscarPorID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lancamento == nil {
		erros.Add("lancamento", fmt.Sprintf("Erro ao remover lançamento. Registro não encontrado para o id %d", id))
		return erros, nil
	}

	if err := s.lancamentoRepo.Remover(ctx, id); err != nil {
		return nil, err
	}
	return erros, nil
}

// validarFuncionario checks that the submission names an existing
// funcionario. One lookup answers both the existence check and the
// ownership reference used later by the conversion.
func (s *lancamentoService) validarFuncionario(ctx context.Context, dto LancamentoDTO, erros *validation.Errors) error {
	if dto.FuncionarioID == nil {
		erros.Add("funcionario", "Funcionário ID não informado")
		return nil
	}

	funcionario, err := s.funcionarioRepo.BuscarPorID(ctx, *dto.FuncionarioID)
	if err != nil {
		return err
	}
	if funcionario == nil {
		erros.Add("funcionario", "Funcionário não encontrado. ID inexistente.")
	}
	return nil
}

// converterDTOEmLancamento builds the mutation target. All field problems
// are accumulated so one submission surfaces every error at once; nothing
// aborts mid way.
func (s *lancamentoService) converterDTOEmLancamento(ctx context.Context, dto LancamentoDTO, erros *validation.Errors) (*core.Lancamento, error) {
	lancamento := &core.Lancamento{}

	if dto.ID != nil {
		existente, err := s.lancamentoRepo.BuscarPorID(ctx, *dto.ID)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			// Update in place. The id and the owning funcionario never change.
			lancamento = existente
		} else {
			erros.Add("lancamento", "Lançamento não encontrado.")
		}
	} else if dto.FuncionarioID != nil {
		lancamento.FuncionarioID = *dto.FuncionarioID
	}

	lancamento.Descricao = dto.Descricao
	lancamento.Localizacao = dto.Localizacao

	if data, err := utils.ParseDateTime(dto.Data); err != nil {
		erros.Add("data", "Data inválida. Formato esperado yyyy-MM-dd HH:mm:ss")
	} else {
		lancamento.Data = data
	}

	if core.TipoValido(dto.Tipo) {
		lancamento.Tipo = core.Tipo(dto.Tipo)
	} else {
		erros.Add("tipo", "Tipo inválido.")
	}

	return lancamento, nil
}

func converterLancamentoEmDTO(lancamento *core.Lancamento) LancamentoDTO {
	id := lancamento.ID
	funcionarioID := lancamento.FuncionarioID
	return LancamentoDTO{
		ID:            &id,
		Data:          utils.FormatDateTime(lancamento.Data),
		Tipo:          string(lancamento.Tipo),
		Descricao:     lancamento.Descricao,
		Localizacao:   lancamento.Localizacao,
		FuncionarioID: &funcionarioID,
	}
}

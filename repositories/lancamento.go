package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lucas2b/ponto-inteligente-api/core"
)

type LancamentoRepository interface {
	BuscarPorID(ctx context.Context, id uint64) (*core.Lancamento, error)
	BuscarPorFuncionarioID(ctx context.Context, funcionarioID uint64, page PageRequest) ([]core.Lancamento, int64, error)
	Salvar(ctx context.Context, lancamento *core.Lancamento) error
	Remover(ctx context.Context, id uint64) error
}

type lancamentoRepository struct {
	db *gorm.DB
}

func NewLancamentoRepository(db *gorm.DB) LancamentoRepository {
	return &lancamentoRepository{db: db}
}

func (r *lancamentoRepository) BuscarPorID(ctx context.Context, id uint64) (*core.Lancamento, error) {
	var lancamento core.Lancamento
	err := r.db.WithContext(ctx).First(&lancamento, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find lancamento by id %d: %w", id, err)
	}
	return &lancamento, nil
}

func (r *lancamentoRepository) BuscarPorFuncionarioID(ctx context.Context, funcionarioID uint64, page PageRequest) ([]core.Lancamento, int64, error) {
	base := r.db.WithContext(ctx).Model(&core.Lancamento{}).
		Where("funcionario_id = ?", funcionarioID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count lancamentos of funcionario %d: %w", funcionarioID, err)
	}

	var lancamentos []core.Lancamento
	err := base.
		Order(page.OrderClause()).
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&lancamentos).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list lancamentos of funcionario %d: %w", funcionarioID, err)
	}

	return lancamentos, total, nil
}

func (r *lancamentoRepository) Salvar(ctx context.Context, lancamento *core.Lancamento) error {
	if err := r.db.WithContext(ctx).Save(lancamento).Error; err != nil {
		return fmt.Errorf("failed to save lancamento: %w", err)
	}
	return nil
}

func (r *lancamentoRepository) Remover(ctx context.Context, id uint64) error {
	if err := r.db.WithContext(ctx).Delete(&core.Lancamento{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete lancamento %d: %w", id, err)
	}
	return nil
}

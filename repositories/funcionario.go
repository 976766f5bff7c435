package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lucas2b/ponto-inteligente-api/core"
)

type FuncionarioRepository interface {
	BuscarPorCpf(ctx context.Context, cpf string) (*core.Funcionario, error)
	BuscarPorEmail(ctx context.Context, email string) (*core.Funcionario, error)
	BuscarPorID(ctx context.Context, id uint64) (*core.Funcionario, error)
	Salvar(ctx context.Context, funcionario *core.Funcionario) error
}

type funcionarioRepository struct {
	db *gorm.DB
}

func NewFuncionarioRepository(db *gorm.DB) FuncionarioRepository {
	return &funcionarioRepository{db: db}
}

func (r *funcionarioRepository) BuscarPorCpf(ctx context.Context, cpf string) (*core.Funcionario, error) {
	return r.buscar(ctx, "cpf = ?", cpf)
}

func (r *funcionarioRepository) BuscarPorEmail(ctx context.Context, email string) (*core.Funcionario, error) {
	return r.buscar(ctx, "email = ?", email)
}

func (r *funcionarioRepository) BuscarPorID(ctx context.Context, id uint64) (*core.Funcionario, error) {
	var funcionario core.Funcionario
	err := r.db.WithContext(ctx).First(&funcionario, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find funcionario by id %d: %w", id, err)
	}
	return &funcionario, nil
}

func (r *funcionarioRepository) buscar(ctx context.Context, query string, arg string) (*core.Funcionario, error) {
	var funcionario core.Funcionario
	err := r.db.WithContext(ctx).Where(query, arg).First(&funcionario).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find funcionario: %w", err)
	}
	return &funcionario, nil
}

func (r *funcionarioRepository) Salvar(ctx context.Context, funcionario *core.Funcionario) error {
	if err := r.db.WithContext(ctx).Save(funcionario).Error; err != nil {
		return fmt.Errorf("failed to save funcionario: %w", err)
	}
	return nil
}

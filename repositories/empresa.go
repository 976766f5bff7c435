// Package repositories provides the gorm backed resolvers for the
// ponto entities. Natural key lookups return (nil, nil) when nothing
// matches; absence is an answer here, not an error.
package repositories

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/lucas2b/ponto-inteligente-api/core"
)

type EmpresaRepository interface {
	BuscarPorCnpj(ctx context.Context, cnpj string) (*core.Empresa, error)
	BuscarPorID(ctx context.Context, id uint64) (*core.Empresa, error)
	Salvar(ctx context.Context, empresa *core.Empresa) error
}

type empresaRepository struct {
	db *gorm.DB
}

func NewEmpresaRepository(db *gorm.DB) EmpresaRepository {
	return &empresaRepository{db: db}
}

func (r *empresaRepository) BuscarPorCnpj(ctx context.Context, cnpj string) (*core.Empresa, error) {
	var empresa core.Empresa
	err := r.db.WithContext(ctx).Where("cnpj = ?", cnpj).First(&empresa).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find empresa by cnpj %s: %w", cnpj, err)
	}
	return &empresa, nil
}

func (r *empresaRepository) BuscarPorID(ctx context.Context, id uint64) (*core.Empresa, error) {
	var empresa core.Empresa
	err := r.db.WithContext(ctx).First(&empresa, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find empresa by id %d: %w", id, err)
	}
	return &empresa, nil
}

func (r *empresaRepository) Salvar(ctx context.Context, empresa *core.Empresa) error {
	if err := r.db.WithContext(ctx).Save(empresa).Error; err != nil {
		return fmt.Errorf("failed to save empresa: %w", err)
	}
	return nil
}

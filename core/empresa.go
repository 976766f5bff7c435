package core

import "time"

type Empresa struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement"`
	RazaoSocial     string    `gorm:"column:razao_social;size:200;not null"`
	Cnpj            string    `gorm:"size:14;not null;uniqueIndex:idx_empresa_cnpj"`
	DataCriacao     time.Time `gorm:"column:data_criacao;autoCreateTime"`
	DataAtualizacao time.Time `gorm:"column:data_atualizacao;autoUpdateTime"`

	// Removing an empresa takes its funcionarios with it.
	Funcionarios []Funcionario `gorm:"foreignKey:EmpresaID;constraint:OnDelete:CASCADE"`
}

func (Empresa) TableName() string {
	return "empresa"
}

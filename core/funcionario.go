package core

import "time"

type Perfil string

const (
	PerfilUsuario Perfil = "ROLE_USUARIO"
	PerfilAdmin   Perfil = "ROLE_ADMIN"
)

type Funcionario struct {
	ID    uint64 `gorm:"primaryKey;autoIncrement"`
	Nome  string `gorm:"size:200;not null"`
	Email string `gorm:"size:200;not null;uniqueIndex:idx_funcionario_email"`
	Cpf   string `gorm:"size:11;not null;uniqueIndex:idx_funcionario_cpf"`
	// Senha holds the bcrypt hash, never the plaintext.
	Senha  string `gorm:"size:100;not null"`
	Perfil Perfil `gorm:"size:25;not null"`

	// Optional allowances. nil means "never set", which is not the same as 0.
	QtdHorasAlmoco      *float64 `gorm:"column:qtd_horas_almoco"`
	QtdHorasTrabalhoDia *float64 `gorm:"column:qtd_horas_trabalho_dia"`
	ValorHora           *float64 `gorm:"column:valor_hora;type:decimal(10,2)"`

	EmpresaID uint64  `gorm:"column:empresa_id;not null"`
	Empresa   Empresa `gorm:"foreignKey:EmpresaID"`

	DataCriacao     time.Time `gorm:"column:data_criacao;autoCreateTime"`
	DataAtualizacao time.Time `gorm:"column:data_atualizacao;autoUpdateTime"`
}

func (Funcionario) TableName() string {
	return "funcionario"
}

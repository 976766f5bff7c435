package core

import "time"

// Tipo identifies the kind of a single time punch.
type Tipo string

const (
	TipoInicioTrabalho  Tipo = "INICIO_TRABALHO"
	TipoInicioAlmoco    Tipo = "INICIO_ALMOCO"
	TipoTerminoAlmoco   Tipo = "TERMINO_ALMOCO"
	TipoTerminoTrabalho Tipo = "TERMINO_TRABALHO"
)

// TipoValido reports whether s matches one of the four punch kinds.
// The match is case sensitive.
func TipoValido(s string) bool {
	switch Tipo(s) {
	case TipoInicioTrabalho, TipoInicioAlmoco, TipoTerminoAlmoco, TipoTerminoTrabalho:
		return true
	}
	return false
}

type Lancamento struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Data        time.Time `gorm:"column:data;type:datetime;not null"`
	Tipo        Tipo      `gorm:"size:25;not null"`
	Descricao   *string   `gorm:"size:255"`
	Localizacao *string   `gorm:"size:255"`

	FuncionarioID uint64      `gorm:"column:funcionario_id;not null"`
	Funcionario   Funcionario `gorm:"foreignKey:FuncionarioID"`

	DataCriacao     time.Time `gorm:"column:data_criacao;autoCreateTime"`
	DataAtualizacao time.Time `gorm:"column:data_atualizacao;autoUpdateTime"`
}

func (Lancamento) TableName() string {
	return "lancamento"
}

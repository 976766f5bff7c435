package services

// Wire representations exchanged with the API clients. Optional fields are
// pointers so an absent value is distinguishable from an explicit zero.

type LancamentoDTO struct {
	ID            *uint64 `json:"id,omitempty"`
	Data          string  `json:"data" binding:"required"`
	Tipo          string  `json:"tipo" binding:"required"`
	Descricao     *string `json:"descricao,omitempty"`
	Localizacao   *string `json:"localizacao,omitempty"`
	FuncionarioID *uint64 `json:"funcionarioId,omitempty"`
}

type CadastroPFDTO struct {
	ID                  uint64  `json:"id,omitempty"`
	Nome                string  `json:"nome" binding:"required"`
	Email               string  `json:"email" binding:"required,email"`
	Senha               string  `json:"senha,omitempty" binding:"required"`
	Cpf                 string  `json:"cpf" binding:"required"`
	Cnpj                string  `json:"cnpj" binding:"required"`
	QtdHorasAlmoco      *string `json:"qtdHorasAlmoco,omitempty"`
	QtdHorasTrabalhoDia *string `json:"qtdHorasTrabalhoDia,omitempty"`
	ValorHora           *string `json:"valorHora,omitempty"`
}

type CadastroPJDTO struct {
	ID          uint64 `json:"id,omitempty"`
	Nome        string `json:"nome" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Senha       string `json:"senha,omitempty" binding:"required"`
	Cpf         string `json:"cpf" binding:"required"`
	RazaoSocial string `json:"razaoSocial" binding:"required"`
	Cnpj        string `json:"cnpj" binding:"required"`
}

type FuncionarioDTO struct {
	ID                  uint64  `json:"id,omitempty"`
	Nome                string  `json:"nome" binding:"required"`
	Email               string  `json:"email" binding:"required,email"`
	Senha               *string `json:"senha,omitempty"`
	QtdHorasAlmoco      *string `json:"qtdHorasAlmoco,omitempty"`
	QtdHorasTrabalhoDia *string `json:"qtdHorasTrabalhoDia,omitempty"`
	ValorHora           *string `json:"valorHora,omitempty"`
}

type EmpresaDTO struct {
	ID          uint64 `json:"id"`
	RazaoSocial string `json:"razaoSocial"`
	Cnpj        string `json:"cnpj"`
	DataCriacao string `json:"dataCriacao"`
}

type LoginDTO struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

type TokenDTO struct {
	Token string `json:"token"`
}

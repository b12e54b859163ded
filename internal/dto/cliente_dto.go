package dto

// ─── Cliente ─────────────────────────────────────────────────────────────────

type CriarClienteRequest struct {
	CNPJ              string `json:"cnpj"          validate:"required,min=14,max=18"`
	RazaoSocial       string `json:"razao_social"  validate:"required,min=2,max=255"`
	NomeFantasia      string `json:"nome_fantasia" validate:"max=255"`
	Email             string `json:"email"         validate:"omitempty,email"`
	Telefone          string `json:"telefone"      validate:"max=32"`
	Endereco          string `json:"endereco"      validate:"max=255"`
	Cidade            string `json:"cidade"        validate:"max=128"`
	Estado            string `json:"estado"        validate:"omitempty,len=2"`
	CEP               string `json:"cep"           validate:"max=16"`
	InscricaoEstadual string `json:"inscricao_estadual" validate:"max=32"`
	VendedorID        int64  `json:"vendedor_id"   validate:"omitempty,min=1"`
}

// AtualizarClienteRequest uses pointers so absent fields are left untouched.
type AtualizarClienteRequest struct {
	RazaoSocial       *string `json:"razao_social"  validate:"omitempty,min=2,max=255"`
	NomeFantasia      *string `json:"nome_fantasia" validate:"omitempty,max=255"`
	Email             *string `json:"email"         validate:"omitempty,email"`
	Telefone          *string `json:"telefone"      validate:"omitempty,max=32"`
	Endereco          *string `json:"endereco"      validate:"omitempty,max=255"`
	Cidade            *string `json:"cidade"        validate:"omitempty,max=128"`
	Estado            *string `json:"estado"        validate:"omitempty,len=2"`
	CEP               *string `json:"cep"           validate:"omitempty,max=16"`
	InscricaoEstadual *string `json:"inscricao_estadual" validate:"omitempty,max=32"`
	VendedorID        *int64  `json:"vendedor_id"   validate:"omitempty,min=1"`
	Ativo             *bool   `json:"ativo"`
}

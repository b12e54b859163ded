package dto

import "github.com/shopspring/decimal"

// ─── Vendedor ────────────────────────────────────────────────────────────────

type CriarVendedorRequest struct {
	Nome     string          `json:"nome"     validate:"required,min=2,max=255"`
	Email    string          `json:"email"    validate:"required,email"`
	Senha    string          `json:"senha"    validate:"required,min=6"`
	Telefone string          `json:"telefone" validate:"max=32"`
	Comissao decimal.Decimal `json:"comissao"`
	// NivelAcesso lets an admin promote another admin; defaults to vendedor.
	NivelAcesso string `json:"nivel_acesso" validate:"omitempty,oneof=admin vendedor"`
}

type AtualizarVendedorRequest struct {
	Nome     *string          `json:"nome"     validate:"omitempty,min=2,max=255"`
	Telefone *string          `json:"telefone" validate:"omitempty,max=32"`
	Comissao *decimal.Decimal `json:"comissao"`
	Senha    *string          `json:"senha"    validate:"omitempty,min=6"`
	Ativo    *bool            `json:"ativo"`
}

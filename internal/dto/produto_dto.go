package dto

import "github.com/shopspring/decimal"

// ─── Produto ─────────────────────────────────────────────────────────────────

type CriarProdutoRequest struct {
	Codigo        string          `json:"codigo"         validate:"required,min=1,max=64"`
	Nome          string          `json:"nome"           validate:"required,min=2,max=255"`
	Descricao     string          `json:"descricao"`
	PrecoTabela   decimal.Decimal `json:"preco_tabela"   validate:"required"`
	PrecoCusto    decimal.Decimal `json:"preco_custo"`
	EstoqueAtual  decimal.Decimal `json:"estoque_atual"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo"`
	UnidadeMedida string          `json:"unidade_medida" validate:"omitempty,max=8"`
}

type AtualizarProdutoRequest struct {
	Codigo        *string          `json:"codigo"         validate:"omitempty,min=1,max=64"`
	Nome          *string          `json:"nome"           validate:"omitempty,min=2,max=255"`
	Descricao     *string          `json:"descricao"`
	PrecoTabela   *decimal.Decimal `json:"preco_tabela"`
	PrecoCusto    *decimal.Decimal `json:"preco_custo"`
	EstoqueAtual  *decimal.Decimal `json:"estoque_atual"`
	EstoqueMinimo *decimal.Decimal `json:"estoque_minimo"`
	UnidadeMedida *string          `json:"unidade_medida" validate:"omitempty,max=8"`
	Ativo         *bool            `json:"ativo"`
}

package dto

import "github.com/shopspring/decimal"

// ─── Pedido ──────────────────────────────────────────────────────────────────

type ItemPedidoRequest struct {
	ProdutoID  int64           `json:"produto_id" validate:"required,min=1"`
	Quantidade decimal.Decimal `json:"quantidade" validate:"required"`
	// Desconto is a percentage (0-100) applied to the product's list price.
	Desconto decimal.Decimal `json:"desconto" validate:"min=0,lte=100"`
	// PrecoUnitario overrides the list price when set (> 0).
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}

type CriarPedidoRequest struct {
	ClienteID         int64               `json:"cliente_id" validate:"required,min=1"`
	VendedorID        int64               `json:"vendedor_id" validate:"omitempty,min=1"`
	CondicaoPagamento string              `json:"condicao_pagamento" validate:"omitempty,max=128"`
	Observacoes       string              `json:"observacoes"`
	Itens             []ItemPedidoRequest `json:"itens" validate:"required,min=1,dive"`
}

type AtualizarStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pendente aprovado faturado cancelado"`
}

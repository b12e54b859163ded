package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"mercus/internal/store"
)

// Pedido lifecycle states.
const (
	StatusPendente  = "pendente"
	StatusAprovado  = "aprovado"
	StatusFaturado  = "faturado"
	StatusCancelado = "cancelado"
)

// CondicaoPagamentoPadrao is the default installment schedule, in days.
const CondicaoPagamentoPadrao = "28,42,56,70,84,98,112,126,140,154"

// ValidStatus reports whether s is a known pedido status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPendente, StatusAprovado, StatusFaturado, StatusCancelado:
		return true
	}
	return false
}

// NovoNumeroPedido builds a human-readable order number from the emission
// instant ("PD" + unix milliseconds).
func NovoNumeroPedido(t time.Time) string {
	return fmt.Sprintf("PD%d", t.UnixMilli())
}

// Pedido is a sales order header. ClienteNome and VendedorNome are enrichment
// fields filled at read time, never stored.
type Pedido struct {
	ID                int64           `json:"id" gorm:"primaryKey"`
	NumeroPedido      string          `json:"numero_pedido" gorm:"column:numero_pedido;size:32;uniqueIndex"`
	ClienteID         int64           `json:"cliente_id" gorm:"column:cliente_id;index"`
	VendedorID        int64           `json:"vendedor_id" gorm:"column:vendedor_id;index"`
	DataEmissao       time.Time       `json:"data_emissao" gorm:"column:data_emissao"`
	ValorTotal        decimal.Decimal `json:"valor_total" gorm:"column:valor_total;type:decimal(12,2)"`
	CondicaoPagamento string          `json:"condicao_pagamento" gorm:"column:condicao_pagamento;size:128"`
	Observacoes       string          `json:"observacoes" gorm:"type:text"`
	Status            string          `json:"status" gorm:"size:16;default:pendente"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	ClienteNome  string `json:"cliente_nome,omitempty" gorm:"-"`
	VendedorNome string `json:"vendedor_nome,omitempty" gorm:"-"`

	// Client address block, filled on detail reads only.
	ClienteCNPJ     string `json:"cliente_cnpj,omitempty" gorm:"-"`
	ClienteEmail    string `json:"cliente_email,omitempty" gorm:"-"`
	ClienteTelefone string `json:"cliente_telefone,omitempty" gorm:"-"`
	ClienteEndereco string `json:"cliente_endereco,omitempty" gorm:"-"`
	ClienteCidade   string `json:"cliente_cidade,omitempty" gorm:"-"`
	ClienteEstado   string `json:"cliente_estado,omitempty" gorm:"-"`
	ClienteCEP      string `json:"cliente_cep,omitempty" gorm:"-"`
	ClienteIE       string `json:"cliente_ie,omitempty" gorm:"-"`
}

func (Pedido) TableName() string { return store.ColPedidos }

func PedidoFromRecord(r store.Record) Pedido {
	return Pedido{
		ID:                AsInt(r["id"]),
		NumeroPedido:      AsString(r["numero_pedido"]),
		ClienteID:         AsInt(r["cliente_id"]),
		VendedorID:        AsInt(r["vendedor_id"]),
		DataEmissao:       AsTime(r["data_emissao"]),
		ValorTotal:        AsNumber(r["valor_total"]),
		CondicaoPagamento: AsString(r["condicao_pagamento"]),
		Observacoes:       AsString(r["observacoes"]),
		Status:            AsString(r["status"]),
		CreatedAt:         AsTime(r["created_at"]),
		UpdatedAt:         AsTime(r["updated_at"]),
	}
}

func (p Pedido) ToRecord() store.Record {
	return store.Record{
		"numero_pedido":      p.NumeroPedido,
		"cliente_id":         p.ClienteID,
		"vendedor_id":        p.VendedorID,
		"data_emissao":       p.DataEmissao,
		"valor_total":        p.ValorTotal,
		"condicao_pagamento": p.CondicaoPagamento,
		"observacoes":        p.Observacoes,
		"status":             p.Status,
	}
}

// PedidoItem is one line of a pedido. Subtotal is persisted at creation time
// so the document keeps the prices agreed at sale.
type PedidoItem struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	PedidoID      int64           `json:"pedido_id" gorm:"column:pedido_id;index"`
	ProdutoID     int64           `json:"produto_id" gorm:"column:produto_id;index"`
	Quantidade    decimal.Decimal `json:"quantidade" gorm:"type:decimal(12,3)"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario" gorm:"column:preco_unitario;type:decimal(12,2)"`
	Desconto      decimal.Decimal `json:"desconto" gorm:"type:decimal(5,2)"`
	Subtotal      decimal.Decimal `json:"subtotal" gorm:"type:decimal(12,2)"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	ProdutoNome      string `json:"produto_nome,omitempty" gorm:"-"`
	ProdutoCodigo    string `json:"produto_codigo,omitempty" gorm:"-"`
	ProdutoDescricao string `json:"produto_descricao,omitempty" gorm:"-"`
	UnidadeMedida    string `json:"unidade_medida,omitempty" gorm:"-"`
}

func (PedidoItem) TableName() string { return store.ColPedidoItens }

func PedidoItemFromRecord(r store.Record) PedidoItem {
	return PedidoItem{
		ID:            AsInt(r["id"]),
		PedidoID:      AsInt(r["pedido_id"]),
		ProdutoID:     AsInt(r["produto_id"]),
		Quantidade:    AsNumber(r["quantidade"]),
		PrecoUnitario: AsNumber(r["preco_unitario"]),
		Desconto:      AsNumber(r["desconto"]),
		Subtotal:      AsNumber(r["subtotal"]),
		CreatedAt:     AsTime(r["created_at"]),
		UpdatedAt:     AsTime(r["updated_at"]),
	}
}

func (i PedidoItem) ToRecord() store.Record {
	return store.Record{
		"pedido_id":      i.PedidoID,
		"produto_id":     i.ProdutoID,
		"quantidade":     i.Quantidade,
		"preco_unitario": i.PrecoUnitario,
		"desconto":       i.Desconto,
		"subtotal":       i.Subtotal,
	}
}

package model

import (
	"time"

	"github.com/shopspring/decimal"

	"mercus/internal/store"
)

// Produto is a sellable item. Stock quantities are decimals because fractional
// units (kg, m) are valid.
type Produto struct {
	ID            int64           `json:"id" gorm:"primaryKey"`
	Codigo        string          `json:"codigo" gorm:"size:64;uniqueIndex"`
	Nome          string          `json:"nome" gorm:"size:255"`
	Descricao     string          `json:"descricao" gorm:"type:text"`
	PrecoTabela   decimal.Decimal `json:"preco_tabela" gorm:"column:preco_tabela;type:decimal(12,2)"`
	PrecoCusto    decimal.Decimal `json:"preco_custo" gorm:"column:preco_custo;type:decimal(12,2)"`
	EstoqueAtual  decimal.Decimal `json:"estoque_atual" gorm:"column:estoque_atual;type:decimal(12,3)"`
	EstoqueMinimo decimal.Decimal `json:"estoque_minimo" gorm:"column:estoque_minimo;type:decimal(12,3)"`
	UnidadeMedida string          `json:"unidade_medida" gorm:"column:unidade_medida;size:8;default:UN"`
	ImagemURL     string          `json:"imagem_url" gorm:"column:imagem_url;size:512"`
	Ativo         bool            `json:"ativo" gorm:"default:true"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (Produto) TableName() string { return store.ColProdutos }

// EstoqueBaixo reports whether current stock is at or below the minimum.
func (p Produto) EstoqueBaixo() bool {
	return p.EstoqueAtual.LessThanOrEqual(p.EstoqueMinimo)
}

func ProdutoFromRecord(r store.Record) Produto {
	return Produto{
		ID:            AsInt(r["id"]),
		Codigo:        AsString(r["codigo"]),
		Nome:          AsString(r["nome"]),
		Descricao:     AsString(r["descricao"]),
		PrecoTabela:   AsNumber(r["preco_tabela"]),
		PrecoCusto:    AsNumber(r["preco_custo"]),
		EstoqueAtual:  AsNumber(r["estoque_atual"]),
		EstoqueMinimo: AsNumber(r["estoque_minimo"]),
		UnidadeMedida: AsString(r["unidade_medida"]),
		ImagemURL:     AsString(r["imagem_url"]),
		Ativo:         AsBool(r["ativo"]),
		CreatedAt:     AsTime(r["created_at"]),
		UpdatedAt:     AsTime(r["updated_at"]),
	}
}

func (p Produto) ToRecord() store.Record {
	return store.Record{
		"codigo":         p.Codigo,
		"nome":           p.Nome,
		"descricao":      p.Descricao,
		"preco_tabela":   p.PrecoTabela,
		"preco_custo":    p.PrecoCusto,
		"estoque_atual":  p.EstoqueAtual,
		"estoque_minimo": p.EstoqueMinimo,
		"unidade_medida": p.UnidadeMedida,
		"imagem_url":     p.ImagemURL,
		"ativo":          p.Ativo,
	}
}

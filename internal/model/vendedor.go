package model

import (
	"time"

	"github.com/shopspring/decimal"

	"mercus/internal/store"
)

// Vendedor is the commercial profile of a seller. It shares its id with the
// User account created alongside it, so the two records always pair up.
type Vendedor struct {
	ID          int64           `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Nome        string          `json:"nome" gorm:"size:255"`
	Email       string          `json:"email" gorm:"size:255;uniqueIndex"`
	Telefone    string          `json:"telefone" gorm:"size:32"`
	NivelAcesso string          `json:"nivel_acesso" gorm:"column:nivel_acesso;size:16;default:vendedor"`
	Comissao    decimal.Decimal `json:"comissao" gorm:"type:decimal(5,2)"`
	Ativo       bool            `json:"ativo" gorm:"default:true"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (Vendedor) TableName() string { return store.ColVendedores }

func VendedorFromRecord(r store.Record) Vendedor {
	return Vendedor{
		ID:          AsInt(r["id"]),
		Nome:        AsString(r["nome"]),
		Email:       AsString(r["email"]),
		Telefone:    AsString(r["telefone"]),
		NivelAcesso: AsString(r["nivel_acesso"]),
		Comissao:    AsNumber(r["comissao"]),
		Ativo:       AsBool(r["ativo"]),
		CreatedAt:   AsTime(r["created_at"]),
		UpdatedAt:   AsTime(r["updated_at"]),
	}
}

func (v Vendedor) ToRecord() store.Record {
	return store.Record{
		"nome":         v.Nome,
		"email":        v.Email,
		"telefone":     v.Telefone,
		"nivel_acesso": v.NivelAcesso,
		"comissao":     v.Comissao,
		"ativo":        v.Ativo,
	}
}

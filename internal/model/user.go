package model

import (
	"time"

	"github.com/shopspring/decimal"

	"mercus/internal/store"
)

// Access levels.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User is a login account. Senha holds the bcrypt hash and is never
// serialized in responses.
type User struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	Nome        string          `json:"nome" gorm:"size:255"`
	Email       string          `json:"email" gorm:"size:255;uniqueIndex"`
	Senha       string          `json:"-" gorm:"size:128"`
	NivelAcesso string          `json:"nivel_acesso" gorm:"column:nivel_acesso;size:16;default:vendedor"`
	Telefone    string          `json:"telefone" gorm:"size:32"`
	Comissao    decimal.Decimal `json:"comissao" gorm:"type:decimal(5,2)"`
	Ativo       bool            `json:"ativo" gorm:"default:true"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (User) TableName() string { return store.ColUsers }

// IsAdmin reports whether the account has the admin access level.
func (u User) IsAdmin() bool { return u.NivelAcesso == RoleAdmin }

func UserFromRecord(r store.Record) User {
	return User{
		ID:          AsInt(r["id"]),
		Nome:        AsString(r["nome"]),
		Email:       AsString(r["email"]),
		Senha:       AsString(r["senha"]),
		NivelAcesso: AsString(r["nivel_acesso"]),
		Telefone:    AsString(r["telefone"]),
		Comissao:    AsNumber(r["comissao"]),
		Ativo:       AsBool(r["ativo"]),
		CreatedAt:   AsTime(r["created_at"]),
		UpdatedAt:   AsTime(r["updated_at"]),
	}
}

func (u User) ToRecord() store.Record {
	return store.Record{
		"nome":         u.Nome,
		"email":        u.Email,
		"senha":        u.Senha,
		"nivel_acesso": u.NivelAcesso,
		"telefone":     u.Telefone,
		"comissao":     u.Comissao,
		"ativo":        u.Ativo,
	}
}

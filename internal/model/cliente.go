package model

import (
	"time"

	"mercus/internal/store"
)

// Cliente is a customer of the company. VendedorID links the customer to the
// seller that owns the account (0 means unassigned).
type Cliente struct {
	ID                int64     `json:"id" gorm:"primaryKey"`
	CNPJ              string    `json:"cnpj" gorm:"column:cnpj;size:18;uniqueIndex"`
	RazaoSocial       string    `json:"razao_social" gorm:"column:razao_social;size:255"`
	NomeFantasia      string    `json:"nome_fantasia" gorm:"column:nome_fantasia;size:255"`
	Email             string    `json:"email" gorm:"size:255"`
	Telefone          string    `json:"telefone" gorm:"size:32"`
	Endereco          string    `json:"endereco" gorm:"size:255"`
	Cidade            string    `json:"cidade" gorm:"size:128"`
	Estado            string    `json:"estado" gorm:"size:2"`
	CEP               string    `json:"cep" gorm:"column:cep;size:16"`
	InscricaoEstadual string    `json:"inscricao_estadual" gorm:"column:inscricao_estadual;size:32"`
	VendedorID        int64     `json:"vendedor_id" gorm:"column:vendedor_id;index"`
	Ativo             bool      `json:"ativo" gorm:"default:true"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (Cliente) TableName() string { return store.ColClientes }

// ClienteFromRecord rebuilds a Cliente from a raw store record.
func ClienteFromRecord(r store.Record) Cliente {
	return Cliente{
		ID:                AsInt(r["id"]),
		CNPJ:              AsString(r["cnpj"]),
		RazaoSocial:       AsString(r["razao_social"]),
		NomeFantasia:      AsString(r["nome_fantasia"]),
		Email:             AsString(r["email"]),
		Telefone:          AsString(r["telefone"]),
		Endereco:          AsString(r["endereco"]),
		Cidade:            AsString(r["cidade"]),
		Estado:            AsString(r["estado"]),
		CEP:               AsString(r["cep"]),
		InscricaoEstadual: AsString(r["inscricao_estadual"]),
		VendedorID:        AsInt(r["vendedor_id"]),
		Ativo:             AsBool(r["ativo"]),
		CreatedAt:         AsTime(r["created_at"]),
		UpdatedAt:         AsTime(r["updated_at"]),
	}
}

// ToRecord flattens the Cliente for storage. Timestamps are managed by the
// store, not included here.
func (c Cliente) ToRecord() store.Record {
	return store.Record{
		"cnpj":               c.CNPJ,
		"razao_social":       c.RazaoSocial,
		"nome_fantasia":      c.NomeFantasia,
		"email":              c.Email,
		"telefone":           c.Telefone,
		"endereco":           c.Endereco,
		"cidade":             c.Cidade,
		"estado":             c.Estado,
		"cep":                c.CEP,
		"inscricao_estadual": c.InscricaoEstadual,
		"vendedor_id":        optID(c.VendedorID),
		"ativo":              c.Ativo,
	}
}

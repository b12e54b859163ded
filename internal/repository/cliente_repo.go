// Package repository provides typed data access for each entity on top of the
// generic store.Store, so services never touch raw records.
package repository

import (
	"context"

	"mercus/internal/model"
	"mercus/internal/store"
)

type ClienteRepository interface {
	List(ctx context.Context) ([]model.Cliente, error)
	FindByID(ctx context.Context, id int64) (*model.Cliente, error)
	Create(ctx context.Context, c *model.Cliente) error
	Update(ctx context.Context, id int64, changes store.Record) (*model.Cliente, error)
	Delete(ctx context.Context, id int64) error
	ExistsCNPJ(ctx context.Context, cnpj string) (bool, error)
}

type clienteRepository struct {
	st store.Store
}

func NewClienteRepository(st store.Store) ClienteRepository {
	return &clienteRepository{st: st}
}

func (r *clienteRepository) List(ctx context.Context) ([]model.Cliente, error) {
	recs, err := r.st.ListAll(ctx, store.ColClientes)
	if err != nil {
		return nil, err
	}
	out := make([]model.Cliente, len(recs))
	for i, rec := range recs {
		out[i] = model.ClienteFromRecord(rec)
	}
	return out, nil
}

func (r *clienteRepository) FindByID(ctx context.Context, id int64) (*model.Cliente, error) {
	rec, err := r.st.FindByID(ctx, store.ColClientes, id)
	if err != nil {
		return nil, err
	}
	c := model.ClienteFromRecord(rec)
	return &c, nil
}

func (r *clienteRepository) Create(ctx context.Context, c *model.Cliente) error {
	rec, err := r.st.Insert(ctx, store.ColClientes, c.ToRecord())
	if err != nil {
		return err
	}
	*c = model.ClienteFromRecord(rec)
	return nil
}

func (r *clienteRepository) Update(ctx context.Context, id int64, changes store.Record) (*model.Cliente, error) {
	rec, err := r.st.UpdateByID(ctx, store.ColClientes, id, changes)
	if err != nil {
		return nil, err
	}
	c := model.ClienteFromRecord(rec)
	return &c, nil
}

func (r *clienteRepository) Delete(ctx context.Context, id int64) error {
	ok, err := r.st.DeleteByID(ctx, store.ColClientes, id)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrNotFound
	}
	return nil
}

func (r *clienteRepository) ExistsCNPJ(ctx context.Context, cnpj string) (bool, error) {
	return r.st.ExistsWhere(ctx, store.ColClientes, "cnpj", cnpj, false)
}

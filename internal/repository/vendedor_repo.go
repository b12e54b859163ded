package repository

import (
	"context"

	"mercus/internal/model"
	"mercus/internal/store"
)

type VendedorRepository interface {
	List(ctx context.Context) ([]model.Vendedor, error)
	FindByID(ctx context.Context, id int64) (*model.Vendedor, error)
	// Create persists the profile keeping v.ID as-is: the caller sets it to the
	// paired user's id before calling.
	Create(ctx context.Context, v *model.Vendedor) error
	Update(ctx context.Context, id int64, changes store.Record) (*model.Vendedor, error)
	Desativar(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

type vendedorRepository struct {
	st store.Store
}

func NewVendedorRepository(st store.Store) VendedorRepository {
	return &vendedorRepository{st: st}
}

func (r *vendedorRepository) List(ctx context.Context) ([]model.Vendedor, error) {
	recs, err := r.st.ListAll(ctx, store.ColVendedores)
	if err != nil {
		return nil, err
	}
	out := make([]model.Vendedor, len(recs))
	for i, rec := range recs {
		out[i] = model.VendedorFromRecord(rec)
	}
	return out, nil
}

func (r *vendedorRepository) FindByID(ctx context.Context, id int64) (*model.Vendedor, error) {
	rec, err := r.st.FindByID(ctx, store.ColVendedores, id)
	if err != nil {
		return nil, err
	}
	v := model.VendedorFromRecord(rec)
	return &v, nil
}

func (r *vendedorRepository) Create(ctx context.Context, v *model.Vendedor) error {
	rec := v.ToRecord()
	if v.ID != 0 {
		rec["id"] = v.ID
	}
	stored, err := r.st.Insert(ctx, store.ColVendedores, rec)
	if err != nil {
		return err
	}
	*v = model.VendedorFromRecord(stored)
	return nil
}

func (r *vendedorRepository) Update(ctx context.Context, id int64, changes store.Record) (*model.Vendedor, error) {
	rec, err := r.st.UpdateByID(ctx, store.ColVendedores, id, changes)
	if err != nil {
		return nil, err
	}
	v := model.VendedorFromRecord(rec)
	return &v, nil
}

func (r *vendedorRepository) Desativar(ctx context.Context, id int64) error {
	_, err := r.st.UpdateByID(ctx, store.ColVendedores, id, store.Record{"ativo": false})
	return err
}

func (r *vendedorRepository) Delete(ctx context.Context, id int64) error {
	ok, err := r.st.DeleteByID(ctx, store.ColVendedores, id)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrNotFound
	}
	return nil
}

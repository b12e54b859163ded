package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"mercus/internal/model"
	"mercus/internal/store"
)

type ProdutoRepository interface {
	List(ctx context.Context) ([]model.Produto, error)
	FindByID(ctx context.Context, id int64) (*model.Produto, error)
	Create(ctx context.Context, p *model.Produto) error
	Update(ctx context.Context, id int64, changes store.Record) (*model.Produto, error)
	Delete(ctx context.Context, id int64) error
	ExistsCodigo(ctx context.Context, codigo string) (bool, error)
	// BaixarEstoque atomically subtracts qty from the product's current stock.
	BaixarEstoque(ctx context.Context, id int64, qty decimal.Decimal) error
}

type produtoRepository struct {
	st store.Store
}

func NewProdutoRepository(st store.Store) ProdutoRepository {
	return &produtoRepository{st: st}
}

func (r *produtoRepository) List(ctx context.Context) ([]model.Produto, error) {
	recs, err := r.st.ListAll(ctx, store.ColProdutos)
	if err != nil {
		return nil, err
	}
	out := make([]model.Produto, len(recs))
	for i, rec := range recs {
		out[i] = model.ProdutoFromRecord(rec)
	}
	return out, nil
}

func (r *produtoRepository) FindByID(ctx context.Context, id int64) (*model.Produto, error) {
	rec, err := r.st.FindByID(ctx, store.ColProdutos, id)
	if err != nil {
		return nil, err
	}
	p := model.ProdutoFromRecord(rec)
	return &p, nil
}

func (r *produtoRepository) Create(ctx context.Context, p *model.Produto) error {
	rec, err := r.st.Insert(ctx, store.ColProdutos, p.ToRecord())
	if err != nil {
		return err
	}
	*p = model.ProdutoFromRecord(rec)
	return nil
}

func (r *produtoRepository) Update(ctx context.Context, id int64, changes store.Record) (*model.Produto, error) {
	rec, err := r.st.UpdateByID(ctx, store.ColProdutos, id, changes)
	if err != nil {
		return nil, err
	}
	p := model.ProdutoFromRecord(rec)
	return &p, nil
}

func (r *produtoRepository) Delete(ctx context.Context, id int64) error {
	ok, err := r.st.DeleteByID(ctx, store.ColProdutos, id)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrNotFound
	}
	return nil
}

func (r *produtoRepository) ExistsCodigo(ctx context.Context, codigo string) (bool, error) {
	return r.st.ExistsWhere(ctx, store.ColProdutos, "codigo", codigo, true)
}

func (r *produtoRepository) BaixarEstoque(ctx context.Context, id int64, qty decimal.Decimal) error {
	return r.st.Adjust(ctx, store.ColProdutos, id, "estoque_atual", qty.Neg())
}

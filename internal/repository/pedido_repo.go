package repository

import (
	"context"

	"mercus/internal/model"
	"mercus/internal/store"
)

type PedidoRepository interface {
	List(ctx context.Context) ([]model.Pedido, error)
	FindByID(ctx context.Context, id int64) (*model.Pedido, error)
	// CreateComItens persists the order header and all its lines as one unit:
	// either everything lands or nothing does.
	CreateComItens(ctx context.Context, p *model.Pedido, itens []model.PedidoItem) error
	UpdateStatus(ctx context.Context, id int64, status string) (*model.Pedido, error)
	Delete(ctx context.Context, id int64) error
	ListItens(ctx context.Context, pedidoID int64) ([]model.PedidoItem, error)
	ExistsByVendedor(ctx context.Context, vendedorID int64) (bool, error)
}

type pedidoRepository struct {
	st store.Store
}

func NewPedidoRepository(st store.Store) PedidoRepository {
	return &pedidoRepository{st: st}
}

func (r *pedidoRepository) List(ctx context.Context) ([]model.Pedido, error) {
	recs, err := r.st.ListAll(ctx, store.ColPedidos)
	if err != nil {
		return nil, err
	}
	out := make([]model.Pedido, len(recs))
	for i, rec := range recs {
		out[i] = model.PedidoFromRecord(rec)
	}
	return out, nil
}

func (r *pedidoRepository) FindByID(ctx context.Context, id int64) (*model.Pedido, error) {
	rec, err := r.st.FindByID(ctx, store.ColPedidos, id)
	if err != nil {
		return nil, err
	}
	p := model.PedidoFromRecord(rec)
	return &p, nil
}

func (r *pedidoRepository) CreateComItens(ctx context.Context, p *model.Pedido, itens []model.PedidoItem) error {
	return r.st.Transact(ctx, func(tx store.Store) error {
		header, err := tx.Insert(ctx, store.ColPedidos, p.ToRecord())
		if err != nil {
			return err
		}
		created := model.PedidoFromRecord(header)

		var insertedItens []int64
		for i := range itens {
			itens[i].PedidoID = created.ID
			rec, err := tx.Insert(ctx, store.ColPedidoItens, itens[i].ToRecord())
			if err != nil {
				// On Postgres the transaction rolls everything back; on Sheets
				// there is no transaction, so undo the partial writes by hand.
				for _, itemID := range insertedItens {
					_, _ = tx.DeleteByID(ctx, store.ColPedidoItens, itemID)
				}
				_, _ = tx.DeleteByID(ctx, store.ColPedidos, created.ID)
				return err
			}
			stored := model.PedidoItemFromRecord(rec)
			itens[i].ID = stored.ID
			itens[i].PedidoID = stored.PedidoID
			insertedItens = append(insertedItens, stored.ID)
		}
		*p = created
		return nil
	})
}

func (r *pedidoRepository) UpdateStatus(ctx context.Context, id int64, status string) (*model.Pedido, error) {
	rec, err := r.st.UpdateByID(ctx, store.ColPedidos, id, store.Record{"status": status})
	if err != nil {
		return nil, err
	}
	p := model.PedidoFromRecord(rec)
	return &p, nil
}

// Delete removes the order header and every line that belongs to it.
func (r *pedidoRepository) Delete(ctx context.Context, id int64) error {
	return r.st.Transact(ctx, func(tx store.Store) error {
		itens, err := r.listItens(ctx, tx, id)
		if err != nil {
			return err
		}
		for _, item := range itens {
			if _, err := tx.DeleteByID(ctx, store.ColPedidoItens, item.ID); err != nil {
				return err
			}
		}
		ok, err := tx.DeleteByID(ctx, store.ColPedidos, id)
		if err != nil {
			return err
		}
		if !ok {
			return store.ErrNotFound
		}
		return nil
	})
}

func (r *pedidoRepository) ListItens(ctx context.Context, pedidoID int64) ([]model.PedidoItem, error) {
	return r.listItens(ctx, r.st, pedidoID)
}

func (r *pedidoRepository) listItens(ctx context.Context, st store.Store, pedidoID int64) ([]model.PedidoItem, error) {
	recs, err := st.ListAll(ctx, store.ColPedidoItens)
	if err != nil {
		return nil, err
	}
	var out []model.PedidoItem
	for _, rec := range recs {
		item := model.PedidoItemFromRecord(rec)
		if item.PedidoID == pedidoID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *pedidoRepository) ExistsByVendedor(ctx context.Context, vendedorID int64) (bool, error) {
	return r.st.ExistsWhere(ctx, store.ColPedidos, "vendedor_id", vendedorID, false)
}

package service

// In-memory repository stubs shared by the service tests.

import (
	"context"

	"github.com/shopspring/decimal"

	"mercus/internal/model"
	"mercus/internal/store"
)

func merge(rec, changes store.Record) store.Record {
	for k, v := range changes {
		rec[k] = v
	}
	return rec
}

// ─── Cliente ─────────────────────────────────────────────────────────────────

type stubClienteRepo struct {
	m      map[int64]*model.Cliente
	nextID int64
}

func newStubClienteRepo() *stubClienteRepo {
	return &stubClienteRepo{m: make(map[int64]*model.Cliente)}
}

func (r *stubClienteRepo) List(context.Context) ([]model.Cliente, error) {
	out := make([]model.Cliente, 0, len(r.m))
	for _, c := range r.m {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubClienteRepo) FindByID(_ context.Context, id int64) (*model.Cliente, error) {
	c, ok := r.m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *stubClienteRepo) Create(_ context.Context, c *model.Cliente) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.m[c.ID] = &cp
	return nil
}

func (r *stubClienteRepo) Update(_ context.Context, id int64, changes store.Record) (*model.Cliente, error) {
	c, ok := r.m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	rec := merge(c.ToRecord(), changes)
	rec["id"] = id
	nc := model.ClienteFromRecord(rec)
	r.m[id] = &nc
	cp := nc
	return &cp, nil
}

func (r *stubClienteRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.m[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.m, id)
	return nil
}

func (r *stubClienteRepo) ExistsCNPJ(_ context.Context, cnpj string) (bool, error) {
	for _, c := range r.m {
		if c.CNPJ == cnpj {
			return true, nil
		}
	}
	return false, nil
}

// ─── Produto ─────────────────────────────────────────────────────────────────

type stubProdutoRepo struct {
	m      map[int64]*model.Produto
	nextID int64
	baixas map[int64]decimal.Decimal
}

func newStubProdutoRepo() *stubProdutoRepo {
	return &stubProdutoRepo{m: make(map[int64]*model.Produto), baixas: make(map[int64]decimal.Decimal)}
}

func (r *stubProdutoRepo) List(context.Context) ([]model.Produto, error) {
	out := make([]model.Produto, 0, len(r.m))
	for _, p := range r.m {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProdutoRepo) FindByID(_ context.Context, id int64) (*model.Produto, error) {
	p, ok := r.m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubProdutoRepo) Create(_ context.Context, p *model.Produto) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.m[p.ID] = &cp
	return nil
}

func (r *stubProdutoRepo) Update(_ context.Context, id int64, changes store.Record) (*model.Produto, error) {
	p, ok := r.m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	rec := merge(p.ToRecord(), changes)
	rec["id"] = id
	np := model.ProdutoFromRecord(rec)
	r.m[id] = &np
	cp := np
	return &cp, nil
}

func (r *stubProdutoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.m[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.m, id)
	return nil
}

func (r *stubProdutoRepo) ExistsCodigo(_ context.Context, codigo string) (bool, error) {
	for _, p := range r.m {
		if p.Codigo == codigo {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubProdutoRepo) BaixarEstoque(_ context.Context, id int64, qty decimal.Decimal) error {
	p, ok := r.m[id]
	if !ok {
		return store.ErrNotFound
	}
	p.EstoqueAtual = p.EstoqueAtual.Sub(qty)
	r.baixas[id] = r.baixas[id].Add(qty)
	return nil
}

// ─── Pedido ──────────────────────────────────────────────────────────────────

type stubPedidoRepo struct {
	pedidos map[int64]*model.Pedido
	itens   map[int64][]model.PedidoItem
	nextID  int64
}

func newStubPedidoRepo() *stubPedidoRepo {
	return &stubPedidoRepo{pedidos: make(map[int64]*model.Pedido), itens: make(map[int64][]model.PedidoItem)}
}

func (r *stubPedidoRepo) List(context.Context) ([]model.Pedido, error) {
	out := make([]model.Pedido, 0, len(r.pedidos))
	for _, p := range r.pedidos {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPedidoRepo) FindByID(_ context.Context, id int64) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *stubPedidoRepo) CreateComItens(_ context.Context, p *model.Pedido, itens []model.PedidoItem) error {
	r.nextID++
	p.ID = r.nextID
	cp := *p
	r.pedidos[p.ID] = &cp
	for i := range itens {
		itens[i].ID = int64(i + 1)
		itens[i].PedidoID = p.ID
	}
	r.itens[p.ID] = append([]model.PedidoItem(nil), itens...)
	return nil
}

func (r *stubPedidoRepo) UpdateStatus(_ context.Context, id int64, status string) (*model.Pedido, error) {
	p, ok := r.pedidos[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	p.Status = status
	cp := *p
	return &cp, nil
}

func (r *stubPedidoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.pedidos[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.pedidos, id)
	delete(r.itens, id)
	return nil
}

func (r *stubPedidoRepo) ListItens(_ context.Context, pedidoID int64) ([]model.PedidoItem, error) {
	return append([]model.PedidoItem(nil), r.itens[pedidoID]...), nil
}

func (r *stubPedidoRepo) ExistsByVendedor(_ context.Context, vendedorID int64) (bool, error) {
	for _, p := range r.pedidos {
		if p.VendedorID == vendedorID {
			return true, nil
		}
	}
	return false, nil
}

// ─── User ────────────────────────────────────────────────────────────────────

type stubUserRepo struct {
	m      map[int64]*model.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{m: make(map[int64]*model.User)}
}

func (r *stubUserRepo) List(context.Context) ([]model.User, error) {
	out := make([]model.User, 0, len(r.m))
	for _, u := range r.m {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*model.User, error) {
	u, ok := r.m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range r.m {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.nextID++
	u.ID = r.nextID
	cp := *u
	r.m[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, changes store.Record) (*model.User, error) {
	u, ok := r.m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	rec := merge(u.ToRecord(), changes)
	rec["id"] = id
	nu := model.UserFromRecord(rec)
	r.m[id] = &nu
	cp := nu
	return &cp, nil
}

func (r *stubUserRepo) Deactivate(ctx context.Context, id int64) error {
	_, err := r.Update(ctx, id, store.Record{"ativo": false})
	return err
}

func (r *stubUserRepo) DeletePermanent(_ context.Context, id int64) error {
	if _, ok := r.m[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.m, id)
	return nil
}

func (r *stubUserRepo) ExistsEmail(_ context.Context, email string) (bool, error) {
	for _, u := range r.m {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// ─── Vendedor ────────────────────────────────────────────────────────────────

type stubVendedorRepo struct {
	m          map[int64]*model.Vendedor
	failCreate error
}

func newStubVendedorRepo() *stubVendedorRepo {
	return &stubVendedorRepo{m: make(map[int64]*model.Vendedor)}
}

func (r *stubVendedorRepo) List(context.Context) ([]model.Vendedor, error) {
	out := make([]model.Vendedor, 0, len(r.m))
	for _, v := range r.m {
		out = append(out, *v)
	}
	return out, nil
}

func (r *stubVendedorRepo) FindByID(_ context.Context, id int64) (*model.Vendedor, error) {
	v, ok := r.m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (r *stubVendedorRepo) Create(_ context.Context, v *model.Vendedor) error {
	if r.failCreate != nil {
		return r.failCreate
	}
	cp := *v
	r.m[v.ID] = &cp
	return nil
}

func (r *stubVendedorRepo) Update(_ context.Context, id int64, changes store.Record) (*model.Vendedor, error) {
	v, ok := r.m[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	rec := merge(v.ToRecord(), changes)
	rec["id"] = id
	nv := model.VendedorFromRecord(rec)
	r.m[id] = &nv
	cp := nv
	return &cp, nil
}

func (r *stubVendedorRepo) Desativar(ctx context.Context, id int64) error {
	_, err := r.Update(ctx, id, store.Record{"ativo": false})
	return err
}

func (r *stubVendedorRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.m[id]; !ok {
		return store.ErrNotFound
	}
	delete(r.m, id)
	return nil
}

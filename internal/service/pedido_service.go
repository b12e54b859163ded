package service

import (
	"context"
	"errors"
	"time"

	"mercus/internal/config"
	"mercus/internal/dto"
	"mercus/internal/infra"
	"mercus/internal/model"
	"mercus/internal/repository"
	"mercus/internal/store"

	"github.com/shopspring/decimal"
)

type PedidoService interface {
	Listar(ctx context.Context, claims Claims) ([]model.Pedido, error)
	BuscarPorID(ctx context.Context, claims Claims, id int64) (*model.Pedido, []model.PedidoItem, error)
	Criar(ctx context.Context, claims Claims, req dto.CriarPedidoRequest) (*model.Pedido, []model.PedidoItem, error)
	AtualizarStatus(ctx context.Context, id int64, status string) (*model.Pedido, error)
	Excluir(ctx context.Context, id int64) error
	// Documento assembles everything the PDF renderer needs for one order.
	Documento(ctx context.Context, claims Claims, id int64) (*infra.PedidoDocumento, error)
}

type pedidoService struct {
	pedidos    repository.PedidoRepository
	clientes   repository.ClienteRepository
	produtos   repository.ProdutoRepository
	vendedores repository.VendedorRepository
	cfg        *config.Config
	now        func() time.Time
}

func NewPedidoService(
	pedidos repository.PedidoRepository,
	clientes repository.ClienteRepository,
	produtos repository.ProdutoRepository,
	vendedores repository.VendedorRepository,
	cfg *config.Config,
) PedidoService {
	return &pedidoService{
		pedidos:    pedidos,
		clientes:   clientes,
		produtos:   produtos,
		vendedores: vendedores,
		cfg:        cfg,
		now:        time.Now,
	}
}

func (s *pedidoService) Listar(ctx context.Context, claims Claims) ([]model.Pedido, error) {
	all, err := s.pedidos.List(ctx)
	if err != nil {
		return nil, err
	}

	clienteNome, vendedorNome, err := s.nomeIndexes(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.Pedido, 0, len(all))
	for _, p := range all {
		if !claims.IsAdmin() && p.VendedorID != claims.UserID {
			continue
		}
		p.ClienteNome = clienteNome[p.ClienteID]
		p.VendedorNome = vendedorNome[p.VendedorID]
		if p.ValorTotal.IsZero() {
			if total, err := s.recomputeTotal(ctx, p.ID); err == nil {
				p.ValorTotal = total
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *pedidoService) BuscarPorID(ctx context.Context, claims Claims, id int64) (*model.Pedido, []model.PedidoItem, error) {
	p, err := s.pedidos.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil, ErrNaoEncontrado
	}
	if err != nil {
		return nil, nil, err
	}
	if !claims.IsAdmin() && p.VendedorID != claims.UserID {
		return nil, nil, ErrAcessoNegado
	}

	itens, err := s.pedidos.ListItens(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	s.enrichItens(ctx, itens)

	clienteNome, vendedorNome, err := s.nomeIndexes(ctx)
	if err == nil {
		p.ClienteNome = clienteNome[p.ClienteID]
		p.VendedorNome = vendedorNome[p.VendedorID]
	}
	if cliente, err := s.clientes.FindByID(ctx, p.ClienteID); err == nil {
		p.ClienteCNPJ = cliente.CNPJ
		p.ClienteEmail = cliente.Email
		p.ClienteTelefone = cliente.Telefone
		p.ClienteEndereco = cliente.Endereco
		p.ClienteCidade = cliente.Cidade
		p.ClienteEstado = cliente.Estado
		p.ClienteCEP = cliente.CEP
		p.ClienteIE = cliente.InscricaoEstadual
	}

	// Orders imported with a blank total get it rebuilt from their lines.
	if p.ValorTotal.IsZero() {
		subtotais := make([]decimal.Decimal, len(itens))
		for i, item := range itens {
			subtotais[i] = item.Subtotal
		}
		p.ValorTotal = TotalPedido(subtotais)
	}
	return p, itens, nil
}

func (s *pedidoService) Criar(ctx context.Context, claims Claims, req dto.CriarPedidoRequest) (*model.Pedido, []model.PedidoItem, error) {
	cliente, err := s.clientes.FindByID(ctx, req.ClienteID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil, ErrNaoEncontrado
	}
	if err != nil {
		return nil, nil, err
	}
	if !cliente.Ativo {
		return nil, nil, ErrClienteInativo
	}

	vendedorID := req.VendedorID
	if !claims.IsAdmin() {
		// Sellers only sell in their own name, to their own clients.
		vendedorID = claims.UserID
		if cliente.VendedorID != claims.UserID {
			return nil, nil, ErrAcessoNegado
		}
	}
	if vendedorID == 0 {
		vendedorID = claims.UserID
	}

	itens := make([]model.PedidoItem, 0, len(req.Itens))
	subtotais := make([]decimal.Decimal, 0, len(req.Itens))
	for _, ir := range req.Itens {
		if !ir.Quantidade.IsPositive() {
			return nil, nil, ErrQuantidadeInvalida
		}
		produto, err := s.produtos.FindByID(ctx, ir.ProdutoID)
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, ErrNaoEncontrado
		}
		if err != nil {
			return nil, nil, err
		}
		if !produto.Ativo {
			return nil, nil, ErrProdutoInativo
		}
		if produto.EstoqueAtual.LessThan(ir.Quantidade) {
			return nil, nil, ErrEstoqueInsuficiente
		}

		preco := produto.PrecoTabela
		if ir.PrecoUnitario.IsPositive() {
			preco = ir.PrecoUnitario
		}
		subtotal := SubtotalItem(ir.Quantidade, preco, ir.Desconto)
		subtotais = append(subtotais, subtotal)
		itens = append(itens, model.PedidoItem{
			ProdutoID:        produto.ID,
			Quantidade:       ir.Quantidade,
			PrecoUnitario:    preco,
			Desconto:         ir.Desconto,
			Subtotal:         subtotal,
			ProdutoNome:      produto.Nome,
			ProdutoCodigo:    produto.Codigo,
			ProdutoDescricao: produto.Descricao,
			UnidadeMedida:    produto.UnidadeMedida,
		})
	}

	condicao := req.CondicaoPagamento
	if condicao == "" {
		condicao = model.CondicaoPagamentoPadrao
	}
	emissao := s.now()
	pedido := &model.Pedido{
		NumeroPedido:      model.NovoNumeroPedido(emissao),
		ClienteID:         cliente.ID,
		VendedorID:        vendedorID,
		DataEmissao:       emissao,
		ValorTotal:        TotalPedido(subtotais),
		CondicaoPagamento: condicao,
		Observacoes:       req.Observacoes,
		Status:            model.StatusPendente,
	}

	if err := s.pedidos.CreateComItens(ctx, pedido, itens); err != nil {
		return nil, nil, err
	}

	for _, item := range itens {
		if err := s.produtos.BaixarEstoque(ctx, item.ProdutoID, item.Quantidade); err != nil {
			return nil, nil, err
		}
	}

	pedido.ClienteNome = cliente.RazaoSocial
	if v, err := s.vendedores.FindByID(ctx, vendedorID); err == nil {
		pedido.VendedorNome = v.Nome
	}
	return pedido, itens, nil
}

func (s *pedidoService) AtualizarStatus(ctx context.Context, id int64, status string) (*model.Pedido, error) {
	if !model.ValidStatus(status) {
		return nil, ErrStatusInvalido
	}
	p, err := s.pedidos.UpdateStatus(ctx, id, status)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNaoEncontrado
	}
	return p, err
}

func (s *pedidoService) Excluir(ctx context.Context, id int64) error {
	err := s.pedidos.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNaoEncontrado
	}
	return err
}

func (s *pedidoService) Documento(ctx context.Context, claims Claims, id int64) (*infra.PedidoDocumento, error) {
	pedido, itens, err := s.BuscarPorID(ctx, claims, id)
	if err != nil {
		return nil, err
	}
	cliente, err := s.clientes.FindByID(ctx, pedido.ClienteID)
	if err != nil {
		cliente = &model.Cliente{}
	}
	return &infra.PedidoDocumento{
		Empresa: s.cfg.EmpresaNome,
		Pedido:  *pedido,
		Cliente: *cliente,
		Itens:   itens,
	}, nil
}

func (s *pedidoService) nomeIndexes(ctx context.Context) (map[int64]string, map[int64]string, error) {
	clientes, err := s.clientes.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	vendedores, err := s.vendedores.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	clienteNome := make(map[int64]string, len(clientes))
	for _, c := range clientes {
		clienteNome[c.ID] = c.RazaoSocial
	}
	vendedorNome := make(map[int64]string, len(vendedores))
	for _, v := range vendedores {
		vendedorNome[v.ID] = v.Nome
	}
	return clienteNome, vendedorNome, nil
}

func (s *pedidoService) recomputeTotal(ctx context.Context, pedidoID int64) (decimal.Decimal, error) {
	itens, err := s.pedidos.ListItens(ctx, pedidoID)
	if err != nil {
		return decimal.Zero, err
	}
	subtotais := make([]decimal.Decimal, len(itens))
	for i, item := range itens {
		subtotais[i] = item.Subtotal
	}
	return TotalPedido(subtotais), nil
}

func (s *pedidoService) enrichItens(ctx context.Context, itens []model.PedidoItem) {
	produtos, err := s.produtos.List(ctx)
	if err != nil {
		return
	}
	byID := make(map[int64]model.Produto, len(produtos))
	for _, p := range produtos {
		byID[p.ID] = p
	}
	for i := range itens {
		if p, ok := byID[itens[i].ProdutoID]; ok {
			itens[i].ProdutoNome = p.Nome
			itens[i].ProdutoCodigo = p.Codigo
			itens[i].ProdutoDescricao = p.Descricao
			itens[i].UnidadeMedida = p.UnidadeMedida
		}
	}
}

package service

import (
	"context"
	"errors"
	"strings"

	"mercus/internal/dto"
	"mercus/internal/model"
	"mercus/internal/repository"
	"mercus/internal/store"
)

type ProdutoService interface {
	Listar(ctx context.Context) ([]model.Produto, error)
	BuscarPorID(ctx context.Context, id int64) (*model.Produto, error)
	Criar(ctx context.Context, req dto.CriarProdutoRequest) (*model.Produto, error)
	Atualizar(ctx context.Context, id int64, req dto.AtualizarProdutoRequest) (*model.Produto, error)
	Excluir(ctx context.Context, id int64) error
	// AtualizarImagem stores the public URL of an uploaded product image.
	AtualizarImagem(ctx context.Context, id int64, url string) (*model.Produto, error)
}

type produtoService struct {
	produtos repository.ProdutoRepository
}

func NewProdutoService(produtos repository.ProdutoRepository) ProdutoService {
	return &produtoService{produtos: produtos}
}

func (s *produtoService) Listar(ctx context.Context) ([]model.Produto, error) {
	return s.produtos.List(ctx)
}

func (s *produtoService) BuscarPorID(ctx context.Context, id int64) (*model.Produto, error) {
	p, err := s.produtos.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNaoEncontrado
	}
	return p, err
}

func (s *produtoService) Criar(ctx context.Context, req dto.CriarProdutoRequest) (*model.Produto, error) {
	codigo := strings.TrimSpace(req.Codigo)
	exists, err := s.produtos.ExistsCodigo(ctx, codigo)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCodigoJaCadastrado
	}

	unidade := req.UnidadeMedida
	if unidade == "" {
		unidade = "UN"
	}
	p := &model.Produto{
		Codigo:        codigo,
		Nome:          req.Nome,
		Descricao:     req.Descricao,
		PrecoTabela:   req.PrecoTabela,
		PrecoCusto:    req.PrecoCusto,
		EstoqueAtual:  req.EstoqueAtual,
		EstoqueMinimo: req.EstoqueMinimo,
		UnidadeMedida: unidade,
		Ativo:         true,
	}
	if err := s.produtos.Create(ctx, p); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrCodigoJaCadastrado
		}
		return nil, err
	}
	return p, nil
}

func (s *produtoService) Atualizar(ctx context.Context, id int64, req dto.AtualizarProdutoRequest) (*model.Produto, error) {
	changes := store.Record{}
	if req.Codigo != nil {
		changes["codigo"] = strings.TrimSpace(*req.Codigo)
	}
	if req.Nome != nil {
		changes["nome"] = *req.Nome
	}
	if req.Descricao != nil {
		changes["descricao"] = *req.Descricao
	}
	if req.PrecoTabela != nil {
		changes["preco_tabela"] = *req.PrecoTabela
	}
	if req.PrecoCusto != nil {
		changes["preco_custo"] = *req.PrecoCusto
	}
	if req.EstoqueAtual != nil {
		changes["estoque_atual"] = *req.EstoqueAtual
	}
	if req.EstoqueMinimo != nil {
		changes["estoque_minimo"] = *req.EstoqueMinimo
	}
	if req.UnidadeMedida != nil {
		changes["unidade_medida"] = *req.UnidadeMedida
	}
	if req.Ativo != nil {
		changes["ativo"] = *req.Ativo
	}

	p, err := s.produtos.Update(ctx, id, changes)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNaoEncontrado
	}
	if errors.Is(err, store.ErrDuplicate) {
		return nil, ErrCodigoJaCadastrado
	}
	return p, err
}

func (s *produtoService) Excluir(ctx context.Context, id int64) error {
	err := s.produtos.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNaoEncontrado
	}
	return err
}

func (s *produtoService) AtualizarImagem(ctx context.Context, id int64, url string) (*model.Produto, error) {
	p, err := s.produtos.Update(ctx, id, store.Record{"imagem_url": url})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNaoEncontrado
	}
	return p, err
}

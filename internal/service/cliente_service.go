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

type ClienteService interface {
	Listar(ctx context.Context, claims Claims) ([]model.Cliente, error)
	BuscarPorID(ctx context.Context, claims Claims, id int64) (*model.Cliente, error)
	Criar(ctx context.Context, claims Claims, req dto.CriarClienteRequest) (*model.Cliente, error)
	Atualizar(ctx context.Context, claims Claims, id int64, req dto.AtualizarClienteRequest) (*model.Cliente, error)
	Excluir(ctx context.Context, claims Claims, id int64) error
}

type clienteService struct {
	clientes repository.ClienteRepository
}

func NewClienteService(clientes repository.ClienteRepository) ClienteService {
	return &clienteService{clientes: clientes}
}

// Listar returns all clients for admins; sellers only see their own wallet.
func (s *clienteService) Listar(ctx context.Context, claims Claims) ([]model.Cliente, error) {
	all, err := s.clientes.List(ctx)
	if err != nil {
		return nil, err
	}
	if claims.IsAdmin() {
		return all, nil
	}
	own := make([]model.Cliente, 0, len(all))
	for _, c := range all {
		if c.VendedorID == claims.UserID {
			own = append(own, c)
		}
	}
	return own, nil
}

func (s *clienteService) BuscarPorID(ctx context.Context, claims Claims, id int64) (*model.Cliente, error) {
	c, err := s.clientes.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNaoEncontrado
	}
	if err != nil {
		return nil, err
	}
	if !claims.IsAdmin() && c.VendedorID != claims.UserID {
		return nil, ErrAcessoNegado
	}
	return c, nil
}

func (s *clienteService) Criar(ctx context.Context, claims Claims, req dto.CriarClienteRequest) (*model.Cliente, error) {
	cnpj := strings.TrimSpace(req.CNPJ)
	exists, err := s.clientes.ExistsCNPJ(ctx, cnpj)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrCNPJJaCadastrado
	}

	c := &model.Cliente{
		CNPJ:              cnpj,
		RazaoSocial:       req.RazaoSocial,
		NomeFantasia:      req.NomeFantasia,
		Email:             req.Email,
		Telefone:          req.Telefone,
		Endereco:          req.Endereco,
		Cidade:            req.Cidade,
		Estado:            strings.ToUpper(req.Estado),
		CEP:               req.CEP,
		InscricaoEstadual: req.InscricaoEstadual,
		VendedorID:        req.VendedorID,
		Ativo:             true,
	}
	// A seller always owns the clients it registers.
	if !claims.IsAdmin() {
		c.VendedorID = claims.UserID
	}

	if err := s.clientes.Create(ctx, c); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrCNPJJaCadastrado
		}
		return nil, err
	}
	return c, nil
}

func (s *clienteService) Atualizar(ctx context.Context, claims Claims, id int64, req dto.AtualizarClienteRequest) (*model.Cliente, error) {
	if _, err := s.BuscarPorID(ctx, claims, id); err != nil {
		return nil, err
	}

	changes := store.Record{}
	setStr := func(field string, v *string) {
		if v != nil {
			changes[field] = *v
		}
	}
	setStr("razao_social", req.RazaoSocial)
	setStr("nome_fantasia", req.NomeFantasia)
	setStr("email", req.Email)
	setStr("telefone", req.Telefone)
	setStr("endereco", req.Endereco)
	setStr("cidade", req.Cidade)
	setStr("cep", req.CEP)
	setStr("inscricao_estadual", req.InscricaoEstadual)
	if req.Estado != nil {
		changes["estado"] = strings.ToUpper(*req.Estado)
	}
	if req.Ativo != nil {
		changes["ativo"] = *req.Ativo
	}
	// Only admins reassign a client to another seller.
	if req.VendedorID != nil && claims.IsAdmin() {
		changes["vendedor_id"] = *req.VendedorID
	}

	c, err := s.clientes.Update(ctx, id, changes)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNaoEncontrado
	}
	return c, err
}

func (s *clienteService) Excluir(ctx context.Context, claims Claims, id int64) error {
	if _, err := s.BuscarPorID(ctx, claims, id); err != nil {
		return err
	}
	err := s.clientes.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrNaoEncontrado
	}
	return err
}

package service

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"mercus/internal/dto"
	"mercus/internal/model"
	"mercus/internal/repository"
	"mercus/internal/store"
)

type VendedorService interface {
	Listar(ctx context.Context) ([]model.Vendedor, error)
	BuscarPorID(ctx context.Context, id int64) (*model.Vendedor, error)
	// Criar registers the login account and the seller profile as a pair: the
	// profile reuses the account id, and a failed profile insert rolls the
	// account back so neither half survives alone.
	Criar(ctx context.Context, req dto.CriarVendedorRequest) (*model.Vendedor, error)
	Atualizar(ctx context.Context, id int64, req dto.AtualizarVendedorRequest) (*model.Vendedor, error)
	Desativar(ctx context.Context, id int64) error
	// Excluir removes the pair permanently. Refused while the seller still has
	// orders on file.
	Excluir(ctx context.Context, id int64) error
}

type vendedorService struct {
	vendedores repository.VendedorRepository
	users      repository.UserRepository
	pedidos    repository.PedidoRepository
}

func NewVendedorService(
	vendedores repository.VendedorRepository,
	users repository.UserRepository,
	pedidos repository.PedidoRepository,
) VendedorService {
	return &vendedorService{vendedores: vendedores, users: users, pedidos: pedidos}
}

func (s *vendedorService) Listar(ctx context.Context) ([]model.Vendedor, error) {
	return s.vendedores.List(ctx)
}

func (s *vendedorService) BuscarPorID(ctx context.Context, id int64) (*model.Vendedor, error) {
	v, err := s.vendedores.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNaoEncontrado
	}
	return v, err
}

func (s *vendedorService) Criar(ctx context.Context, req dto.CriarVendedorRequest) (*model.Vendedor, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	exists, err := s.users.ExistsEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailJaCadastrado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	nivel := req.NivelAcesso
	if nivel == "" {
		nivel = model.RoleVendedor
	}

	user := &model.User{
		Nome:        req.Nome,
		Email:       email,
		Senha:       string(hash),
		NivelAcesso: nivel,
		Telefone:    req.Telefone,
		Comissao:    req.Comissao,
		Ativo:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailJaCadastrado
		}
		return nil, err
	}

	vendedor := &model.Vendedor{
		ID:          user.ID,
		Nome:        req.Nome,
		Email:       email,
		Telefone:    req.Telefone,
		NivelAcesso: nivel,
		Comissao:    req.Comissao,
		Ativo:       true,
	}
	if err := s.vendedores.Create(ctx, vendedor); err != nil {
		// Undo the account so no orphan login remains.
		_ = s.users.DeletePermanent(ctx, user.ID)
		if errors.Is(err, store.ErrDuplicate) {
			return nil, ErrEmailJaCadastrado
		}
		return nil, err
	}
	return vendedor, nil
}

func (s *vendedorService) Atualizar(ctx context.Context, id int64, req dto.AtualizarVendedorRequest) (*model.Vendedor, error) {
	vendChanges := store.Record{}
	userChanges := store.Record{}
	if req.Nome != nil {
		vendChanges["nome"] = *req.Nome
		userChanges["nome"] = *req.Nome
	}
	if req.Telefone != nil {
		vendChanges["telefone"] = *req.Telefone
		userChanges["telefone"] = *req.Telefone
	}
	if req.Comissao != nil {
		vendChanges["comissao"] = *req.Comissao
		userChanges["comissao"] = *req.Comissao
	}
	if req.Ativo != nil {
		vendChanges["ativo"] = *req.Ativo
		userChanges["ativo"] = *req.Ativo
	}
	if req.Senha != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Senha), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		userChanges["senha"] = string(hash)
	}

	if len(userChanges) > 0 {
		if _, err := s.users.Update(ctx, id, userChanges); err != nil && !errors.Is(err, store.ErrNotFound) {
			return nil, err
		}
	}
	v, err := s.vendedores.Update(ctx, id, vendChanges)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNaoEncontrado
	}
	return v, err
}

func (s *vendedorService) Desativar(ctx context.Context, id int64) error {
	if err := s.vendedores.Desativar(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	// The login goes dark together with the profile.
	if err := s.users.Deactivate(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

func (s *vendedorService) Excluir(ctx context.Context, id int64) error {
	if _, err := s.BuscarPorID(ctx, id); err != nil {
		return err
	}
	hasPedidos, err := s.pedidos.ExistsByVendedor(ctx, id)
	if err != nil {
		return err
	}
	if hasPedidos {
		return ErrVendedorComPedidos
	}
	if err := s.vendedores.Delete(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNaoEncontrado
		}
		return err
	}
	if err := s.users.DeletePermanent(ctx, id); err != nil && !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return nil
}

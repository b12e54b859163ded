package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mercus/internal/dto"
	"mercus/internal/model"
)

type vendedorFixture struct {
	svc        VendedorService
	vendedores *stubVendedorRepo
	users      *stubUserRepo
	pedidos    *stubPedidoRepo
}

func newVendedorFixture() *vendedorFixture {
	f := &vendedorFixture{
		vendedores: newStubVendedorRepo(),
		users:      newStubUserRepo(),
		pedidos:    newStubPedidoRepo(),
	}
	f.svc = NewVendedorService(f.vendedores, f.users, f.pedidos)
	return f
}

func TestCriarVendedorPairsWithUser(t *testing.T) {
	f := newVendedorFixture()

	v, err := f.svc.Criar(context.Background(), dto.CriarVendedorRequest{
		Nome: "Ana", Email: "Ana@Empresa.com", Senha: "senha123", Comissao: dec("5"),
	})
	require.NoError(t, err)

	user, ok := f.users.m[v.ID]
	require.True(t, ok, "user missing for vendedor id %d", v.ID)
	assert.Equal(t, v.ID, user.ID)
	assert.Equal(t, "ana@empresa.com", v.Email)
	assert.Equal(t, model.RoleVendedor, user.NivelAcesso)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte("senha123")))
}

func TestCriarVendedorDuplicateEmail(t *testing.T) {
	f := newVendedorFixture()
	ctx := context.Background()

	_, err := f.svc.Criar(ctx, dto.CriarVendedorRequest{Nome: "Ana", Email: "ana@empresa.com", Senha: "senha123"})
	require.NoError(t, err)

	_, err = f.svc.Criar(ctx, dto.CriarVendedorRequest{Nome: "Outra", Email: "ana@empresa.com", Senha: "senha456"})
	assert.ErrorIs(t, err, ErrEmailJaCadastrado)
}

func TestCriarVendedorRollsBackUserOnProfileFailure(t *testing.T) {
	f := newVendedorFixture()
	f.vendedores.failCreate = errors.New("planilha indisponivel")

	_, err := f.svc.Criar(context.Background(), dto.CriarVendedorRequest{
		Nome: "Ana", Email: "ana@empresa.com", Senha: "senha123",
	})
	require.Error(t, err)
	assert.Empty(t, f.users.m, "orphan user left behind")
	assert.Empty(t, f.vendedores.m)
}

func TestAtualizarVendedorPropagatesToUser(t *testing.T) {
	f := newVendedorFixture()
	ctx := context.Background()

	v, err := f.svc.Criar(ctx, dto.CriarVendedorRequest{Nome: "Ana", Email: "ana@empresa.com", Senha: "senha123"})
	require.NoError(t, err)

	nome := "Ana Paula"
	senha := "novasenha"
	updated, err := f.svc.Atualizar(ctx, v.ID, dto.AtualizarVendedorRequest{Nome: &nome, Senha: &senha})
	require.NoError(t, err)
	assert.Equal(t, "Ana Paula", updated.Nome)

	user := f.users.m[v.ID]
	assert.Equal(t, "Ana Paula", user.Nome)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte("novasenha")))
}

func TestDesativarVendedorDisablesLogin(t *testing.T) {
	f := newVendedorFixture()
	ctx := context.Background()

	v, err := f.svc.Criar(ctx, dto.CriarVendedorRequest{Nome: "Ana", Email: "ana@empresa.com", Senha: "senha123"})
	require.NoError(t, err)

	require.NoError(t, f.svc.Desativar(ctx, v.ID))
	assert.False(t, f.vendedores.m[v.ID].Ativo)
	assert.False(t, f.users.m[v.ID].Ativo)
}

func TestExcluirVendedorGuardedByOrders(t *testing.T) {
	f := newVendedorFixture()
	ctx := context.Background()

	v, err := f.svc.Criar(ctx, dto.CriarVendedorRequest{Nome: "Ana", Email: "ana@empresa.com", Senha: "senha123"})
	require.NoError(t, err)
	f.pedidos.pedidos[1] = &model.Pedido{ID: 1, VendedorID: v.ID}

	err = f.svc.Excluir(ctx, v.ID)
	assert.ErrorIs(t, err, ErrVendedorComPedidos)

	delete(f.pedidos.pedidos, 1)
	require.NoError(t, f.svc.Excluir(ctx, v.ID))
	assert.Empty(t, f.vendedores.m)
	assert.Empty(t, f.users.m)
}

func TestExcluirVendedorNaoEncontrado(t *testing.T) {
	f := newVendedorFixture()
	err := f.svc.Excluir(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

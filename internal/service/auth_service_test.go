package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"mercus/internal/config"
	"mercus/internal/dto"
	"mercus/internal/model"
)

func seedUser(t *testing.T, repo *stubUserRepo, email, senha string, ativo bool) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.MinCost)
	require.NoError(t, err)
	u := &model.User{Nome: "Ana", Email: email, Senha: string(hash), NivelAcesso: model.RoleVendedor, Ativo: ativo}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func authTestConfig() *config.Config {
	return &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 1}
}

func TestLoginReturnsValidToken(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "ana@empresa.com", "senha123", true)
	svc := NewAuthService(repo, authTestConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@empresa.com", Senha: "senha123"})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, user.ID, resp.User.ID)

	claims, err := ParseToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, model.RoleVendedor, claims.NivelAcesso)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "ana@empresa.com", "senha123", true)
	svc := NewAuthService(repo, authTestConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@empresa.com", Senha: "errada"})
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newStubUserRepo(), authTestConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ninguem@empresa.com", Senha: "x"})
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestLoginInactiveUser(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "ana@empresa.com", "senha123", false)
	svc := NewAuthService(repo, authTestConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@empresa.com", Senha: "senha123"})
	assert.ErrorIs(t, err, ErrCredenciaisInvalidas)
}

func TestBootstrapCreatesFirstAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, authTestConfig())

	user, err := svc.Bootstrap(context.Background(), dto.BootstrapRequest{
		Nome:  "Dono",
		Email: "Dono@Empresa.com",
		Senha: "senha123",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, user.NivelAcesso)
	assert.Equal(t, "dono@empresa.com", user.Email)

	// The created account can log in right away
	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "dono@empresa.com", Senha: "senha123"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestBootstrapRefusesWhenUsersExist(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "ana@empresa.com", "senha123", true)
	svc := NewAuthService(repo, authTestConfig())

	_, err := svc.Bootstrap(context.Background(), dto.BootstrapRequest{
		Nome:  "Intruso",
		Email: "intruso@empresa.com",
		Senha: "senha123",
	})
	assert.ErrorIs(t, err, ErrSistemaJaInicializado)
}

func TestMeReturnsCurrentUser(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "ana@empresa.com", "senha123", true)
	svc := NewAuthService(repo, authTestConfig())

	me, err := svc.Me(context.Background(), Claims{UserID: user.ID})
	require.NoError(t, err)
	assert.Equal(t, user.Email, me.Email)

	_, err = svc.Me(context.Background(), Claims{UserID: 999})
	assert.ErrorIs(t, err, ErrNaoEncontrado)
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "ana@empresa.com", "senha123", true)
	svc := NewAuthService(repo, authTestConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: "ana@empresa.com", Senha: "senha123"})
	require.NoError(t, err)

	_, err = ParseToken(resp.Token, "outro-secret")
	assert.Error(t, err)
}

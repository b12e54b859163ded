package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"mercus/internal/config"
	"mercus/internal/dto"
	"mercus/internal/model"
	"mercus/internal/repository"
	"mercus/internal/store"
)

// Claims is the JWT payload carried on every authenticated request. The
// middleware trusts the signed claims and never reloads the user per request.
type Claims struct {
	UserID      int64  `json:"user_id"`
	Nome        string `json:"nome"`
	NivelAcesso string `json:"nivel_acesso"`
	jwt.RegisteredClaims
}

// IsAdmin reports whether the token belongs to an admin account.
func (c Claims) IsAdmin() bool { return c.NivelAcesso == "admin" }

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	// Bootstrap creates the very first admin account. Refuses once any user
	// exists, so it is only useful on an empty installation.
	Bootstrap(ctx context.Context, req dto.BootstrapRequest) (*dto.LoginUser, error)
	Me(ctx context.Context, claims Claims) (*dto.LoginUser, error)
}

type authService struct {
	users repository.UserRepository
	cfg   *config.Config
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{users: users, cfg: cfg}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil || !user.Ativo {
		return nil, ErrCredenciaisInvalidas
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Senha), []byte(req.Senha)); err != nil {
		return nil, ErrCredenciaisInvalidas
	}

	now := time.Now()
	claims := Claims{
		UserID:      user.ID,
		Nome:        user.Nome,
		NivelAcesso: user.NivelAcesso,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Success: true,
		Token:   token,
		User: dto.LoginUser{
			ID:          user.ID,
			Nome:        user.Nome,
			Email:       user.Email,
			NivelAcesso: user.NivelAcesso,
		},
	}, nil
}

func (s *authService) Bootstrap(ctx context.Context, req dto.BootstrapRequest) (*dto.LoginUser, error) {
	existing, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrSistemaJaInicializado
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Nome:        strings.TrimSpace(req.Nome),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Senha:       string(hash),
		NivelAcesso: model.RoleAdmin,
		Ativo:       true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return &dto.LoginUser{
		ID:          user.ID,
		Nome:        user.Nome,
		Email:       user.Email,
		NivelAcesso: user.NivelAcesso,
	}, nil
}

func (s *authService) Me(ctx context.Context, claims Claims) (*dto.LoginUser, error) {
	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNaoEncontrado
		}
		return nil, err
	}
	return &dto.LoginUser{
		ID:          user.ID,
		Nome:        user.Nome,
		Email:       user.Email,
		NivelAcesso: user.NivelAcesso,
	}, nil
}

// ParseToken validates a signed token and returns its claims. Used by the
// auth middleware.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("token invalido ou expirado")
	}
	return claims, nil
}

// cmd/seedadmin/main.go — creates (or resets) the initial admin account on the
// configured storage backend.
// Uso: go run ./cmd/seedadmin -email admin@empresa.com -senha segredo [-nome "Administrador"]
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"mercus/internal/config"
	"mercus/internal/infra"
	"mercus/internal/model"
	"mercus/internal/repository"
	"mercus/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	email := flag.String("email", "admin@mercus.local", "email do administrador")
	senha := flag.String("senha", "", "senha em texto claro (obrigatoria)")
	nome := flag.String("nome", "Administrador", "nome de exibicao")
	flag.Parse()

	if *senha == "" {
		log.Fatal().Msg("-senha e obrigatoria")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StorageBackend).Msg("failed to set up storage")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*senha), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("bcrypt failed")
	}

	users := repository.NewUserRepository(st)
	addr := strings.ToLower(strings.TrimSpace(*email))

	existing, err := users.FindByEmail(ctx, addr)
	switch {
	case err == nil:
		_, err = users.Update(ctx, existing.ID, store.Record{
			"senha":        string(hash),
			"nivel_acesso": model.RoleAdmin,
			"ativo":        true,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to reset admin account")
		}
		log.Info().Str("email", addr).Int64("id", existing.ID).Msg("admin account reset")

	case errors.Is(err, store.ErrNotFound):
		u := &model.User{
			Nome:        *nome,
			Email:       addr,
			Senha:       string(hash),
			NivelAcesso: model.RoleAdmin,
			Ativo:       true,
		}
		if err := users.Create(ctx, u); err != nil {
			log.Fatal().Err(err).Msg("failed to create admin account")
		}
		log.Info().Str("email", addr).Int64("id", u.ID).Msg("admin account created")

	default:
		log.Fatal().Err(err).Msg("failed to look up admin account")
	}
}

func openStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	if cfg.StorageBackend == config.BackendSheets {
		client, err := infra.NewSheetsClient(ctx, cfg.SheetsCredentialsFile, cfg.SheetsSpreadsheetID)
		if err != nil {
			return nil, err
		}
		sheets := store.NewSheets(client, cfg.SheetsCacheTTL())
		if err := sheets.Init(ctx); err != nil {
			return nil, err
		}
		return sheets, nil
	}
	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return store.NewPostgres(db), nil
}

package infra

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mercus/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx and runs AutoMigrate
// so a fresh database comes up with the full schema. The vendedores table has
// no serial id of its own: a vendedor always reuses the id of its paired user.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := db.AutoMigrate(
		&model.User{},
		&model.Vendedor{},
		&model.Cliente{},
		&model.Produto{},
		&model.Pedido{},
		&model.PedidoItem{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// Package store defines the uniform data-access contract shared by the two
// storage backends (Postgres and Google Sheets). Repositories depend on the
// Store interface only — backend selection happens once, at process start.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Collection names. Both backends use the same set: relational tables on one
// side, spreadsheet tabs with a fixed header row on the other.
const (
	ColClientes    = "clientes"
	ColProdutos    = "produtos"
	ColPedidos     = "pedidos"
	ColPedidoItens = "pedido_itens"
	ColUsers       = "users"
	ColVendedores  = "vendedores"
)

// Record is one row of a collection. Values are backend-typed: the Sheets
// backend yields cell strings, Postgres yields driver types. Normalization to
// domain types happens in the model package, never here.
type Record map[string]any

var (
	// ErrNotFound is returned when an id does not exist in the collection.
	ErrNotFound = errors.New("store: registro nao encontrado")
	// ErrDuplicate is returned when a unique value already exists.
	ErrDuplicate = errors.New("store: valor duplicado")
)

// RemoteError tags transport/backend failures so callers never see raw
// driver or HTTP errors.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }
func (e *RemoteError) Unwrap() error { return e.Err }

// Store is the collection-scoped CRUD contract implemented by both backends.
type Store interface {
	// ListAll returns every record, ordered by id where the backend supports
	// ordering (Postgres) or in insertion order (Sheets).
	ListAll(ctx context.Context, collection string) ([]Record, error)

	// FindByID returns the record with the given id, or ErrNotFound.
	FindByID(ctx context.Context, collection string, id int64) (Record, error)

	// Insert stores rec, generating id and created_at/updated_at when absent.
	// A pre-set "id" is honored (used to pair vendedores with users).
	// Returns the stored record including the generated fields.
	Insert(ctx context.Context, collection string, rec Record) (Record, error)

	// UpdateByID applies a partial update and returns the updated record,
	// or ErrNotFound when the id does not exist.
	UpdateByID(ctx context.Context, collection string, id int64, changes Record) (Record, error)

	// DeleteByID removes the record; false when the id did not exist.
	DeleteByID(ctx context.Context, collection string, id int64) (bool, error)

	// FindWhere returns the first record with field == value, or ErrNotFound.
	// With fold the comparison is case-insensitive.
	FindWhere(ctx context.Context, collection, field string, value any, fold bool) (Record, error)

	// ExistsWhere reports whether any record has field == value. With fold the
	// comparison is case-insensitive. This is a pre-check, not a constraint:
	// concurrent inserts can still race.
	ExistsWhere(ctx context.Context, collection, field string, value any, fold bool) (bool, error)

	// Adjust atomically adds delta to a numeric field of one record.
	Adjust(ctx context.Context, collection string, id int64, field string, delta decimal.Decimal) error

	// Transact runs fn against a transactional view of the store when the
	// backend supports transactions (Postgres). The Sheets backend runs fn
	// directly; callers needing atomicity there must compensate on failure.
	Transact(ctx context.Context, fn func(Store) error) error
}

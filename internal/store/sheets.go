package store

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// SheetsAPI is the thin slice of the Google Sheets API the store needs.
// The production implementation lives in infra; tests use an in-memory fake.
type SheetsAPI interface {
	SheetTitles(ctx context.Context) ([]string, error)
	AddSheets(ctx context.Context, titles []string) error
	GetValues(ctx context.Context, rangeA1 string) ([][]any, error)
	UpdateValues(ctx context.Context, rangeA1 string, values [][]any) error
	AppendValues(ctx context.Context, rangeA1 string, values [][]any) error
	DeleteRow(ctx context.Context, sheetTitle string, rowIndex int) error
}

// sheetHeaders maps each collection to its tab's header row. Column order is
// the storage contract: rows are written and read strictly in this order.
var sheetHeaders = map[string][]string{
	ColClientes: {"id", "cnpj", "razao_social", "nome_fantasia", "email", "telefone",
		"endereco", "cidade", "estado", "cep", "inscricao_estadual", "vendedor_id",
		"ativo", "created_at", "updated_at"},
	ColProdutos: {"id", "codigo", "nome", "descricao", "preco_tabela", "preco_custo",
		"estoque_atual", "estoque_minimo", "unidade_medida", "imagem_url",
		"ativo", "created_at", "updated_at"},
	ColPedidos: {"id", "numero_pedido", "cliente_id", "vendedor_id", "data_emissao",
		"valor_total", "condicao_pagamento", "observacoes", "status",
		"created_at", "updated_at"},
	ColPedidoItens: {"id", "pedido_id", "produto_id", "quantidade", "preco_unitario",
		"desconto", "subtotal", "created_at", "updated_at"},
	ColUsers: {"id", "nome", "email", "senha", "nivel_acesso", "telefone", "comissao",
		"ativo", "created_at", "updated_at"},
	ColVendedores: {"id", "nome", "email", "telefone", "nivel_acesso", "comissao",
		"ativo", "created_at", "updated_at"},
}

// sheetRow pairs a record with its 1-based position in the tab, so updates
// and deletes can address the exact row without re-scanning.
type sheetRow struct {
	num int
	rec Record
}

type sheetCache struct {
	rows    []sheetRow
	fetched time.Time
}

// Sheets implements Store on a Google spreadsheet: one tab per collection,
// header row first, every cell a string. Reads go through a TTL cache to keep
// API usage inside quota; any write invalidates the collection's cache entry.
// A single mutex serializes all operations, which also makes Adjust's
// read-modify-write safe.
type Sheets struct {
	api SheetsAPI
	ttl time.Duration

	mu    sync.Mutex
	cache map[string]sheetCache
	now   func() time.Time
}

func NewSheets(api SheetsAPI, ttl time.Duration) *Sheets {
	return &Sheets{
		api:   api,
		ttl:   ttl,
		cache: make(map[string]sheetCache),
		now:   time.Now,
	}
}

// Init creates any missing collection tabs and writes their header rows.
// Call once at startup, before serving requests.
func (s *Sheets) Init(ctx context.Context) error {
	titles, err := s.api.SheetTitles(ctx)
	if err != nil {
		return &RemoteError{Op: "init: list sheets", Err: err}
	}
	existing := make(map[string]bool, len(titles))
	for _, t := range titles {
		existing[t] = true
	}
	var missing []string
	for col := range sheetHeaders {
		if !existing[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if err := s.api.AddSheets(ctx, missing); err != nil {
		return &RemoteError{Op: "init: add sheets", Err: err}
	}
	for _, col := range missing {
		header := make([]any, len(sheetHeaders[col]))
		for i, h := range sheetHeaders[col] {
			header[i] = h
		}
		if err := s.api.UpdateValues(ctx, col+"!A1", [][]any{header}); err != nil {
			return &RemoteError{Op: "init: write header " + col, Err: err}
		}
	}
	return nil
}

func (s *Sheets) ListAll(ctx context.Context, collection string) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.load(ctx, collection)
	if err != nil {
		return nil, err
	}
	out := make([]Record, len(rows))
	for i, r := range rows {
		out[i] = r.rec
	}
	return out, nil
}

func (s *Sheets) FindByID(ctx context.Context, collection string, id int64) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, err := s.findRow(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	return row.rec, nil
}

func (s *Sheets) Insert(ctx context.Context, collection string, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(ctx, collection)
	if err != nil {
		return nil, err
	}

	id := cellInt(rec["id"])
	if id != 0 {
		for _, r := range rows {
			if cellInt(r.rec["id"]) == id {
				return nil, ErrDuplicate
			}
		}
	} else {
		for _, r := range rows {
			if n := cellInt(r.rec["id"]); n > id {
				id = n
			}
		}
		id++
	}

	now := s.now().UTC().Format(time.RFC3339)
	stored := Record{}
	for k, v := range rec {
		stored[k] = cellString(v)
	}
	stored["id"] = cellString(id)
	stored["created_at"] = now
	stored["updated_at"] = now

	if err := s.api.AppendValues(ctx, collection+"!A1", [][]any{recordCells(collection, stored)}); err != nil {
		return nil, &RemoteError{Op: "insert " + collection, Err: err}
	}
	s.invalidate(collection)
	return stored, nil
}

func (s *Sheets) UpdateByID(ctx context.Context, collection string, id int64, changes Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateRow(ctx, collection, id, changes)
}

func (s *Sheets) DeleteByID(ctx context.Context, collection string, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.findRow(ctx, collection, id)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := s.api.DeleteRow(ctx, collection, row.num); err != nil {
		return false, &RemoteError{Op: "delete " + collection, Err: err}
	}
	s.invalidate(collection)
	return true, nil
}

func (s *Sheets) FindWhere(ctx context.Context, collection, field string, value any, fold bool) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(ctx, collection)
	if err != nil {
		return nil, err
	}
	if r, ok := matchRows(rows, field, value, fold); ok {
		return r.rec, nil
	}
	return nil, ErrNotFound
}

func (s *Sheets) ExistsWhere(ctx context.Context, collection, field string, value any, fold bool) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.load(ctx, collection)
	if err != nil {
		return false, err
	}
	_, ok := matchRows(rows, field, value, fold)
	return ok, nil
}

func matchRows(rows []sheetRow, field string, value any, fold bool) (sheetRow, bool) {
	want := strings.TrimSpace(cellString(value))
	for _, r := range rows {
		got := strings.TrimSpace(cellString(r.rec[field]))
		if fold && strings.EqualFold(got, want) {
			return r, true
		}
		if !fold && got == want {
			return r, true
		}
	}
	return sheetRow{}, false
}

func (s *Sheets) Adjust(ctx context.Context, collection string, id int64, field string, delta decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.findRow(ctx, collection, id)
	if err != nil {
		return err
	}
	current := cellDecimal(row.rec[field])
	_, err = s.updateRow(ctx, collection, id, Record{field: current.Add(delta).String()})
	return err
}

// Transact runs fn against the store directly: the spreadsheet offers no
// transactions, so multi-write callers compensate on failure instead.
func (s *Sheets) Transact(ctx context.Context, fn func(Store) error) error {
	return fn(s)
}

// load returns the collection's rows, refreshing from the API when the cache
// entry is missing or older than the TTL. Caller must hold mu.
func (s *Sheets) load(ctx context.Context, collection string) ([]sheetRow, error) {
	headers, ok := sheetHeaders[collection]
	if !ok {
		return nil, fmt.Errorf("store: colecao desconhecida %q", collection)
	}
	if c, ok := s.cache[collection]; ok && s.now().Sub(c.fetched) < s.ttl {
		return c.rows, nil
	}

	values, err := s.api.GetValues(ctx, collection)
	if err != nil {
		return nil, &RemoteError{Op: "load " + collection, Err: err}
	}

	var rows []sheetRow
	for i, cells := range values {
		if i == 0 {
			continue // header row
		}
		rec := Record{}
		for j, h := range headers {
			if j < len(cells) {
				rec[h] = cellString(cells[j])
			} else {
				rec[h] = ""
			}
		}
		if cellInt(rec["id"]) == 0 {
			continue
		}
		rows = append(rows, sheetRow{num: i + 1, rec: rec})
	}
	s.cache[collection] = sheetCache{rows: rows, fetched: s.now()}
	return rows, nil
}

func (s *Sheets) findRow(ctx context.Context, collection string, id int64) (sheetRow, error) {
	rows, err := s.load(ctx, collection)
	if err != nil {
		return sheetRow{}, err
	}
	for _, r := range rows {
		if cellInt(r.rec["id"]) == id {
			return r, nil
		}
	}
	return sheetRow{}, ErrNotFound
}

func (s *Sheets) updateRow(ctx context.Context, collection string, id int64, changes Record) (Record, error) {
	row, err := s.findRow(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	merged := Record{}
	for k, v := range row.rec {
		merged[k] = v
	}
	for k, v := range changes {
		merged[k] = cellString(v)
	}
	merged["updated_at"] = s.now().UTC().Format(time.RFC3339)

	target := fmt.Sprintf("%s!A%d", collection, row.num)
	if err := s.api.UpdateValues(ctx, target, [][]any{recordCells(collection, merged)}); err != nil {
		return nil, &RemoteError{Op: "update " + collection, Err: err}
	}
	s.invalidate(collection)
	return merged, nil
}

func (s *Sheets) invalidate(collection string) {
	delete(s.cache, collection)
}

// recordCells flattens a record to cells in the collection's header order.
func recordCells(collection string, rec Record) []any {
	headers := sheetHeaders[collection]
	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = cellString(rec[h])
	}
	return cells
}

// cellString renders any record value as a sheet cell. Booleans use the
// legacy 1/0 encoding, timestamps RFC3339.
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return "0"
	case time.Time:
		return t.UTC().Format(time.RFC3339)
	case decimal.Decimal:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func cellDecimal(v any) decimal.Decimal {
	s := strings.ReplaceAll(strings.TrimSpace(cellString(v)), ",", ".")
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func cellInt(v any) int64 {
	return cellDecimal(v).IntPart()
}

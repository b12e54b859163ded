package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// Postgres implements Store on top of a relational database via GORM. All
// access is table-scoped map CRUD so the same repositories work against the
// Sheets backend unchanged.
type Postgres struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) ListAll(ctx context.Context, collection string) ([]Record, error) {
	var rows []map[string]interface{}
	err := p.db.WithContext(ctx).Table(collection).Order("id").Find(&rows).Error
	if err != nil {
		return nil, wrapPG("list "+collection, err)
	}
	out := make([]Record, len(rows))
	for i, row := range rows {
		out[i] = Record(row)
	}
	return out, nil
}

func (p *Postgres) FindByID(ctx context.Context, collection string, id int64) (Record, error) {
	row := map[string]interface{}{}
	err := p.db.WithContext(ctx).Table(collection).Where("id = ?", id).Take(&row).Error
	if err != nil {
		return nil, wrapPG("find "+collection, err)
	}
	return Record(row), nil
}

func (p *Postgres) Insert(ctx context.Context, collection string, rec Record) (Record, error) {
	row := map[string]interface{}{}
	for k, v := range rec {
		row[k] = v
	}
	if _, ok := row["id"]; !ok {
		id, err := p.nextID(ctx, collection)
		if err != nil {
			return nil, err
		}
		row["id"] = id
	}
	now := time.Now().UTC()
	row["created_at"] = now
	row["updated_at"] = now

	if err := p.db.WithContext(ctx).Table(collection).Create(&row).Error; err != nil {
		return nil, wrapPG("insert "+collection, err)
	}
	return Record(row), nil
}

// nextID allocates the next id from the table's serial sequence, so explicit
// ids and generated ids never collide. Falls back to MAX(id)+1 for tables
// without a sequence (vendedores reuses the paired user id).
func (p *Postgres) nextID(ctx context.Context, collection string) (int64, error) {
	var id int64
	err := p.db.WithContext(ctx).
		Raw("SELECT nextval(pg_get_serial_sequence(?, 'id'))", collection).
		Scan(&id).Error
	if err == nil && id > 0 {
		return id, nil
	}
	err = p.db.WithContext(ctx).
		Raw("SELECT COALESCE(MAX(id), 0) + 1 FROM " + collection).
		Scan(&id).Error
	if err != nil {
		return 0, wrapPG("next id "+collection, err)
	}
	return id, nil
}

func (p *Postgres) UpdateByID(ctx context.Context, collection string, id int64, changes Record) (Record, error) {
	row := map[string]interface{}{}
	for k, v := range changes {
		row[k] = v
	}
	row["updated_at"] = time.Now().UTC()

	res := p.db.WithContext(ctx).Table(collection).Where("id = ?", id).Updates(row)
	if res.Error != nil {
		return nil, wrapPG("update "+collection, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return p.FindByID(ctx, collection, id)
}

func (p *Postgres) DeleteByID(ctx context.Context, collection string, id int64) (bool, error) {
	res := p.db.WithContext(ctx).Exec("DELETE FROM "+collection+" WHERE id = ?", id)
	if res.Error != nil {
		return false, wrapPG("delete "+collection, res.Error)
	}
	return res.RowsAffected > 0, nil
}

func (p *Postgres) FindWhere(ctx context.Context, collection, field string, value any, fold bool) (Record, error) {
	row := map[string]interface{}{}
	err := p.whereQuery(ctx, collection, field, value, fold).Take(&row).Error
	if err != nil {
		return nil, wrapPG("find where "+collection, err)
	}
	return Record(row), nil
}

func (p *Postgres) ExistsWhere(ctx context.Context, collection, field string, value any, fold bool) (bool, error) {
	var n int64
	if err := p.whereQuery(ctx, collection, field, value, fold).Count(&n).Error; err != nil {
		return false, wrapPG("exists "+collection, err)
	}
	return n > 0, nil
}

func (p *Postgres) whereQuery(ctx context.Context, collection, field string, value any, fold bool) *gorm.DB {
	q := p.db.WithContext(ctx).Table(collection)
	if fold {
		return q.Where("LOWER("+field+") = LOWER(?)", value)
	}
	return q.Where(field+" = ?", value)
}

func (p *Postgres) Adjust(ctx context.Context, collection string, id int64, field string, delta decimal.Decimal) error {
	res := p.db.WithContext(ctx).Table(collection).Where("id = ?", id).
		UpdateColumn(field, gorm.Expr(field+" + ?", delta))
	if res.Error != nil {
		return wrapPG("adjust "+collection, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) Transact(ctx context.Context, fn func(Store) error) error {
	return p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Postgres{db: tx})
	})
}

func wrapPG(op string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicate
	}
	return &RemoteError{Op: op, Err: err}
}

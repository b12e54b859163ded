package repository

import (
	"context"

	"mercus/internal/model"
	"mercus/internal/store"
)

type UserRepository interface {
	List(ctx context.Context) ([]model.User, error)
	FindByID(ctx context.Context, id int64) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
	Update(ctx context.Context, id int64, changes store.Record) (*model.User, error)
	Deactivate(ctx context.Context, id int64) error
	// DeletePermanent removes the row entirely. Used only when undoing a
	// half-finished user/vendedor pair.
	DeletePermanent(ctx context.Context, id int64) error
	ExistsEmail(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
	st store.Store
}

func NewUserRepository(st store.Store) UserRepository {
	return &userRepository{st: st}
}

func (r *userRepository) List(ctx context.Context) ([]model.User, error) {
	recs, err := r.st.ListAll(ctx, store.ColUsers)
	if err != nil {
		return nil, err
	}
	out := make([]model.User, len(recs))
	for i, rec := range recs {
		out[i] = model.UserFromRecord(rec)
	}
	return out, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	rec, err := r.st.FindByID(ctx, store.ColUsers, id)
	if err != nil {
		return nil, err
	}
	u := model.UserFromRecord(rec)
	return &u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	rec, err := r.st.FindWhere(ctx, store.ColUsers, "email", email, true)
	if err != nil {
		return nil, err
	}
	u := model.UserFromRecord(rec)
	return &u, nil
}

func (r *userRepository) Create(ctx context.Context, u *model.User) error {
	rec, err := r.st.Insert(ctx, store.ColUsers, u.ToRecord())
	if err != nil {
		return err
	}
	*u = model.UserFromRecord(rec)
	return nil
}

func (r *userRepository) Update(ctx context.Context, id int64, changes store.Record) (*model.User, error) {
	rec, err := r.st.UpdateByID(ctx, store.ColUsers, id, changes)
	if err != nil {
		return nil, err
	}
	u := model.UserFromRecord(rec)
	return &u, nil
}

func (r *userRepository) Deactivate(ctx context.Context, id int64) error {
	_, err := r.st.UpdateByID(ctx, store.ColUsers, id, store.Record{"ativo": false})
	return err
}

func (r *userRepository) DeletePermanent(ctx context.Context, id int64) error {
	ok, err := r.st.DeleteByID(ctx, store.ColUsers, id)
	if err != nil {
		return err
	}
	if !ok {
		return store.ErrNotFound
	}
	return nil
}

func (r *userRepository) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return r.st.ExistsWhere(ctx, store.ColUsers, "email", email, true)
}

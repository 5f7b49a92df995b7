package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/geocoder89/roster/internal/domain/user"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrDuplicateID   = errors.New("duplicate user id in seed")
	ErrInvalidSeedID = errors.New("seed user id is not a valid id")
)

var tracer = otel.Tracer("github.com/geocoder89/roster/internal/repo/memory")

// StoreObserver wraps a store operation, e.g. to time it. fn reports whether
// the operation found what it looked for.
type StoreObserver interface {
	ObserveStore(op string, fn func() (found bool, err error)) error
}

type Option func(*UsersRepo)

func WithObserver(obs StoreObserver) Option {
	return func(r *UsersRepo) {
		r.obs = obs
	}
}

// UsersRepo is read-only after construction and safe for concurrent use.
type UsersRepo struct {
	users []user.Public
	byID  map[string]int
	obs   StoreObserver
}

func NewUsersRepo(seed []user.User, opts ...Option) (*UsersRepo, error) {
	r := &UsersRepo{
		users: make([]user.Public, 0, len(seed)),
		byID:  make(map[string]int, len(seed)),
	}

	for _, u := range seed {
		if !user.ValidID(u.ID) || u.ID != strings.TrimSpace(u.ID) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSeedID, u.ID)
		}
		if _, ok := r.byID[u.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, u.ID)
		}

		r.byID[u.ID] = len(r.users)
		r.users = append(r.users, u.Public())
	}

	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

func NewSeededUsersRepo(opts ...Option) (*UsersRepo, error) {
	return NewUsersRepo(seedUsers(), opts...)
}

func (r *UsersRepo) Len() int {
	return len(r.users)
}

func (r *UsersRepo) List(ctx context.Context) ([]user.Public, error) {
	_, span := tracer.Start(ctx, "UsersRepo.List")
	defer span.End()

	var out []user.Public

	err := r.observe("list", func() (bool, error) {
		out = make([]user.Public, len(r.users))
		copy(out, r.users)
		return true, nil
	})
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.Int("users.count", len(out)))
	return out, nil
}

// GetByID does an exact match on id. A miss is reported through found, not err.
func (r *UsersRepo) GetByID(ctx context.Context, id string) (user.Public, bool, error) {
	_, span := tracer.Start(ctx, "UsersRepo.GetByID")
	defer span.End()

	var (
		u     user.Public
		found bool
	)

	err := r.observe("get_by_id", func() (bool, error) {
		idx, ok := r.byID[id]
		if ok {
			u, found = r.users[idx], true
		}
		return found, nil
	})
	if err != nil {
		span.RecordError(err)
		return user.Public{}, false, err
	}

	span.SetAttributes(attribute.Bool("users.found", found))
	return u, found, nil
}

func (r *UsersRepo) observe(op string, fn func() (bool, error)) error {
	if r.obs == nil {
		_, err := fn()
		return err
	}
	return r.obs.ObserveStore(op, fn)
}

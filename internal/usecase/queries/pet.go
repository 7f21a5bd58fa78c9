package queries

import (
	"context"

	"petboard/internal/infra"
	"petboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPetNotFound = errs.New("pet not found")

type PetQueries interface {
	// GetByID is unscoped; it backs the command layer's
	// read-after-write and is not routed directly.
	GetByID(ctx context.Context, id uuid.UUID) (*PetView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PetView, error)
}

type PetReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PetView, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*PetView, error)
}

type petQueriesImpl struct {
	store PetReadStore
}

func NewPetQueries(store PetReadStore) PetQueries {
	return &petQueriesImpl{store: store}
}

func (q *petQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PetView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *petQueriesImpl) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*PetView, error) {
	return q.store.FindByOwnerID(ctx, ownerID)
}

package queries

import (
	"context"

	"petboard/internal/domain/account"
	"petboard/internal/domain/reservation"
	"petboard/internal/infra"
	"petboard/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound = errs.New("service not found")
	ErrNotServiceOwner = errs.New("service belongs to another provider")
)

type ServiceQueries interface {
	Search(ctx context.Context, filters ServiceFilters) ([]*ServiceView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	Availability(ctx context.Context, serviceID uuid.UUID, dates reservation.DateRange) (*AvailabilityView, error)
	// ListReservations is provider-only: existence is checked before
	// ownership so a missing service reads as 404, not 403.
	ListReservations(ctx context.Context, actor account.Actor, serviceID uuid.UUID) ([]*ReservationView, error)
}

type ServiceReadStore interface {
	Search(ctx context.Context, filters ServiceFilters) ([]*ServiceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	CountOverlapping(ctx context.Context, serviceID uuid.UUID, dates reservation.DateRange) (int64, error)
	FindReservationsByServiceID(ctx context.Context, serviceID uuid.UUID) ([]*ReservationView, error)
}

type serviceQueriesImpl struct {
	store ServiceReadStore
}

func NewServiceQueries(store ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{store: store}
}

func (q *serviceQueriesImpl) Search(ctx context.Context, filters ServiceFilters) ([]*ServiceView, error) {
	return q.store.Search(ctx, filters)
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *serviceQueriesImpl) Availability(ctx context.Context, serviceID uuid.UUID, dates reservation.DateRange) (*AvailabilityView, error) {
	view, err := q.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if view.Capacity == nil {
		return &AvailabilityView{
			ServiceID:     serviceID,
			CapacityKnown: false,
		}, nil
	}

	reserved, err := q.store.CountOverlapping(ctx, serviceID, dates)
	if err != nil {
		return nil, err
	}

	available := *view.Capacity - int32(reserved)
	if available < 0 {
		available = 0
	}

	return &AvailabilityView{
		ServiceID:     serviceID,
		CapacityKnown: true,
		Capacity:      *view.Capacity,
		Reserved:      int32(reserved),
		Available:     available,
	}, nil
}

func (q *serviceQueriesImpl) ListReservations(ctx context.Context, actor account.Actor, serviceID uuid.UUID) ([]*ReservationView, error) {
	view, err := q.GetByID(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	if view.ProviderID != actor.ID {
		return nil, ErrNotServiceOwner
	}

	return q.store.FindReservationsByServiceID(ctx, serviceID)
}

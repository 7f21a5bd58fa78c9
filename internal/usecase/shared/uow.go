package shared

import (
	"context"

	"petboard/internal/domain/account"
	"petboard/internal/domain/boarding"
	"petboard/internal/domain/pet"
	"petboard/internal/domain/reservation"
	"petboard/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork scopes repository work to a single transaction. Within
// runs at read committed; WithinSerializable is reserved for the
// booking admission path, where the overlap count and the insert must
// not interleave with a competing admission for the same service.
type UnitOfWork interface {
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	WithinSerializable(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	DB() db.DBTX
	Accounts() AccountRepository
	Pets() PetRepository
	Services() ServiceRepository
	Reservations() ReservationRepository
	Reads() CommandReads
}

type AccountRepository interface {
	Create(ctx context.Context, a *account.Account) error
	// EmailInUse checks the union of owner and provider identities.
	EmailInUse(ctx context.Context, email string) (bool, error)
}

type PetRepository interface {
	Create(ctx context.Context, p *pet.Pet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ServiceRepository interface {
	Create(ctx context.Context, s *boarding.Service) error
	Update(ctx context.Context, s *boarding.Service) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByPet(ctx context.Context, petID uuid.UUID) (int64, error)
	DeleteByService(ctx context.Context, serviceID uuid.UUID) (int64, error)
	// CountOverlapping counts stays for serviceID whose inclusive date
	// interval overlaps dates.
	CountOverlapping(ctx context.Context, serviceID uuid.UUID, dates reservation.DateRange) (int64, error)
}

// CommandReads are the lookups command handlers perform inside the
// same transaction as their writes.
type CommandReads interface {
	PetByID(ctx context.Context, id uuid.UUID) (*PetSnapshot, error)
	ServiceByID(ctx context.Context, id uuid.UUID) (*ServiceSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
}

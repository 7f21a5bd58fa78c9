package commands

import (
	"context"
	"log/slog"
	"time"

	"petboard/internal/domain/account"
	"petboard/internal/domain/boarding"
	"petboard/internal/domain/pet"
	"petboard/internal/domain/reservation"
	reqdto "petboard/internal/handler/dto/request"
	"petboard/internal/pkg/errs"
	"petboard/internal/usecase/queries"
	"petboard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidDateRange    = errs.New("invalid date range")
	ErrCapacityExceeded    = errs.New("service is fully booked for the selected dates")
)

type ReservationCommands interface {
	// Create is the admission path: pet resolution and ownership,
	// service resolution, range validation, then capacity check and
	// insert as a single serializable unit.
	Create(ctx context.Context, actor account.Actor, req reqdto.CreateReservationRequest) (*queries.ReservationView, error)
	// Cancel frees capacity unconditionally once ownership is verified.
	Cancel(ctx context.Context, actor account.Actor, reservationID uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow                shared.UnitOfWork
	reservationQueries queries.ReservationQueries
}

func NewReservationCommands(uow shared.UnitOfWork, reservationQueries queries.ReservationQueries) ReservationCommands {
	return &reservationCommandsImpl{
		uow:                uow,
		reservationQueries: reservationQueries,
	}
}

func (c *reservationCommandsImpl) Create(ctx context.Context, actor account.Actor, req reqdto.CreateReservationRequest) (*queries.ReservationView, error) {
	dates, err := req.ToDateRange()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidDateRange)
	}

	var created *reservation.Reservation

	// Serializable isolation makes the count-then-insert an admission
	// unit: two competing admissions for the same service cannot both
	// observe a pre-insert count below capacity. The unit of work
	// retries serialization aborts, re-running the count.
	err = c.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		petSnapshot, err := tx.Reads().PetByID(ctx, req.PetID)
		if err != nil {
			return markNotFound(err, ErrPetNotFound)
		}
		petEntity := pet.ReconstructPet(petSnapshot.ID, petSnapshot.Name, petSnapshot.Type,
			petSnapshot.Age, petSnapshot.OwnerID, time.Time{})
		if !petEntity.IsOwnedBy(actor.ID) {
			return ErrNotPetOwner
		}

		// Any owner may book any provider's service.
		serviceSnapshot, err := tx.Reads().ServiceByID(ctx, req.ServiceID)
		if err != nil {
			return markNotFound(err, ErrServiceNotFound)
		}
		svc := boarding.ReconstructService(serviceSnapshot.ID, boarding.Spec{
			Name:        serviceSnapshot.Name,
			Location:    serviceSnapshot.Location,
			PricePerDay: serviceSnapshot.PricePerDay,
			Capacity:    serviceSnapshot.Capacity,
			Type:        serviceSnapshot.Type,
		}, serviceSnapshot.ProviderID, time.Time{}, time.Time{})

		if svc.HasCapacityLimit() {
			overlapping, err := tx.Reservations().CountOverlapping(ctx, req.ServiceID, dates)
			if err != nil {
				return err
			}
			if overlapping >= int64(*svc.Capacity()) {
				return ErrCapacityExceeded
			}
		}

		created = reservation.NewReservation(petEntity.ID(), svc.ID(), dates)
		return tx.Reservations().Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("reservation admitted",
		"reservation_id", created.ID(), "service_id", created.ServiceID(), "days", dates.Days())

	// Read-after-write: return the joined view of what was committed.
	return c.reservationQueries.GetByID(ctx, created.ID())
}

func (c *reservationCommandsImpl) Cancel(ctx context.Context, actor account.Actor, reservationID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().ReservationByID(ctx, reservationID)
		if err != nil {
			return markNotFound(err, ErrReservationNotFound)
		}

		if snapshot.OwnerID != actor.ID {
			return ErrNotPetOwner
		}

		return tx.Reservations().Delete(ctx, reservationID)
	})
}

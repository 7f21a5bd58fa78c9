package repository

import (
	"context"

	"petboard/internal/domain/reservation"
	"petboard/internal/infra"
	"petboard/internal/infra/db"

	"github.com/google/uuid"
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	const query = `
		INSERT INTO reservations (id, start_date, end_date, pet_id, service_id)
		VALUES ($1, $2, $3, $4, $5)`

	dates := res.Dates()
	_, err := r.db.Exec(ctx, query,
		res.ID(), dates.Start(), dates.End(), res.PetID(), res.ServiceID())
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) DeleteByPet(ctx context.Context, petID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE pet_id = $1`, petID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservations by pet", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) DeleteByService(ctx context.Context, serviceID uuid.UUID) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE service_id = $1`, serviceID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to delete reservations by service", err)
	}
	return tag.RowsAffected(), nil
}

// CountOverlapping counts stays whose inclusive interval intersects
// [start, end]: existing.start <= end AND existing.end >= start. A
// stay ending the day another begins occupies a slot on that day.
func (r *ReservationRepository) CountOverlapping(ctx context.Context, serviceID uuid.UUID, dates reservation.DateRange) (int64, error) {
	const query = `
		SELECT count(*)
		FROM reservations
		WHERE service_id = $1
		  AND start_date <= $3
		  AND end_date >= $2`

	var count int64
	if err := r.db.QueryRow(ctx, query, serviceID, dates.Start(), dates.End()).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count overlapping reservations", err)
	}
	return count, nil
}

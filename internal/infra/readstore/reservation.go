package readstore

import (
	"context"

	"petboard/internal/infra"
	"petboard/internal/infra/db"
	"petboard/internal/usecase/queries"
	"petboard/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

const reservationJoin = `
	FROM reservations r
	JOIN pets p ON p.id = r.pet_id
	JOIN services s ON s.id = r.service_id`

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	query := `
		SELECT r.id, r.pet_id, p.name, r.service_id, s.name, r.start_date, r.end_date, r.created_at` +
		reservationJoin + `
		WHERE r.id = $1`

	var view queries.ReservationView
	err := r.db.QueryRow(ctx, query, id).
		Scan(&view.ID, &view.PetID, &view.PetName, &view.ServiceID, &view.ServiceName,
			&view.StartDate, &view.EndDate, &view.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &view, nil
}

// FindSnapshotByID backs in-transaction command checks; it joins
// through pets so the caller gets the owning account in one read.
func (r *ReservationReadStore) FindSnapshotByID(ctx context.Context, id uuid.UUID) (*shared.ReservationSnapshot, error) {
	const query = `
		SELECT r.id, r.pet_id, r.service_id, p.owner_id, r.start_date, r.end_date
		FROM reservations r
		JOIN pets p ON p.id = r.pet_id
		WHERE r.id = $1`

	var snap shared.ReservationSnapshot
	err := r.db.QueryRow(ctx, query, id).
		Scan(&snap.ID, &snap.PetID, &snap.ServiceID, &snap.OwnerID, &snap.StartDate, &snap.EndDate)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &snap, nil
}

func (r *ReservationReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.ReservationView, error) {
	query := `
		SELECT r.id, r.pet_id, p.name, r.service_id, s.name, r.start_date, r.end_date, r.created_at` +
		reservationJoin + `
		WHERE p.owner_id = $1
		ORDER BY r.start_date, r.id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by owner", err)
	}
	defer rows.Close()

	result := make([]*queries.ReservationView, 0)
	for rows.Next() {
		var view queries.ReservationView
		err := rows.Scan(&view.ID, &view.PetID, &view.PetName, &view.ServiceID, &view.ServiceName,
			&view.StartDate, &view.EndDate, &view.CreatedAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservation rows", err)
	}
	return result, nil
}

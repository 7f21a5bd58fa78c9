package readstore

import (
	"context"
	"fmt"
	"strings"

	"petboard/internal/domain/reservation"
	"petboard/internal/infra"
	"petboard/internal/infra/db"
	"petboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadStore struct {
	db db.DBTX
}

func NewServiceReadStore(dbtx db.DBTX) *ServiceReadStore {
	return &ServiceReadStore{db: dbtx}
}

const serviceColumns = `id, name, location, price_per_day, capacity, type, provider_id, created_at, updated_at`

func (r *ServiceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	query := `SELECT ` + serviceColumns + ` FROM services WHERE id = $1`

	view, err := scanServiceRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return view, nil
}

// Search applies the catalog filters conjunctively. Location matches
// case-insensitively as a substring; a price ceiling excludes services
// with no listed price.
func (r *ServiceReadStore) Search(ctx context.Context, filters queries.ServiceFilters) ([]*queries.ServiceView, error) {
	var conds []string
	var args []any

	if filters.Location != nil {
		args = append(args, "%"+*filters.Location+"%")
		conds = append(conds, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filters.Type != nil {
		args = append(args, *filters.Type)
		conds = append(conds, fmt.Sprintf("type = $%d", len(args)))
	}
	if filters.MaxPrice != nil {
		args = append(args, *filters.MaxPrice)
		conds = append(conds, fmt.Sprintf("price_per_day <= $%d", len(args)))
	}

	query := `SELECT ` + serviceColumns + ` FROM services`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at, id"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search services", err)
	}
	defer rows.Close()

	result := make([]*queries.ServiceView, 0)
	for rows.Next() {
		view, err := scanServiceRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", err)
	}
	return result, nil
}

func (r *ServiceReadStore) CountOverlapping(ctx context.Context, serviceID uuid.UUID, dates reservation.DateRange) (int64, error) {
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

func (r *ServiceReadStore) FindReservationsByServiceID(ctx context.Context, serviceID uuid.UUID) ([]*queries.ReservationView, error) {
	const query = `
		SELECT r.id, r.pet_id, p.name, r.service_id, s.name, r.start_date, r.end_date, r.created_at
		FROM reservations r
		JOIN pets p ON p.id = r.pet_id
		JOIN services s ON s.id = r.service_id
		WHERE r.service_id = $1
		ORDER BY r.start_date, r.id`

	rows, err := r.db.Query(ctx, query, serviceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by service", err)
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

func scanServiceRow(row interface{ Scan(dest ...any) error }) (*queries.ServiceView, error) {
	var view queries.ServiceView
	err := row.Scan(&view.ID, &view.Name, &view.Location, &view.PricePerDay, &view.Capacity,
		&view.Type, &view.ProviderID, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

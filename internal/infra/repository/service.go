package repository

import (
	"context"

	"petboard/internal/domain/boarding"
	"petboard/internal/infra"
	"petboard/internal/infra/db"

	"github.com/google/uuid"
)

type ServiceRepository struct {
	db db.DBTX
}

func NewServiceRepository(dbtx db.DBTX) *ServiceRepository {
	return &ServiceRepository{db: dbtx}
}

func (r *ServiceRepository) Create(ctx context.Context, s *boarding.Service) error {
	const query = `
		INSERT INTO services (id, name, location, price_per_day, capacity, type, provider_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.db.Exec(ctx, query,
		s.ID(), s.Name(), s.Location(), s.PricePerDay(), s.Capacity(), s.Type(), s.ProviderID())
	if err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, s *boarding.Service) error {
	const query = `
		UPDATE services
		SET name = $2, location = $3, price_per_day = $4, capacity = $5, type = $6, updated_at = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		s.ID(), s.Name(), s.Location(), s.PricePerDay(), s.Capacity(), s.Type())
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

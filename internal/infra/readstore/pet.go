package readstore

import (
	"context"

	"petboard/internal/infra"
	"petboard/internal/infra/db"
	"petboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetReadStore struct {
	db db.DBTX
}

func NewPetReadStore(dbtx db.DBTX) *PetReadStore {
	return &PetReadStore{db: dbtx}
}

func (r *PetReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PetView, error) {
	const query = `
		SELECT id, name, type, age, owner_id, created_at
		FROM pets
		WHERE id = $1`

	var view queries.PetView
	err := r.db.QueryRow(ctx, query, id).
		Scan(&view.ID, &view.Name, &view.Type, &view.Age, &view.OwnerID, &view.CreatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pet by ID", err)
	}
	return &view, nil
}

func (r *PetReadStore) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*queries.PetView, error) {
	const query = `
		SELECT id, name, type, age, owner_id, created_at
		FROM pets
		WHERE owner_id = $1
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pets by owner", err)
	}
	defer rows.Close()

	result := make([]*queries.PetView, 0)
	for rows.Next() {
		var view queries.PetView
		if err := rows.Scan(&view.ID, &view.Name, &view.Type, &view.Age, &view.OwnerID, &view.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pet row", err)
		}
		result = append(result, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate pet rows", err)
	}
	return result, nil
}

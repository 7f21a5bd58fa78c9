package repository

import (
	"context"

	"petboard/internal/domain/pet"
	"petboard/internal/infra"
	"petboard/internal/infra/db"

	"github.com/google/uuid"
)

type PetRepository struct {
	db db.DBTX
}

func NewPetRepository(dbtx db.DBTX) *PetRepository {
	return &PetRepository{db: dbtx}
}

func (r *PetRepository) Create(ctx context.Context, p *pet.Pet) error {
	const query = `
		INSERT INTO pets (id, name, type, age, owner_id)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query, p.ID(), p.Name(), p.Type(), p.Age(), p.OwnerID())
	if err != nil {
		return infra.WrapRepoErr("failed to create pet", err)
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM pets WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete pet", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return nil
}

package commands

import (
	"context"
	"log/slog"

	"petboard/internal/domain/account"
	"petboard/internal/domain/pet"
	reqdto "petboard/internal/handler/dto/request"
	"petboard/internal/pkg/errs"
	"petboard/internal/usecase/queries"
	"petboard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPetNotFound = errs.New("pet not found")
	ErrNotPetOwner = errs.New("pet belongs to another owner")
)

type PetCommands interface {
	Create(ctx context.Context, actor account.Actor, req reqdto.CreatePetRequest) (*queries.PetView, error)
	// Delete removes the pet and its reservations in one transaction;
	// no orphan reservation survives the pet.
	Delete(ctx context.Context, actor account.Actor, petID uuid.UUID) error
}

type petCommandsImpl struct {
	uow        shared.UnitOfWork
	petQueries queries.PetQueries
}

func NewPetCommands(uow shared.UnitOfWork, petQueries queries.PetQueries) PetCommands {
	return &petCommandsImpl{
		uow:        uow,
		petQueries: petQueries,
	}
}

func (c *petCommandsImpl) Create(ctx context.Context, actor account.Actor, req reqdto.CreatePetRequest) (*queries.PetView, error) {
	entity, err := pet.NewPet(req.Name, req.Type, req.Age, actor.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Pets().Create(ctx, entity)
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write so the response carries DB-assigned timestamps.
	return c.petQueries.GetByID(ctx, entity.ID())
}

func (c *petCommandsImpl) Delete(ctx context.Context, actor account.Actor, petID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().PetByID(ctx, petID)
		if err != nil {
			return markNotFound(err, ErrPetNotFound)
		}

		if snapshot.OwnerID != actor.ID {
			return ErrNotPetOwner
		}

		removed, err := tx.Reservations().DeleteByPet(ctx, petID)
		if err != nil {
			return err
		}
		if removed > 0 {
			slog.Info("cascade deleted reservations with pet", "pet_id", petID, "count", removed)
		}

		return tx.Pets().Delete(ctx, petID)
	})
}

package commands

import (
	"context"
	"log/slog"
	"time"

	"petboard/internal/domain/account"
	"petboard/internal/domain/boarding"
	reqdto "petboard/internal/handler/dto/request"
	"petboard/internal/pkg/errs"
	"petboard/internal/usecase/queries"
	"petboard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound = errs.New("service not found")
	ErrNotServiceOwner = errs.New("service belongs to another provider")
)

type ServiceCommands interface {
	Create(ctx context.Context, actor account.Actor, req reqdto.ServiceRequest) (*queries.ServiceView, error)
	Update(ctx context.Context, actor account.Actor, serviceID uuid.UUID, req reqdto.ServiceRequest) (*queries.ServiceView, error)
	// Delete removes the service and its reservations in one
	// transaction, mirroring pet deletion.
	Delete(ctx context.Context, actor account.Actor, serviceID uuid.UUID) error
}

type serviceCommandsImpl struct {
	uow            shared.UnitOfWork
	serviceQueries queries.ServiceQueries
}

func NewServiceCommands(uow shared.UnitOfWork, serviceQueries queries.ServiceQueries) ServiceCommands {
	return &serviceCommandsImpl{
		uow:            uow,
		serviceQueries: serviceQueries,
	}
}

func (c *serviceCommandsImpl) Create(ctx context.Context, actor account.Actor, req reqdto.ServiceRequest) (*queries.ServiceView, error) {
	entity, err := boarding.NewService(req.ToSpec(), actor.ID)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Services().Create(ctx, entity)
	})
	if err != nil {
		return nil, err
	}

	// Read-after-write so the response carries DB-assigned timestamps.
	return c.serviceQueries.GetByID(ctx, entity.ID())
}

func (c *serviceCommandsImpl) Update(ctx context.Context, actor account.Actor, serviceID uuid.UUID, req reqdto.ServiceRequest) (*queries.ServiceView, error) {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().ServiceByID(ctx, serviceID)
		if err != nil {
			return markNotFound(err, ErrServiceNotFound)
		}

		entity := boarding.ReconstructService(snapshot.ID, boarding.Spec{
			Name:        snapshot.Name,
			Location:    snapshot.Location,
			PricePerDay: snapshot.PricePerDay,
			Capacity:    snapshot.Capacity,
			Type:        snapshot.Type,
		}, snapshot.ProviderID, time.Time{}, time.Time{})

		if !entity.IsOwnedBy(actor.ID) {
			return ErrNotServiceOwner
		}

		if err := entity.Update(req.ToSpec()); err != nil {
			return errs.Mark(err, ErrValidation)
		}

		return tx.Services().Update(ctx, entity)
	})
	if err != nil {
		return nil, err
	}

	return c.serviceQueries.GetByID(ctx, serviceID)
}

func (c *serviceCommandsImpl) Delete(ctx context.Context, actor account.Actor, serviceID uuid.UUID) error {
	return c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snapshot, err := tx.Reads().ServiceByID(ctx, serviceID)
		if err != nil {
			return markNotFound(err, ErrServiceNotFound)
		}

		if snapshot.ProviderID != actor.ID {
			return ErrNotServiceOwner
		}

		removed, err := tx.Reservations().DeleteByService(ctx, serviceID)
		if err != nil {
			return err
		}
		if removed > 0 {
			slog.Info("cascade deleted reservations with service", "service_id", serviceID, "count", removed)
		}

		return tx.Services().Delete(ctx, serviceID)
	})
}

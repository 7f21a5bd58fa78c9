//go:build unit || e2e

package builder

import (
	"time"

	reqdto "petboard/internal/handler/dto/request"
	"petboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	Name        string
	Location    string
	PricePerDay *float64
	Capacity    *int32
	Type        string
	ProviderID  uuid.UUID
}

func NewServiceBuilder() *ServiceBuilder {
	price := 45.0
	capacity := int32(5)
	return &ServiceBuilder{
		Name:        "Happy Paws Boarding",
		Location:    "Springfield",
		PricePerDay: &price,
		Capacity:    &capacity,
		Type:        "boarding",
		ProviderID:  uuid.New(),
	}
}

func (b *ServiceBuilder) WithProviderID(id uuid.UUID) *ServiceBuilder {
	b.ProviderID = id
	return b
}

func (b *ServiceBuilder) WithCapacity(capacity *int32) *ServiceBuilder {
	b.Capacity = capacity
	return b
}

func (b *ServiceBuilder) BuildDTO() reqdto.ServiceRequest {
	return reqdto.ServiceRequest{
		Name:        b.Name,
		Location:    b.Location,
		PricePerDay: b.PricePerDay,
		Capacity:    b.Capacity,
		Type:        b.Type,
	}
}

func (b *ServiceBuilder) BuildView() *queries.ServiceView {
	now := time.Now()
	return &queries.ServiceView{
		ID:          uuid.New(),
		Name:        b.Name,
		Location:    b.Location,
		PricePerDay: b.PricePerDay,
		Capacity:    b.Capacity,
		Type:        b.Type,
		ProviderID:  b.ProviderID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

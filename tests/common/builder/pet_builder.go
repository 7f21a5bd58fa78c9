//go:build unit || e2e

package builder

import (
	"time"

	reqdto "petboard/internal/handler/dto/request"
	"petboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetBuilder struct {
	Name    string
	Type    string
	Age     int32
	OwnerID uuid.UUID
}

func NewPetBuilder() *PetBuilder {
	return &PetBuilder{
		Name:    "Rex",
		Type:    "dog",
		Age:     3,
		OwnerID: uuid.New(),
	}
}

func (b *PetBuilder) WithOwnerID(id uuid.UUID) *PetBuilder {
	b.OwnerID = id
	return b
}

func (b *PetBuilder) BuildDTO() reqdto.CreatePetRequest {
	return reqdto.CreatePetRequest{
		Name: b.Name,
		Type: b.Type,
		Age:  b.Age,
	}
}

func (b *PetBuilder) BuildView() *queries.PetView {
	return &queries.PetView{
		ID:        uuid.New(),
		Name:      b.Name,
		Type:      b.Type,
		Age:       b.Age,
		OwnerID:   b.OwnerID,
		CreatedAt: time.Now(),
	}
}

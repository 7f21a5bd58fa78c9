package response

import (
	"time"

	"petboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Age       int32     `json:"age"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

func FromPetView(v *queries.PetView) *PetResponse {
	return &PetResponse{
		ID:        v.ID,
		Name:      v.Name,
		Type:      v.Type,
		Age:       v.Age,
		OwnerID:   v.OwnerID,
		CreatedAt: v.CreatedAt,
	}
}

func FromPetViews(vs []*queries.PetView) []*PetResponse {
	result := make([]*PetResponse, len(vs))
	for i, v := range vs {
		result[i] = FromPetView(v)
	}
	return result
}

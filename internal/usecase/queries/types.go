package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AccountView struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
}

type PetView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Age       int32     `json:"age"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type ServiceView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	PricePerDay *float64  `json:"price_per_day,omitempty"`
	Capacity    *int32    `json:"capacity,omitempty"`
	Type        string    `json:"type"`
	ProviderID  uuid.UUID `json:"provider_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ReservationView struct {
	ID          uuid.UUID `json:"id"`
	PetID       uuid.UUID `json:"pet_id"`
	PetName     string    `json:"pet_name"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
}

// AvailabilityView reports capacity over a date range. CapacityKnown
// is false when the service declares no capacity; the numeric fields
// are meaningless in that case.
type AvailabilityView struct {
	ServiceID     uuid.UUID `json:"service_id"`
	CapacityKnown bool      `json:"capacity_known"`
	Capacity      int32     `json:"capacity"`
	Reserved      int32     `json:"reserved"`
	Available     int32     `json:"available"`
}

// ServiceFilters are conjunctive and independently optional.
type ServiceFilters struct {
	Location *string
	Type     *string
	MaxPrice *float64
}

package shared

import (
	"time"

	"github.com/google/uuid"
)

type PetSnapshot struct {
	ID      uuid.UUID
	Name    string
	Type    string
	Age     int32
	OwnerID uuid.UUID
}

type ServiceSnapshot struct {
	ID          uuid.UUID
	Name        string
	Location    string
	PricePerDay *float64
	Capacity    *int32
	Type        string
	ProviderID  uuid.UUID
}

// ReservationSnapshot joins through pets so ownership checks do not
// need a second read.
type ReservationSnapshot struct {
	ID        uuid.UUID
	PetID     uuid.UUID
	ServiceID uuid.UUID
	OwnerID   uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

package reservation

import (
	"time"

	"github.com/google/uuid"
)

// Reservation links one pet to one boarding service for an inclusive
// date interval. Creation goes through the admission path in the
// command layer; the entity itself only guards range validity.
type Reservation struct {
	id        uuid.UUID
	petID     uuid.UUID
	serviceID uuid.UUID
	dates     DateRange
	createdAt time.Time
}

func NewReservation(petID, serviceID uuid.UUID, dates DateRange) *Reservation {
	return &Reservation{
		id:        uuid.New(),
		petID:     petID,
		serviceID: serviceID,
		dates:     dates,
	}
}

func ReconstructReservation(id, petID, serviceID uuid.UUID, dates DateRange, createdAt time.Time) *Reservation {
	return &Reservation{
		id:        id,
		petID:     petID,
		serviceID: serviceID,
		dates:     dates,
		createdAt: createdAt,
	}
}

func (r *Reservation) ID() uuid.UUID        { return r.id }
func (r *Reservation) PetID() uuid.UUID     { return r.petID }
func (r *Reservation) ServiceID() uuid.UUID { return r.serviceID }
func (r *Reservation) Dates() DateRange     { return r.dates }
func (r *Reservation) CreatedAt() time.Time { return r.createdAt }

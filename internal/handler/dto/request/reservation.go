package request

import (
	"petboard/internal/domain/reservation"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	PetID     uuid.UUID `json:"pet_id" binding:"required"`
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	StartDate string    `json:"start_date" binding:"required"`
	EndDate   string    `json:"end_date" binding:"required"`
}

func (r CreateReservationRequest) ToDateRange() (reservation.DateRange, error) {
	return reservation.ParseDateRange(r.StartDate, r.EndDate)
}

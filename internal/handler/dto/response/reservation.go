package response

import (
	"time"

	"petboard/internal/domain/reservation"
	"petboard/internal/usecase/queries"

	"github.com/google/uuid"
)

// Reservation dates are civil days; the wire format is "2006-01-02",
// never a timestamp.
type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	PetID       uuid.UUID `json:"pet_id"`
	PetName     string    `json:"pet_name"`
	ServiceID   uuid.UUID `json:"service_id"`
	ServiceName string    `json:"service_name"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:          v.ID,
		PetID:       v.PetID,
		PetName:     v.PetName,
		ServiceID:   v.ServiceID,
		ServiceName: v.ServiceName,
		StartDate:   v.StartDate.Format(reservation.DateLayout),
		EndDate:     v.EndDate.Format(reservation.DateLayout),
		CreatedAt:   v.CreatedAt,
	}
}

func FromReservationViews(vs []*queries.ReservationView) []*ReservationResponse {
	result := make([]*ReservationResponse, len(vs))
	for i, v := range vs {
		result[i] = FromReservationView(v)
	}
	return result
}

//go:build unit || e2e

package builder

import (
	"time"

	"petboard/internal/domain/reservation"
	reqdto "petboard/internal/handler/dto/request"
	"petboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	PetID     uuid.UUID
	ServiceID uuid.UUID
	StartDate string
	EndDate   string
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		PetID:     uuid.New(),
		ServiceID: uuid.New(),
		StartDate: "2026-10-02",
		EndDate:   "2026-10-05",
	}
}

func (b *ReservationBuilder) WithPetID(id uuid.UUID) *ReservationBuilder {
	b.PetID = id
	return b
}

func (b *ReservationBuilder) WithServiceID(id uuid.UUID) *ReservationBuilder {
	b.ServiceID = id
	return b
}

func (b *ReservationBuilder) WithDates(start, end string) *ReservationBuilder {
	b.StartDate = start
	b.EndDate = end
	return b
}

func (b *ReservationBuilder) BuildDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		PetID:     b.PetID,
		ServiceID: b.ServiceID,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}
}

func (b *ReservationBuilder) BuildView() *queries.ReservationView {
	start, _ := time.Parse(reservation.DateLayout, b.StartDate)
	end, _ := time.Parse(reservation.DateLayout, b.EndDate)
	return &queries.ReservationView{
		ID:          uuid.New(),
		PetID:       b.PetID,
		PetName:     "Rex",
		ServiceID:   b.ServiceID,
		ServiceName: "Happy Paws Boarding",
		StartDate:   start,
		EndDate:     end,
		CreatedAt:   time.Now(),
	}
}

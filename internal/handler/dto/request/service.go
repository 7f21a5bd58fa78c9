package request

import (
	"petboard/internal/domain/boarding"
	"petboard/internal/domain/reservation"
)

// ServiceRequest covers both create and full-replace update; omitted
// price or capacity means "not set", not zero.
type ServiceRequest struct {
	Name        string   `json:"name" binding:"required,max=80"`
	Location    string   `json:"location" binding:"required,max=80"`
	PricePerDay *float64 `json:"price_per_day" binding:"omitempty,min=0"`
	Capacity    *int32   `json:"capacity" binding:"omitempty,min=0"`
	Type        string   `json:"type" binding:"required,max=30"`
}

func (r ServiceRequest) ToSpec() boarding.Spec {
	return boarding.Spec{
		Name:        r.Name,
		Location:    r.Location,
		PricePerDay: r.PricePerDay,
		Capacity:    r.Capacity,
		Type:        r.Type,
	}
}

// ServiceSearchQuery carries the catalog's optional filters; absent
// params leave the corresponding dimension unfiltered.
type ServiceSearchQuery struct {
	Location *string  `form:"location" binding:"omitempty,max=80"`
	Type     *string  `form:"type" binding:"omitempty,max=30"`
	MaxPrice *float64 `form:"max_price" binding:"omitempty,min=0"`
}

// AvailabilityQuery binds the availability endpoint's query string; dates
// use the same civil day format as reservation bodies.
type AvailabilityQuery struct {
	StartDate string `form:"start_date" binding:"required"`
	EndDate   string `form:"end_date" binding:"required"`
}

func (q AvailabilityQuery) ToDateRange() (reservation.DateRange, error) {
	return reservation.ParseDateRange(q.StartDate, q.EndDate)
}

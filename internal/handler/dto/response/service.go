package response

import (
	"time"

	"petboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceResponse struct {
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

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	return &ServiceResponse{
		ID:          v.ID,
		Name:        v.Name,
		Location:    v.Location,
		PricePerDay: v.PricePerDay,
		Capacity:    v.Capacity,
		Type:        v.Type,
		ProviderID:  v.ProviderID,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromServiceViews(vs []*queries.ServiceView) []*ServiceResponse {
	result := make([]*ServiceResponse, len(vs))
	for i, v := range vs {
		result[i] = FromServiceView(v)
	}
	return result
}

// AvailabilityResponse reports remaining capacity for a date range.
// Unlimited services carry capacity_known=false and omit the numbers.
type AvailabilityResponse struct {
	ServiceID     uuid.UUID `json:"service_id"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	CapacityKnown bool      `json:"capacity_known"`
	Capacity      *int32    `json:"capacity,omitempty"`
	Reserved      *int32    `json:"reserved,omitempty"`
	Available     *int32    `json:"available,omitempty"`
}

func FromAvailabilityView(v *queries.AvailabilityView, startDate, endDate string) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		ServiceID:     v.ServiceID,
		StartDate:     startDate,
		EndDate:       endDate,
		CapacityKnown: v.CapacityKnown,
	}
	if v.CapacityKnown {
		capacity, reserved, available := v.Capacity, v.Reserved, v.Available
		resp.Capacity = &capacity
		resp.Reserved = &reserved
		resp.Available = &available
	}
	return resp
}

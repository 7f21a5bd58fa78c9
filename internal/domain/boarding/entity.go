package boarding

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName        = errors.New("service name must not be empty")
	ErrNameTooLong      = errors.New("service name must be at most 80 characters")
	ErrEmptyLocation    = errors.New("service location must not be empty")
	ErrLocationTooLong  = errors.New("service location must be at most 80 characters")
	ErrEmptyType        = errors.New("service type must not be empty")
	ErrTypeTooLong      = errors.New("service type must be at most 30 characters")
	ErrNegativePrice    = errors.New("price per day must not be negative")
	ErrNegativeCapacity = errors.New("capacity must not be negative")
)

// Service is a boarding listing owned by a provider. Capacity and price
// are optional: a nil capacity means the provider did not declare one,
// and availability cannot be computed for it.
type Service struct {
	id          uuid.UUID
	name        string
	location    string
	pricePerDay *float64
	capacity    *int32
	serviceType string
	providerID  uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

type Spec struct {
	Name        string
	Location    string
	PricePerDay *float64
	Capacity    *int32
	Type        string
}

func (s Spec) validate() error {
	name := strings.TrimSpace(s.Name)
	location := strings.TrimSpace(s.Location)
	serviceType := strings.TrimSpace(s.Type)

	switch {
	case name == "":
		return ErrEmptyName
	case len(name) > 80:
		return ErrNameTooLong
	case location == "":
		return ErrEmptyLocation
	case len(location) > 80:
		return ErrLocationTooLong
	case serviceType == "":
		return ErrEmptyType
	case len(serviceType) > 30:
		return ErrTypeTooLong
	}
	if s.PricePerDay != nil && *s.PricePerDay < 0 {
		return ErrNegativePrice
	}
	if s.Capacity != nil && *s.Capacity < 0 {
		return ErrNegativeCapacity
	}
	return nil
}

func NewService(spec Spec, providerID uuid.UUID) (*Service, error) {
	if err := spec.validate(); err != nil {
		return nil, err
	}

	return &Service{
		id:          uuid.New(),
		name:        strings.TrimSpace(spec.Name),
		location:    strings.TrimSpace(spec.Location),
		pricePerDay: spec.PricePerDay,
		capacity:    spec.Capacity,
		serviceType: strings.TrimSpace(spec.Type),
		providerID:  providerID,
	}, nil
}

func ReconstructService(id uuid.UUID, spec Spec, providerID uuid.UUID, createdAt, updatedAt time.Time) *Service {
	return &Service{
		id:          id,
		name:        spec.Name,
		location:    spec.Location,
		pricePerDay: spec.PricePerDay,
		capacity:    spec.Capacity,
		serviceType: spec.Type,
		providerID:  providerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// Update replaces the mutable fields with a validated spec.
func (s *Service) Update(spec Spec) error {
	if err := spec.validate(); err != nil {
		return err
	}
	s.name = strings.TrimSpace(spec.Name)
	s.location = strings.TrimSpace(spec.Location)
	s.pricePerDay = spec.PricePerDay
	s.capacity = spec.Capacity
	s.serviceType = strings.TrimSpace(spec.Type)
	return nil
}

func (s *Service) ID() uuid.UUID         { return s.id }
func (s *Service) Name() string          { return s.name }
func (s *Service) Location() string      { return s.location }
func (s *Service) PricePerDay() *float64 { return s.pricePerDay }
func (s *Service) Capacity() *int32      { return s.capacity }
func (s *Service) Type() string          { return s.serviceType }
func (s *Service) ProviderID() uuid.UUID { return s.providerID }
func (s *Service) CreatedAt() time.Time  { return s.createdAt }
func (s *Service) UpdatedAt() time.Time  { return s.updatedAt }

func (s *Service) IsOwnedBy(providerID uuid.UUID) bool {
	return s.providerID == providerID
}

// HasCapacityLimit reports whether admission must count overlapping stays.
func (s *Service) HasCapacityLimit() bool {
	return s.capacity != nil
}

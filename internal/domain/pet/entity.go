package pet

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName   = errors.New("pet name must not be empty")
	ErrNameTooLong = errors.New("pet name must be at most 80 characters")
	ErrEmptyType   = errors.New("pet type must not be empty")
	ErrTypeTooLong = errors.New("pet type must be at most 20 characters")
	ErrNegativeAge = errors.New("pet age must not be negative")
)

type Pet struct {
	id        uuid.UUID
	name      string
	petType   string
	age       int32
	ownerID   uuid.UUID
	createdAt time.Time
}

func NewPet(name, petType string, age int32, ownerID uuid.UUID) (*Pet, error) {
	name = strings.TrimSpace(name)
	petType = strings.TrimSpace(petType)

	switch {
	case name == "":
		return nil, ErrEmptyName
	case len(name) > 80:
		return nil, ErrNameTooLong
	case petType == "":
		return nil, ErrEmptyType
	case len(petType) > 20:
		return nil, ErrTypeTooLong
	case age < 0:
		return nil, ErrNegativeAge
	}

	return &Pet{
		id:      uuid.New(),
		name:    name,
		petType: petType,
		age:     age,
		ownerID: ownerID,
	}, nil
}

func ReconstructPet(id uuid.UUID, name, petType string, age int32, ownerID uuid.UUID, createdAt time.Time) *Pet {
	return &Pet{
		id:        id,
		name:      name,
		petType:   petType,
		age:       age,
		ownerID:   ownerID,
		createdAt: createdAt,
	}
}

func (p *Pet) ID() uuid.UUID        { return p.id }
func (p *Pet) Name() string         { return p.name }
func (p *Pet) Type() string         { return p.petType }
func (p *Pet) Age() int32           { return p.age }
func (p *Pet) OwnerID() uuid.UUID   { return p.ownerID }
func (p *Pet) CreatedAt() time.Time { return p.createdAt }

func (p *Pet) IsOwnedBy(ownerID uuid.UUID) bool {
	return p.ownerID == ownerID
}

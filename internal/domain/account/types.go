package account

import "github.com/google/uuid"

type Role string

const (
	RoleOwner    Role = "owner"
	RoleProvider Role = "provider"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleProvider:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Actor is the authenticated identity attached to a request. Every
// protected operation compares its role and id against the resource.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

func (a Actor) IsOwner() bool {
	return a.Role == RoleOwner
}

func (a Actor) IsProvider() bool {
	return a.Role == RoleProvider
}

package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is an owner or provider identity. The two roles live in
// separate tables but share the same shape; Role decides the table.
type Account struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	role         Role
	createdAt    time.Time
}

func NewAccount(name Name, email Email, passwordHash string, role Role) *Account {
	return &Account{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

func ReconstructAccount(id uuid.UUID, name Name, email Email, passwordHash string, role Role, createdAt time.Time) *Account {
	return &Account{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}
}

func (a *Account) ID() uuid.UUID        { return a.id }
func (a *Account) Name() Name           { return a.name }
func (a *Account) Email() Email         { return a.email }
func (a *Account) PasswordHash() string { return a.passwordHash }
func (a *Account) Role() Role           { return a.role }
func (a *Account) CreatedAt() time.Time { return a.createdAt }

//go:build unit || e2e

package builder

import (
	reqdto "petboard/internal/handler/dto/request"
	"petboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountBuilder struct {
	Name     string
	Email    string
	Password string
	Role     string
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		Name:     "Test Account",
		Email:    "test@example.com",
		Password: "password123",
		Role:     "owner",
	}
}

func (b *AccountBuilder) WithEmail(email string) *AccountBuilder {
	b.Email = email
	return b
}

func (b *AccountBuilder) WithRole(role string) *AccountBuilder {
	b.Role = role
	return b
}

func (b *AccountBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     b.Name,
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *AccountBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    b.Email,
		Password: b.Password,
	}
}

func (b *AccountBuilder) BuildView() *queries.AccountView {
	return &queries.AccountView{
		ID:    uuid.New(),
		Name:  b.Name,
		Email: b.Email,
		Role:  b.Role,
	}
}

package account

import (
	"errors"
	"net/mail"
	"strings"
)

var (
	ErrInvalidRole  = errors.New("invalid role")
	ErrInvalidEmail = errors.New("invalid email address")
	ErrEmptyName    = errors.New("name must not be empty")
	ErrNameTooLong  = errors.New("name must be at most 80 characters")
)

type Email struct {
	value string
}

func NewEmail(s string) (Email, error) {
	trimmed := strings.TrimSpace(strings.ToLower(s))
	if trimmed == "" || len(trimmed) > 80 {
		return Email{}, ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: trimmed}, nil
}

func (e Email) Value() string {
	return e.value
}

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Name{}, ErrEmptyName
	}
	if len(trimmed) > 80 {
		return Name{}, ErrNameTooLong
	}
	return Name{value: trimmed}, nil
}

func (n Name) Value() string {
	return n.value
}

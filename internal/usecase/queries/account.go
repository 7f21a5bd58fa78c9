package queries

import (
	"context"

	"petboard/internal/domain/account"
)

// AccountReadStore resolves credentials on the login path. FindByEmail
// also returns the stored password hash so the command layer can verify
// without a second round trip; the hash never leaves the usecase layer.
type AccountReadStore interface {
	FindByEmail(ctx context.Context, role account.Role, email string) (*AccountView, string, error)
}

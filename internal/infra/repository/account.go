package repository

import (
	"context"

	"petboard/internal/domain/account"
	"petboard/internal/infra"
	"petboard/internal/infra/db"
)

type AccountRepository struct {
	db db.DBTX
}

func NewAccountRepository(dbtx db.DBTX) *AccountRepository {
	return &AccountRepository{db: dbtx}
}

// roleTable maps the role to its identity table. Both tables share the
// same shape; they are kept apart so each role's ids live in their own
// namespace.
func roleTable(role account.Role) string {
	if role == account.RoleProvider {
		return "providers"
	}
	return "owners"
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO ` + roleTable(a.Role()) + ` (id, name, email, password_hash)
		VALUES ($1, $2, $3, $4)`

	_, err := r.db.Exec(ctx, query, a.ID(), a.Name().Value(), a.Email().Value(), a.PasswordHash())
	if err != nil {
		return infra.WrapRepoErr("failed to create account", err)
	}
	return nil
}

// EmailInUse checks both identity tables; registration must not allow
// the same address to exist as an owner and as a provider.
func (r *AccountRepository) EmailInUse(ctx context.Context, email string) (bool, error) {
	const query = `
		SELECT EXISTS (SELECT 1 FROM owners WHERE email = $1)
		    OR EXISTS (SELECT 1 FROM providers WHERE email = $1)`

	var taken bool
	if err := r.db.QueryRow(ctx, query, email).Scan(&taken); err != nil {
		return false, infra.WrapRepoErr("failed to check email uniqueness", err)
	}
	return taken, nil
}

package readstore

import (
	"context"

	"petboard/internal/domain/account"
	"petboard/internal/infra"
	"petboard/internal/infra/db"
	"petboard/internal/usecase/queries"
)

type AccountReadStore struct {
	db db.DBTX
}

func NewAccountReadStore(dbtx db.DBTX) *AccountReadStore {
	return &AccountReadStore{db: dbtx}
}

// FindByEmail resolves the role's identity table only; an owner
// credential never authenticates against the provider surface.
func (r *AccountReadStore) FindByEmail(ctx context.Context, role account.Role, email string) (*queries.AccountView, string, error) {
	table := "owners"
	if role == account.RoleProvider {
		table = "providers"
	}
	query := `SELECT id, name, email, password_hash FROM ` + table + ` WHERE email = $1`

	var view queries.AccountView
	var hash string
	err := r.db.QueryRow(ctx, query, email).Scan(&view.ID, &view.Name, &view.Email, &hash)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find account by email", err)
	}

	view.Role = role.String()
	return &view, hash, nil
}

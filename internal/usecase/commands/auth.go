package commands

import (
	"context"
	"errors"

	"petboard/internal/domain/account"
	reqdto "petboard/internal/handler/dto/request"
	"petboard/internal/infra"
	"petboard/internal/pkg/errs"
	"petboard/internal/pkg/jwt"
	"petboard/internal/pkg/password"
	"petboard/internal/usecase/queries"
	"petboard/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrEmailTaken         = errs.New("email already registered")
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrValidation         = errs.New("validation failed")
)

type LoginResult struct {
	AccountID uuid.UUID
	Token     string
	Account   *queries.AccountView
}

type AuthCommands interface {
	Register(ctx context.Context, role account.Role, req reqdto.RegisterRequest) (*queries.AccountView, error)
	Login(ctx context.Context, role account.Role, req reqdto.LoginRequest) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.AccountReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.AccountReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, role account.Role, req reqdto.RegisterRequest) (*queries.AccountView, error) {
	name, err := account.NewName(req.Name)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	email, err := account.NewEmail(req.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	hash, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	entity := account.NewAccount(name, email, hash, role)

	// Uniqueness spans both identity tables and no single constraint
	// covers the union, so the check-then-insert must be serializable:
	// two registrations of the same email into different tables would
	// both pass the check at read committed. The losing side aborts
	// with 40001 and the unit of work retries it, at which point the
	// check sees the committed row.
	err = a.uow.WithinSerializable(ctx, func(ctx context.Context, tx shared.Tx) error {
		taken, checkErr := tx.Accounts().EmailInUse(ctx, email.Value())
		if checkErr != nil {
			return checkErr
		}
		if taken {
			return ErrEmailTaken
		}
		return tx.Accounts().Create(ctx, entity)
	})
	if err != nil {
		if errors.Is(err, ErrEmailTaken) || infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &queries.AccountView{
		ID:    entity.ID(),
		Name:  name.Value(),
		Email: email.Value(),
		Role:  role.String(),
	}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, role account.Role, req reqdto.LoginRequest) (*LoginResult, error) {
	view, hash, err := a.readStore.FindByEmail(ctx, role, req.Email)
	if err != nil {
		// Same outcome for unknown email and wrong password to prevent
		// account enumeration.
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hash, req.Password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	return &LoginResult{
		AccountID: view.ID,
		Token:     token,
		Account:   view,
	}, nil
}

package users

import "context"

var (
	ErrNotFound    = errNotFound{}
	ErrEmailExists = errEmailExists{}
)

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

type errEmailExists struct{}

func (errEmailExists) Error() string { return "email already exists" }

type Repo interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error
}

package users

import (
	"context"

	"github.com/google/uuid"
)

// System defines account registration, authentication, and lookup.
type System interface {
	Register(ctx context.Context, cmd RegisterCommand) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, error)
	Find(ctx context.Context, id uuid.UUID) (*User, error)
}

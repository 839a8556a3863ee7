package ports

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
)

// UserRepository reads accounts and stores their role memberships.
type UserRepository interface {
	Add(ctx context.Context, u *user.User) error

	Get(ctx context.Context, id kernel.UUID) (*user.User, error)

	// UpdateRoles replaces the stored role memberships of the user.
	UpdateRoles(ctx context.Context, u *user.User) error
}

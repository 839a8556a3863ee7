package queries

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/guard"
)

var ErrGetCallerQueryIsNotConstructed = errors.New(
	"GetCallerQuery must be created via NewGetCallerQuery constructor",
)

// GetCallerQuery resolves an authenticated user id into a caller with its
// current roles. It runs before any authorization and is not itself gated.
type GetCallerQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCallerQuery(userID kernel.UUID) (GetCallerQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCallerQuery{}, err
	}
	return GetCallerQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCallerQuery) Validate() error {
	return q.guard.Validate(ErrGetCallerQueryIsNotConstructed)
}

func (q GetCallerQuery) UserID() kernel.UUID {
	return q.userID
}

type GetCallerQueryResponse struct {
	Caller   user.Caller
	Username string
}

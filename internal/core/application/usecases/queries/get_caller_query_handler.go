package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetCallerQueryHandler looks up the username and role set of a user. An
// unknown id yields errs.ErrObjectNotFound.
type GetCallerQueryHandler struct {
	db *gorm.DB
}

func NewGetCallerQueryHandler(db *gorm.DB) GetCallerQueryHandler {
	return GetCallerQueryHandler{db: db}
}

func (h GetCallerQueryHandler) Handle(ctx context.Context, query GetCallerQuery) (GetCallerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCallerQueryResponse{}, err
	}

	var rows []struct {
		Username string
		Role     *string
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT u.username, r.role
		FROM users u
		LEFT JOIN user_roles r ON r.user_id = u.id
		WHERE u.id = ?
	`, query.UserID().Bytes()).Scan(&rows).Error
	if err != nil {
		return GetCallerQueryResponse{}, err
	}
	if len(rows) == 0 {
		return GetCallerQueryResponse{}, errs.NewObjectNotFoundError("user", query.UserID())
	}

	roles := make([]user.Role, 0, len(rows))
	for _, r := range rows {
		if r.Role == nil {
			continue
		}
		role, err := user.ParseRole(*r.Role)
		if err != nil {
			return GetCallerQueryResponse{}, err
		}
		roles = append(roles, role)
	}

	return GetCallerQueryResponse{
		Caller:   user.NewCaller(query.UserID(), roles...),
		Username: rows[0].Username,
	}, nil
}

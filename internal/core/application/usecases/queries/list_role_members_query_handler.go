package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListRoleMembersQueryHandler returns the members of a group ordered by
// username.
type ListRoleMembersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListRoleMembersQueryHandler(db *gorm.DB) ListRoleMembersQueryHandler {
	return ListRoleMembersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListRoleMembersQueryHandler) Handle(ctx context.Context, query ListRoleMembersQuery) ([]UserView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Caller(), services.OpManageRoles); err != nil {
		return nil, err
	}

	var rows []struct {
		ID       uuid.UUID
		Username string
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT u.id, u.username
		FROM users u
		JOIN user_roles r ON r.user_id = u.id
		WHERE r.role = ?
		ORDER BY u.username
	`, query.Role().String()).Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	members := make([]UserView, 0, len(rows))
	for _, r := range rows {
		id, err := toUUID(r.ID)
		if err != nil {
			return nil, err
		}
		members = append(members, UserView{ID: id, Username: r.Username})
	}
	return members, nil
}

package http

import (
	"net/http"

	"littlelemon/internal/core/application/usecases/commands"
	"littlelemon/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// ListGroupMembers handles GET /api/v1/groups/{role}/users.
func (s *Server) ListGroupMembers(c echo.Context) error {
	role, err := pathRole(c)
	if err != nil {
		return err
	}
	query, err := queries.NewListRoleMembersQuery(callerFrom(c), role)
	if err != nil {
		return err
	}
	members, err := s.h.ListRoleMembers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, members)
}

// GrantGroupMembership handles POST /api/v1/groups/{role}/users.
func (s *Server) GrantGroupMembership(c echo.Context) error {
	role, err := pathRole(c)
	if err != nil {
		return err
	}
	var req membershipRequest
	if err = bindBody(c, &req); err != nil {
		return err
	}

	cmd, err := commands.NewChangeRoleCommand(callerFrom(c), role, req.UserID)
	if err != nil {
		return err
	}
	member, err := s.h.GrantRole.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserView(member))
}

// RevokeGroupMembership handles DELETE /api/v1/groups/{role}/users/{userId}.
func (s *Server) RevokeGroupMembership(c echo.Context) error {
	role, err := pathRole(c)
	if err != nil {
		return err
	}
	userID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeRoleCommand(callerFrom(c), role, userID)
	if err != nil {
		return err
	}
	if _, err = s.h.RevokeRole.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

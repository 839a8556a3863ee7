// Package userrepo reads accounts and persists their role memberships.
package userrepo

import (
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"

	"github.com/google/uuid"
)

type UserDTO struct {
	ID       uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Username string        `gorm:"type:varchar(150);not null;uniqueIndex"`
	Roles    []UserRoleDTO `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (UserDTO) TableName() string {
	return "users"
}

type UserRoleDTO struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role   string    `gorm:"type:varchar(20);primaryKey"`
}

func (UserRoleDTO) TableName() string {
	return "user_roles"
}

func rolesFromDomain(u *user.User) []UserRoleDTO {
	id := u.ID().Bytes()
	roles := u.Roles().Roles()
	dtos := make([]UserRoleDTO, 0, len(roles))
	for _, r := range roles {
		dtos = append(dtos, UserRoleDTO{UserID: id, Role: r.String()})
	}
	return dtos
}

func fromDomain(u *user.User) UserDTO {
	return UserDTO{
		ID:       u.ID().Bytes(),
		Username: u.Username(),
		Roles:    rolesFromDomain(u),
	}
}

func toDomain(dto UserDTO) (*user.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	roles := make([]user.Role, 0, len(dto.Roles))
	for _, r := range dto.Roles {
		role, roleErr := user.ParseRole(r.Role)
		if roleErr != nil {
			return nil, roleErr
		}
		roles = append(roles, role)
	}

	return user.RestoreUser(id, dto.Username, user.NewRoleSet(roles...))
}

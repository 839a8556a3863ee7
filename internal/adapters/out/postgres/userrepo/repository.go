package userrepo

import (
	"context"
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/user"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Add(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	dto := fromDomain(u)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("username "+u.Username(), err)
		}
		return err
	}
	return nil
}

func (r *GormUserRepository) Get(ctx context.Context, id kernel.UUID) (*user.User, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto UserDTO
	if err := r.db.WithContext(ctx).Preload("Roles").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("user", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateRoles makes the stored memberships equal to the user's role set.
func (r *GormUserRepository) UpdateRoles(ctx context.Context, u *user.User) error {
	if err := u.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	id := u.ID().Bytes()
	roles := rolesFromDomain(u)

	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Role)
	}

	stale := db.Where("user_id = ?", id)
	if len(names) > 0 {
		stale = stale.Where("role NOT IN ?", names)
	}
	if err := stale.Delete(&UserRoleDTO{}).Error; err != nil {
		return err
	}

	if len(roles) == 0 {
		return nil
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&roles).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return errs.NewObjectNotFoundErrorWithCause("user", u.ID().String(), err)
		}
		return err
	}
	return nil
}

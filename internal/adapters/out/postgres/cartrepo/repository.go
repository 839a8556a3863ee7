package cartrepo

import (
	"context"
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// mergedQuantity is evaluated as integer so that an overflowing sum is
// filtered by the WHERE clause instead of failing the smallint cast.
const mergedQuantity = "cart_lines.quantity::integer + EXCLUDED.quantity"

type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// Add runs one INSERT ... ON CONFLICT DO UPDATE statement. Concurrent adds of
// the same item serialize on the row and never lose an increment.
func (r *GormCartRepository) Add(ctx context.Context, line *cart.Line) (*cart.Line, error) {
	if err := line.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(line)
	result := r.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{{Name: "user_id"}, {Name: "menu_item_id"}},
				DoUpdates: clause.Assignments(map[string]any{
					"quantity":   gorm.Expr(mergedQuantity),
					"line_total": gorm.Expr("cart_lines.unit_price * (" + mergedQuantity + ")"),
				}),
				Where: clause.Where{Exprs: []clause.Expression{
					gorm.Expr(mergedQuantity+" <= ?", cart.MaxQuantity),
				}},
			},
			clause.Returning{},
		).
		Create(&dto)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return nil, errs.NewObjectNotFoundErrorWithCause("menu item", line.MenuItemID().String(), result.Error)
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewValueIsOutOfRangeErrorWithCause("quantity", "merged quantity", 1, cart.MaxQuantity,
			fmt.Errorf("adding %d would exceed %d", line.Quantity(), cart.MaxQuantity))
	}

	return toDomain(dto)
}

func (r *GormCartRepository) List(ctx context.Context, userID kernel.UUID) ([]*cart.Line, error) {
	return r.list(r.db.WithContext(ctx), userID)
}

// ListForUpdate takes row locks on the user's lines. A second checkout of the
// same cart waits here until the first transaction ends.
func (r *GormCartRepository) ListForUpdate(ctx context.Context, userID kernel.UUID) ([]*cart.Line, error) {
	return r.list(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), userID)
}

func (r *GormCartRepository) list(db *gorm.DB, userID kernel.UUID) ([]*cart.Line, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []CartLineDTO
	if err := db.
		Where("user_id = ?", userID.Bytes()).
		Order("created_at, menu_item_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormCartRepository) Remove(ctx context.Context, userID kernel.UUID, menuItemIDs []kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	if len(menuItemIDs) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(menuItemIDs))
	for _, id := range menuItemIDs {
		ids = append(ids, id.Bytes())
	}

	return r.db.WithContext(ctx).
		Where("user_id = ? AND menu_item_id IN ?", userID.Bytes(), ids).
		Delete(&CartLineDTO{}).Error
}

func (r *GormCartRepository) Clear(ctx context.Context, userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Where("user_id = ?", userID.Bytes()).
		Delete(&CartLineDTO{}).Error
}

package queries

import (
	"context"
	"strings"

	"littlelemon/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListMenuItemsQueryHandler lists menu items with their category, ordered by
// title.
type ListMenuItemsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListMenuItemsQueryHandler(db *gorm.DB) ListMenuItemsQueryHandler {
	return ListMenuItemsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListMenuItemsQueryHandler) Handle(ctx context.Context, query ListMenuItemsQuery) ([]MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.Authorize(query.Caller(), services.OpBrowseCatalog); err != nil {
		return nil, err
	}

	f := query.Filters()
	tx := menuItemsQuery(h.db.WithContext(ctx))
	if f.Title != nil {
		tx = tx.Where("m.title ILIKE ?", "%"+likeEscaper.Replace(*f.Title)+"%")
	}
	if f.PriceCeiling != nil {
		tx = tx.Where("m.price <= ?", f.PriceCeiling.Decimal())
	}
	if f.Category != nil {
		tx = tx.Where("c.title = ?", *f.Category)
	}
	if f.Featured != nil {
		tx = tx.Where("m.featured = ?", *f.Featured)
	}

	var rows []menuItemRow
	if err := tx.Order("m.title, m.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]MenuItemView, 0, len(rows))
	for _, r := range rows {
		view, err := r.toView()
		if err != nil {
			return nil, err
		}
		items = append(items, view)
	}
	return items, nil
}

type menuItemRow struct {
	ID            uuid.UUID
	Title         string
	Price         decimal.Decimal
	Featured      bool
	CategoryID    uuid.UUID
	CategorySlug  string
	CategoryTitle string
}

func menuItemsQuery(db *gorm.DB) *gorm.DB {
	return db.Table("menu_items AS m").
		Select(`m.id, m.title, m.price, m.featured,
			c.id AS category_id, c.slug AS category_slug, c.title AS category_title`).
		Joins("JOIN categories c ON c.id = m.category_id")
}

func (r menuItemRow) toView() (MenuItemView, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return MenuItemView{}, err
	}
	categoryID, err := toUUID(r.CategoryID)
	if err != nil {
		return MenuItemView{}, err
	}
	price, err := toMoney(r.Price)
	if err != nil {
		return MenuItemView{}, err
	}
	return MenuItemView{
		ID:       id,
		Title:    r.Title,
		Price:    price,
		Featured: r.Featured,
		Category: CategoryView{ID: categoryID, Slug: r.CategorySlug, Title: r.CategoryTitle},
	}, nil
}

package queries

import (
	"context"
	"errors"
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// sharedLoadTimeout bounds a database read shared by concurrent callers.
const sharedLoadTimeout = 5 * time.Second

// MenuItemViewCache stores rendered menu items. Implementations report
// failures as misses.
type MenuItemViewCache interface {
	Get(ctx context.Context, id kernel.UUID) (MenuItemView, bool)
	Set(ctx context.Context, item MenuItemView)
}

// GetMenuItemQueryHandler reads a menu item through the cache. Concurrent
// misses for the same id share one database read.
type GetMenuItemQueryHandler struct {
	db     *gorm.DB
	cache  MenuItemViewCache
	group  *singleflight.Group
	policy services.AccessPolicy
}

// NewGetMenuItemQueryHandler accepts a nil cache, in which case every call
// reads the database.
func NewGetMenuItemQueryHandler(db *gorm.DB, cache MenuItemViewCache) GetMenuItemQueryHandler {
	return GetMenuItemQueryHandler{
		db:     db,
		cache:  cache,
		group:  &singleflight.Group{},
		policy: services.NewAccessPolicy(),
	}
}

func (h GetMenuItemQueryHandler) Handle(ctx context.Context, query GetMenuItemQuery) (MenuItemView, error) {
	if err := query.Validate(); err != nil {
		return MenuItemView{}, err
	}
	if err := h.policy.Authorize(query.Caller(), services.OpBrowseCatalog); err != nil {
		return MenuItemView{}, err
	}

	id := query.MenuItemID()
	if h.cache != nil {
		if view, ok := h.cache.Get(ctx, id); ok {
			return view, nil
		}
	}

	// The read is shared, so one caller going away must not fail the others.
	v, err, _ := h.group.Do(id.String(), func() (any, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedLoadTimeout)
		defer cancel()

		view, err := h.load(loadCtx, id)
		if err != nil {
			return MenuItemView{}, err
		}
		if h.cache != nil {
			h.cache.Set(loadCtx, view)
		}
		return view, nil
	})
	if err != nil {
		return MenuItemView{}, err
	}
	return v.(MenuItemView), nil
}

func (h GetMenuItemQueryHandler) load(ctx context.Context, id kernel.UUID) (MenuItemView, error) {
	var row menuItemRow
	err := menuItemsQuery(h.db.WithContext(ctx)).
		Where("m.id = ?", id.Bytes()).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return MenuItemView{}, errs.NewObjectNotFoundError("menu item", id)
	}
	if err != nil {
		return MenuItemView{}, err
	}
	return row.toView()
}

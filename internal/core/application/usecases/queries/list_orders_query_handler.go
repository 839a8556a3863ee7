package queries

import (
	"context"
	"time"

	"littlelemon/internal/core/domain/services"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler lists orders newest first with their items.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	caller := query.Caller()
	if err := h.policy.Authorize(caller, services.OpListOrders); err != nil {
		return nil, err
	}

	tx := ordersQuery(h.db.WithContext(ctx))
	switch {
	case caller.IsManager():
		tx = applyOrderFilters(tx, query.Filters())
	case caller.IsCrew():
		tx = tx.Where("o.delivery_crew_id = ?", caller.ID.Bytes())
	default:
		tx = tx.Where("o.user_id = ?", caller.ID.Bytes())
	}

	return loadOrders(h.db.WithContext(ctx), tx)
}

func applyOrderFilters(tx *gorm.DB, f OrderFilters) *gorm.DB {
	if f.Date != nil {
		d := f.Date.UTC()
		start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
		tx = tx.Where("o.placed_at >= ? AND o.placed_at < ?", start, start.AddDate(0, 0, 1))
	}
	if f.Delivered != nil {
		tx = tx.Where("o.status = ?", *f.Delivered)
	}
	if f.TotalCeiling != nil {
		tx = tx.Where("o.total <= ?", f.TotalCeiling.Decimal())
	}
	if f.UserID != nil {
		tx = tx.Where("o.user_id = ?", f.UserID.Bytes())
	}
	if f.CrewID != nil {
		tx = tx.Where("o.delivery_crew_id = ?", f.CrewID.Bytes())
	}
	return tx
}

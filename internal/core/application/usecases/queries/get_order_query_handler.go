package queries

import (
	"context"

	"littlelemon/internal/core/domain/services"
	"littlelemon/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}
	caller := query.Caller()
	if err := h.policy.Authorize(caller, services.OpGetOrder); err != nil {
		return OrderView{}, err
	}

	tx := ordersQuery(h.db.WithContext(ctx)).Where("o.id = ?", query.OrderID().Bytes())
	if !caller.IsManager() {
		tx = tx.Where("o.delivery_crew_id = ?", caller.ID.Bytes())
	}

	orders, err := loadOrders(h.db.WithContext(ctx), tx)
	if err != nil {
		return OrderView{}, err
	}
	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	return orders[0], nil
}

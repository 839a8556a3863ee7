package queries

import (
	"context"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListCartItemsQueryHandler returns the caller's cart lines in the order they
// were first added, each with the current menu item title.
type ListCartItemsQueryHandler struct {
	db     *gorm.DB
	policy services.AccessPolicy
}

func NewListCartItemsQueryHandler(db *gorm.DB) ListCartItemsQueryHandler {
	return ListCartItemsQueryHandler{db: db, policy: services.NewAccessPolicy()}
}

func (h ListCartItemsQueryHandler) Handle(ctx context.Context, query ListCartItemsQuery) (ListCartItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListCartItemsQueryResponse{}, err
	}
	if err := h.policy.Authorize(query.Caller(), services.OpListCart); err != nil {
		return ListCartItemsQueryResponse{}, err
	}

	var rows []struct {
		MenuItemID uuid.UUID
		Title      string
		Quantity   int
		UnitPrice  decimal.Decimal
		LineTotal  decimal.Decimal
	}
	err := h.db.WithContext(ctx).Raw(`
		SELECT cl.menu_item_id, m.title, cl.quantity, cl.unit_price, cl.line_total
		FROM cart_lines cl
		JOIN menu_items m ON m.id = cl.menu_item_id
		WHERE cl.user_id = ?
		ORDER BY cl.created_at, cl.menu_item_id
	`, query.Caller().ID.Bytes()).Scan(&rows).Error
	if err != nil {
		return ListCartItemsQueryResponse{}, err
	}

	resp := ListCartItemsQueryResponse{
		Items: make([]CartItemView, 0, len(rows)),
		Total: kernel.Zero(),
	}
	for _, r := range rows {
		id, err := toUUID(r.MenuItemID)
		if err != nil {
			return ListCartItemsQueryResponse{}, err
		}
		unit, err := toMoney(r.UnitPrice)
		if err != nil {
			return ListCartItemsQueryResponse{}, err
		}
		lineTotal, err := toMoney(r.LineTotal)
		if err != nil {
			return ListCartItemsQueryResponse{}, err
		}
		resp.Items = append(resp.Items, CartItemView{
			MenuItemID: id,
			Title:      r.Title,
			Quantity:   r.Quantity,
			UnitPrice:  unit,
			LineTotal:  lineTotal,
		})
		resp.Total = resp.Total.Add(lineTotal)
	}
	return resp, nil
}

package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type orderRow struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Username       string
	DeliveryCrewID uuid.NullUUID
	Status         bool
	Total          decimal.Decimal
	PlacedAt       time.Time
}

type orderItemRow struct {
	OrderID    uuid.UUID
	MenuItemID uuid.UUID
	Title      string
	Quantity   int
	UnitPrice  decimal.Decimal
	LineTotal  decimal.Decimal
}

func ordersQuery(db *gorm.DB) *gorm.DB {
	return db.Table("orders AS o").
		Select("o.id, o.user_id, u.username, o.delivery_crew_id, o.status, o.total, o.placed_at").
		Joins("JOIN users u ON u.id = o.user_id")
}

// loadOrders runs the order query and attaches the items of every order
// found with one additional query.
func loadOrders(db, orders *gorm.DB) ([]OrderView, error) {
	var rows []orderRow
	if err := orders.Order("o.placed_at DESC, o.id").Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []OrderView{}, nil
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}

	var itemRows []orderItemRow
	err := db.Raw(`
		SELECT oi.order_id, oi.menu_item_id, m.title, oi.quantity, oi.unit_price, oi.line_total
		FROM order_items oi
		JOIN menu_items m ON m.id = oi.menu_item_id
		WHERE oi.order_id IN ?
		ORDER BY oi.order_id, m.title, oi.menu_item_id
	`, ids).Scan(&itemRows).Error
	if err != nil {
		return nil, err
	}

	items := make(map[uuid.UUID][]OrderItemView, len(rows))
	for _, r := range itemRows {
		view, err := r.toView()
		if err != nil {
			return nil, err
		}
		items[r.OrderID] = append(items[r.OrderID], view)
	}

	views := make([]OrderView, 0, len(rows))
	for _, r := range rows {
		view, err := r.toView()
		if err != nil {
			return nil, err
		}
		view.Items = items[r.ID]
		if view.Items == nil {
			view.Items = []OrderItemView{}
		}
		views = append(views, view)
	}
	return views, nil
}

func (r orderRow) toView() (OrderView, error) {
	id, err := toUUID(r.ID)
	if err != nil {
		return OrderView{}, err
	}
	userID, err := toUUID(r.UserID)
	if err != nil {
		return OrderView{}, err
	}
	crewID, err := toNullableUUID(r.DeliveryCrewID)
	if err != nil {
		return OrderView{}, err
	}
	total, err := toMoney(r.Total)
	if err != nil {
		return OrderView{}, err
	}
	return OrderView{
		ID:             id,
		UserID:         userID,
		Username:       r.Username,
		DeliveryCrewID: crewID,
		Delivered:      r.Status,
		Total:          total,
		PlacedAt:       r.PlacedAt.UTC(),
	}, nil
}

func (r orderItemRow) toView() (OrderItemView, error) {
	id, err := toUUID(r.MenuItemID)
	if err != nil {
		return OrderItemView{}, err
	}
	unit, err := toMoney(r.UnitPrice)
	if err != nil {
		return OrderItemView{}, err
	}
	lineTotal, err := toMoney(r.LineTotal)
	if err != nil {
		return OrderItemView{}, err
	}
	return OrderItemView{
		MenuItemID: id,
		Title:      r.Title,
		Quantity:   r.Quantity,
		UnitPrice:  unit,
		LineTotal:  lineTotal,
	}, nil
}

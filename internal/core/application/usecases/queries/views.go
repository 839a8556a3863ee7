// Package queries contains read-only operations. Handlers read straight from
// the database with GORM and return flat view structs instead of aggregates.
package queries

import (
	"time"

	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryView struct {
	ID    kernel.UUID `json:"id"`
	Slug  string      `json:"slug"`
	Title string      `json:"title"`
}

type MenuItemView struct {
	ID       kernel.UUID  `json:"id"`
	Title    string       `json:"title"`
	Price    kernel.Money `json:"price"`
	Featured bool         `json:"featured"`
	Category CategoryView `json:"category"`
}

type CartItemView struct {
	MenuItemID kernel.UUID  `json:"menu_item_id"`
	Title      string       `json:"title"`
	Quantity   int          `json:"quantity"`
	UnitPrice  kernel.Money `json:"unit_price"`
	LineTotal  kernel.Money `json:"price"`
}

type OrderItemView struct {
	MenuItemID kernel.UUID  `json:"menu_item_id"`
	Title      string       `json:"title"`
	Quantity   int          `json:"quantity"`
	UnitPrice  kernel.Money `json:"unit_price"`
	LineTotal  kernel.Money `json:"price"`
}

type OrderView struct {
	ID             kernel.UUID     `json:"id"`
	UserID         kernel.UUID     `json:"user_id"`
	Username       string          `json:"username"`
	DeliveryCrewID *kernel.UUID    `json:"delivery_crew_id"`
	Delivered      bool            `json:"status"`
	Total          kernel.Money    `json:"total"`
	PlacedAt       time.Time       `json:"date"`
	Items          []OrderItemView `json:"items"`
}

type UserView struct {
	ID       kernel.UUID `json:"id"`
	Username string      `json:"username"`
}

func toUUID(id uuid.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toNullableUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	u, err := toUUID(id.UUID)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func toMoney(d decimal.Decimal) (kernel.Money, error) {
	return kernel.NewMoney(d)
}

package http

import (
	"time"

	"littlelemon/internal/core/application/usecases/queries"
	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"
	"littlelemon/internal/core/domain/model/user"
)

type newCategoryRequest struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

type menuItemRequest struct {
	Title    string       `json:"title"`
	Price    kernel.Money `json:"price"`
	Featured bool         `json:"featured"`
	Category kernel.UUID  `json:"category"`
}

type menuItemPatchRequest struct {
	Title    *string       `json:"title"`
	Price    *kernel.Money `json:"price"`
	Featured *bool         `json:"featured"`
	Category *kernel.UUID  `json:"category"`
}

type newCartItemRequest struct {
	MenuItem kernel.UUID `json:"menuitem"`
	Quantity *int        `json:"quantity"`
}

type orderPatchRequest struct {
	Status       *bool        `json:"status"`
	DeliveryCrew *kernel.UUID `json:"delivery_crew"`
}

type crewAssignmentRequest struct {
	DeliveryCrew kernel.UUID `json:"delivery_crew"`
}

type membershipRequest struct {
	UserID kernel.UUID `json:"user_id"`
}

type cartLineResponse struct {
	MenuItemID kernel.UUID  `json:"menu_item_id"`
	Quantity   int          `json:"quantity"`
	UnitPrice  kernel.Money `json:"unit_price"`
	LineTotal  kernel.Money `json:"price"`
}

func toCartLineResponse(l *cart.Line) cartLineResponse {
	return cartLineResponse{
		MenuItemID: l.MenuItemID(),
		Quantity:   l.Quantity(),
		UnitPrice:  l.UnitPrice(),
		LineTotal:  l.LineTotal(),
	}
}

type orderItemResponse struct {
	MenuItemID kernel.UUID  `json:"menu_item_id"`
	Quantity   int          `json:"quantity"`
	UnitPrice  kernel.Money `json:"unit_price"`
	LineTotal  kernel.Money `json:"price"`
}

type orderResponse struct {
	ID             kernel.UUID         `json:"id"`
	UserID         kernel.UUID         `json:"user_id"`
	DeliveryCrewID *kernel.UUID        `json:"delivery_crew_id"`
	Delivered      bool                `json:"status"`
	Total          kernel.Money        `json:"total"`
	PlacedAt       time.Time           `json:"date"`
	Items          []orderItemResponse `json:"items"`
}

func toOrderResponse(o *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, orderItemResponse{
			MenuItemID: it.MenuItemID(),
			Quantity:   it.Quantity(),
			UnitPrice:  it.UnitPrice(),
			LineTotal:  it.LineTotal(),
		})
	}
	return orderResponse{
		ID:             o.ID(),
		UserID:         o.OwnerID(),
		DeliveryCrewID: o.Crew(),
		Delivered:      o.Status().IsDelivered(),
		Total:          o.Total(),
		PlacedAt:       o.PlacedAt(),
		Items:          items,
	}
}

func toCategoryView(c *catalog.Category) queries.CategoryView {
	return queries.CategoryView{ID: c.ID(), Slug: c.Slug(), Title: c.Title()}
}

func toUserView(u *user.User) queries.UserView {
	return queries.UserView{ID: u.ID(), Username: u.Username()}
}

package orderrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	DeliveryCrewID *uuid.UUID      `gorm:"type:uuid;index"`
	Status         bool            `gorm:"not null;index"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PlacedAt       time.Time       `gorm:"not null;index"`
	Items          []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderItemDTO struct {
	OrderID    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity   int             `gorm:"type:smallint;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	LineTotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	var crewID *uuid.UUID
	if id := o.Crew(); id != nil {
		raw := id.Bytes()
		crewID = &raw
	}

	orderID := o.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, it := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    orderID,
			MenuItemID: it.MenuItemID().Bytes(),
			Quantity:   it.Quantity(),
			UnitPrice:  it.UnitPrice().Decimal(),
			LineTotal:  it.LineTotal().Decimal(),
		})
	}

	return OrderDTO{
		ID:             orderID,
		UserID:         o.OwnerID().Bytes(),
		DeliveryCrewID: crewID,
		Status:         o.Status().IsDelivered(),
		Total:          o.Total().Decimal(),
		PlacedAt:       o.PlacedAt(),
		Items:          items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var crewID *kernel.UUID
	if dto.DeliveryCrewID != nil {
		cID, crewErr := kernel.UUIDFromBytes((*dto.DeliveryCrewID)[:])
		if crewErr != nil {
			return nil, crewErr
		}
		crewID = &cID
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, ownerID, crewID, order.StatusFromDelivered(dto.Status), items, total, dto.PlacedAt)
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return order.Item{}, err
	}
	unitPrice, err := kernel.NewPrice(dto.UnitPrice)
	if err != nil {
		return order.Item{}, err
	}
	lineTotal, err := kernel.NewMoney(dto.LineTotal)
	if err != nil {
		return order.Item{}, err
	}
	return order.RestoreItem(menuItemID, dto.Quantity, unitPrice, lineTotal)
}

// Package cartrepo persists cart lines with GORM.
package cartrepo

import (
	"time"

	"littlelemon/internal/core/domain/model/cart"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CartLineDTO struct {
	UserID     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	MenuItemID uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Quantity   int             `gorm:"type:smallint;not null"`
	UnitPrice  decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	LineTotal  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt  time.Time       `gorm:"autoCreateTime"`
}

func (CartLineDTO) TableName() string {
	return "cart_lines"
}

func fromDomain(l *cart.Line) CartLineDTO {
	return CartLineDTO{
		UserID:     l.UserID().Bytes(),
		MenuItemID: l.MenuItemID().Bytes(),
		Quantity:   l.Quantity(),
		UnitPrice:  l.UnitPrice().Decimal(),
		LineTotal:  l.LineTotal().Decimal(),
	}
}

func toDomain(dto CartLineDTO) (*cart.Line, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}
	menuItemID, err := kernel.UUIDFromBytes(dto.MenuItemID[:])
	if err != nil {
		return nil, err
	}
	unitPrice, err := kernel.NewPrice(dto.UnitPrice)
	if err != nil {
		return nil, err
	}
	lineTotal, err := kernel.NewMoney(dto.LineTotal)
	if err != nil {
		return nil, err
	}
	return cart.RestoreLine(userID, menuItemID, dto.Quantity, unitPrice, lineTotal)
}

func toDomainList(dtos []CartLineDTO) ([]*cart.Line, error) {
	lines := make([]*cart.Line, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, nil
}

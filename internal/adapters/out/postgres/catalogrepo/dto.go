// Package catalogrepo persists categories and menu items with GORM.
package catalogrepo

import (
	"littlelemon/internal/core/domain/model/catalog"
	"littlelemon/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryDTO struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Slug  string    `gorm:"type:varchar(50);not null;uniqueIndex"`
	Title string    `gorm:"type:varchar(255);not null"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

type MenuItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Title      string          `gorm:"type:varchar(255);not null"`
	Price      decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	Featured   bool            `gorm:"not null"`
	CategoryID uuid.UUID       `gorm:"type:uuid;not null;index"`
}

func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func categoryFromDomain(c *catalog.Category) CategoryDTO {
	return CategoryDTO{
		ID:    c.ID().Bytes(),
		Slug:  c.Slug(),
		Title: c.Title(),
	}
}

func categoryToDomain(dto CategoryDTO) (*catalog.Category, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return catalog.NewCategory(id, dto.Slug, dto.Title)
}

func menuItemFromDomain(m *catalog.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		ID:         m.ID().Bytes(),
		Title:      m.Title(),
		Price:      m.Price().Decimal(),
		Featured:   m.Featured(),
		CategoryID: m.CategoryID().Bytes(),
	}
}

func menuItemToDomain(dto MenuItemDTO) (*catalog.MenuItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.NewMenuItem(id, dto.Title, price, dto.Featured, categoryID)
}

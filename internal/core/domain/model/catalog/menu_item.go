package catalog

import (
	"errors"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not created via NewMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a purchasable dish. Its price is the unit price snapshotted into
// cart lines; later repricing never touches existing lines or orders.
type MenuItem struct {
	id         kernel.UUID
	title      string
	price      kernel.Money
	featured   bool
	categoryID kernel.UUID
	guard      guard.ConstructorGuard
}

// NewMenuItem validates and builds a menu item. The price must already be a
// valid unit price (see kernel.NewPrice); a zero Money is rejected.
func NewMenuItem(id kernel.UUID, title string, price kernel.Money, featured bool, categoryID kernel.UUID) (*MenuItem, error) {
	m := &MenuItem{
		featured: featured,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.Rename(title),
		m.Reprice(price),
		m.MoveTo(categoryID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) Title() string {
	return m.title
}

func (m *MenuItem) Price() kernel.Money {
	return m.price
}

func (m *MenuItem) Featured() bool {
	return m.featured
}

func (m *MenuItem) CategoryID() kernel.UUID {
	return m.categoryID
}

// Rename replaces the title.
func (m *MenuItem) Rename(title string) error {
	t, err := normalizeTitle(title)
	if err != nil {
		return err
	}
	m.title = t
	return nil
}

// Reprice replaces the unit price. Existing cart lines keep their snapshot.
func (m *MenuItem) Reprice(price kernel.Money) error {
	p, err := kernel.NewPrice(price.Decimal())
	if err != nil {
		return err
	}
	m.price = p
	return nil
}

func (m *MenuItem) SetFeatured(featured bool) {
	m.featured = featured
}

// MoveTo files the item under another category.
func (m *MenuItem) MoveTo(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	m.categoryID = categoryID
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

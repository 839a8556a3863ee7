package cart

import (
	"errors"
	"fmt"

	"littlelemon/internal/core/domain/model/kernel"
	"littlelemon/internal/pkg/errs"
	"littlelemon/internal/pkg/guard"
)

// MaxQuantity is the largest quantity a single line may hold (smallint).
const MaxQuantity = 32767

var (
	// ErrLineIsNotConstructed is returned when a Line was not created via NewLine or RestoreLine.
	ErrLineIsNotConstructed = errors.New("cart Line must be created via NewLine constructor")
	// ErrLineTotalMismatch is returned when a stored line breaks line_total == quantity * unit_price.
	ErrLineTotalMismatch = errs.NewValueIsInvalidError("line_total must equal quantity * unit_price")
)

// Line is one menu item in a user's cart. A user holds at most one line per
// menu item; adding the same item again grows the quantity of that line.
type Line struct {
	userID     kernel.UUID
	menuItemID kernel.UUID
	quantity   int
	unitPrice  kernel.Money
	lineTotal  kernel.Money
	guard      guard.ConstructorGuard
}

// NewLine creates a line with the unit price snapshotted from the catalog.
func NewLine(userID, menuItemID kernel.UUID, quantity int, unitPrice kernel.Money) (*Line, error) {
	l := &Line{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		validateID(userID),
		validateID(menuItemID),
		ValidateQuantity(quantity),
		validateUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	l.userID = userID
	l.menuItemID = menuItemID
	l.quantity = quantity
	l.unitPrice = unitPrice
	l.lineTotal = unitPrice.Mul(quantity)
	return l, nil
}

// RestoreLine rebuilds a stored line and checks its total against quantity and unit price.
func RestoreLine(userID, menuItemID kernel.UUID, quantity int, unitPrice, lineTotal kernel.Money) (*Line, error) {
	l, err := NewLine(userID, menuItemID, quantity, unitPrice)
	if err != nil {
		return nil, err
	}
	if !l.lineTotal.IsEqual(lineTotal) {
		return nil, errs.NewValueIsInvalidErrorWithCause("line_total",
			fmt.Errorf("%s != %d * %s: %w", lineTotal, quantity, unitPrice, ErrLineTotalMismatch))
	}
	return l, nil
}

// ValidateQuantity checks 1 <= quantity <= MaxQuantity.
func ValidateQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return nil
}

func (l *Line) Validate() error {
	if l == nil {
		return ErrLineIsNotConstructed
	}
	return l.guard.Validate(ErrLineIsNotConstructed)
}

func (l *Line) UserID() kernel.UUID {
	return l.userID
}

func (l *Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

func (l *Line) Quantity() int {
	return l.quantity
}

func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

func (l *Line) LineTotal() kernel.Money {
	return l.lineTotal
}

// Merge grows the line by quantity, recomputing the total from the stored
// unit price. The line is left untouched when the result would exceed MaxQuantity.
func (l *Line) Merge(quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	merged := l.quantity + quantity
	if err := ValidateQuantity(merged); err != nil {
		return err
	}
	l.quantity = merged
	l.lineTotal = l.unitPrice.Mul(merged)
	return nil
}

// Total sums the line totals of a cart.
func Total(lines []*Line) kernel.Money {
	total := kernel.Zero()
	for _, l := range lines {
		total = total.Add(l.lineTotal)
	}
	return total
}

func validateID(id kernel.UUID) error {
	return id.Validate()
}

func validateUnitPrice(p kernel.Money) error {
	_, err := kernel.NewPrice(p.Decimal())
	return err
}

package kernel

import (
	"encoding/json"
	"fmt"

	"littlelemon/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places every amount is rounded to.
const moneyScale = 2

// MaxPrice is the largest unit price a menu item may carry, matching numeric(6,2).
var MaxPrice = decimal.RequireFromString("9999.99")

// MaxTotal is the largest order total that can be stored, matching numeric(12,2).
var MaxTotal = decimal.RequireFromString("9999999999.99")

// Money is an exact decimal amount with two fractional digits.
//
// Money never uses binary floating point: all arithmetic goes through
// shopspring/decimal and results are rounded half-away-from-zero to cents.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// Zero returns a zero amount.
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney wraps a decimal, rounding it to cents. Negative amounts are rejected.
func NewMoney(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", d.String(), "0", "∞")
	}
	return Money{amount: d.Round(moneyScale)}, nil
}

// NewPrice builds a unit price: strictly positive and not above MaxPrice.
func NewPrice(d decimal.Decimal) (Money, error) {
	rounded := d.Round(moneyScale)
	if !rounded.IsPositive() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%s is not greater than 0", rounded.StringFixed(moneyScale)))
	}
	if rounded.GreaterThan(MaxPrice) {
		return Money{}, errs.NewValueIsOutOfRangeError("price", rounded.StringFixed(moneyScale), "0.01", MaxPrice.StringFixed(moneyScale))
	}
	return Money{amount: rounded}, nil
}

// PriceFromString parses a decimal string ("5.50") into a price.
func PriceFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("price", err)
	}
	return NewPrice(d)
}

// MoneyFromString parses a non-negative decimal string.
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// Mul returns the amount multiplied by a quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity))).Round(moneyScale)}
}

// Add returns the sum of both amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) LessThanOrEqual(other Money) bool {
	return m.amount.LessThanOrEqual(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// Decimal exposes the underlying value for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with exactly two decimals, e.g. "13.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}

// MarshalJSON renders the amount as a JSON string so clients never see a float.
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both "5.50" and 5.5.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

package valueobject

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is a value object representing Indonesian rupiah amounts.
// It is immutable - all operations return new Money instances.
// Multi-currency is out of scope; every amount in the system is IDR.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates Money from a decimal amount
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromInt creates Money from whole rupiah
func NewMoneyFromInt(amount int64) Money {
	return Money{amount: decimal.NewFromInt(amount)}
}

// NewMoneyFromString creates Money from a string representation
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return Money{amount: d}, nil
}

// ZeroMoney returns a zero-value Money
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive returns true if the amount is positive
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Add returns a new Money with the sum of both amounts
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Subtract returns a new Money with the difference
func (m Money) Subtract(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// MultiplyByInt returns a new Money multiplied by a unit count
func (m Money) MultiplyByInt(factor int64) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(factor))}
}

// Multiply returns a new Money multiplied by the given factor
func (m Money) Multiply(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

// DivideByInt divides the amount by a unit count.
// Returns error if divisor is zero; callers that need divide-to-zero
// semantics must guard first.
func (m Money) DivideByInt(divisor int64) (Money, error) {
	if divisor == 0 {
		return Money{}, errors.New("cannot divide by zero")
	}
	return Money{amount: m.amount.Div(decimal.NewFromInt(divisor))}, nil
}

// Negate returns a new Money with the sign reversed
func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg()}
}

// WholeRupiah returns a new Money truncated to whole rupiah.
// Totals are reported in whole currency units; fractions only survive
// in per-unit rates.
func (m Money) WholeRupiah() Money {
	return Money{amount: m.amount.Truncate(0)}
}

// Round returns a new Money rounded to the specified decimal places
func (m Money) Round(places int32) Money {
	return Money{amount: m.amount.Round(places)}
}

// Equals returns true if both amounts are equal
func (m Money) Equals(other Money) bool {
	return m.amount.Equal(other.amount)
}

// LessThan returns true if this Money is less than the other
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// GreaterThan returns true if this Money is greater than the other
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// IntPart returns the whole-rupiah part as int64
func (m Money) IntPart() int64 {
	return m.amount.IntPart()
}

// String returns a string representation of the amount
func (m Money) String() string {
	return m.amount.String()
}

// MarshalJSON implements json.Marshaler; amounts serialize as strings
// to avoid float precision loss in clients
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.amount.String())
}

// UnmarshalJSON implements json.Unmarshaler, accepting both string and
// bare numeric JSON values
func (m *Money) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		// Fall back to a bare JSON number
		var f json.Number
		if err := json.Unmarshal(data, &f); err != nil {
			return fmt.Errorf("invalid money value: %s", data)
		}
		s = f.String()
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("invalid amount: %w", err)
	}
	m.amount = amount
	return nil
}

// Value implements driver.Valuer for database storage
func (m Money) Value() (driver.Value, error) {
	return m.amount.String(), nil
}

// Scan implements sql.Scanner for database retrieval
func (m *Money) Scan(value any) error {
	if value == nil {
		m.amount = decimal.Zero
		return nil
	}

	switch v := value.(type) {
	case string:
		amount, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("invalid decimal value: %w", err)
		}
		m.amount = amount
	case []byte:
		amount, err := decimal.NewFromString(string(v))
		if err != nil {
			return fmt.Errorf("invalid decimal value: %w", err)
		}
		m.amount = amount
	case int64:
		m.amount = decimal.NewFromInt(v)
	case float64:
		m.amount = decimal.NewFromFloat(v)
	default:
		return fmt.Errorf("cannot scan %T into Money", value)
	}
	return nil
}

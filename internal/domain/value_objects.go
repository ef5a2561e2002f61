package domain

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ProductID is the store-assigned identifier of a product.
// The zero value marks a product that has not been persisted yet.
type ProductID struct {
	value int64
}

func NewProductID(value int64) (ProductID, error) {
	if value <= 0 {
		return ProductID{}, NewValidationError("id", "product ID must be greater than 0")
	}
	return ProductID{value: value}, nil
}

func (id ProductID) Value() int64 {
	return id.value
}

// IsZero reports whether the identifier is unassigned.
func (id ProductID) IsZero() bool {
	return id.value == 0
}

func (id ProductID) String() string {
	return strconv.FormatInt(id.value, 10)
}

const (
	minProductNameLength = 3
	maxProductNameLength = 100
)

// ProductName is a trimmed product name of 3 to 100 characters.
type ProductName struct {
	value string
}

func NewProductName(value string) (ProductName, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return ProductName{}, NewValidationError("name", "product name cannot be empty")
	}

	length := utf8.RuneCountInString(trimmed)
	if length < minProductNameLength {
		return ProductName{}, NewValidationError("name", "product name must be at least 3 characters long")
	}
	if length > maxProductNameLength {
		return ProductName{}, NewValidationError("name", "product name cannot exceed 100 characters")
	}

	return ProductName{value: trimmed}, nil
}

func (n ProductName) Value() string {
	return n.value
}

func (n ProductName) String() string {
	return n.value
}

// Money is a non-negative decimal amount. Comparison is by numeric value,
// so 19.9 and 19.90 are equal.
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, NewValidationError("price", "price cannot be negative")
	}
	return Money{amount: amount}, nil
}

// ParseMoney parses a decimal string such as "19.99".
func ParseMoney(amount string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, NewValidationError("price", "price must be a decimal number")
	}
	return NewMoney(d)
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

func (m Money) Subtract(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, NewValidationError("price", "result cannot be negative")
	}
	return Money{amount: result}, nil
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String is the canonical form: numerically equal amounts produce the same
// string, which makes it usable as a map key.
func (m Money) String() string {
	return m.amount.String()
}

// Quantity is a non-negative stock count.
type Quantity struct {
	value int
}

func NewQuantity(value int) (Quantity, error) {
	if value < 0 {
		return Quantity{}, NewValidationError("quantity", "quantity cannot be negative")
	}
	return Quantity{value: value}, nil
}

func (q Quantity) Value() int {
	return q.value
}

func (q Quantity) IsInStock() bool {
	return q.value > 0
}

func (q Quantity) Add(other Quantity) Quantity {
	return Quantity{value: q.value + other.value}
}

func (q Quantity) Subtract(other Quantity) (Quantity, error) {
	result := q.value - other.value
	if result < 0 {
		return Quantity{}, NewValidationError("quantity", "cannot subtract to negative quantity")
	}
	return Quantity{value: result}, nil
}

func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}

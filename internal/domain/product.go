package domain

import (
	"github.com/shopspring/decimal"
)

// Product is an immutable catalog item. Instances are only built through
// NewProduct, so every field already satisfies its value-object invariants.
type Product struct {
	id          ProductID
	name        ProductName
	description string
	price       Money
	quantity    Quantity
}

// ProductParams carries raw product fields. ID is zero for products that
// have not been persisted yet.
type ProductParams struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	Quantity    int
}

func NewProduct(p ProductParams) (*Product, error) {
	var id ProductID
	if p.ID != 0 {
		parsed, err := NewProductID(p.ID)
		if err != nil {
			return nil, err
		}
		id = parsed
	}

	name, err := NewProductName(p.Name)
	if err != nil {
		return nil, err
	}

	price, err := NewMoney(p.Price)
	if err != nil {
		return nil, err
	}

	quantity, err := NewQuantity(p.Quantity)
	if err != nil {
		return nil, err
	}

	return &Product{
		id:          id,
		name:        name,
		description: p.Description,
		price:       price,
		quantity:    quantity,
	}, nil
}

func (p *Product) ID() ProductID {
	return p.id
}

func (p *Product) Name() ProductName {
	return p.name
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Price() Money {
	return p.price
}

func (p *Product) Quantity() Quantity {
	return p.quantity
}

func (p *Product) IsInStock() bool {
	return p.quantity.IsInStock()
}

func (p *Product) IsPersisted() bool {
	return !p.id.IsZero()
}

// TotalPrice is price times quantity, computed exactly.
func (p *Product) TotalPrice() Money {
	return Money{amount: p.price.amount.Mul(decimal.NewFromInt(int64(p.quantity.value)))}
}

// WithID returns a copy of the product carrying id.
func (p *Product) WithID(id ProductID) *Product {
	cp := *p
	cp.id = id
	return &cp
}

// WithQuantity returns a copy of the product with only the quantity replaced.
func (p *Product) WithQuantity(quantity Quantity) *Product {
	cp := *p
	cp.quantity = quantity
	return &cp
}

// WithoutID returns a transient copy of the product, used when the store
// must assign a fresh identifier.
func (p *Product) WithoutID() *Product {
	cp := *p
	cp.id = ProductID{}
	return &cp
}

func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.id == other.id &&
		p.name == other.name &&
		p.description == other.description &&
		p.price.Equal(other.price) &&
		p.quantity == other.quantity
}

// Params returns the raw field values of the product.
func (p *Product) Params() ProductParams {
	return ProductParams{
		ID:          p.id.value,
		Name:        p.name.value,
		Description: p.description,
		Price:       p.price.amount,
		Quantity:    p.quantity.value,
	}
}

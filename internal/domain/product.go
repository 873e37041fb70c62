package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ProductKind identifies the purchase rules a product follows.
type ProductKind string

const (
	ProductKindStocked   ProductKind = "stocked"
	ProductKindUnlimited ProductKind = "unlimited"
	ProductKindCapped    ProductKind = "capped"
)

// ValidProductKinds enumerates all recognized product kinds.
var ValidProductKinds = []ProductKind{
	ProductKindStocked,
	ProductKindUnlimited,
	ProductKindCapped,
}

// Product is a sellable catalog entry. The set of implementations is closed:
// *StockedProduct, *UnlimitedProduct and *CappedProduct.
type Product interface {
	Kind() ProductKind
	Name() string
	Price() float64
	Quantity() int
	SetQuantity(quantity int) error
	IsActive() bool
	Activate()
	Deactivate()
	Promotion() Promotion
	SetPromotion(p Promotion)
	Describe() string
	// Buy sells quantity units and returns the charge. On failure the
	// product is left untouched.
	Buy(quantity int) (float64, error)

	sealed()
}

// listing holds the state every product kind shares: identity, price,
// activation and the optional promotion.
type listing struct {
	name      string
	price     float64
	active    bool
	promotion Promotion
}

func newListing(name string, price float64) (listing, error) {
	if name == "" {
		return listing{}, fmt.Errorf("%w: product name cannot be empty", ErrInvalidArgument)
	}
	if price < 0 {
		return listing{}, fmt.Errorf("%w: product price cannot be negative", ErrInvalidArgument)
	}
	return listing{name: name, price: price, active: true}, nil
}

func (l *listing) Name() string             { return l.name }
func (l *listing) Price() float64           { return l.price }
func (l *listing) IsActive() bool           { return l.active }
func (l *listing) Activate()                { l.active = true }
func (l *listing) Deactivate()              { l.active = false }
func (l *listing) Promotion() Promotion     { return l.promotion }
func (l *listing) SetPromotion(p Promotion) { l.promotion = p }
func (l *listing) sealed()                  {}

// checkBuyable runs the checks common to every kind before a sale.
func (l *listing) checkBuyable(quantity int) error {
	if !l.active {
		return fmt.Errorf("%w: cannot buy inactive product %q", ErrInactiveProduct, l.name)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: quantity to buy must be positive", ErrInvalidArgument)
	}
	return nil
}

// charge prices quantity units of p through the attached promotion, or at
// full price when there is none.
func (l *listing) charge(p Product, quantity int) float64 {
	if l.promotion != nil {
		return l.promotion.Apply(p, quantity)
	}
	return l.price * float64(quantity)
}

func (l *listing) promotionLabel() string {
	if l.promotion == nil {
		return "None"
	}
	return l.promotion.Name()
}

// StockedProduct is the default product kind with a finite stock count.
type StockedProduct struct {
	listing
	quantity int
}

// NewProduct creates an active stocked product. A product created with zero
// quantity is still active until its stock is next set to zero.
func NewProduct(name string, price float64, quantity int) (*StockedProduct, error) {
	l, err := newListing(name, price)
	if err != nil {
		return nil, err
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: product quantity cannot be negative", ErrInvalidArgument)
	}
	return &StockedProduct{listing: l, quantity: quantity}, nil
}

func (p *StockedProduct) Kind() ProductKind { return ProductKindStocked }
func (p *StockedProduct) Quantity() int     { return p.quantity }

// SetQuantity replaces the stock count and deactivates the product when it
// reaches zero. A positive quantity does not reactivate it.
func (p *StockedProduct) SetQuantity(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("%w: product quantity cannot be negative", ErrInvalidArgument)
	}
	p.quantity = quantity
	if p.quantity == 0 {
		p.Deactivate()
	}
	return nil
}

func (p *StockedProduct) Buy(quantity int) (float64, error) {
	if err := p.checkBuyable(quantity); err != nil {
		return 0, err
	}
	if quantity > p.quantity {
		return 0, fmt.Errorf("%w: requested %d of %q, only %d left", ErrInsufficientStock, quantity, p.name, p.quantity)
	}
	total := p.charge(p, quantity)
	p.quantity -= quantity
	if p.quantity == 0 {
		p.Deactivate()
	}
	return total, nil
}

func (p *StockedProduct) Describe() string {
	return fmt.Sprintf("%s, Price: $%s, Quantity: %d, Promotion: %s",
		p.name, FormatAmount(p.price), p.quantity, p.promotionLabel())
}

// UnlimitedProduct is never out of stock: it reports zero quantity, ignores
// quantity updates and sells any positive amount while active.
type UnlimitedProduct struct {
	listing
}

func NewUnlimitedProduct(name string, price float64) (*UnlimitedProduct, error) {
	l, err := newListing(name, price)
	if err != nil {
		return nil, err
	}
	return &UnlimitedProduct{listing: l}, nil
}

func (p *UnlimitedProduct) Kind() ProductKind { return ProductKindUnlimited }
func (p *UnlimitedProduct) Quantity() int     { return 0 }

// SetQuantity is a no-op.
func (p *UnlimitedProduct) SetQuantity(int) error { return nil }

func (p *UnlimitedProduct) Buy(quantity int) (float64, error) {
	if err := p.checkBuyable(quantity); err != nil {
		return 0, err
	}
	return p.charge(p, quantity), nil
}

func (p *UnlimitedProduct) Describe() string {
	return fmt.Sprintf("%s, Price: $%s, Promotion: %s",
		p.name, FormatAmount(p.price), p.promotionLabel())
}

// CappedProduct is a stocked product that limits how many units a single
// purchase may take.
type CappedProduct struct {
	StockedProduct
	maximum int
}

func NewCappedProduct(name string, price float64, quantity, maximum int) (*CappedProduct, error) {
	base, err := NewProduct(name, price, quantity)
	if err != nil {
		return nil, err
	}
	if maximum <= 0 {
		return nil, fmt.Errorf("%w: maximum per order must be positive", ErrInvalidArgument)
	}
	return &CappedProduct{StockedProduct: *base, maximum: maximum}, nil
}

func (p *CappedProduct) Kind() ProductKind { return ProductKindCapped }

// Maximum returns the largest quantity a single purchase may request.
func (p *CappedProduct) Maximum() int { return p.maximum }

// Buy rejects quantities above the per-order maximum before any other check.
func (p *CappedProduct) Buy(quantity int) (float64, error) {
	if quantity > p.maximum {
		return 0, fmt.Errorf("%w: %q is limited to %d per order", ErrOrderLimitExceeded, p.name, p.maximum)
	}
	return p.StockedProduct.Buy(quantity)
}

func (p *CappedProduct) Describe() string {
	return fmt.Sprintf("%s, Limited to %d per order", p.StockedProduct.Describe(), p.maximum)
}

// FormatAmount renders a price or charge without trailing zeros.
func FormatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

package domain

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
)

// Promotion is a pricing strategy attached to a product. Apply returns the
// charge for buying quantity units of p. Implementations never validate the
// quantity and never mutate the product.
type Promotion interface {
	Name() string
	Kind() PromotionKind
	Apply(p Product, quantity int) float64
}

// PromotionKind identifies one of the supported pricing strategies.
type PromotionKind string

const (
	PromotionPercentDiscount PromotionKind = "percent_discount"
	PromotionSecondHalfPrice PromotionKind = "second_half_price"
	PromotionThirdOneFree    PromotionKind = "third_one_free"
)

// ValidPromotionKinds enumerates all recognized promotion kinds.
var ValidPromotionKinds = []PromotionKind{
	PromotionPercentDiscount,
	PromotionSecondHalfPrice,
	PromotionThirdOneFree,
}

var promotionTypeNames = map[PromotionKind]string{
	PromotionPercentDiscount: "PercentDiscount",
	PromotionSecondHalfPrice: "SecondHalfPrice",
	PromotionThirdOneFree:    "ThirdOneFree",
}

// DisplayName returns a human-readable name for the kind, used when a
// promotion is configured without one.
func (k PromotionKind) DisplayName() string {
	typeName, ok := promotionTypeNames[k]
	if !ok {
		return string(k)
	}
	return strings.Join(camelcase.Split(typeName), " ")
}

// NewPromotion builds a promotion of the given kind. An empty name falls back
// to the kind's display name. percent is only read for percent discounts.
func NewPromotion(kind PromotionKind, name string, percent float64) (Promotion, error) {
	if name == "" {
		name = kind.DisplayName()
	}
	switch kind {
	case PromotionPercentDiscount:
		return NewPercentDiscount(name, percent), nil
	case PromotionSecondHalfPrice:
		return NewSecondHalfPrice(name), nil
	case PromotionThirdOneFree:
		return NewThirdOneFree(name), nil
	default:
		return nil, fmt.Errorf("%w: unknown promotion kind %q", ErrInvalidArgument, kind)
	}
}

// PercentDiscount takes a fixed percentage off the full price. Percentages
// outside [0, 100] are applied as configured.
type PercentDiscount struct {
	name    string
	Percent float64
}

func NewPercentDiscount(name string, percent float64) *PercentDiscount {
	return &PercentDiscount{name: name, Percent: percent}
}

func (d *PercentDiscount) Name() string        { return d.name }
func (d *PercentDiscount) Kind() PromotionKind { return PromotionPercentDiscount }

func (d *PercentDiscount) Apply(p Product, quantity int) float64 {
	total := p.Price() * float64(quantity)
	return total - total*(d.Percent/100)
}

// SecondHalfPrice charges half price for every second unit.
type SecondHalfPrice struct {
	name string
}

func NewSecondHalfPrice(name string) *SecondHalfPrice {
	return &SecondHalfPrice{name: name}
}

func (s *SecondHalfPrice) Name() string        { return s.name }
func (s *SecondHalfPrice) Kind() PromotionKind { return PromotionSecondHalfPrice }

func (s *SecondHalfPrice) Apply(p Product, quantity int) float64 {
	half := quantity / 2
	full := quantity - half
	return float64(full)*p.Price() + float64(half)*p.Price()*0.5
}

// ThirdOneFree makes every third unit free.
type ThirdOneFree struct {
	name string
}

func NewThirdOneFree(name string) *ThirdOneFree {
	return &ThirdOneFree{name: name}
}

func (t *ThirdOneFree) Name() string        { return t.name }
func (t *ThirdOneFree) Kind() PromotionKind { return PromotionThirdOneFree }

func (t *ThirdOneFree) Apply(p Product, quantity int) float64 {
	free := quantity / 3
	return float64(quantity-free) * p.Price()
}

package domain

import "fmt"

// OrderItem is one basket entry: a product handle and the quantity to buy.
type OrderItem struct {
	Product  Product
	Quantity int
}

// Store is an ordered collection of live product handles. It does not copy
// product state in or out; purchases through Order mutate the same
// instances callers hold.
type Store struct {
	products []Product
}

// NewStore creates a store with the given products in order.
func NewStore(products ...Product) *Store {
	s := &Store{}
	s.products = append(s.products, products...)
	return s
}

// AddProduct appends p to the catalog. Duplicates are not rejected.
func (s *Store) AddProduct(p Product) {
	s.products = append(s.products, p)
}

// RemoveProduct removes the first occurrence of p. It returns ErrNotFound
// when p is not in the catalog.
func (s *Store) RemoveProduct(p Product) error {
	for i, existing := range s.products {
		if existing == p {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	name := "<nil>"
	if p != nil {
		name = p.Name()
	}
	return fmt.Errorf("%w: product %q is not in the store", ErrNotFound, name)
}

// Products returns every product, active or not, in catalog order.
func (s *Store) Products() []Product {
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// ActiveProducts returns the active products in catalog order.
func (s *Store) ActiveProducts() []Product {
	var active []Product
	for _, p := range s.products {
		if p.IsActive() {
			active = append(active, p)
		}
	}
	return active
}

// TotalQuantity sums the stock of active products. Inactive products count
// as zero regardless of their stored quantity.
func (s *Store) TotalQuantity() int {
	total := 0
	for _, p := range s.products {
		if p.IsActive() {
			total += p.Quantity()
		}
	}
	return total
}

// Order buys every item in sequence and returns the summed charge.
func (s *Store) Order(basket []OrderItem) (float64, error) {
	_, total, err := s.OrderDetailed(basket)
	return total, err
}

// OrderDetailed is Order that also reports the charge of each item. Items
// are processed in basket order and the first failing purchase aborts the
// order with its error unchanged. Purchases already made are not rolled
// back; the returned charges cover exactly those.
func (s *Store) OrderDetailed(basket []OrderItem) ([]float64, float64, error) {
	charges := make([]float64, 0, len(basket))
	total := 0.0
	for _, item := range basket {
		if item.Product == nil {
			return charges, total, fmt.Errorf("%w: basket entry has no product", ErrInvalidArgument)
		}
		charge, err := item.Product.Buy(item.Quantity)
		if err != nil {
			return charges, total, err
		}
		charges = append(charges, charge)
		total += charge
	}
	return charges, total, nil
}

package domain

// ProductView is a read-only snapshot of one product for rendering.
type ProductView struct {
	Index       int         `json:"index"`
	Name        string      `json:"name"`
	Price       float64     `json:"price"`
	Quantity    int         `json:"quantity"`
	Kind        ProductKind `json:"kind"`
	MaxPerOrder int         `json:"max_per_order,omitempty"`
	Promotion   string      `json:"promotion,omitempty"`
	Active      bool        `json:"active"`
	Description string      `json:"description"`
}

// Unlimited reports whether the product has no stock tracking.
func (v ProductView) Unlimited() bool {
	return v.Kind == ProductKindUnlimited
}

// ViewProducts snapshots products, numbering them from 1 in the given order.
func ViewProducts(products []Product) []ProductView {
	views := make([]ProductView, 0, len(products))
	for i, p := range products {
		v := ProductView{
			Index:       i + 1,
			Name:        p.Name(),
			Price:       p.Price(),
			Quantity:    p.Quantity(),
			Kind:        p.Kind(),
			Active:      p.IsActive(),
			Description: p.Describe(),
		}
		if capped, ok := p.(*CappedProduct); ok {
			v.MaxPerOrder = capped.Maximum()
		}
		if promo := p.Promotion(); promo != nil {
			v.Promotion = promo.Name()
		}
		views = append(views, v)
	}
	return views
}

// OrderLine requests Quantity units of the product listed at Index
// (1-based) in the current active product list.
type OrderLine struct {
	Index    int `json:"index"`
	Quantity int `json:"quantity"`
}

// Receipt summarizes a successful order.
type Receipt struct {
	ID    string        `json:"id"`
	Lines []ReceiptLine `json:"lines"`
	Total float64       `json:"total"`
}

// ReceiptLine is the charge for one basket entry.
type ReceiptLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Charge   float64 `json:"charge"`
}

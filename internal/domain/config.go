package domain

import "fmt"

// CatalogConfig holds the initial inventory loaded from .storefront.yaml.
type CatalogConfig struct {
	StoreName  string            `yaml:"store_name"  json:"store_name,omitempty"`
	Promotions []PromotionConfig `yaml:"promotions"  json:"promotions,omitempty"`
	Products   []ProductConfig   `yaml:"products"    json:"products"`
}

// PromotionConfig declares a promotion that products can reference by ID.
type PromotionConfig struct {
	ID      string        `yaml:"id"                json:"id"`
	Kind    PromotionKind `yaml:"kind"              json:"kind"`
	Name    string        `yaml:"name,omitempty"    json:"name,omitempty"`
	Percent float64       `yaml:"percent,omitempty" json:"percent,omitempty"`
}

// ProductConfig declares one catalog entry. Kind defaults to stocked.
type ProductConfig struct {
	Name      string      `yaml:"name"                json:"name"`
	Price     float64     `yaml:"price"               json:"price"`
	Quantity  int         `yaml:"quantity,omitempty"  json:"quantity,omitempty"`
	Kind      ProductKind `yaml:"kind,omitempty"      json:"kind,omitempty"`
	Maximum   int         `yaml:"maximum,omitempty"   json:"maximum,omitempty"`
	Promotion string      `yaml:"promotion,omitempty" json:"promotion,omitempty"`
	Inactive  bool        `yaml:"inactive,omitempty"  json:"inactive,omitempty"`
}

const DefaultStoreName = "Best Buy"

// DefaultCatalogConfig returns the inventory used when no config file exists.
func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{
		StoreName: DefaultStoreName,
		Products: []ProductConfig{
			{Name: "MacBook Air M2", Price: 1450, Quantity: 100},
			{Name: "Bose QuietComfort Earbuds", Price: 250, Quantity: 500},
			{Name: "Google Pixel 7", Price: 500, Quantity: 250},
		},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c CatalogConfig) Validate() error {
	promoIDs := make(map[string]bool, len(c.Promotions))
	for i, pc := range c.Promotions {
		if pc.ID == "" {
			return fmt.Errorf("promotions[%d].id must not be empty", i)
		}
		if promoIDs[pc.ID] {
			return fmt.Errorf("duplicate promotion id %q", pc.ID)
		}
		promoIDs[pc.ID] = true
		if !isValidPromotionKind(pc.Kind) {
			return fmt.Errorf("unknown kind %q for promotion %q (valid: percent_discount, second_half_price, third_one_free)", pc.Kind, pc.ID)
		}
	}

	for i, pc := range c.Products {
		if pc.Name == "" {
			return fmt.Errorf("products[%d].name must not be empty", i)
		}
		if pc.Price < 0 {
			return fmt.Errorf("products[%d].price must be >= 0 (got %v)", i, pc.Price)
		}
		if pc.Quantity < 0 {
			return fmt.Errorf("products[%d].quantity must be >= 0 (got %d)", i, pc.Quantity)
		}
		if pc.Kind != "" && !isValidProductKind(pc.Kind) {
			return fmt.Errorf("unknown kind %q for product %q (valid: stocked, unlimited, capped)", pc.Kind, pc.Name)
		}
		if pc.Kind == ProductKindCapped && pc.Maximum <= 0 {
			return fmt.Errorf("products[%d].maximum must be > 0 for capped product %q", i, pc.Name)
		}
		if pc.Kind != ProductKindCapped && pc.Maximum != 0 {
			return fmt.Errorf("products[%d].maximum is only valid for capped products", i)
		}
		if pc.Kind == ProductKindUnlimited && pc.Quantity != 0 {
			return fmt.Errorf("products[%d].quantity is not tracked for unlimited product %q", i, pc.Name)
		}
		if pc.Promotion != "" && !promoIDs[pc.Promotion] {
			return fmt.Errorf("product %q references unknown promotion %q", pc.Name, pc.Promotion)
		}
	}

	return nil
}

// BuildCatalog validates cfg and constructs its products in order, attaching
// promotions by reference. Products sharing a promotion ID share the same
// Promotion instance.
func BuildCatalog(cfg CatalogConfig) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	promotions := make(map[string]Promotion, len(cfg.Promotions))
	for _, pc := range cfg.Promotions {
		promo, err := NewPromotion(pc.Kind, pc.Name, pc.Percent)
		if err != nil {
			return nil, err
		}
		promotions[pc.ID] = promo
	}

	store := NewStore()
	for _, pc := range cfg.Products {
		p, err := buildProduct(pc)
		if err != nil {
			return nil, err
		}
		if pc.Promotion != "" {
			p.SetPromotion(promotions[pc.Promotion])
		}
		if pc.Inactive {
			p.Deactivate()
		}
		store.AddProduct(p)
	}
	return store, nil
}

func buildProduct(pc ProductConfig) (Product, error) {
	switch pc.Kind {
	case "", ProductKindStocked:
		return NewProduct(pc.Name, pc.Price, pc.Quantity)
	case ProductKindUnlimited:
		return NewUnlimitedProduct(pc.Name, pc.Price)
	case ProductKindCapped:
		return NewCappedProduct(pc.Name, pc.Price, pc.Quantity, pc.Maximum)
	default:
		return nil, fmt.Errorf("%w: unknown product kind %q", ErrInvalidArgument, pc.Kind)
	}
}

func isValidPromotionKind(k PromotionKind) bool {
	for _, v := range ValidPromotionKinds {
		if v == k {
			return true
		}
	}
	return false
}

func isValidProductKind(k ProductKind) bool {
	for _, v := range ValidProductKinds {
		if v == k {
			return true
		}
	}
	return false
}

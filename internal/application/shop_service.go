package application

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/abdidvp/storefront/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ShopService is the entry point the CLI and MCP adapters use to browse the
// catalog and place orders. It serializes access to the underlying store,
// which is not safe for concurrent use on its own.
type ShopService struct {
	mu       sync.Mutex
	name     string
	store    *domain.Store
	observer domain.OrderObserver
	logger   *zap.Logger
}

// NewShopService wraps store. A nil observer or logger disables that concern.
func NewShopService(name string, store *domain.Store, observer domain.OrderObserver, logger *zap.Logger) *ShopService {
	if name == "" {
		name = domain.DefaultStoreName
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ShopService{
		name:     name,
		store:    store,
		observer: observer,
		logger:   logger.With(zap.String("component", "shop_service")),
	}
}

// OpenShop loads the catalog config for dir and builds a service around it.
func OpenShop(loader domain.CatalogLoader, dir string, observer domain.OrderObserver, logger *zap.Logger) (*ShopService, error) {
	cfg, err := loader.Load(dir)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}

	store, err := domain.BuildCatalog(cfg)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}

	svc := NewShopService(cfg.StoreName, store, observer, logger)
	svc.logger.Info("catalog_loaded",
		zap.String("store", svc.name),
		zap.Int("products", len(cfg.Products)),
		zap.Int("promotions", len(cfg.Promotions)),
	)
	return svc, nil
}

// Name returns the store's display name.
func (s *ShopService) Name() string { return s.name }

// Products lists the active products, numbered from 1 in catalog order.
func (s *ShopService) Products() []domain.ProductView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ViewProducts(s.store.ActiveProducts())
}

// Catalog lists every product, active or not. Indexes are positions in the
// full catalog and are not valid order line indexes.
func (s *ShopService) Catalog() []domain.ProductView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ViewProducts(s.store.Products())
}

// TotalQuantity returns the stock held by active products.
func (s *ShopService) TotalQuantity() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.TotalQuantity()
}

// PlaceOrder resolves lines against the active product list and orders them
// in sequence. Indexes are checked before anything is bought; after that the
// store's order semantics apply, so a failing line leaves earlier lines
// purchased and the failure is returned unchanged.
func (s *ShopService) PlaceOrder(lines []domain.OrderLine) (*domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(lines) == 0 {
		err := fmt.Errorf("%w: no products ordered", domain.ErrInvalidArgument)
		s.recordFailure(err, 0)
		return nil, err
	}

	active := s.store.ActiveProducts()
	basket := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		if line.Index < 1 || line.Index > len(active) {
			err := fmt.Errorf("%w: invalid product number %d (choose 1-%d)", domain.ErrInvalidArgument, line.Index, len(active))
			s.recordFailure(err, 0)
			return nil, err
		}
		basket = append(basket, domain.OrderItem{Product: active[line.Index-1], Quantity: line.Quantity})
	}

	charges, total, err := s.store.OrderDetailed(basket)
	if err != nil {
		s.recordFailure(err, len(charges))
		return nil, err
	}

	receipt := &domain.Receipt{ID: uuid.NewString(), Total: total}
	for i, item := range basket {
		receipt.Lines = append(receipt.Lines, domain.ReceiptLine{
			Name:     item.Product.Name(),
			Quantity: item.Quantity,
			Charge:   charges[i],
		})
	}

	s.observer.OrderPlaced(len(receipt.Lines), total)
	s.logger.Info("order_placed",
		zap.String("order_id", receipt.ID),
		zap.Int("lines", len(receipt.Lines)),
		zap.Float64("total", total),
	)
	return receipt, nil
}

func (s *ShopService) recordFailure(err error, applied int) {
	reason := domain.FailureReason(err)
	s.observer.OrderFailed(reason)
	s.logger.Warn("order_failed",
		zap.String("reason", reason),
		zap.Int("lines_applied", applied),
		zap.Error(err),
	)
}

// ParseOrderLine parses "INDEX:QUANTITY" (for example "2:3").
func ParseOrderLine(s string) (domain.OrderLine, error) {
	idx, qty, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return domain.OrderLine{}, fmt.Errorf("%w: order line %q must look like INDEX:QUANTITY", domain.ErrInvalidArgument, s)
	}
	index, err := strconv.Atoi(strings.TrimSpace(idx))
	if err != nil || index < 1 {
		return domain.OrderLine{}, fmt.Errorf("%w: invalid product number %q", domain.ErrInvalidArgument, idx)
	}
	quantity, err := strconv.Atoi(strings.TrimSpace(qty))
	if err != nil || quantity < 1 {
		return domain.OrderLine{}, fmt.Errorf("%w: invalid quantity %q", domain.ErrInvalidArgument, qty)
	}
	return domain.OrderLine{Index: index, Quantity: quantity}, nil
}

// ParseOrderLines parses each entry with ParseOrderLine, also accepting
// comma-separated lists within an entry.
func ParseOrderLines(entries []string) ([]domain.OrderLine, error) {
	var lines []domain.OrderLine
	for _, entry := range entries {
		for _, part := range strings.Split(entry, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			line, err := ParseOrderLine(part)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}
	}
	return lines, nil
}

type nopObserver struct{}

func (nopObserver) OrderPlaced(int, float64) {}
func (nopObserver) OrderFailed(string)       {}

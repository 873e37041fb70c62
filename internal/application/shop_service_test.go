package application_test

import (
	"errors"
	"testing"

	"github.com/abdidvp/storefront/internal/application"
	"github.com/abdidvp/storefront/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingObserver struct {
	placed  []float64
	failed  []string
	lineSum int
}

func (r *recordingObserver) OrderPlaced(lines int, total float64) {
	r.placed = append(r.placed, total)
	r.lineSum += lines
}

func (r *recordingObserver) OrderFailed(reason string) {
	r.failed = append(r.failed, reason)
}

type stubLoader struct {
	cfg domain.CatalogConfig
	err error
	dir string
}

func (l *stubLoader) Load(dir string) (domain.CatalogConfig, error) {
	l.dir = dir
	return l.cfg, l.err
}

func newDefaultService(t *testing.T) (*application.ShopService, *recordingObserver) {
	t.Helper()
	obs := &recordingObserver{}
	svc, err := application.OpenShop(&stubLoader{cfg: domain.DefaultCatalogConfig()}, ".", obs, nil)
	require.NoError(t, err)
	return svc, obs
}

func TestOpenShop_BuildsCatalog(t *testing.T) {
	loader := &stubLoader{cfg: domain.DefaultCatalogConfig()}
	svc, err := application.OpenShop(loader, "/srv/shop", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, "/srv/shop", loader.dir)
	assert.Equal(t, domain.DefaultStoreName, svc.Name())
	assert.Equal(t, 850, svc.TotalQuantity())
}

func TestOpenShop_LoaderError(t *testing.T) {
	_, err := application.OpenShop(&stubLoader{err: errors.New("disk on fire")}, ".", nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading catalog")
}

func TestOpenShop_InvalidCatalog(t *testing.T) {
	cfg := domain.CatalogConfig{Products: []domain.ProductConfig{{Name: "", Price: 1}}}
	_, err := application.OpenShop(&stubLoader{cfg: cfg}, ".", nil, nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "building catalog")
}

func TestShopService_Products(t *testing.T) {
	svc, _ := newDefaultService(t)
	views := svc.Products()
	require.Len(t, views, 3)
	assert.Equal(t, 1, views[0].Index)
	assert.Equal(t, "MacBook Air M2", views[0].Name)
	assert.Equal(t, 1450.0, views[0].Price)
	assert.Equal(t, 100, views[0].Quantity)
	assert.Empty(t, views[0].Promotion)
	assert.True(t, views[0].Active)
	assert.Equal(t, 3, views[2].Index)
}

func TestShopService_ProductViewsForKinds(t *testing.T) {
	license, err := domain.NewUnlimitedProduct("Windows License", 125)
	require.NoError(t, err)
	license.SetPromotion(domain.NewPercentDiscount("30% off!", 30))
	shipping, err := domain.NewCappedProduct("Shipping", 10, 250, 1)
	require.NoError(t, err)

	svc := application.NewShopService("", domain.NewStore(license, shipping), nil, nil)
	views := svc.Products()
	require.Len(t, views, 2)
	assert.True(t, views[0].Unlimited())
	assert.Equal(t, "30% off!", views[0].Promotion)
	assert.Equal(t, 1, views[1].MaxPerOrder)
	assert.False(t, views[1].Unlimited())
	assert.Equal(t, domain.DefaultStoreName, svc.Name())
}

func TestShopService_PlaceOrder(t *testing.T) {
	svc, obs := newDefaultService(t)

	receipt, err := svc.PlaceOrder([]domain.OrderLine{
		{Index: 1, Quantity: 2},
		{Index: 3, Quantity: 3},
	})
	require.NoError(t, err)
	assert.Equal(t, 4400.0, receipt.Total)
	require.Len(t, receipt.Lines, 2)
	assert.Equal(t, domain.ReceiptLine{Name: "MacBook Air M2", Quantity: 2, Charge: 2900}, receipt.Lines[0])
	assert.Equal(t, domain.ReceiptLine{Name: "Google Pixel 7", Quantity: 3, Charge: 1500}, receipt.Lines[1])

	_, err = uuid.Parse(receipt.ID)
	assert.NoError(t, err)

	assert.Equal(t, 845, svc.TotalQuantity())
	assert.Equal(t, []float64{4400}, obs.placed)
	assert.Equal(t, 2, obs.lineSum)
}

func TestShopService_PlaceOrderEmpty(t *testing.T) {
	svc, obs := newDefaultService(t)
	_, err := svc.PlaceOrder(nil)
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Equal(t, []string{"invalid_argument"}, obs.failed)
}

func TestShopService_PlaceOrderBadIndexBuysNothing(t *testing.T) {
	svc, _ := newDefaultService(t)

	_, err := svc.PlaceOrder([]domain.OrderLine{
		{Index: 1, Quantity: 2},
		{Index: 9, Quantity: 1},
	})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "invalid product number 9")
	assert.Equal(t, 850, svc.TotalQuantity())
}

func TestShopService_PlaceOrderFailureKeepsEarlierLines(t *testing.T) {
	svc, obs := newDefaultService(t)

	_, err := svc.PlaceOrder([]domain.OrderLine{
		{Index: 1, Quantity: 2},
		{Index: 3, Quantity: 999},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 98, svc.Products()[0].Quantity)
	assert.Equal(t, 250, svc.Products()[2].Quantity)
	assert.Equal(t, []string{"insufficient_stock"}, obs.failed)
	assert.Empty(t, obs.placed)
}

func TestShopService_DepletedProductDropsFromListing(t *testing.T) {
	p, err := domain.NewProduct("Last One", 99, 1)
	require.NoError(t, err)
	q, err := domain.NewProduct("Plenty", 5, 10)
	require.NoError(t, err)
	svc := application.NewShopService("Test", domain.NewStore(p, q), nil, nil)

	_, err = svc.PlaceOrder([]domain.OrderLine{{Index: 1, Quantity: 1}})
	require.NoError(t, err)

	views := svc.Products()
	require.Len(t, views, 1)
	assert.Equal(t, "Plenty", views[0].Name)

	catalog := svc.Catalog()
	require.Len(t, catalog, 2)
	assert.False(t, catalog[0].Active)
}

func TestShopService_LogsOrders(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	cfg := domain.DefaultCatalogConfig()
	svc, err := application.OpenShop(&stubLoader{cfg: cfg}, ".", nil, zap.New(core))
	require.NoError(t, err)

	_, err = svc.PlaceOrder([]domain.OrderLine{{Index: 2, Quantity: 1}})
	require.NoError(t, err)
	_, err = svc.PlaceOrder([]domain.OrderLine{{Index: 2, Quantity: 10000}})
	require.Error(t, err)

	assert.Equal(t, 1, logs.FilterMessage("catalog_loaded").Len())
	placed := logs.FilterMessage("order_placed").All()
	require.Len(t, placed, 1)
	assert.Equal(t, 250.0, placed[0].ContextMap()["total"])

	failed := logs.FilterMessage("order_failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, "insufficient_stock", failed[0].ContextMap()["reason"])
	assert.Equal(t, "shop_service", failed[0].ContextMap()["component"])
}

func TestParseOrderLine(t *testing.T) {
	line, err := application.ParseOrderLine(" 2:3 ")
	require.NoError(t, err)
	assert.Equal(t, domain.OrderLine{Index: 2, Quantity: 3}, line)

	for _, bad := range []string{"2", "x:1", "0:1", "1:0", "1:-2", "1:abc"} {
		_, err := application.ParseOrderLine(bad)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument, "input %q", bad)
	}
}

func TestParseOrderLines(t *testing.T) {
	lines, err := application.ParseOrderLines([]string{"1:2,3:1", "2:5", ""})
	require.NoError(t, err)
	assert.Equal(t, []domain.OrderLine{
		{Index: 1, Quantity: 2},
		{Index: 3, Quantity: 1},
		{Index: 2, Quantity: 5},
	}, lines)

	_, err = application.ParseOrderLines([]string{"1:2,oops"})
	assert.Error(t, err)
}

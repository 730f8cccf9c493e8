package store

import (
	"context"
	"fmt"
	"os"
	"testing"

	"storefront/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestStore connects to the database named by TEST_DATABASE_URL and
// ensures the schema exists. Tests are skipped when the variable is unset.
func newTestStore(t *testing.T) *Store {
	t.Helper()

	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	s, err := NewStore(url)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	require.NoError(t, s.InitSchema(context.Background()))
	return s
}

func createTestUser(t *testing.T, s *Store) int64 {
	t.Helper()
	email := fmt.Sprintf("test-%s@shop.local", uuid.New().String())
	id, err := s.CreateUser(context.Background(), email, "secret", "Test Shopper")
	require.NoError(t, err)
	return id
}

func createTestProduct(t *testing.T, s *Store, price float64, stock int) int64 {
	t.Helper()
	slug := "test-product-" + uuid.New().String()
	id, err := s.CreateProduct(context.Background(), NewProduct{
		Name:  "Test Product",
		Slug:  slug,
		Price: price,
		Stock: stock,
	})
	require.NoError(t, err)
	return id
}

func testContact() models.ShippingContact {
	return models.ShippingContact{
		Name:    "Test Shopper",
		Email:   "shopper@shop.local",
		Phone:   "+1 555 0100",
		Address: "1 Market Street",
	}
}

func TestCartAddAccumulates(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := createTestUser(t, s)
	productID := createTestProduct(t, s, 100, 10)

	require.NoError(t, s.AddToCart(ctx, userID, productID, 1))
	require.NoError(t, s.AddToCart(ctx, userID, productID, 2))

	lines, err := s.GetCartLines(ctx, userID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 3, lines[0].Quantity)

	count, err := s.CartCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCartSetQuantityAndRemoveIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := createTestUser(t, s)
	productID := createTestProduct(t, s, 100, 10)

	require.NoError(t, s.AddToCart(ctx, userID, productID, 2))
	require.NoError(t, s.SetCartQuantity(ctx, userID, productID, 5))

	lines, err := s.GetCartLines(ctx, userID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)

	// quantity of zero deletes the row
	require.NoError(t, s.SetCartQuantity(ctx, userID, productID, 0))
	lines, err = s.GetCartLines(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, lines)

	// removing an absent row is not an error
	require.NoError(t, s.RemoveFromCart(ctx, userID, productID))
	require.NoError(t, s.RemoveFromCart(ctx, userID, productID))
}

func TestFavoriteToggleInvolution(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := createTestUser(t, s)
	productID := createTestProduct(t, s, 100, 10)

	added, err := s.ToggleFavorite(ctx, userID, productID)
	require.NoError(t, err)
	assert.True(t, added)

	isFav, err := s.IsFavorite(ctx, userID, productID)
	require.NoError(t, err)
	assert.True(t, isFav)

	added, err = s.ToggleFavorite(ctx, userID, productID)
	require.NoError(t, err)
	assert.False(t, added)

	isFav, err = s.IsFavorite(ctx, userID, productID)
	require.NoError(t, err)
	assert.False(t, isFav)
}

func TestCreateOrderTotalsAndStock(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := createTestUser(t, s)
	productA := createTestProduct(t, s, 100, 10)
	productB := createTestProduct(t, s, 50, 5)

	require.NoError(t, s.AddToCart(ctx, userID, productA, 2))
	require.NoError(t, s.AddToCart(ctx, userID, productB, 1))

	orderID, err := s.CreateOrder(ctx, userID, testContact(), true)
	require.NoError(t, err)
	require.NotZero(t, orderID)

	order, err := s.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, float64(250), order.Total)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 2)

	// stock decremented by exactly the ordered quantities
	a, err := s.GetProductByID(ctx, productA)
	require.NoError(t, err)
	assert.Equal(t, 8, a.Stock)
	b, err := s.GetProductByID(ctx, productB)
	require.NoError(t, err)
	assert.Equal(t, 4, b.Stock)

	// cart emptied
	lines, err := s.GetCartLines(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestOrderPriceHistoryStable(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := createTestUser(t, s)
	productID := createTestProduct(t, s, 100, 10)

	require.NoError(t, s.AddToCart(ctx, userID, productID, 1))
	orderID, err := s.CreateOrder(ctx, userID, testContact(), true)
	require.NoError(t, err)

	// raising the product price afterwards must not touch the captured price
	newPrice := 175.0
	require.NoError(t, s.UpdateProduct(ctx, productID, models.ProductPatch{Price: &newPrice}))

	order, err := s.GetOrderByID(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, float64(100), order.Items[0].Price)
	assert.Equal(t, float64(100), order.Total)
}

func TestCreateOrderBackorderDrivesStockNegative(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := createTestUser(t, s)
	productID := createTestProduct(t, s, 100, 2)

	require.NoError(t, s.AddToCart(ctx, userID, productID, 5))

	orderID, err := s.CreateOrder(ctx, userID, testContact(), true)
	require.NoError(t, err)
	require.NotZero(t, orderID)

	p, err := s.GetProductByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, -3, p.Stock)
}

func TestCreateOrderRejectsOversellWhenBackorderDisabled(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := createTestUser(t, s)
	productID := createTestProduct(t, s, 100, 2)

	require.NoError(t, s.AddToCart(ctx, userID, productID, 5))

	_, err := s.CreateOrder(ctx, userID, testContact(), false)
	require.ErrorIs(t, err, ErrInsufficientStock)

	// the whole transaction rolled back: stock untouched, cart intact
	p, err := s.GetProductByID(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Stock)

	lines, err := s.GetCartLines(ctx, userID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
}

func TestCreateOrderEmptyCart(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	userID := createTestUser(t, s)

	orderID, err := s.CreateOrder(ctx, userID, testContact(), true)
	require.ErrorIs(t, err, ErrEmptyCart)
	assert.Zero(t, orderID)

	orders, err := s.ListUserOrders(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SeedIfEmpty(ctx))
	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	first := len(categories)
	require.NotZero(t, first)

	require.NoError(t, s.SeedIfEmpty(ctx))
	categories, err = s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, len(categories))
}

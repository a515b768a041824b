package repo

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stylecart/backend/internal/order/models"
)

func newTestRepo(t *testing.T) *GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}))

	return &GormRepo{DB: db}
}

func testOrder(userID string, total int64, items ...models.OrderItem) *models.Order {
	return &models.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		TotalAmount:     total,
		Status:          models.StatusPending,
		PaymentMethod:   "cod",
		ShippingAddress: "42 Test Lane",
		Items:           items,
	}
}

func TestCreateOrder_PersistsOrderWithItems(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	order := testOrder("u1", 2598, models.OrderItem{
		ProductID:    "m-1",
		ProductName:  "Classic Cotton Shirt",
		ProductPrice: 1299,
		Quantity:     2,
		ItemTotal:    2598,
	})

	created, err := r.CreateOrder(ctx, order)
	require.NoError(t, err)

	got, err := r.GetOrder(ctx, created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2598, got.TotalAmount)
	assert.Equal(t, models.StatusPending, got.Status)
	require.Len(t, got.Items, 1)
	assert.Equal(t, created.ID, got.Items[0].OrderID)
	assert.EqualValues(t, 1299, got.Items[0].ProductPrice)
}

func TestCreateOrder_RejectsMismatchedTotal(t *testing.T) {
	r := newTestRepo(t)

	order := testOrder("u1", 9999, models.OrderItem{
		ProductID:    "m-1",
		ProductName:  "Classic Cotton Shirt",
		ProductPrice: 1299,
		Quantity:     2,
		ItemTotal:    2598,
	})

	_, err := r.CreateOrder(context.Background(), order)
	require.Error(t, err)

	orders, err := r.ListOrders(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestListOrders_NewestFirst(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	first := testOrder("u1", 100, models.OrderItem{
		ProductID: "a-1", ProductName: "Leather Belt", ProductPrice: 100, Quantity: 1, ItemTotal: 100,
	})
	_, err := r.CreateOrder(ctx, first)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	second := testOrder("u1", 200, models.OrderItem{
		ProductID: "a-2", ProductName: "Analog Watch", ProductPrice: 200, Quantity: 1, ItemTotal: 200,
	})
	_, err = r.CreateOrder(ctx, second)
	require.NoError(t, err)

	_, err = r.CreateOrder(ctx, testOrder("other", 300, models.OrderItem{
		ProductID: "a-1", ProductName: "Leather Belt", ProductPrice: 300, Quantity: 1, ItemTotal: 300,
	}))
	require.NoError(t, err)

	orders, err := r.ListOrders(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, second.ID, orders[0].ID)
	assert.Equal(t, first.ID, orders[1].ID)
	require.Len(t, orders[0].Items, 1)
}

func TestGetOrder_Missing(t *testing.T) {
	r := newTestRepo(t)

	_, err := r.GetOrder(context.Background(), "no-such-order")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateStatus(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	order := testOrder("u1", 100, models.OrderItem{
		ProductID: "a-1", ProductName: "Leather Belt", ProductPrice: 100, Quantity: 1, ItemTotal: 100,
	})
	_, err := r.CreateOrder(ctx, order)
	require.NoError(t, err)

	require.NoError(t, r.UpdateStatus(ctx, order.ID, models.StatusConfirmed))

	got, err := r.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, got.Status)
	assert.False(t, got.UpdatedAt.Before(got.CreatedAt))

	err = r.UpdateStatus(ctx, "no-such-order", models.StatusConfirmed)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/stylecart/backend/internal/cart/models"
	"github.com/stylecart/backend/internal/cart/repo"
	"github.com/stylecart/backend/internal/cart/service"
	"github.com/stylecart/backend/internal/cart/transport"
	"github.com/stylecart/backend/pkg/catalogclient"
)

type testEnv struct {
	e       *echo.Echo
	handler *CartHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/products/m-1" {
			json.NewEncoder(w).Encode(catalogclient.Product{ID: "m-1", Name: "Classic Cotton Shirt", Price: 1299})
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(catalog.Close)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.CartItem{}))

	svc := &service.CartService{
		Repo:    &repo.GormRepo{DB: db},
		Catalog: catalogclient.NewClient(catalog.URL),
	}

	return &testEnv{e: echo.New(), handler: &CartHTTP{Svc: svc}}
}

func (env *testEnv) doJSONRequest(t *testing.T, method, target string, body any) (*httptest.ResponseRecorder, echo.Context) {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(b))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	return rec, c
}

func (env *testEnv) addItem(t *testing.T, userID, productID string, quantity uint) models.CartItem {
	t.Helper()

	rec, c := env.doJSONRequest(t, http.MethodPost, "/cart/"+userID+"/add",
		transport.AddItemRequest{ProductID: productID, Quantity: quantity})
	c.SetParamNames("userID")
	c.SetParamValues(userID)
	require.NoError(t, env.handler.AddToCart(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var item models.CartItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))
	return item
}

func TestAddToCart_CreatedWithDefaultQuantity(t *testing.T) {
	env := newTestEnv(t)

	item := env.addItem(t, "u1", "m-1", 0)
	assert.EqualValues(t, 1, item.Quantity)
	assert.Equal(t, "m-1", item.ProductID)
	assert.NotEmpty(t, item.ID)
}

func TestAddToCart_UnknownProduct(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(t, http.MethodPost, "/cart/u1/add",
		transport.AddItemRequest{ProductID: "ghost", Quantity: 1})
	c.SetParamNames("userID")
	c.SetParamValues("u1")
	require.NoError(t, env.handler.AddToCart(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
}

func TestAddToCart_MissingProductID(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(t, http.MethodPost, "/cart/u1/add", map[string]any{"quantity": 1})
	c.SetParamNames("userID")
	c.SetParamValues("u1")
	require.NoError(t, env.handler.AddToCart(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetCart_ReturnsEnrichedView(t *testing.T) {
	env := newTestEnv(t)

	env.addItem(t, "u1", "m-1", 2)

	rec, c := env.doJSONRequest(t, http.MethodGet, "/cart/u1", nil)
	c.SetParamNames("userID")
	c.SetParamValues("u1")
	require.NoError(t, env.handler.GetCart(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp transport.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.EqualValues(t, 2598, resp.Total)
	assert.EqualValues(t, 2, resp.ItemCount)
	assert.EqualValues(t, 2598, resp.Items[0].ItemTotal)
	assert.Equal(t, "Classic Cotton Shirt", resp.Items[0].Product.Name)
}

func intPtr(n int) *int { return &n }

func TestUpdateCartItem_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(t, http.MethodPut, "/cart/u1/update",
		transport.UpdateItemRequest{ItemID: "no-such-item", Quantity: intPtr(2)})
	c.SetParamNames("userID")
	c.SetParamValues("u1")
	require.NoError(t, env.handler.UpdateCartItem(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Cart item not found"}`, rec.Body.String())
}

func TestUpdateCartItem_ZeroRemoves(t *testing.T) {
	env := newTestEnv(t)

	item := env.addItem(t, "u1", "m-1", 3)

	rec, c := env.doJSONRequest(t, http.MethodPut, "/cart/u1/update",
		transport.UpdateItemRequest{ItemID: item.ID, Quantity: intPtr(0)})
	c.SetParamNames("userID")
	c.SetParamValues("u1")
	require.NoError(t, env.handler.UpdateCartItem(c))
	require.Equal(t, http.StatusOK, rec.Code)

	rec, c = env.doJSONRequest(t, http.MethodGet, "/cart/u1", nil)
	c.SetParamNames("userID")
	c.SetParamValues("u1")
	require.NoError(t, env.handler.GetCart(c))

	var resp transport.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Empty(t, resp.Items)
}

func TestUpdateCartItem_MissingQuantityRejected(t *testing.T) {
	env := newTestEnv(t)

	item := env.addItem(t, "u1", "m-1", 2)

	rec, c := env.doJSONRequest(t, http.MethodPut, "/cart/u1/update",
		map[string]any{"itemId": item.ID})
	c.SetParamNames("userID")
	c.SetParamValues("u1")
	require.NoError(t, env.handler.UpdateCartItem(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Item ID and quantity are required"}`, rec.Body.String())

	rec, c = env.doJSONRequest(t, http.MethodGet, "/cart/u1", nil)
	c.SetParamNames("userID")
	c.SetParamValues("u1")
	require.NoError(t, env.handler.GetCart(c))

	var resp transport.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.EqualValues(t, 2, resp.Items[0].Quantity)
}

func TestRemoveFromCart(t *testing.T) {
	env := newTestEnv(t)

	item := env.addItem(t, "u1", "m-1", 1)

	rec, c := env.doJSONRequest(t, http.MethodDelete, "/cart/u1/remove/"+item.ID, nil)
	c.SetParamNames("userID", "itemID")
	c.SetParamValues("u1", item.ID)
	require.NoError(t, env.handler.RemoveFromCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, c = env.doJSONRequest(t, http.MethodDelete, "/cart/u1/remove/"+item.ID, nil)
	c.SetParamNames("userID", "itemID")
	c.SetParamValues("u1", item.ID)
	require.NoError(t, env.handler.RemoveFromCart(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearCart_AlwaysSucceeds(t *testing.T) {
	env := newTestEnv(t)

	rec, c := env.doJSONRequest(t, http.MethodDelete, "/cart/u1/clear", nil)
	c.SetParamNames("userID")
	c.SetParamValues("u1")
	require.NoError(t, env.handler.ClearCart(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

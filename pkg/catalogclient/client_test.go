package catalogclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		switch r.URL.Path {
		case "/products/m-1":
			json.NewEncoder(w).Encode(Product{ID: "m-1", Name: "Classic Cotton Shirt", Price: 1299, Stock: 50})
		case "/products/boom":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL)
	ctx := context.Background()

	product, err := client.GetProduct(ctx, "m-1")
	require.NoError(t, err)
	assert.Equal(t, "Classic Cotton Shirt", product.Name)
	assert.EqualValues(t, 1299, product.Price)

	_, err = client.GetProduct(ctx, "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.GetProduct(ctx, "boom")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGetProduct_ServerDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)

	_, err := client.GetProduct(context.Background(), "m-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}

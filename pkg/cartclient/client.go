package cartclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(cartServiceURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(cartServiceURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

type Item struct {
	ID        string  `json:"id"`
	Product   Product `json:"product"`
	Quantity  uint    `json:"quantity"`
	ItemTotal int64   `json:"itemTotal"`
	AddedAt   string  `json:"addedAt"`
}

type Cart struct {
	Items     []Item `json:"items"`
	Total     int64  `json:"total"`
	ItemCount uint   `json:"itemCount"`
}

func (c *Client) GetCart(ctx context.Context, userID string) (*Cart, error) {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodGet,
		c.baseURL+"/cart/"+userID,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cart service returned status %d", resp.StatusCode)
	}

	var cart Cart
	if err := json.NewDecoder(resp.Body).Decode(&cart); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &cart, nil
}

func (c *Client) ClearCart(ctx context.Context, userID string) error {
	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodDelete,
		c.baseURL+"/cart/"+userID+"/clear",
		nil,
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("cart service returned status %d", resp.StatusCode)
	}

	return nil
}

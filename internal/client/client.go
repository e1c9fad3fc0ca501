package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"tableside/internal/cart"
	"tableside/internal/models"
)

var (
	// ErrEmptyCart is returned when submitting a cart with no lines.
	ErrEmptyCart = errors.New("cannot submit an empty order")
	// ErrNoTable is returned when submitting without a table number.
	ErrNoTable = errors.New("table number is not set")
)

// apiError is the failure body returned by the order API.
type apiError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// OrderClient talks to the order REST API.
type OrderClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// NewOrderClient creates a client against the given base URL, e.g.
// "http://localhost:8080/api".
func NewOrderClient(baseURL string) *OrderClient {
	return &OrderClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SetToken sets the bearer token sent with status update requests.
func (c *OrderClient) SetToken(token string) {
	c.token = token
}

// CreateOrderRequest is the order creation payload.
type CreateOrderRequest struct {
	Items        []models.OrderItem `json:"items"`
	TotalAmount  float64            `json:"totalAmount"`
	CustomerName string             `json:"customerName,omitempty"`
	TableNumber  string             `json:"tableNumber,omitempty"`
	Notes        string             `json:"notes,omitempty"`
}

// Login authenticates a staff account and stores the returned token on
// the client for subsequent protected calls.
func (c *OrderClient) Login(ctx context.Context, username, password string) error {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return fmt.Errorf("failed to encode login request: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/staff/login", payload)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.errorFrom(resp, "Login")
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode login response: %w", err)
	}
	c.token = body.Token
	return nil
}

// CreateOrder sends an order creation request and returns the stored
// order.
func (c *OrderClient) CreateOrder(ctx context.Context, req CreateOrderRequest) (*models.Order, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order: %w", err)
	}

	resp, err := c.do(ctx, http.MethodPost, c.baseURL+"/orders", payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return nil, c.errorFrom(resp, "Create order")
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}
	return &order, nil
}

// ListOrders fetches the full order list, newest first.
func (c *OrderClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	resp, err := c.do(ctx, http.MethodGet, c.baseURL+"/orders", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFrom(resp, "Fetch orders")
	}

	var orders []models.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders response: %w", err)
	}
	return orders, nil
}

// UpdateOrderStatus sends a partial update restricted to the status
// field and returns the updated order.
func (c *OrderClient) UpdateOrderStatus(ctx context.Context, orderID string, status models.Status) (*models.Order, error) {
	payload, err := json.Marshal(map[string]string{"status": string(status)})
	if err != nil {
		return nil, fmt.Errorf("failed to encode status update: %w", err)
	}

	url := fmt.Sprintf("%s/orders/%s/status", c.baseURL, orderID)
	resp, err := c.do(ctx, http.MethodPatch, url, payload)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.errorFrom(resp, "Update order status")
	}

	var order models.Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}
	return &order, nil
}

// SubmitCart validates and submits the cart as a new order. The cart is
// cleared only after the create succeeds; any failure leaves it intact.
func (c *OrderClient) SubmitCart(ctx context.Context, ct *cart.Cart, tableNumber, customerName string) (*models.Order, error) {
	if ct.Len() == 0 {
		return nil, ErrEmptyCart
	}
	if tableNumber == "" {
		return nil, ErrNoTable
	}

	lines := ct.Lines()
	items := make([]models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, models.OrderItem{
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Price:    line.Item.Price,
		})
	}
	_, amount := ct.Totals()

	order, err := c.CreateOrder(ctx, CreateOrderRequest{
		Items:        items,
		TotalAmount:  amount,
		CustomerName: customerName,
		TableNumber:  tableNumber,
		Notes:        ct.OrderNote(),
	})
	if err != nil {
		return nil, err
	}

	ct.Clear()
	return order, nil
}

func (c *OrderClient) do(ctx context.Context, method, url string, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call order API: %w", err)
	}
	return resp, nil
}

// errorFrom builds the error for a non-success response: the server's
// error message when one is present, otherwise a generic fallback
// carrying the status code.
func (c *OrderClient) errorFrom(resp *http.Response, operation string) error {
	var body apiError
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		if body.Error != "" {
			return errors.New(body.Error)
		}
		if body.Message != "" {
			return errors.New(body.Message)
		}
	}
	return fmt.Errorf("%s failed with status %d", operation, resp.StatusCode)
}

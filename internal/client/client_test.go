package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tableside/internal/cart"
	"tableside/internal/catalog"
	"tableside/internal/client"
	"tableside/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderClient_CreateOrder(t *testing.T) {
	var received client.CreateOrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{
			ID:          "order-1",
			Items:       received.Items,
			TotalAmount: received.TotalAmount,
			Status:      models.StatusPending,
			CreatedAt:   time.Now(),
		})
	}))
	defer server.Close()

	c := client.NewOrderClient(server.URL + "/api")
	order, err := c.CreateOrder(context.Background(), client.CreateOrderRequest{
		Items:       []models.OrderItem{{Name: "Samosa", Quantity: 2, Price: 25}},
		TotalAmount: 50,
	})
	assert.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, 50.0, received.TotalAmount)
}

func TestOrderClient_ErrorContract(t *testing.T) {
	t.Run("ServerProvidedMessage", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "order must contain at least one item"})
		}))
		defer server.Close()

		c := client.NewOrderClient(server.URL + "/api")
		_, err := c.CreateOrder(context.Background(), client.CreateOrderRequest{})
		assert.Error(t, err)
		assert.Equal(t, "order must contain at least one item", err.Error())
	})

	t.Run("FallbackWithStatusCode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		c := client.NewOrderClient(server.URL + "/api")
		_, err := c.CreateOrder(context.Background(), client.CreateOrderRequest{})
		assert.Error(t, err)
		assert.Equal(t, "Create order failed with status 502", err.Error())

		_, err = c.ListOrders(context.Background())
		assert.Error(t, err)
		assert.Equal(t, "Fetch orders failed with status 502", err.Error())

		_, err = c.UpdateOrderStatus(context.Background(), "order-1", models.StatusReady)
		assert.Error(t, err)
		assert.Equal(t, "Update order status failed with status 502", err.Error())
	})
}

func TestOrderClient_ListOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		json.NewEncoder(w).Encode([]models.Order{
			{ID: "o2", Status: models.StatusPending},
			{ID: "o1", Status: models.StatusReady},
		})
	}))
	defer server.Close()

	c := client.NewOrderClient(server.URL + "/api")
	orders, err := c.ListOrders(context.Background())
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
	assert.Equal(t, "o2", orders[0].ID)
}

func TestOrderClient_UpdateOrderStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/orders/order-1/status", r.URL.Path)
		assert.Equal(t, "Bearer staff-token", r.Header.Get("Authorization"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "preparing", body["status"])

		json.NewEncoder(w).Encode(models.Order{ID: "order-1", Status: models.StatusPreparing})
	}))
	defer server.Close()

	c := client.NewOrderClient(server.URL + "/api")
	c.SetToken("staff-token")
	order, err := c.UpdateOrderStatus(context.Background(), "order-1", models.StatusPreparing)
	assert.NoError(t, err)
	assert.Equal(t, models.StatusPreparing, order.Status)
}

func TestOrderClient_UpdateOrderStatusNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"error": "Order not found"})
	}))
	defer server.Close()

	c := client.NewOrderClient(server.URL + "/api")
	_, err := c.UpdateOrderStatus(context.Background(), "unknown", models.StatusReady)
	assert.Error(t, err)
	assert.Equal(t, "Order not found", err.Error())
}

func TestOrderClient_SubmitCartValidation(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer server.Close()

	c := client.NewOrderClient(server.URL + "/api")
	ct := cart.New(catalog.Default())

	// Empty cart never reaches the API.
	_, err := c.SubmitCart(context.Background(), ct, "5", "")
	assert.ErrorIs(t, err, client.ErrEmptyCart)

	// Missing table context never reaches the API.
	assert.NoError(t, ct.Add("burger-1"))
	_, err = c.SubmitCart(context.Background(), ct, "", "")
	assert.ErrorIs(t, err, client.ErrNoTable)

	assert.Equal(t, 0, calls)
	// Local state is untouched by the rejected submissions.
	assert.Equal(t, 1, ct.Len())
}

func TestOrderClient_SubmitCartSuccessClearsCart(t *testing.T) {
	var received client.CreateOrderRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(models.Order{ID: "order-1", Status: models.StatusPending})
	}))
	defer server.Close()

	c := client.NewOrderClient(server.URL + "/api")
	ct := cart.New(catalog.Default())
	assert.NoError(t, ct.Add("burger-1"))
	assert.NoError(t, ct.Add("burger-1"))
	assert.NoError(t, ct.Add("drink-1"))
	ct.SetNote("burger-1", "no pickles")

	order, err := c.SubmitCart(context.Background(), ct, "5", "Alex")
	assert.NoError(t, err)
	assert.Equal(t, "order-1", order.ID)

	// The snapshot carries name/quantity/price, decoupled from item ids.
	assert.Len(t, received.Items, 2)
	assert.Equal(t, "Signature Burger", received.Items[0].Name)
	assert.Equal(t, 2, received.Items[0].Quantity)
	assert.InDelta(t, 12.99, received.Items[0].Price, 0.001)
	assert.InDelta(t, 2*12.99+2.99, received.TotalAmount, 0.001)
	assert.Equal(t, "5", received.TableNumber)

	// Cart is cleared only after a successful create.
	assert.Equal(t, 0, ct.Len())
}

func TestOrderClient_SubmitCartFailureKeepsCart(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := client.NewOrderClient(server.URL + "/api")
	ct := cart.New(catalog.Default())
	assert.NoError(t, ct.Add("burger-1"))

	_, err := c.SubmitCart(context.Background(), ct, "5", "")
	assert.Error(t, err)
	assert.Equal(t, 1, ct.Len())
}

func TestOrderClient_Login(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/staff/login" {
			json.NewEncoder(w).Encode(map[string]string{"token": "issued-token"})
			return
		}
		// Protected call must carry the stored token.
		assert.Equal(t, "Bearer issued-token", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(models.Order{ID: "order-1", Status: models.StatusReady})
	}))
	defer server.Close()

	c := client.NewOrderClient(server.URL + "/api")
	assert.NoError(t, c.Login(context.Background(), "kitchen1", "password123"))

	_, err := c.UpdateOrderStatus(context.Background(), "order-1", models.StatusReady)
	assert.NoError(t, err)
}

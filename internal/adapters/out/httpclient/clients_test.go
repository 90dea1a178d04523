package httpclient_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fastorder/internal/adapters/out/httpclient"
	"fastorder/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStockClient_GetSnapshot(t *testing.T) {
	t.Run("should decode a stock snapshot", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/items/burger", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"burger","price":25.0,"quantity":10}`))
		}))
		defer server.Close()

		client := httpclient.NewStockClient(server.URL)
		snapshot, err := client.GetSnapshot(t.Context(), "burger")

		require.NoError(t, err)
		require.NotNil(t, snapshot)
		assert.Equal(t, "burger", snapshot.ID)
		assert.InDelta(t, 25.0, snapshot.Price, 0.0001)
		assert.Equal(t, 10, snapshot.Quantity)
	})

	t.Run("should return nil for an unknown item", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := httpclient.NewStockClient(server.URL)
		snapshot, err := client.GetSnapshot(t.Context(), "ghost")

		require.NoError(t, err)
		assert.Nil(t, snapshot)
	})

	t.Run("should fail on an unexpected status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := httpclient.NewStockClient(server.URL)
		_, err := client.GetSnapshot(t.Context(), "burger")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})
}

func TestStockClient_Decrement(t *testing.T) {
	t.Run("should post the quantity to the decrement endpoint", func(t *testing.T) {
		var gotPath string
		var gotBody map[string]int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &gotBody))
			w.WriteHeader(http.StatusNoContent)
		}))
		defer server.Close()

		client := httpclient.NewStockClient(server.URL)
		err := client.Decrement(t.Context(), "burger", 3)

		require.NoError(t, err)
		assert.Equal(t, "/items/burger/decrement", gotPath)
		assert.Equal(t, 3, gotBody["quantity"])
	})

	t.Run("should fail when the service rejects the decrement", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}))
		defer server.Close()

		client := httpclient.NewStockClient(server.URL)
		err := client.Decrement(t.Context(), "burger", 3)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 409")
	})
}

func TestCustomerClient_FindByIdentifier(t *testing.T) {
	t.Run("should decode a customer", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/customers/11144477735", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"customer-1","email":"john@example.com"}`))
		}))
		defer server.Close()

		client := httpclient.NewCustomerClient(server.URL)
		customer, err := client.FindByIdentifier(t.Context(), "11144477735")

		require.NoError(t, err)
		require.NotNil(t, customer)
		assert.Equal(t, "customer-1", customer.ID)
		assert.Equal(t, "john@example.com", customer.Email)
	})

	t.Run("should return nil when no customer matches", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := httpclient.NewCustomerClient(server.URL)
		customer, err := client.FindByIdentifier(t.Context(), "11144477735")

		require.NoError(t, err)
		assert.Nil(t, customer)
	})
}

func TestPaymentClient_Initiate(t *testing.T) {
	t.Run("should post the payment request and decode the receipt", func(t *testing.T) {
		var gotBody map[string]any
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/payments", r.URL.Path)
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &gotBody))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"paymentId":"pay-1","status":"pending"}`))
		}))
		defer server.Close()

		client := httpclient.NewPaymentClient(server.URL)
		receipt, err := client.Initiate(t.Context(), ports.PaymentRequest{
			Email:       "john@example.com",
			OrderID:     "order-1",
			TotalAmount: 50.0,
		})

		require.NoError(t, err)
		require.NotNil(t, receipt)
		assert.Equal(t, "pay-1", receipt.PaymentID)
		assert.Equal(t, "pending", receipt.Status)
		assert.Equal(t, "john@example.com", gotBody["email"])
		assert.Equal(t, "order-1", gotBody["orderId"])
		assert.InDelta(t, 50.0, gotBody["totalAmount"].(float64), 0.0001)
	})

	t.Run("should fail when the gateway rejects the payment", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		client := httpclient.NewPaymentClient(server.URL)
		_, err := client.Initiate(t.Context(), ports.PaymentRequest{OrderID: "order-1"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})
}

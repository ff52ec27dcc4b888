package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readyView(items ...models.LineItem) models.BagView {
	var subtotal float64
	for _, item := range items {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}
	return models.BagView{State: models.BagReady, Items: items, Subtotal: subtotal}
}

func TestBuildManifestConvertsToPaise(t *testing.T) {
	view := readyView(
		models.LineItem{VariantID: 1, ProductName: "Banarasi Silk Saree", ColorName: "Maroon", SizeName: "Free Size", UnitPrice: 5499, Quantity: 2},
		models.LineItem{VariantID: 2, ProductName: "Cotton Kurta", UnitPrice: 1299.50, Quantity: 1},
	)

	manifest := BuildManifest(view)
	require.Len(t, manifest, 2)

	assert.Equal(t, int64(549900), manifest[0].UnitPriceMinor)
	assert.Equal(t, int64(129950), manifest[1].UnitPriceMinor)
	assert.Equal(t, "Banarasi Silk Saree", manifest[0].Name)
	assert.Equal(t, "Maroon", manifest[0].Color)
	assert.Equal(t, 2, manifest[0].Quantity)
}

func TestBuildManifestRoundsHalfUp(t *testing.T) {
	view := readyView(models.LineItem{VariantID: 1, UnitPrice: 10.125, Quantity: 1})
	manifest := BuildManifest(view)
	require.Len(t, manifest, 1)
	assert.Equal(t, int64(1013), manifest[0].UnitPriceMinor)
}

func TestManifestTotalIsExact(t *testing.T) {
	manifest := []models.LineItemManifest{
		{UnitPriceMinor: 549900, Quantity: 2},
		{UnitPriceMinor: 129950, Quantity: 3},
	}
	assert.Equal(t, int64(2*549900+3*129950), ManifestTotal(manifest))
	assert.Equal(t, int64(0), ManifestTotal(nil))
}

func TestInitiateCheckoutRejectsEmptyBag(t *testing.T) {
	s := NewCheckoutService(&RazorpayClient{}, "VH Ecom")

	_, err := s.InitiateCheckout(context.Background(), "cart-1", readyView(), models.CheckoutPrefill{})
	assert.ErrorIs(t, err, ErrBagNotReady)
}

func TestInitiateCheckoutRejectsUnreadyBag(t *testing.T) {
	s := NewCheckoutService(&RazorpayClient{}, "VH Ecom")
	view := models.BagView{
		State: models.BagError,
		Items: []models.LineItem{{VariantID: 1, UnitPrice: 100, Quantity: 1}},
	}

	_, err := s.InitiateCheckout(context.Background(), "cart-1", view, models.CheckoutPrefill{})
	assert.ErrorIs(t, err, ErrBagNotReady)
}

func TestInitiateCheckoutWithoutGateway(t *testing.T) {
	// NewRazorpayClient returns nil when credentials are absent.
	s := NewCheckoutService(NewRazorpayClient("", ""), "VH Ecom")
	view := readyView(models.LineItem{VariantID: 1, UnitPrice: 100, Quantity: 1})

	_, err := s.InitiateCheckout(context.Background(), "cart-1", view, models.CheckoutPrefill{})
	assert.ErrorIs(t, err, ErrWidgetUnavailable)
}

func TestInitiateCheckoutCreatesOrder(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/orders", r.URL.Path)
		user, _, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "rzp_test_key", user)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(RazorpayOrder{
			ID:       "order_ABC123",
			Amount:   int64(gotBody["amount"].(float64)),
			Currency: "INR",
			Status:   "created",
		})
	}))
	defer srv.Close()

	client := NewRazorpayClient("rzp_test_key", "secret")
	client.baseURL = srv.URL
	s := NewCheckoutService(client, "VH Ecom")

	view := readyView(
		models.LineItem{VariantID: 1, UnitPrice: 5499, Quantity: 2},
		models.LineItem{VariantID: 2, UnitPrice: 1299.50, Quantity: 1},
	)
	prefill := models.CheckoutPrefill{Name: "Asha", Email: "asha@example.com", Contact: "+919999999999"}

	opts, err := s.InitiateCheckout(context.Background(), "cart-1", view, prefill)
	require.NoError(t, err)

	wantTotal := int64(2*549900 + 129950)
	assert.Equal(t, "order_ABC123", opts.OrderID)
	assert.Equal(t, "rzp_test_key", opts.KeyID)
	assert.Equal(t, wantTotal, opts.AmountMinor)
	assert.Equal(t, "INR", opts.Currency)
	assert.Equal(t, "VH Ecom", opts.BusinessName)
	assert.Equal(t, prefill, opts.Prefill)
	assert.Len(t, opts.Items, 2)

	// The order was created for the exact manifest total and the bag receipt.
	assert.Equal(t, float64(wantTotal), gotBody["amount"])
	assert.Equal(t, "bag_cart-1", gotBody["receipt"])
}

func TestCreateOrderGatewayErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"description":"amount too small"}}`))
	}))
	defer srv.Close()

	client := NewRazorpayClient("rzp_test_key", "secret")
	client.baseURL = srv.URL

	_, err := client.CreateOrder(context.Background(), 50, "INR", "bag_x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestCreateOrderUnreachableGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewRazorpayClient("rzp_test_key", "secret")
	client.baseURL = srv.URL

	_, err := client.CreateOrder(context.Background(), 100, "INR", "bag_x")
	assert.ErrorIs(t, err, ErrWidgetUnavailable)
}

func TestCreateOrderMissingID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client := NewRazorpayClient("rzp_test_key", "secret")
	client.baseURL = srv.URL

	_, err := client.CreateOrder(context.Background(), 100, "INR", "bag_x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}

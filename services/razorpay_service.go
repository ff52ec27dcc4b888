package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// RazorpayClient creates orders against the Razorpay Orders API. The widget
// itself (script load, iframe, signature verification) lives entirely on the
// gateway's side; this client's only job is the merchant order-creation call
// that produces the order_id the widget is opened with.
type RazorpayClient struct {
	keyID     string
	keySecret string
	baseURL   string
	http      *http.Client
}

// NewRazorpayClient returns a client, or nil when credentials are missing so
// callers can degrade checkout without failing startup.
func NewRazorpayClient(keyID, keySecret string) *RazorpayClient {
	if keyID == "" || keySecret == "" {
		return nil
	}
	return &RazorpayClient{
		keyID:     keyID,
		keySecret: keySecret,
		baseURL:   "https://api.razorpay.com/v1",
		http:      &http.Client{Timeout: 15 * time.Second},
	}
}

// KeyID exposes the public key for the widget options.
func (r *RazorpayClient) KeyID() string { return r.keyID }

// RazorpayOrder is the subset of the order-creation response we use.
type RazorpayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateOrder creates a gateway order for the given amount in minor units.
func (r *RazorpayClient) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string) (*RazorpayOrder, error) {
	payload := map[string]interface{}{
		"amount":   amountMinor,
		"currency": currency,
		"receipt":  receipt,
	}

	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", r.baseURL+"/orders", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(r.keyID, r.keySecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.http.Do(req)
	if err != nil {
		log.Printf("[razorpay] order creation request failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrWidgetUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[razorpay] api returned status %d: %s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("razorpay api error: status %d", resp.StatusCode)
	}

	var order RazorpayOrder
	if err := json.Unmarshal(body, &order); err != nil {
		return nil, fmt.Errorf("failed to decode order: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("razorpay order response missing id")
	}

	log.Printf("[razorpay] order %s created for %d %s", order.ID, order.Amount, order.Currency)
	return &order, nil
}

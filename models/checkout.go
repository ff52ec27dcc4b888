package models

// ═══════════════════════════════════════════════════════════
// Checkout / Payment Widget Models
// ═══════════════════════════════════════════════════════════

// LineItemManifest is the widget-facing descriptor for one bag line.
// Unit prices are in minor currency units (paise).
type LineItemManifest struct {
	VariantID      int64  `json:"variant_id"`
	Name           string `json:"name"`
	Color          string `json:"color"`
	Size           string `json:"size"`
	ImageURL       string `json:"image_url"`
	UnitPriceMinor int64  `json:"unit_price_minor"`
	Quantity       int    `json:"quantity"`
}

// CheckoutPrefill carries optional contact fields forwarded to the widget.
type CheckoutPrefill struct {
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Contact string `json:"contact,omitempty"`
	Address string `json:"address,omitempty"`
}

// CheckoutOptions is everything the frontend needs to open the Razorpay
// widget: public key, the freshly created order, the amount the order was
// created with, and the manifest for display.
type CheckoutOptions struct {
	KeyID        string             `json:"key_id"`
	OrderID      string             `json:"order_id"`
	AmountMinor  int64              `json:"amount_minor"`
	Currency     string             `json:"currency"`
	BusinessName string             `json:"business_name"`
	Prefill      CheckoutPrefill    `json:"prefill"`
	Items        []LineItemManifest `json:"items"`
}

// PaymentSuccess mirrors the widget's success handler payload.
type PaymentSuccess struct {
	PaymentID string `json:"payment_id" binding:"required"`
	OrderID   string `json:"order_id" binding:"required"`
	Signature string `json:"signature" binding:"required"`
}

// PaymentFailure mirrors the widget's payment.failed payload. Fields are
// passed through verbatim, no reinterpretation.
type PaymentFailure struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Source      string `json:"source"`
	Step        string `json:"step"`
	Reason      string `json:"reason"`
	OrderID     string `json:"order_id"`
	PaymentID   string `json:"payment_id"`
}

package models

// ═══════════════════════════════════════════════════════════
// Bag / Cart Models
// ═══════════════════════════════════════════════════════════

// LineItem is one row of a shopper's bag joined with live display and stock
// data. The platform is authoritative for every field; the backend never
// edits unit price or stock locally.
type LineItem struct {
	LineItemID     int64   `json:"line_item_id"`
	VariantID      int64   `json:"variant_id"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	ProductName    string  `json:"product_name"`
	ColorName      string  `json:"color_name"`
	SizeName       string  `json:"size_name"`
	ImageURL       string  `json:"image_url"`
	AvailableStock int     `json:"available_stock"`
}

// BagState names the reconciler's lifecycle states.
type BagState string

const (
	BagIdle     BagState = "idle"
	BagLoading  BagState = "loading"
	BagReady    BagState = "ready"
	BagMutating BagState = "mutating"
	BagError    BagState = "error"
)

// BagView is a pure projection of the last successful authoritative fetch.
// Items keep the platform's return order; Subtotal is recomputed at
// projection time. Notice carries a non-blocking, user-visible message from
// the most recent failed mutation (the view itself stays last-known-good).
type BagView struct {
	State     BagState   `json:"state"`
	Items     []LineItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	LastError string     `json:"last_error,omitempty"`
	Notice    string     `json:"notice,omitempty"`
}

// IsEmpty reports whether the bag has no line items.
func (v BagView) IsEmpty() bool {
	return len(v.Items) == 0
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

// UpsertBagItemRequest sets the absolute quantity for a variant. Quantity 0
// (or below) is interpreted as a removal request, never sent as an upsert.
type UpsertBagItemRequest struct {
	VariantID int64 `json:"variant_id" binding:"required,min=1" example:"42"`
	Quantity  int   `json:"quantity" binding:"min=0" example:"2"`
}

package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/16SULPHUR/new-vh-ecom/config"
	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/gorm"
)

// CartGateway is the contract against the hosted platform's cart procedures.
// All three operations mutate or read durable server-side state. The
// reconciler never trusts a mutation's response and always re-lists
// afterwards, so the remove returns no list of its own.
type CartGateway interface {
	UpsertLineItem(ctx context.Context, cartID string, variantID int64, quantity int) ([]models.LineItem, error)
	RemoveLineItem(ctx context.Context, cartID string, variantID int64) error
	ListLineItems(ctx context.Context, cartID string) ([]models.LineItem, error)
}

// PlatformCartGateway talks to the hosted Postgres platform: the generated
// remote procedures via pgx, and the cart_items row delete via GORM (the web
// client issued the delete as a table-level call rather than a procedure, and
// the platform keeps that shape).
type PlatformCartGateway struct {
	db  *pgxpool.Pool
	orm *gorm.DB
}

func NewPlatformCartGateway(db *pgxpool.Pool, orm *gorm.DB) *PlatformCartGateway {
	return &PlatformCartGateway{db: db, orm: orm}
}

// DefaultCartGateway wires the gateway to the global connections from config.
// Call after config.InitDB.
func DefaultCartGateway() *PlatformCartGateway {
	return NewPlatformCartGateway(config.StoreDB, config.StoreGorm)
}

const lineItemColumns = `line_item_id, variant_id, quantity, unit_price,
	product_name, color_name, size_name, image_url, available_stock`

// UpsertLineItem sets the absolute quantity for (cartID, variantID) through
// the manage_cart procedure and returns the session's full updated list.
// A server-side stock rejection surfaces as *ValidationError.
func (g *PlatformCartGateway) UpsertLineItem(ctx context.Context, cartID string, variantID int64, quantity int) ([]models.LineItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM manage_cart($1, $2, $3)`, lineItemColumns)

	rows, err := g.db.Query(ctx, query, cartID, variantID, quantity)
	if err != nil {
		if isStockRejection(err) {
			return nil, &ValidationError{VariantID: variantID, Requested: quantity}
		}
		return nil, &RemoteError{Op: "manage_cart", Err: err}
	}
	defer rows.Close()

	// pgx reports procedure-raised errors during iteration, not at Query.
	items, err := collectLineItems("manage_cart", rows)
	if err != nil {
		var re *RemoteError
		if errors.As(err, &re) && isStockRejection(re.Err) {
			return nil, &ValidationError{VariantID: variantID, Requested: quantity}
		}
		return nil, err
	}
	return items, nil
}

// RemoveLineItem deletes the row keyed by (cartID, variantID). Deleting an
// item that is no longer in the session fails with *RemoteError, mirroring
// the platform's behaviour.
func (g *PlatformCartGateway) RemoveLineItem(ctx context.Context, cartID string, variantID int64) error {
	res := g.orm.WithContext(ctx).Exec(
		`DELETE FROM cart_items WHERE cart_id = ? AND variant_id = ?`,
		cartID, variantID,
	)
	if res.Error != nil {
		return &RemoteError{Op: "cart_items.delete", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &RemoteError{
			Op:  "cart_items.delete",
			Err: fmt.Errorf("variant %d not in cart %s", variantID, cartID),
		}
	}
	return nil
}

// ListLineItems fetches the session's line items joined with current display
// and stock data. An empty session yields an empty slice, not an error.
func (g *PlatformCartGateway) ListLineItems(ctx context.Context, cartID string) ([]models.LineItem, error) {
	query := fmt.Sprintf(`SELECT %s FROM get_cart_product_variant_details($1)`, lineItemColumns)

	rows, err := g.db.Query(ctx, query, cartID)
	if err != nil {
		return nil, &RemoteError{Op: "get_cart_product_variant_details", Err: err}
	}
	defer rows.Close()

	return collectLineItems("get_cart_product_variant_details", rows)
}

// ─────────────────────────────────────────────────────────────
// Response contract validation
// ─────────────────────────────────────────────────────────────

// lineItemRow is the loosely-typed row shape as it arrives from the joined
// procedure result, before validation.
type lineItemRow struct {
	LineItemID     int64
	VariantID      int64
	Quantity       int
	UnitPrice      float64
	ProductName    *string
	ColorName      *string
	SizeName       *string
	ImageURL       *string
	AvailableStock int
}

func collectLineItems(op string, rows pgx.Rows) ([]models.LineItem, error) {
	items := make([]models.LineItem, 0)

	for rows.Next() {
		var row lineItemRow
		if err := rows.Scan(
			&row.LineItemID, &row.VariantID, &row.Quantity, &row.UnitPrice,
			&row.ProductName, &row.ColorName, &row.SizeName, &row.ImageURL,
			&row.AvailableStock,
		); err != nil {
			return nil, &RemoteError{Op: op, Err: err}
		}

		item, err := validateLineItem(row)
		if err != nil {
			// Malformed records never reach the reconciler.
			return nil, &RemoteError{Op: op, Err: err}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, &RemoteError{Op: op, Err: err}
	}

	return items, nil
}

// validateLineItem enforces the typed response contract on one joined row.
func validateLineItem(row lineItemRow) (models.LineItem, error) {
	switch {
	case row.LineItemID <= 0:
		return models.LineItem{}, fmt.Errorf("line item %d: invalid id", row.LineItemID)
	case row.VariantID <= 0:
		return models.LineItem{}, fmt.Errorf("line item %d: invalid variant id %d", row.LineItemID, row.VariantID)
	case row.Quantity < 1:
		return models.LineItem{}, fmt.Errorf("line item %d: quantity %d below 1", row.LineItemID, row.Quantity)
	case row.AvailableStock < 0:
		return models.LineItem{}, fmt.Errorf("line item %d: negative stock %d", row.LineItemID, row.AvailableStock)
	case row.Quantity > row.AvailableStock:
		return models.LineItem{}, fmt.Errorf("line item %d: quantity %d above stock %d", row.LineItemID, row.Quantity, row.AvailableStock)
	case row.UnitPrice < 0:
		return models.LineItem{}, fmt.Errorf("line item %d: negative unit price", row.LineItemID)
	case row.ProductName == nil || *row.ProductName == "":
		return models.LineItem{}, fmt.Errorf("line item %d: missing product name", row.LineItemID)
	}

	return models.LineItem{
		LineItemID:     row.LineItemID,
		VariantID:      row.VariantID,
		Quantity:       row.Quantity,
		UnitPrice:      row.UnitPrice,
		ProductName:    *row.ProductName,
		ColorName:      strOrEmpty(row.ColorName),
		SizeName:       strOrEmpty(row.SizeName),
		ImageURL:       strOrEmpty(row.ImageURL),
		AvailableStock: row.AvailableStock,
	}, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// isStockRejection detects the platform's stock check failing inside
// manage_cart (raised with ERRCODE check_violation).
func isStockRejection(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code == "23514" {
		return true
	}
	return pgErr.Code == "P0001" && strings.Contains(strings.ToLower(pgErr.Message), "stock")
}

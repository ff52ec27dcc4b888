package services

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func validRow() lineItemRow {
	return lineItemRow{
		LineItemID:     10,
		VariantID:      42,
		Quantity:       2,
		UnitPrice:      1499.50,
		ProductName:    strPtr("Kanjivaram Saree"),
		ColorName:      strPtr("Teal"),
		SizeName:       strPtr("Free Size"),
		ImageURL:       strPtr("https://cdn.example.com/a.jpg"),
		AvailableStock: 5,
	}
}

func TestValidateLineItemAcceptsWellFormedRow(t *testing.T) {
	item, err := validateLineItem(validRow())
	require.NoError(t, err)

	assert.Equal(t, int64(10), item.LineItemID)
	assert.Equal(t, int64(42), item.VariantID)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "Kanjivaram Saree", item.ProductName)
	assert.Equal(t, "Teal", item.ColorName)
	assert.Equal(t, 5, item.AvailableStock)
}

func TestValidateLineItemOptionalFieldsMayBeNull(t *testing.T) {
	row := validRow()
	row.ColorName = nil
	row.SizeName = nil
	row.ImageURL = nil

	item, err := validateLineItem(row)
	require.NoError(t, err)
	assert.Empty(t, item.ColorName)
	assert.Empty(t, item.SizeName)
	assert.Empty(t, item.ImageURL)
}

func TestValidateLineItemRejectsMalformedRows(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*lineItemRow)
	}{
		{"non-positive line item id", func(r *lineItemRow) { r.LineItemID = 0 }},
		{"non-positive variant id", func(r *lineItemRow) { r.VariantID = -1 }},
		{"quantity below one", func(r *lineItemRow) { r.Quantity = 0 }},
		{"negative stock", func(r *lineItemRow) { r.AvailableStock = -1 }},
		{"quantity above stock", func(r *lineItemRow) { r.Quantity = 6 }},
		{"negative price", func(r *lineItemRow) { r.UnitPrice = -1 }},
		{"nil product name", func(r *lineItemRow) { r.ProductName = nil }},
		{"empty product name", func(r *lineItemRow) { r.ProductName = strPtr("") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := validRow()
			tt.mutate(&row)
			_, err := validateLineItem(row)
			assert.Error(t, err)
		})
	}
}

func TestIsStockRejection(t *testing.T) {
	assert.True(t, isStockRejection(&pgconn.PgError{Code: "23514"}))
	assert.True(t, isStockRejection(&pgconn.PgError{Code: "P0001", Message: "Not enough stock for variant 42"}))
	assert.False(t, isStockRejection(&pgconn.PgError{Code: "P0001", Message: "cart not found"}))
	assert.False(t, isStockRejection(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isStockRejection(errors.New("connection reset")))
	assert.False(t, isStockRejection(nil))
}

func TestRemoteErrorWrapping(t *testing.T) {
	inner := errors.New("boom")
	err := &RemoteError{Op: "manage_cart", Err: inner}

	assert.ErrorIs(t, err, inner)
	assert.Contains(t, err.Error(), "manage_cart")
	assert.True(t, IsRemote(err))
	assert.False(t, IsValidation(err))
}

func TestValidationErrorClassification(t *testing.T) {
	err := &ValidationError{VariantID: 42, Requested: 9}

	assert.True(t, IsValidation(err))
	assert.False(t, IsRemote(err))
	assert.Contains(t, err.Error(), "variant 42")

	detailed := &ValidationError{Detail: "quantity is already at the stock ceiling"}
	assert.Equal(t, "quantity is already at the stock ceiling", detailed.Error())
}

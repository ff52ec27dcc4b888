package product_controller

import (
	"testing"

	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"silk sarees", "Silk Sarees"},
		{"NEW ARRIVALS", "New Arrivals"},
		{"lehenga", "Lehenga"},
		{"", ""},
		{"a  b", "A  B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toTitleCase(tt.in))
	}
}

func catalogRow(variations, images string) models.CatalogRow {
	desc := "Handwoven"
	tag := "bestseller"
	return models.CatalogRow{
		ID:               7,
		Name:             "Banarasi Saree",
		Description:      &desc,
		Price:            5499,
		ShippingDuration: 5,
		Tag:              &tag,
		VariationsJSON:   []byte(variations),
		ImagesJSON:       []byte(images),
	}
}

func TestMapCatalogRowPicksPrimaryImage(t *testing.T) {
	row := catalogRow(`[]`, `[
		{"url": "https://cdn.example.com/b.jpg", "is_primary": false},
		{"url": "https://cdn.example.com/a.jpg", "is_primary": true},
		{"url": "https://cdn.example.com/c.jpg", "is_primary": true}
	]`)

	product := mapCatalogRow(row)
	assert.Equal(t, "https://cdn.example.com/a.jpg", product.ImageURL)
	assert.Equal(t, "Banarasi Saree", product.Title)
	assert.Equal(t, "Handwoven", product.Description)
	assert.Equal(t, "bestseller", product.Tag)
}

func TestMapCatalogRowDeduplicatesOptions(t *testing.T) {
	row := catalogRow(`[
		{"color": {"name": "Maroon", "hex_code": "#800000"}, "size": "Free Size"},
		{"color": {"name": "Maroon", "hex_code": "#800001"}, "size": "S"},
		{"color": {"name": "Teal", "hex_code": "#008080"}, "size": "Free Size"},
		{"color": {"name": "", "hex_code": "#000000"}, "size": ""}
	]`, `[]`)

	product := mapCatalogRow(row)

	// First occurrence wins for colours; sizes keep variation order.
	require.Len(t, product.ColorOptions, 2)
	assert.Equal(t, "Maroon", product.ColorOptions[0].Name)
	assert.Equal(t, "#800000", product.ColorOptions[0].HexCode)
	assert.Equal(t, "Teal", product.ColorOptions[1].Name)
	assert.Equal(t, []string{"Free Size", "S"}, product.Sizes)
}

func TestMapCatalogRowHandlesNullAggregates(t *testing.T) {
	row := models.CatalogRow{ID: 1, Name: "Plain Kurta", Price: 999}

	product := mapCatalogRow(row)
	assert.Empty(t, product.ImageURL)
	assert.Empty(t, product.ColorOptions)
	assert.Empty(t, product.Sizes)
	assert.Empty(t, product.Description)
	assert.Empty(t, product.Tag)
}

func TestMapCatalogRowsPreservesOrder(t *testing.T) {
	rows := []models.CatalogRow{
		{ID: 3, Name: "C", Price: 1},
		{ID: 1, Name: "A", Price: 2},
	}

	products := mapCatalogRows(rows)
	require.Len(t, products, 2)
	assert.Equal(t, int64(3), products[0].ID)
	assert.Equal(t, int64(1), products[1].ID)
}

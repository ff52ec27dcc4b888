package product_controller

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/jackc/pgx/v5"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// toTitleCase normalizes category/collection names coming from route params.
func toTitleCase(str string) string {
	words := strings.Split(str, " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// collectCatalogRows scans the joined listing-procedure result. Variations
// and images arrive as JSON aggregates.
func collectCatalogRows(rows pgx.Rows) ([]models.CatalogRow, error) {
	out := make([]models.CatalogRow, 0)
	for rows.Next() {
		var row models.CatalogRow
		if err := rows.Scan(
			&row.ID, &row.Name, &row.Description, &row.Price,
			&row.ShippingDuration, &row.Tag,
			&row.VariationsJSON, &row.ImagesJSON, &row.CategoryName,
		); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// mapCatalogRows flattens joined rows into the card view model: primary image
// first, colour options deduplicated by name (first occurrence wins), sizes
// deduplicated in variation order.
func mapCatalogRows(rows []models.CatalogRow) []models.StorefrontProduct {
	products := make([]models.StorefrontProduct, 0, len(rows))
	for _, row := range rows {
		products = append(products, mapCatalogRow(row))
	}
	return products
}

func mapCatalogRow(row models.CatalogRow) models.StorefrontProduct {
	var variations []models.CatalogVariation
	if len(row.VariationsJSON) > 0 {
		_ = json.Unmarshal(row.VariationsJSON, &variations)
	}

	var images []models.ProductImage
	if len(row.ImagesJSON) > 0 {
		_ = json.Unmarshal(row.ImagesJSON, &images)
	}

	primaryImage := ""
	for _, img := range images {
		if img.IsPrimary {
			primaryImage = img.URL
			break
		}
	}

	colors := make([]models.ColorOption, 0)
	seenColors := make(map[string]bool)
	sizes := make([]string, 0)
	seenSizes := make(map[string]bool)

	for _, v := range variations {
		if v.Color.Name != "" && !seenColors[v.Color.Name] {
			seenColors[v.Color.Name] = true
			colors = append(colors, models.ColorOption{
				Name:    v.Color.Name,
				HexCode: v.Color.HexCode,
			})
		}
		if v.Size != "" && !seenSizes[v.Size] {
			seenSizes[v.Size] = true
			sizes = append(sizes, v.Size)
		}
	}

	description := ""
	if row.Description != nil {
		description = *row.Description
	}
	tag := ""
	if row.Tag != nil {
		tag = *row.Tag
	}

	return models.StorefrontProduct{
		ID:               row.ID,
		Title:            row.Name,
		Description:      description,
		Price:            row.Price,
		ImageURL:         primaryImage,
		ColorOptions:     colors,
		Sizes:            sizes,
		ShippingDuration: row.ShippingDuration,
		Tag:              tag,
	}
}

// ─────────────────────────────────────────────────────────────
// Platform fetcher (listing procedures share one row shape)
// ─────────────────────────────────────────────────────────────

const catalogColumns = `id, name, description, price, shipping_duration, tag,
	variations, images, category_name`

type pgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func fetchCatalogProducts(ctx context.Context, db pgxQuerier, query string, args ...any) ([]models.StorefrontProduct, error) {
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	raw, err := collectCatalogRows(rows)
	if err != nil {
		return nil, err
	}
	return mapCatalogRows(raw), nil
}

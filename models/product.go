package models

// ═══════════════════════════════════════════════════════════
// Storefront Catalog Models
// ═══════════════════════════════════════════════════════════

// ColorOption is one selectable colour of a product, deduplicated by name
// across the product's variations.
type ColorOption struct {
	Name    string `json:"name"`
	HexCode string `json:"hex_code"`
}

// StorefrontProduct is the card-level projection used by the listing
// endpoints (latest, by collection, by category).
type StorefrontProduct struct {
	ID               int64         `json:"id"`
	Title            string        `json:"title"`
	Description      string        `json:"description"`
	Price            float64       `json:"price"`
	ImageURL         string        `json:"image_url"`
	ColorOptions     []ColorOption `json:"color_options"`
	Sizes            []string      `json:"sizes"`
	ShippingDuration int           `json:"shipping_duration"`
	Tag              string        `json:"tag,omitempty"`
}

// ProductImage is a single gallery image; exactly one per product is primary.
type ProductImage struct {
	URL       string `json:"url"`
	IsPrimary bool   `json:"is_primary"`
}

// ColorVariantImages groups gallery images by colour for the detail page.
type ColorVariantImages struct {
	Color  string         `json:"color"`
	Images []ProductImage `json:"images"`
}

// ProductDetail is the full projection returned by the get_product_details
// remote procedure for the product page.
type ProductDetail struct {
	ID              int64                `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description"`
	Price           float64              `json:"price"`
	SKU             string               `json:"sku"`
	Fabric          string               `json:"fabric"`
	CategoryName    string               `json:"category_name"`
	PrimaryImageURL string               `json:"primary_image_url"`
	ColorVariants   []ColorOption        `json:"color_variants"`
	SizeVariants    []string             `json:"size_variants"`
	VariantImages   []ColorVariantImages `json:"variant_images"`
}

// ═══════════════════════════════════════════════════════════
// Platform row shapes (joined remote-procedure results)
// ═══════════════════════════════════════════════════════════

// CatalogRow is one row of the catalog listing procedures. Variations and
// images arrive as JSON aggregates and are flattened into the view model by
// the product controller.
type CatalogRow struct {
	ID               int64
	Name             string
	Description      *string
	Price            float64
	ShippingDuration int
	Tag              *string
	VariationsJSON   []byte
	ImagesJSON       []byte
	CategoryName     string
}

// CatalogVariation mirrors one element of the variations JSON aggregate.
type CatalogVariation struct {
	Size  string `json:"size"`
	Color struct {
		Name    string `json:"name"`
		HexCode string `json:"hex_code"`
	} `json:"color"`
}

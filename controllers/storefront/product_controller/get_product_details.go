package product_controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/16SULPHUR/new-vh-ecom/config"
	"github.com/16SULPHUR/new-vh-ecom/models"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// GetProductDetails godoc
// @Summary Get single product details
// @Description Full product projection for the product page: colour variants, sizes, per-colour image galleries
// @Tags store
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetProductDetails(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || productID < 1 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var (
		detail            models.ProductDetail
		description       *string
		colorVariantsJSON []byte
		sizeVariantsJSON  []byte
		variantImagesJSON []byte
	)

	row := config.StoreDB.QueryRow(ctx, `
		SELECT id, name, description, price, sku, fabric, category_name,
		       primary_image_url, color_variants, size_variants, variant_images
		FROM get_product_details($1)`, productID)

	err = row.Scan(
		&detail.ID, &detail.Name, &description, &detail.Price,
		&detail.SKU, &detail.Fabric, &detail.CategoryName,
		&detail.PrimaryImageURL,
		&colorVariantsJSON, &sizeVariantsJSON, &variantImagesJSON,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}

	if description != nil {
		detail.Description = *description
	}
	if err := decodeProductAggregates(&detail, colorVariantsJSON, sizeVariantsJSON, variantImagesJSON); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Invalid product data"))
		return
	}
	if err := validateProductDetail(detail); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Invalid product data"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}

func decodeProductAggregates(detail *models.ProductDetail, colors, sizes, images []byte) error {
	detail.ColorVariants = make([]models.ColorOption, 0)
	detail.SizeVariants = make([]string, 0)
	detail.VariantImages = make([]models.ColorVariantImages, 0)

	if len(colors) > 0 {
		if err := json.Unmarshal(colors, &detail.ColorVariants); err != nil {
			return fmt.Errorf("color_variants: %w", err)
		}
	}
	if len(sizes) > 0 {
		if err := json.Unmarshal(sizes, &detail.SizeVariants); err != nil {
			return fmt.Errorf("size_variants: %w", err)
		}
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &detail.VariantImages); err != nil {
			return fmt.Errorf("variant_images: %w", err)
		}
	}
	return nil
}

// validateProductDetail rejects malformed platform payloads before they reach
// the response.
func validateProductDetail(detail models.ProductDetail) error {
	switch {
	case detail.ID < 1:
		return fmt.Errorf("invalid product id %d", detail.ID)
	case detail.Name == "":
		return fmt.Errorf("product %d: missing name", detail.ID)
	case detail.Price < 0:
		return fmt.Errorf("product %d: negative price", detail.ID)
	}
	return nil
}

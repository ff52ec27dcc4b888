package services

import (
	"context"
	"fmt"
	"math"

	"github.com/16SULPHUR/new-vh-ecom/models"
)

// CheckoutService assembles the line-item manifest from a reconciled bag and
// hands it to the payment gateway. Manifest generation is a pure function of
// the BagView; nothing here reads or writes platform state.
type CheckoutService struct {
	razorpay     *RazorpayClient
	businessName string
}

func NewCheckoutService(razorpay *RazorpayClient, businessName string) *CheckoutService {
	return &CheckoutService{razorpay: razorpay, businessName: businessName}
}

// BuildManifest maps each line item to its widget descriptor with unit prices
// in minor currency units (paise).
func BuildManifest(view models.BagView) []models.LineItemManifest {
	manifest := make([]models.LineItemManifest, 0, len(view.Items))
	for _, item := range view.Items {
		manifest = append(manifest, models.LineItemManifest{
			VariantID:      item.VariantID,
			Name:           item.ProductName,
			Color:          item.ColorName,
			Size:           item.SizeName,
			ImageURL:       item.ImageURL,
			UnitPriceMinor: toMinorUnits(item.UnitPrice),
			Quantity:       item.Quantity,
		})
	}
	return manifest
}

// ManifestTotal sums unitPriceMinor * quantity over the manifest. Integer
// arithmetic, so no rounding drift beyond the per-item paise conversion.
func ManifestTotal(manifest []models.LineItemManifest) int64 {
	var total int64
	for _, line := range manifest {
		total += line.UnitPriceMinor * int64(line.Quantity)
	}
	return total
}

// InitiateCheckout creates the gateway order and returns the options the
// widget is opened with. Preconditions: the bag is Ready and non-empty.
// A missing or unreachable gateway fails with ErrWidgetUnavailable so the
// caller can surface a retry-capable notification.
func (s *CheckoutService) InitiateCheckout(ctx context.Context, cartID string, view models.BagView, prefill models.CheckoutPrefill) (*models.CheckoutOptions, error) {
	if view.State != models.BagReady || view.IsEmpty() {
		return nil, ErrBagNotReady
	}
	if s.razorpay == nil {
		return nil, ErrWidgetUnavailable
	}

	manifest := BuildManifest(view)
	total := ManifestTotal(manifest)

	order, err := s.razorpay.CreateOrder(ctx, total, "INR", fmt.Sprintf("bag_%s", cartID))
	if err != nil {
		return nil, err
	}

	return &models.CheckoutOptions{
		KeyID:        s.razorpay.KeyID(),
		OrderID:      order.ID,
		AmountMinor:  total,
		Currency:     "INR",
		BusinessName: s.businessName,
		Prefill:      prefill,
		Items:        manifest,
	}, nil
}

// toMinorUnits converts a rupee amount to paise with half-up rounding.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

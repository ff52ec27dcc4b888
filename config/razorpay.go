package config

import (
	"log"
	"os"
)

// RazorpayConfig holds the merchant credentials for the checkout widget.
// KeyID is public (shipped to the widget), KeySecret is used server-side only
// for the order-creation API.
type RazorpayConfig struct {
	KeyID        string
	KeySecret    string
	BusinessName string
}

var Razorpay RazorpayConfig

func InitRazorpay() {
	Razorpay = RazorpayConfig{
		KeyID:        os.Getenv("RAZORPAY_KEY_ID"),
		KeySecret:    os.Getenv("RAZORPAY_KEY_SECRET"),
		BusinessName: getEnv("BUSINESS_NAME", "VH Ecom"),
	}

	if Razorpay.KeyID == "" || Razorpay.KeySecret == "" {
		// Checkout is degraded, not fatal - browsing must keep working.
		log.Println("⚠️ RAZORPAY_KEY_ID / RAZORPAY_KEY_SECRET not set, checkout disabled")
		return
	}
	log.Println("✅ Razorpay credentials loaded")
}

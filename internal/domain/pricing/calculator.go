// internal/domain/pricing/calculator.go
package pricing

import (
	"math"

	"github.com/your-org/storefront/internal/config"
)

// Line is one quantity/unit-price pair to be priced
type Line struct {
	Quantity  int
	UnitPrice float64
}

// Amounts holds the derived price components of an order. The fields are
// never stored; they are recomputed on every cart read.
type Amounts struct {
	ItemPrice     float64 `json:"item_price"`
	ShippingPrice float64 `json:"shipping_price"`
	TaxPrice      float64 `json:"tax_price"`
	TotalPrice    float64 `json:"total_price"`
}

// Calculator derives order pricing from cart contents. Price is a pure
// function: identical lines always yield identical amounts.
type Calculator struct {
	taxRate               float64
	flatShippingFee       float64
	freeShippingThreshold float64
	roundFactor           float64
}

// NewCalculator creates a calculator from pricing configuration
func NewCalculator(cfg config.PricingConfig) *Calculator {
	return &Calculator{
		taxRate:               cfg.TaxRate,
		flatShippingFee:       cfg.FlatShippingFee,
		freeShippingThreshold: cfg.FreeShippingThreshold,
		roundFactor:           math.Pow(10, float64(cfg.RoundDecimals)),
	}
}

// Price derives item, shipping, tax and total price for the given lines.
// Shipping is free above the threshold, otherwise the flat fee applies.
// TotalPrice is the exact sum of the three rounded components.
func (c *Calculator) Price(lines []Line) Amounts {
	var sum float64
	for _, line := range lines {
		sum += float64(line.Quantity) * line.UnitPrice
	}

	itemPrice := c.round(sum)

	shippingPrice := c.round(c.flatShippingFee)
	if itemPrice > c.freeShippingThreshold {
		shippingPrice = 0
	}

	taxPrice := c.round(c.taxRate * itemPrice)

	return Amounts{
		ItemPrice:     itemPrice,
		ShippingPrice: shippingPrice,
		TaxPrice:      taxPrice,
		TotalPrice:    itemPrice + shippingPrice + taxPrice,
	}
}

func (c *Calculator) round(v float64) float64 {
	return math.Round(v*c.roundFactor) / c.roundFactor
}

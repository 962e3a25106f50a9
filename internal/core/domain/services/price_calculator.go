package services

import (
	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PriceCalculator is a domain service that prices an order at creation time.
// The price is a base fare plus a per-kilometer rate over the great-circle
// distance between pickup and delivery. It is computed once and stamped on
// the order; later position updates never change it.
type PriceCalculator struct {
	baseFare  decimal.Decimal
	perKmRate decimal.Decimal
}

// NewPriceCalculator creates a PriceCalculator. Both amounts must be
// non-negative.
func NewPriceCalculator(baseFare, perKmRate decimal.Decimal) (PriceCalculator, error) {
	if baseFare.IsNegative() {
		return PriceCalculator{}, errs.NewValueIsInvalidError("baseFare")
	}
	if perKmRate.IsNegative() {
		return PriceCalculator{}, errs.NewValueIsInvalidError("perKmRate")
	}

	return PriceCalculator{baseFare: baseFare, perKmRate: perKmRate}, nil
}

// Calculate prices a delivery between the two points, rounded to two decimal
// places.
func (c PriceCalculator) Calculate(pickup, delivery kernel.GeoPoint) (decimal.Decimal, error) {
	if err := pickup.Validate(); err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("pickup", err)
	}
	if err := delivery.Validate(); err != nil {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause("delivery", err)
	}

	distanceKm := decimal.NewFromFloat(pickup.DistanceKmTo(delivery))
	return c.baseFare.Add(c.perKmRate.Mul(distanceKm)).Round(2), nil
}

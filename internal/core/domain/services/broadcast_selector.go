package services

import (
	"greenfleet/internal/core/domain/model/driver"
	"greenfleet/internal/core/domain/model/kernel"
)

// BroadcastSelector is a domain service that picks the drivers a stale
// pending order should be re-broadcast to: available drivers whose last known
// position lies within the configured radius of the pickup point.
type BroadcastSelector struct {
	radiusKm float64
}

// NewBroadcastSelector creates a selector with the given broadcast radius in
// kilometers.
func NewBroadcastSelector(radiusKm float64) BroadcastSelector {
	return BroadcastSelector{radiusKm: radiusKm}
}

// SelectNearby filters the candidates down to available drivers in range of
// the pickup point. Drivers with no known position are skipped. The result
// may be empty; that is an expected business outcome, not an error.
func (s BroadcastSelector) SelectNearby(candidates []*driver.Driver, pickup kernel.GeoPoint) []*driver.Driver {
	var selected []*driver.Driver
	for _, d := range candidates {
		if d.Validate() != nil || !d.IsAvailable() {
			continue
		}
		if d.IsWithinRadiusOf(pickup, s.radiusKm) {
			selected = append(selected, d)
		}
	}
	return selected
}

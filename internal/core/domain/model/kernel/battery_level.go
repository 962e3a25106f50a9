package kernel

import "greenfleet/internal/pkg/errs"

const (
	minBatteryPercent = 0
	maxBatteryPercent = 100
)

// BatteryLevel is a bounded percentage value object for vehicle charge
// readings. The zero value is a valid reading of 0%.
type BatteryLevel struct {
	percent int
}

// NewBatteryLevel creates a BatteryLevel, rejecting readings outside [0, 100].
func NewBatteryLevel(percent int) (BatteryLevel, error) {
	if percent < minBatteryPercent || percent > maxBatteryPercent {
		return BatteryLevel{}, errs.NewValueIsOutOfRangeError(
			"battery level", percent, minBatteryPercent, maxBatteryPercent)
	}
	return BatteryLevel{percent: percent}, nil
}

// Percent returns the reading as an integer percentage.
func (b BatteryLevel) Percent() int {
	return b.percent
}

// IsLowerThan reports whether this reading is below other.
func (b BatteryLevel) IsLowerThan(other BatteryLevel) bool {
	return b.percent < other.percent
}

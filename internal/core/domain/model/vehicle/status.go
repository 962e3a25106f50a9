package vehicle

import "greenfleet/internal/pkg/errs"

// Status is the operational state of a vehicle. InUse and Charging are the
// two engaged states; a vehicle is never in both at once because both are
// entered through claim methods that require Available.
type Status int

const (
	Unknown Status = iota

	// Available means the vehicle is parked and claimable.
	Available

	// InUse means the vehicle is carrying an order.
	InUse

	// Charging means the vehicle occupies a charging port.
	Charging

	// Maintenance means the vehicle is pulled from service for repair.
	Maintenance

	// Inactive means the vehicle is decommissioned.
	Inactive
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		Available:   "available",
		InUse:       "in_use",
		Charging:    "charging",
		Maintenance: "maintenance",
		Inactive:    "inactive",
	}
}

// StatusFromString parses a persistence name into a Status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError("vehicle status")
}

// String returns the persistence name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

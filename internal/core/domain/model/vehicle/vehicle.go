package vehicle

import (
	"errors"

	"greenfleet/internal/core/domain/model/kernel"
	"greenfleet/internal/pkg/errs"
)

var (
	// ErrVehicleIsNotConstructed is returned when a Vehicle instance was not
	// created through NewVehicle or RestoreVehicle.
	ErrVehicleIsNotConstructed = errors.New("Vehicle must be created via NewVehicle or RestoreVehicle constructor")
)

// EngagementKind tags what the vehicle's engagement reference points to.
type EngagementKind int

const (
	// EngagementNone means the vehicle holds no engagement reference.
	EngagementNone EngagementKind = iota

	// EngagementDelivery means the reference is the order the vehicle carries.
	EngagementDelivery

	// EngagementCharging means the reference is the active charging session.
	EngagementCharging
)

// String returns the persistence tag for the engagement kind.
func (k EngagementKind) String() string {
	switch k {
	case EngagementDelivery:
		return "delivery"
	case EngagementCharging:
		return "charging"
	default:
		return "none"
	}
}

// EngagementKindFromString parses a persistence tag into an EngagementKind.
func EngagementKindFromString(s string) (EngagementKind, error) {
	switch s {
	case "none", "":
		return EngagementNone, nil
	case "delivery":
		return EngagementDelivery, nil
	case "charging":
		return EngagementCharging, nil
	default:
		return EngagementNone, errs.NewValueIsInvalidError("engagement kind")
	}
}

// Vehicle is the aggregate for an electric fleet vehicle. Its engagement
// state makes the "one engagement at a time" rule unrepresentable: InUse and
// Charging are only entered through claim methods that require Available, and
// each claim stores the single reference (order or session) that must release
// it.
type Vehicle struct {
	id          kernel.UUID
	plateNumber string
	status      Status
	battery     kernel.BatteryLevel

	// assignedDriverID is the driver who operates the vehicle, set by fleet
	// administration. Independent of the engagement state.
	assignedDriverID *kernel.UUID

	engagementKind EngagementKind
	engagementRef  *kernel.UUID

	isConstructed bool
}

// NewVehicle creates an Available vehicle with the given battery reading.
func NewVehicle(id kernel.UUID, plateNumber string, battery kernel.BatteryLevel) (*Vehicle, error) {
	v := &Vehicle{
		status:        Available,
		battery:       battery,
		isConstructed: true,
	}

	if err := errors.Join(
		v.setID(id),
		v.setPlateNumber(plateNumber),
	); err != nil {
		return nil, err
	}

	return v, nil
}

// RestoreVehicle reconstructs a Vehicle from persistence.
func RestoreVehicle(
	id kernel.UUID,
	plateNumber string,
	status Status,
	battery kernel.BatteryLevel,
	assignedDriverID *kernel.UUID,
	engagementKind EngagementKind,
	engagementRef *kernel.UUID,
) *Vehicle {
	return &Vehicle{
		id:               id,
		plateNumber:      plateNumber,
		status:           status,
		battery:          battery,
		assignedDriverID: assignedDriverID,
		engagementKind:   engagementKind,
		engagementRef:    engagementRef,
		isConstructed:    true,
	}
}

// Validate ensures the Vehicle was built through a constructor.
func (v *Vehicle) Validate() error {
	if v == nil || !v.isConstructed {
		return ErrVehicleIsNotConstructed
	}
	return nil
}

// IsEqual compares two vehicles by their unique identifiers.
func (v *Vehicle) IsEqual(other *Vehicle) bool {
	return other != nil && v.id.IsEqual(other.id)
}

// ID returns the vehicle's unique identifier.
func (v *Vehicle) ID() kernel.UUID {
	return v.id
}

// PlateNumber returns the registration plate.
func (v *Vehicle) PlateNumber() string {
	return v.plateNumber
}

// Status returns the operational state.
func (v *Vehicle) Status() Status {
	return v.status
}

// Battery returns the last known battery reading.
func (v *Vehicle) Battery() kernel.BatteryLevel {
	return v.battery
}

// AssignedDriver returns the operating driver's ID, or nil when the vehicle
// sits in the pool.
func (v *Vehicle) AssignedDriver() *kernel.UUID {
	return v.assignedDriverID
}

// AssignToDriver hands the vehicle to a driver for day-to-day operation.
func (v *Vehicle) AssignToDriver(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	v.assignedDriverID = &driverID
	return nil
}

// UnassignDriver returns the vehicle to the pool.
func (v *Vehicle) UnassignDriver() {
	v.assignedDriverID = nil
}

// EngagementKind returns what the engagement reference points to.
func (v *Vehicle) EngagementKind() EngagementKind {
	return v.engagementKind
}

// EngagementRef returns the engaged order or session ID, or nil when idle.
func (v *Vehicle) EngagementRef() *kernel.UUID {
	return v.engagementRef
}

// IsClaimable reports whether the vehicle can take on a delivery or a
// charging session.
func (v *Vehicle) IsClaimable() bool {
	return v.status == Available
}

// ClaimForDelivery engages the vehicle with an order. The vehicle must be
// Available; an engaged or out-of-service vehicle loses with ConflictError.
func (v *Vehicle) ClaimForDelivery(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	if !v.IsClaimable() {
		return errs.NewConflictError("vehicle " + v.plateNumber + " is " + v.status.String())
	}

	v.status = InUse
	v.engagementKind = EngagementDelivery
	v.engagementRef = &orderID
	return nil
}

// ClaimForCharging engages the vehicle with a charging session. The vehicle
// must be Available.
func (v *Vehicle) ClaimForCharging(sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	if !v.IsClaimable() {
		return errs.NewConflictError("vehicle " + v.plateNumber + " is " + v.status.String())
	}

	v.status = Charging
	v.engagementKind = EngagementCharging
	v.engagementRef = &sessionID
	return nil
}

// ReleaseFromDelivery returns a delivering vehicle to Available. Releasing a
// vehicle that is not delivering fails with InvalidStateError.
func (v *Vehicle) ReleaseFromDelivery() error {
	if v.status != InUse || v.engagementKind != EngagementDelivery {
		return errs.NewInvalidStateError("release from delivery", v.status.String())
	}

	v.release()
	return nil
}

// FinishCharging returns a charging vehicle to Available and records the end
// battery reading.
func (v *Vehicle) FinishCharging(endBattery kernel.BatteryLevel) error {
	if v.status != Charging || v.engagementKind != EngagementCharging {
		return errs.NewInvalidStateError("finish charging", v.status.String())
	}

	v.release()
	v.battery = endBattery
	return nil
}

// UpdateBattery records a new battery reading outside of charging.
func (v *Vehicle) UpdateBattery(battery kernel.BatteryLevel) {
	v.battery = battery
}

// EnterMaintenance pulls an idle vehicle from service. Engaged vehicles must
// be released first.
func (v *Vehicle) EnterMaintenance() error {
	if v.status != Available {
		return errs.NewInvalidStateError("enter maintenance", v.status.String())
	}

	v.status = Maintenance
	return nil
}

// ReturnToService makes a Maintenance or Inactive vehicle Available again.
func (v *Vehicle) ReturnToService() error {
	if v.status != Maintenance && v.status != Inactive {
		return errs.NewInvalidStateError("return to service", v.status.String())
	}

	v.status = Available
	return nil
}

func (v *Vehicle) release() {
	v.status = Available
	v.engagementKind = EngagementNone
	v.engagementRef = nil
}

func (v *Vehicle) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	v.id = id
	return nil
}

func (v *Vehicle) setPlateNumber(plateNumber string) error {
	if plateNumber == "" {
		return errs.NewValueIsRequiredError("plateNumber")
	}
	v.plateNumber = plateNumber
	return nil
}

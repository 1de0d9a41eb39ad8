package motordrive

import (
	"github.com/labrig/labrig-go/pkg/channel"
	"github.com/labrig/labrig-go/pkg/device"
	"github.com/labrig/labrig-go/pkg/feature"
)

// pairsOfPoles relates the speed register to the rotation rate in Hz: the
// register holds pairsOfPoles times the rotation rate.
const pairsOfPoles = 4

// Drive is a Unidrive SP motor drive on a Modbus serial line.
//
// The drive must be wired for computer control: reference_selection set to
// "preset", the drive-enable and run terminals linked. Mode changes (open
// loop, closed loop, servo) can only be done on the drive's pad.
type Drive struct {
	dev *device.Device

	// Mode reports the operating mode; read-only in practice since a mode
	// change needs a manual reset on the pad.
	Mode *feature.Symbol

	// ReferenceSelection selects where the speed reference comes from.
	ReferenceSelection *feature.Symbol

	// Unlocked enables (1) or inhibits (0) the motor.
	Unlocked *feature.Value

	// Rotate gives (1) or withdraws (0) the order of rotation.
	Rotate *feature.Value

	// Speed is the target speed register (pairsOfPoles times the rotation
	// rate in Hz). Prefer SetTargetRotationRate.
	Speed *feature.Value

	// AccelerationTime is the 0 to 100 Hz ramp time in seconds.
	AccelerationTime *feature.Value

	// DecelerationTime is the 100 to 0 Hz ramp time in seconds.
	DecelerationTime *feature.Value
}

// Open binds the drive model to a register channel.
func Open(conn channel.Registers, opts ...device.Option) (*Drive, error) {
	dev, err := device.New(Model, conn, opts...)
	if err != nil {
		return nil, err
	}

	d := &Drive{dev: dev}
	if d.Mode, err = dev.Symbol("mode"); err != nil {
		return nil, err
	}
	if d.ReferenceSelection, err = dev.Symbol("reference_selection"); err != nil {
		return nil, err
	}
	if d.Unlocked, err = dev.Value("unlocked"); err != nil {
		return nil, err
	}
	if d.Rotate, err = dev.Value("rotate"); err != nil {
		return nil, err
	}
	if d.Speed, err = dev.Value("speed"); err != nil {
		return nil, err
	}
	if d.AccelerationTime, err = dev.Value("acceleration_time"); err != nil {
		return nil, err
	}
	if d.DecelerationTime, err = dev.Value("deceleration_time"); err != nil {
		return nil, err
	}
	return d, nil
}

// Device returns the underlying device for access to the full feature set
// (rated parameters, mode-gated limits).
func (d *Drive) Device() *device.Device {
	return d.dev
}

// Unlock makes rotation possible (drive displays "Rdy").
func (d *Drive) Unlock() error {
	return d.Unlocked.Set(1)
}

// Lock inhibits the motor (drive displays "Inh").
func (d *Drive) Lock() error {
	return d.Unlocked.Set(0)
}

// SetTargetRotationRate sets the target rotation rate in Hz.
func (d *Drive) SetTargetRotationRate(hz float64) error {
	return d.Speed.Set(pairsOfPoles * hz)
}

// TargetRotationRate returns the target rotation rate in Hz.
func (d *Drive) TargetRotationRate() (float64, error) {
	raw, err := d.Speed.Get()
	if err != nil {
		return 0, err
	}
	return raw / pairsOfPoles, nil
}

// StartRotation starts the motor at the speed the drive has in memory.
func (d *Drive) StartRotation() error {
	if err := d.prepareRotation(); err != nil {
		return err
	}
	return d.Rotate.Set(1)
}

// StartRotationAt starts the motor at the given rotation rate in Hz.
func (d *Drive) StartRotationAt(hz float64) error {
	if err := d.prepareRotation(); err != nil {
		return err
	}
	// Ramps routinely sweep the speed, so skip the read-back here.
	if err := d.Speed.SetUnchecked(pairsOfPoles * hz); err != nil {
		return err
	}
	return d.Rotate.Set(1)
}

// StopRotation stops the motor.
func (d *Drive) StopRotation() error {
	if err := d.ReferenceSelection.Set("preset"); err != nil {
		return err
	}
	return d.Rotate.Set(0)
}

func (d *Drive) prepareRotation() error {
	if err := d.ReferenceSelection.Set("preset"); err != nil {
		return err
	}
	unlocked, err := d.Unlocked.Get()
	if err != nil {
		return err
	}
	if unlocked == 0 {
		if err := d.Unlocked.Set(1); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying channel.
func (d *Drive) Close() error {
	return d.dev.Close()
}

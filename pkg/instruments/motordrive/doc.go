// Package motordrive drives a Leroy Somer Unidrive SP motor drive over its
// Modbus serial interface.
//
// The drive exposes its parameters as (menu, parameter) pairs; the feature
// model maps them to registers and scales fixed-point values. Several menu-0
// parameters change physical meaning with the operating mode (open loop,
// closed loop, servo); those are declared once per mode and gated, so reading
// a rated speed while the drive is in servo mode fails with a ModeError
// instead of returning a thermal time constant.
package motordrive

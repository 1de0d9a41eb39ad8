package motordrive

import (
	"github.com/labrig/labrig-go/pkg/device"
	"github.com/labrig/labrig-go/pkg/feature"
)

// Operating modes, parameter 0.48. Changing mode requires a manual reset on
// the drive's pad, so it cannot be driven from software; the mode feature is
// read before every access to a mode-gated parameter.
var modeSymbols = map[int16]string{
	1: "open_loop",
	2: "closed_loop",
	3: "servo",
	4: "regen",
}

// Speed reference selection, parameter 0.05. "preset" lets the computer set
// the speed; "pad" means the arrow keys on the drive.
var referenceSymbols = map[int16]string{
	0: "A1.A2",
	1: "A1.pr",
	2: "A2.pr",
	3: "preset",
	4: "pad",
	5: "Prc",
}

// Model is the Unidrive SP feature model. Parameters are addressed by
// (menu, parameter) as printed in the drive manual; menu 0 mirrors the
// important parameters of the other menus.
//
// Parameters 0.01 and 0.45-0.47 alias the same registers across modes with
// different physical meanings; each aliased name is gated to its mode.
var Model = mustModel()

func mustModel() *device.Model {
	m, err := device.BuildModel("unidrive-sp", []feature.Descriptor{
		feature.Symbolic("mode",
			"The operating mode.",
			0, 48, modeSymbols),

		feature.Symbolic("reference_selection",
			"Defines how the rotation speed is given to the motor.",
			0, 5, referenceSymbols),

		feature.Int16("unlocked",
			"0 inhibits the motor (display \"Inh\"); 1 makes it ready to run (display \"Rdy\").",
			6, 15),

		feature.Int16("rotate",
			"Set to 1 to give an order of rotation.",
			6, 34),

		feature.Scaled("speed",
			"Speed of rotation. The actual rotation rate in Hz is this value divided by the number of pairs of poles.",
			0, 24, 1),

		feature.Scaled("min_frequency_open_loop",
			"Minimum limit of frequency (Hz).",
			0, 1, 1).RequireMode(feature.ModeOpenLoop),

		feature.Scaled("min_speed_closed_loop",
			"Minimum limit of speed (rpm).",
			0, 1, 1).RequireMode(feature.ModeClosedLoop),

		feature.Scaled("min_speed_servo",
			"Minimum limit of speed (rpm).",
			0, 1, 1).RequireMode(feature.ModeServo),

		feature.Scaled("acceleration_time",
			"The time to go from 0 Hz to 100 Hz (s).",
			0, 3, 1),

		feature.Scaled("deceleration_time",
			"The time to go from 100 Hz to 0 Hz (s).",
			0, 4, 1),

		feature.Int16("pairs_of_poles",
			"The number of pairs of poles of the motor.",
			0, 42),

		feature.Int16("rated_voltage",
			"The rated voltage of the motor (V).",
			0, 44),

		feature.Int16("rated_speed_open_loop",
			"Rated speed of the motor (rpm).",
			0, 45).RequireMode(feature.ModeOpenLoop),

		feature.Int16("rated_speed_closed_loop",
			"Rated speed of the motor (rpm).",
			0, 45).RequireMode(feature.ModeClosedLoop),

		feature.Int16("thermal_time_constant_servo",
			"Thermal time constant of the motor.",
			0, 45).RequireMode(feature.ModeServo),

		feature.Scaled("rated_current_open_loop",
			"Rated current of the motor (A).",
			0, 46, 2).RequireMode(feature.ModeOpenLoop),

		feature.Scaled("rated_current_closed_loop",
			"Rated current of the motor (A).",
			0, 46, 2).RequireMode(feature.ModeClosedLoop),

		feature.Scaled("rated_frequency_open_loop",
			"Rated frequency of the motor (Hz).",
			0, 47, 1).RequireMode(feature.ModeOpenLoop),

		feature.Scaled("rated_frequency_closed_loop",
			"Rated frequency of the motor (Hz).",
			0, 47, 1).RequireMode(feature.ModeClosedLoop),
	}, device.WithModeFeature("mode"))
	if err != nil {
		panic(err)
	}
	return m
}

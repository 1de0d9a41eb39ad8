package feature

// Mode is an operating mode of a device. Some register addresses change
// physical meaning depending on the hardware mode, so features can be
// declared usable in one mode only. Mode changes happen out of band (on the
// instrument's pad); this layer only observes the current mode.
type Mode uint8

const (
	// ModeAny means the feature is usable in every mode.
	ModeAny Mode = iota

	// ModeOpenLoop is open-loop control.
	ModeOpenLoop

	// ModeClosedLoop is closed-loop control.
	ModeClosedLoop

	// ModeServo is servo control.
	ModeServo

	// ModeRegen is regenerative operation.
	ModeRegen

	// ModeUnknown is reported when the device's mode feature returns a
	// symbol this layer does not recognize.
	ModeUnknown
)

// String returns the mode name as used in device symbol tables.
func (m Mode) String() string {
	switch m {
	case ModeAny:
		return "all"
	case ModeOpenLoop:
		return "open_loop"
	case ModeClosedLoop:
		return "closed_loop"
	case ModeServo:
		return "servo"
	case ModeRegen:
		return "regen"
	default:
		return "unknown"
	}
}

// ParseMode maps a mode symbol to its Mode. Unrecognized symbols map to
// ModeUnknown with ok=false.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "all":
		return ModeAny, true
	case "open_loop":
		return ModeOpenLoop, true
	case "closed_loop":
		return ModeClosedLoop, true
	case "servo":
		return ModeServo, true
	case "regen":
		return ModeRegen, true
	default:
		return ModeUnknown, false
	}
}

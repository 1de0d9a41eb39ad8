package log

import (
	"time"
)

// Event represents an instrument I/O log event captured at any layer.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the experiment run (UUID).
	SessionID string `cbor:"2,keyasint,omitempty"`

	// Device is the device model name (e.g. "unidrive-sp").
	Device string `cbor:"3,keyasint,omitempty"`

	// Feature is the feature name the event relates to, if any.
	Feature string `cbor:"4,keyasint,omitempty"`

	// Direction indicates data flow relative to the instrument.
	Direction Direction `cbor:"5,keyasint"`

	// Category classifies the event type.
	Category Category `cbor:"6,keyasint"`

	// Type-specific payload (one of these will be set).
	Register *RegisterEvent    `cbor:"10,keyasint,omitempty"` // Register read/write
	Query    *QueryEvent       `cbor:"11,keyasint,omitempty"` // Command/query exchange
	Verify   *VerifyEvent      `cbor:"12,keyasint,omitempty"` // Post-write verification mismatch
	State    *StateChangeEvent `cbor:"13,keyasint,omitempty"` // Session/device state
	Error    *ErrorEventData   `cbor:"14,keyasint,omitempty"` // Errors at any layer
}

// Direction indicates the direction of data flow.
type Direction uint8

const (
	// DirectionRead indicates data read from the instrument.
	DirectionRead Direction = 0
	// DirectionWrite indicates data written to the instrument.
	DirectionWrite Direction = 1
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionRead:
		return "READ"
	case DirectionWrite:
		return "WRITE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event type.
type Category uint8

const (
	// CategoryIO indicates a raw register or query exchange.
	CategoryIO Category = 0
	// CategoryVerify indicates a post-write verification mismatch.
	CategoryVerify Category = 1
	// CategoryState indicates a state change.
	CategoryState Category = 2
	// CategoryError indicates an error event.
	CategoryError Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryIO:
		return "IO"
	case CategoryVerify:
		return "VERIFY"
	case CategoryState:
		return "STATE"
	case CategoryError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// RegisterEvent captures a raw register exchange with a register-style device.
type RegisterEvent struct {
	// Address is the register address on the instrument.
	Address uint16 `cbor:"1,keyasint"`

	// Raw is the untransformed register value exchanged.
	Raw int16 `cbor:"2,keyasint"`
}

// QueryEvent captures a command/query exchange with a command-style device.
type QueryEvent struct {
	// Command is the command string sent to the instrument.
	Command string `cbor:"1,keyasint"`

	// Response is the instrument reply (empty for write-only commands).
	Response string `cbor:"2,keyasint,omitempty"`
}

// VerifyEvent captures a post-write verification mismatch: the instrument
// accepted a write but reads back a different value, typically because the
// hardware clamped or rounded it.
type VerifyEvent struct {
	// Requested is the logical value the caller asked for.
	Requested string `cbor:"1,keyasint"`

	// Actual is the logical value read back from the instrument.
	Actual string `cbor:"2,keyasint"`
}

// StateChangeEvent captures session and device lifecycle events.
type StateChangeEvent struct {
	// Entity being changed.
	Entity StateEntity `cbor:"1,keyasint"`

	// OldState is the previous state (may be empty).
	OldState string `cbor:"2,keyasint,omitempty"`

	// NewState is the new state.
	NewState string `cbor:"3,keyasint"`

	// Reason for the change (if available).
	Reason string `cbor:"4,keyasint,omitempty"`
}

// StateEntity indicates what entity changed state.
type StateEntity uint8

const (
	// StateEntitySession indicates a session state change.
	StateEntitySession StateEntity = 0
	// StateEntityDevice indicates a device state change.
	StateEntityDevice StateEntity = 1
	// StateEntityChannel indicates a channel state change.
	StateEntityChannel StateEntity = 2
)

// String returns the state entity name.
func (s StateEntity) String() string {
	switch s {
	case StateEntitySession:
		return "SESSION"
	case StateEntityDevice:
		return "DEVICE"
	case StateEntityChannel:
		return "CHANNEL"
	default:
		return "UNKNOWN"
	}
}

// ErrorEventData captures errors at any layer.
type ErrorEventData struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`

	// Context describes what operation was being performed.
	Context string `cbor:"2,keyasint,omitempty"`
}

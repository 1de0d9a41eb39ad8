package channel

// Conn is the minimal handle on a physical link. Concrete channels implement
// Conn plus one of the capability interfaces below; the device model builder
// checks at construction time that the link carries the capability each
// feature needs.
type Conn interface {
	// Close releases the underlying link.
	Close() error
}

// Registers is the boundary to a register-style instrument (e.g. a motor
// drive on a Modbus serial line). Calls block on a request/response round
// trip and must not be issued concurrently. Communication failures are
// reported as transport-specific errors and are never translated by callers.
type Registers interface {
	Conn

	// ReadRegister reads the 16-bit register at addr.
	ReadRegister(addr uint16) (int16, error)

	// WriteRegister writes a 16-bit value to the register at addr.
	WriteRegister(addr uint16, value int16) error
}

// Querier is the boundary to a command-style instrument (e.g. a function
// generator or oscilloscope speaking SCPI). Calls block on the instrument
// round trip and must not be issued concurrently.
type Querier interface {
	Conn

	// Query sends a command and returns the instrument's reply with
	// trailing line terminators removed.
	Query(cmd string) (string, error)

	// Send sends a command that produces no reply.
	Send(cmd string) error
}

package feature

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/labrig/labrig-go/pkg/channel"
	"github.com/labrig/labrig-go/pkg/log"
)

// ModeSource reports a device's current operating mode, read live from the
// hardware on every call. The device itself implements it by reading its own
// (ungated) mode feature; accessors hold it as a non-owning handle.
type ModeSource interface {
	CurrentMode() (Mode, error)
}

// Binding supplies the collaborators a bound accessor needs: the channel,
// the mode source for gated features, and the event logger. It is filled in
// by the device model builder; applications normally never construct one.
type Binding struct {
	// Device is the device model name, used in events and errors.
	Device string

	// Registers is the register channel (register features).
	Registers channel.Registers

	// Querier is the command channel (command features).
	Querier channel.Querier

	// Modes resolves the device's live operating mode. Required only when
	// the descriptor is mode-gated.
	Modes ModeSource

	// Logger receives I/O and verification events. Nil means no logging.
	Logger log.Logger
}

// accessor is the state shared by all bound accessor kinds.
type accessor struct {
	desc Descriptor
	b    Binding
}

// Value is a numeric feature bound to one device instance: a scaled register
// or a numeric command. Set verifies the write by reading the value back;
// SetUnchecked skips verification.
type Value struct {
	accessor
}

// Symbol is an enumerated register feature bound to one device instance.
type Symbol struct {
	accessor
	rawBySymbol map[string]int16
}

// Text is a command feature whose value is a raw string token, bound to one
// device instance.
type Text struct {
	accessor
}

// BindValue binds a numeric descriptor to its device collaborators.
func BindValue(d Descriptor, b Binding) *Value {
	return &Value{accessor: bind(d, b)}
}

// BindSymbol binds a symbolic descriptor to its device collaborators.
func BindSymbol(d Descriptor, b Binding) *Symbol {
	rev := make(map[string]int16, len(d.Symbols))
	for raw, sym := range d.Symbols {
		rev[sym] = raw
	}
	return &Symbol{accessor: bind(d, b), rawBySymbol: rev}
}

// BindText binds a text descriptor to its device collaborators.
func BindText(d Descriptor, b Binding) *Text {
	return &Text{accessor: bind(d, b)}
}

func bind(d Descriptor, b Binding) accessor {
	if b.Logger == nil {
		b.Logger = log.NoopLogger{}
	}
	return accessor{desc: d, b: b}
}

// Name returns the feature name.
func (a *accessor) Name() string { return a.desc.Name }

// Doc returns the feature documentation.
func (a *accessor) Doc() string { return a.desc.Doc }

// checkMode enforces the descriptor's mode requirement against the live
// device mode. The mode is re-read on every gated access; it is never cached.
func (a *accessor) checkMode() error {
	if a.desc.Mode == ModeAny {
		return nil
	}
	observed, err := a.b.Modes.CurrentMode()
	if err != nil {
		return err
	}
	if observed != a.desc.Mode {
		return &ModeError{Feature: a.desc.Name, Required: a.desc.Mode, Observed: observed}
	}
	return nil
}

func (a *accessor) readRaw() (int16, error) {
	raw, err := a.b.Registers.ReadRegister(a.desc.Address())
	if err != nil {
		return 0, err
	}
	a.b.Logger.Log(log.Event{
		Timestamp: time.Now(),
		Device:    a.b.Device,
		Feature:   a.desc.Name,
		Direction: log.DirectionRead,
		Category:  log.CategoryIO,
		Register:  &log.RegisterEvent{Address: a.desc.Address(), Raw: raw},
	})
	return raw, nil
}

func (a *accessor) writeRaw(raw int16) error {
	if err := a.b.Registers.WriteRegister(a.desc.Address(), raw); err != nil {
		return err
	}
	a.b.Logger.Log(log.Event{
		Timestamp: time.Now(),
		Device:    a.b.Device,
		Feature:   a.desc.Name,
		Direction: log.DirectionWrite,
		Category:  log.CategoryIO,
		Register:  &log.RegisterEvent{Address: a.desc.Address(), Raw: raw},
	})
	return nil
}

func (a *accessor) query(cmd string) (string, error) {
	reply, err := a.b.Querier.Query(cmd)
	if err != nil {
		return "", err
	}
	a.b.Logger.Log(log.Event{
		Timestamp: time.Now(),
		Device:    a.b.Device,
		Feature:   a.desc.Name,
		Direction: log.DirectionRead,
		Category:  log.CategoryIO,
		Query:     &log.QueryEvent{Command: cmd, Response: reply},
	})
	return reply, nil
}

func (a *accessor) send(cmd string) error {
	if err := a.b.Querier.Send(cmd); err != nil {
		return err
	}
	a.b.Logger.Log(log.Event{
		Timestamp: time.Now(),
		Device:    a.b.Device,
		Feature:   a.desc.Name,
		Direction: log.DirectionWrite,
		Category:  log.CategoryIO,
		Query:     &log.QueryEvent{Command: cmd},
	})
	return nil
}

// logVerify emits the non-fatal verification warning: the hardware accepted
// the write but holds a different value.
func (a *accessor) logVerify(requested, actual string) {
	a.b.Logger.Log(log.Event{
		Timestamp: time.Now(),
		Device:    a.b.Device,
		Feature:   a.desc.Name,
		Direction: log.DirectionWrite,
		Category:  log.CategoryVerify,
		Verify:    &log.VerifyEvent{Requested: requested, Actual: actual},
	})
}

// Get reads the logical value.
func (v *Value) Get() (float64, error) {
	if err := v.checkMode(); err != nil {
		return 0, err
	}
	if v.desc.IsCommand() {
		reply, err := v.query(v.desc.Command + "?")
		if err != nil {
			return 0, err
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(reply), 64)
		if err != nil {
			return 0, fmt.Errorf("feature %q: bad numeric reply %q: %w", v.desc.Name, reply, err)
		}
		return x, nil
	}
	raw, err := v.readRaw()
	if err != nil {
		return 0, err
	}
	return v.desc.logicalFromRaw(raw), nil
}

// Set writes the logical value and verifies it by reading it back. A
// mismatch (hardware clamped or rounded the write) is reported as a single
// verification event, not an error: the caller decides whether it matters.
func (v *Value) Set(x float64) error {
	return v.set(x, true)
}

// SetUnchecked writes the logical value without the read-back verification.
func (v *Value) SetUnchecked(x float64) error {
	return v.set(x, false)
}

func (v *Value) set(x float64, check bool) error {
	if err := v.checkMode(); err != nil {
		return err
	}
	expected := x
	if v.desc.IsCommand() {
		if err := v.send(v.desc.Command + " " + formatNumber(x)); err != nil {
			return err
		}
	} else {
		raw := v.desc.rawFromLogical(x)
		if err := v.writeRaw(raw); err != nil {
			return err
		}
		// Compare post-rounding: the requested value may not be
		// representable at this feature's precision.
		expected = v.desc.logicalFromRaw(raw)
	}
	if !check {
		return nil
	}
	actual, err := v.Get()
	if err != nil {
		return err
	}
	if actual != expected {
		v.logVerify(formatNumber(x), formatNumber(actual))
	}
	return nil
}

// Get reads the raw register value and maps it to its symbol.
func (s *Symbol) Get() (string, error) {
	if err := s.checkMode(); err != nil {
		return "", err
	}
	raw, err := s.readRaw()
	if err != nil {
		return "", err
	}
	sym, ok := s.desc.Symbols[raw]
	if !ok {
		return "", &UnknownSymbolError{Feature: s.desc.Name, Raw: raw}
	}
	return sym, nil
}

// Set maps the symbol to its raw value, writes it, and verifies the write.
func (s *Symbol) Set(sym string) error {
	return s.set(sym, true)
}

// SetUnchecked writes the symbol without the read-back verification.
func (s *Symbol) SetUnchecked(sym string) error {
	return s.set(sym, false)
}

func (s *Symbol) set(sym string, check bool) error {
	if err := s.checkMode(); err != nil {
		return err
	}
	raw, ok := s.rawBySymbol[sym]
	if !ok {
		return &UnknownSymbolError{Feature: s.desc.Name, Symbol: sym}
	}
	if err := s.writeRaw(raw); err != nil {
		return err
	}
	if !check {
		return nil
	}
	actual, err := s.Get()
	if err != nil {
		return err
	}
	if actual != sym {
		s.logVerify(sym, actual)
	}
	return nil
}

// Get reads the raw string value.
func (t *Text) Get() (string, error) {
	if err := t.checkMode(); err != nil {
		return "", err
	}
	return t.query(t.desc.Command + "?")
}

// Set writes the raw string value and verifies it by reading it back.
func (t *Text) Set(s string) error {
	return t.set(s, true)
}

// SetUnchecked writes the raw string value without verification.
func (t *Text) SetUnchecked(s string) error {
	return t.set(s, false)
}

func (t *Text) set(s string, check bool) error {
	if err := t.checkMode(); err != nil {
		return err
	}
	if err := t.send(t.desc.Command + " " + s); err != nil {
		return err
	}
	if !check {
		return nil
	}
	actual, err := t.Get()
	if err != nil {
		return err
	}
	if actual != s {
		t.logVerify(s, actual)
	}
	return nil
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}

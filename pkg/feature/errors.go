package feature

import "fmt"

// ConfigError reports a malformed feature declaration: a duplicate name, a
// register feature missing its menu/parameter coordinates, a broken symbol
// table, or a channel lacking a required capability. ConfigErrors are raised
// when the device model is built, never at access time, and are not
// recoverable.
type ConfigError struct {
	// Model is the device model name, if known.
	Model string

	// Feature is the offending feature name, if known.
	Feature string

	// Reason describes what is wrong.
	Reason string
}

func (e *ConfigError) Error() string {
	switch {
	case e.Model != "" && e.Feature != "":
		return fmt.Sprintf("model %q: feature %q: %s", e.Model, e.Feature, e.Reason)
	case e.Model != "":
		return fmt.Sprintf("model %q: %s", e.Model, e.Reason)
	case e.Feature != "":
		return fmt.Sprintf("feature %q: %s", e.Feature, e.Reason)
	default:
		return e.Reason
	}
}

// ModeError reports an access to a mode-gated feature while the device is in
// a different operating mode. The caller may retry after the operator changes
// the mode on the instrument.
type ModeError struct {
	// Feature is the gated feature name.
	Feature string

	// Required is the mode the feature is declared for.
	Required Mode

	// Observed is the mode the device reported.
	Observed Mode
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("feature %q can only be used in mode %s, and the current mode is %s",
		e.Feature, e.Required, e.Observed)
}

// UnknownSymbolError reports a raw value with no entry in the feature's
// symbol table (reading), or a symbol with no raw value (writing). On read
// this usually means the symbol table is incomplete or the link is
// desynchronized; returning the raw integer instead would hide that.
type UnknownSymbolError struct {
	// Feature is the symbolic feature name.
	Feature string

	// Raw is the unmapped raw value (reads).
	Raw int16

	// Symbol is the unmapped symbol (writes); empty for reads.
	Symbol string
}

func (e *UnknownSymbolError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("feature %q: symbol %q has no raw value", e.Feature, e.Symbol)
	}
	return fmt.Sprintf("feature %q: raw value %d has no symbol", e.Feature, e.Raw)
}

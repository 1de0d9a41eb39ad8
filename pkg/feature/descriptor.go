package feature

import (
	"math"
)

// Kind distinguishes the logical value domain of a feature.
type Kind uint8

const (
	// KindNumber is a numeric feature (scaled register or numeric command).
	KindNumber Kind = iota

	// KindSymbol is an enumerated register feature with a symbol table.
	KindSymbol

	// KindText is a command feature whose value is a raw string token.
	KindText
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Descriptor is the immutable declaration of one device feature: a named,
// addressable quantity with its value-transform policy and mode requirement.
// Descriptors are declared once per device model, checked by the model
// builder, and shared by every device instance.
//
// Register features locate their value by (menu, parameter) as printed in the
// instrument manual; the register address is 100*menu + parameter - 1.
// Command features carry the command stem instead (e.g. "FREQ"); reads append
// "?" and writes append the value.
//
// Construct descriptors with Int16, Scaled, Symbolic, Cmd and CmdText, and
// gate them with RequireMode. Do not mutate a descriptor after the model has
// been built.
type Descriptor struct {
	// Name is the feature name, unique within one device model.
	Name string

	// Doc is free-text documentation, informational only.
	Doc string

	// Kind is the logical value domain.
	Kind Kind

	// Menu and Parameter locate a register feature. Parameter starts at 1;
	// menu 0 is valid (it mirrors important parameters from other menus).
	Menu      int
	Parameter int

	// Command is the command stem for command-style features. A descriptor
	// is command-style exactly when Command is non-empty.
	Command string

	// Decimals scales numeric register values: logical = raw / 10^Decimals.
	Decimals int

	// Symbols maps raw register values to symbol names (KindSymbol only).
	Symbols map[int16]string

	// Mode gates access: ModeAny, or the single mode the feature is valid in.
	Mode Mode
}

// Int16 declares an unscaled numeric register feature.
func Int16(name, doc string, menu, parameter int) Descriptor {
	return Descriptor{Name: name, Doc: doc, Kind: KindNumber, Menu: menu, Parameter: parameter}
}

// Scaled declares a numeric register feature with fixed-point scaling.
func Scaled(name, doc string, menu, parameter, decimals int) Descriptor {
	return Descriptor{Name: name, Doc: doc, Kind: KindNumber, Menu: menu, Parameter: parameter, Decimals: decimals}
}

// Symbolic declares an enumerated register feature.
func Symbolic(name, doc string, menu, parameter int, symbols map[int16]string) Descriptor {
	return Descriptor{Name: name, Doc: doc, Kind: KindSymbol, Menu: menu, Parameter: parameter, Symbols: symbols}
}

// Cmd declares a numeric command feature (e.g. SCPI "FREQ").
func Cmd(name, doc, command string) Descriptor {
	return Descriptor{Name: name, Doc: doc, Kind: KindNumber, Command: command}
}

// CmdText declares a raw-string command feature (e.g. SCPI "FUNC").
func CmdText(name, doc, command string) Descriptor {
	return Descriptor{Name: name, Doc: doc, Kind: KindText, Command: command}
}

// RequireMode returns a copy of the descriptor gated to the given mode.
func (d Descriptor) RequireMode(m Mode) Descriptor {
	d.Mode = m
	return d
}

// IsCommand reports whether the feature is command-style.
func (d Descriptor) IsCommand() bool {
	return d.Command != ""
}

// Address returns the register address derived from (menu, parameter).
// Only meaningful for register features.
func (d Descriptor) Address() uint16 {
	return uint16(100*d.Menu + d.Parameter - 1)
}

// Validate checks the declaration itself (not its relation to other
// descriptors, which is the model builder's job).
func (d Descriptor) Validate() error {
	if d.Name == "" {
		return &ConfigError{Reason: "feature name is required"}
	}
	if d.IsCommand() {
		if d.Menu != 0 || d.Parameter != 0 {
			return &ConfigError{Feature: d.Name, Reason: "menu/parameter and command are mutually exclusive"}
		}
		if d.Kind == KindSymbol {
			return &ConfigError{Feature: d.Name, Reason: "symbolic features are register-style; use a text feature"}
		}
		return nil
	}
	if d.Kind == KindText {
		return &ConfigError{Feature: d.Name, Reason: "text features require a command"}
	}
	if d.Menu < 0 || d.Parameter < 1 {
		return &ConfigError{Feature: d.Name, Reason: "menu and parameter are required"}
	}
	if d.Decimals < 0 {
		return &ConfigError{Feature: d.Name, Reason: "decimals must be non-negative"}
	}
	if d.Kind == KindSymbol {
		if len(d.Symbols) == 0 {
			return &ConfigError{Feature: d.Name, Reason: "symbolic feature needs a symbol table"}
		}
		seen := make(map[string]int16, len(d.Symbols))
		for raw, sym := range d.Symbols {
			if sym == "" {
				return &ConfigError{Feature: d.Name, Reason: "empty symbol in symbol table"}
			}
			if prev, dup := seen[sym]; dup && prev != raw {
				return &ConfigError{Feature: d.Name, Reason: "symbol table is not bijective: " + sym}
			}
			seen[sym] = raw
		}
	} else if len(d.Symbols) > 0 {
		return &ConfigError{Feature: d.Name, Reason: "symbol table on a non-symbolic feature"}
	}
	return nil
}

// logicalFromRaw applies the inverse linear transform.
func (d Descriptor) logicalFromRaw(raw int16) float64 {
	if d.Decimals == 0 {
		return float64(raw)
	}
	return float64(raw) / math.Pow10(d.Decimals)
}

// rawFromLogical applies the forward linear transform. Out-of-range logical
// values are not clamped here; the hardware is authoritative.
func (d Descriptor) rawFromLogical(v float64) int16 {
	if d.Decimals == 0 {
		return int16(math.Round(v))
	}
	return int16(math.Round(v * math.Pow10(d.Decimals)))
}

package device

import (
	"errors"
	"fmt"

	"github.com/labrig/labrig-go/pkg/feature"
)

// Model is the validated, immutable description of a device type: its
// ordered feature descriptors and the name of its mode feature, if any.
// A model is built exactly once per device type and shared by every
// instance; instances bind their own accessors against it.
type Model struct {
	name        string
	descriptors []feature.Descriptor
	index       map[string]int
	modeFeature string
	warnings    []string
}

// ModelOption configures model building.
type ModelOption func(*modelConfig)

type modelConfig struct {
	modeFeature string
}

// WithModeFeature names the feature that reports the device's operating
// mode. The feature must exist, be symbolic, and be ungated; it is required
// when any descriptor in the model is mode-gated.
func WithModeFeature(name string) ModelOption {
	return func(c *modelConfig) { c.modeFeature = name }
}

// BuildModel validates the descriptor list and produces the device model.
// It fails with *feature.ConfigError on duplicate names, missing register
// coordinates, broken symbol tables, or a misdeclared mode feature, so
// malformed device models are caught when the model is declared rather than
// at first use.
//
// Two descriptors may legally share a register address (dual naming of the
// same physical location); such aliases are reported via Warnings, not
// rejected.
func BuildModel(name string, descs []feature.Descriptor, opts ...ModelOption) (*Model, error) {
	if name == "" {
		return nil, &feature.ConfigError{Reason: "model name is required"}
	}

	var cfg modelConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	m := &Model{
		name:        name,
		descriptors: make([]feature.Descriptor, len(descs)),
		index:       make(map[string]int, len(descs)),
		modeFeature: cfg.modeFeature,
	}
	copy(m.descriptors, descs)

	byAddress := make(map[uint16]string)
	gated := false

	for i, d := range m.descriptors {
		if err := d.Validate(); err != nil {
			var ce *feature.ConfigError
			if errors.As(err, &ce) {
				ce.Model = name
			}
			return nil, err
		}
		if _, dup := m.index[d.Name]; dup {
			return nil, &feature.ConfigError{Model: name, Feature: d.Name, Reason: "duplicate feature name"}
		}
		m.index[d.Name] = i

		if d.Mode != feature.ModeAny {
			gated = true
		}

		if !d.IsCommand() {
			addr := d.Address()
			if other, aliased := byAddress[addr]; aliased {
				m.warnings = append(m.warnings, fmt.Sprintf(
					"features %q and %q share register address %d", other, d.Name, addr))
			} else {
				byAddress[addr] = d.Name
			}
		}
	}

	if cfg.modeFeature != "" {
		i, ok := m.index[cfg.modeFeature]
		if !ok {
			return nil, &feature.ConfigError{Model: name, Feature: cfg.modeFeature, Reason: "mode feature not declared"}
		}
		md := m.descriptors[i]
		if md.Kind != feature.KindSymbol {
			return nil, &feature.ConfigError{Model: name, Feature: cfg.modeFeature, Reason: "mode feature must be symbolic"}
		}
		if md.Mode != feature.ModeAny {
			return nil, &feature.ConfigError{Model: name, Feature: cfg.modeFeature, Reason: "mode feature must not be mode-gated"}
		}
	} else if gated {
		return nil, &feature.ConfigError{Model: name, Reason: "mode-gated features declared but no mode feature configured"}
	}

	return m, nil
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// Descriptors returns the feature descriptors in declaration order.
func (m *Model) Descriptors() []feature.Descriptor {
	out := make([]feature.Descriptor, len(m.descriptors))
	copy(out, m.descriptors)
	return out
}

// ModeFeature returns the name of the mode feature, or "" if none.
func (m *Model) ModeFeature() string {
	return m.modeFeature
}

// Warnings returns non-fatal findings from model building, currently
// register address aliases.
func (m *Model) Warnings() []string {
	out := make([]string, len(m.warnings))
	copy(out, m.warnings)
	return out
}

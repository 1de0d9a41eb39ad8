package device

import (
	"errors"
	"fmt"

	"github.com/labrig/labrig-go/pkg/channel"
	"github.com/labrig/labrig-go/pkg/feature"
	"github.com/labrig/labrig-go/pkg/log"
)

// Device errors.
var (
	ErrFeatureNotFound = errors.New("feature not found")
	ErrNoModeFeature   = errors.New("model has no mode feature")
)

// Device is a live instrument: one channel plus one bound accessor per
// feature of its model. A device owns its channel exclusively; calls must
// not be issued concurrently against the same device, since the underlying
// link carries a single request/response exchange at a time.
type Device struct {
	model  *Model
	conn   channel.Conn
	logger log.Logger

	values  map[string]*feature.Value
	symbols map[string]*feature.Symbol
	texts   map[string]*feature.Text
	mode    *feature.Symbol
}

// Option configures a device instance.
type Option func(*Device)

// WithLogger injects the event logger receiving the device's I/O and
// verification events. Defaults to NoopLogger.
func WithLogger(l log.Logger) Option {
	return func(d *Device) {
		if l != nil {
			d.logger = l
		}
	}
}

// New binds the model's descriptors to the channel and returns the live
// device. It fails with *feature.ConfigError when the channel lacks a
// capability the model needs (register features need channel.Registers,
// command features need channel.Querier).
func New(model *Model, conn channel.Conn, opts ...Option) (*Device, error) {
	d := &Device{
		model:   model,
		conn:    conn,
		logger:  log.NoopLogger{},
		values:  make(map[string]*feature.Value),
		symbols: make(map[string]*feature.Symbol),
		texts:   make(map[string]*feature.Text),
	}
	for _, opt := range opts {
		opt(d)
	}

	regs, _ := conn.(channel.Registers)
	querier, _ := conn.(channel.Querier)

	for _, desc := range model.descriptors {
		if desc.IsCommand() {
			if querier == nil {
				return nil, &feature.ConfigError{Model: model.name, Feature: desc.Name, Reason: "channel does not support commands"}
			}
		} else if regs == nil {
			return nil, &feature.ConfigError{Model: model.name, Feature: desc.Name, Reason: "channel does not support registers"}
		}

		b := feature.Binding{
			Device:    model.name,
			Registers: regs,
			Querier:   querier,
			Modes:     d,
			Logger:    d.logger,
		}
		switch desc.Kind {
		case feature.KindSymbol:
			d.symbols[desc.Name] = feature.BindSymbol(desc, b)
		case feature.KindText:
			d.texts[desc.Name] = feature.BindText(desc, b)
		default:
			d.values[desc.Name] = feature.BindValue(desc, b)
		}
	}

	if model.modeFeature != "" {
		d.mode = d.symbols[model.modeFeature]
	}

	return d, nil
}

// Model returns the device's model.
func (d *Device) Model() *Model {
	return d.model
}

// Value returns the numeric accessor for the named feature.
func (d *Device) Value(name string) (*feature.Value, error) {
	v, ok := d.values[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFeatureNotFound, name)
	}
	return v, nil
}

// Symbol returns the enumerated accessor for the named feature.
func (d *Device) Symbol(name string) (*feature.Symbol, error) {
	s, ok := d.symbols[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFeatureNotFound, name)
	}
	return s, nil
}

// Text returns the text accessor for the named feature.
func (d *Device) Text(name string) (*feature.Text, error) {
	t, ok := d.texts[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFeatureNotFound, name)
	}
	return t, nil
}

// Names returns the feature names in declaration order.
func (d *Device) Names() []string {
	names := make([]string, len(d.model.descriptors))
	for i, desc := range d.model.descriptors {
		names[i] = desc.Name
	}
	return names
}

// CurrentMode reads the device's operating mode through its own mode
// feature. The mode feature is never gated, so this cannot recurse. A raw
// value missing from the mode symbol table reports ModeUnknown rather than
// failing, so gated accesses in that state fail with a ModeError naming the
// observed mode.
func (d *Device) CurrentMode() (feature.Mode, error) {
	if d.mode == nil {
		return feature.ModeUnknown, ErrNoModeFeature
	}
	sym, err := d.mode.Get()
	if err != nil {
		var unknown *feature.UnknownSymbolError
		if errors.As(err, &unknown) {
			return feature.ModeUnknown, nil
		}
		return feature.ModeUnknown, err
	}
	m, _ := feature.ParseMode(sym)
	return m, nil
}

// Close closes the underlying channel.
func (d *Device) Close() error {
	return d.conn.Close()
}

// Compile-time interface satisfaction check.
var _ feature.ModeSource = (*Device)(nil)

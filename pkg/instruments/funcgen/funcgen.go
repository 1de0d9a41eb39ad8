// Package funcgen drives a Tektronix AFG3022B function generator over SCPI.
package funcgen

import (
	"github.com/labrig/labrig-go/pkg/channel"
	"github.com/labrig/labrig-go/pkg/device"
	"github.com/labrig/labrig-go/pkg/feature"
)

// Model is the AFG3022B feature model. All features are command-style; the
// generator has no operating modes.
var Model = mustModel()

func mustModel() *device.Model {
	m, err := device.BuildModel("afg3022b", []feature.Descriptor{
		feature.Cmd("output1_state",
			"Output 1 on (1) or off (0).",
			"OUTPUT1:STATE"),

		feature.CmdText("function_shape",
			"Waveform shape (SINUSOID, SQUARE, RAMP, PULSE, ...).",
			"FUNCTION"),

		feature.Cmd("frequency",
			"Output frequency (Hz).",
			"FREQUENCY"),

		feature.Cmd("voltage",
			"Peak-to-peak output amplitude (V).",
			"VOLTAGE:AMPLITUDE"),

		feature.Cmd("offset",
			"DC offset (V).",
			"VOLTAGE:OFFSET"),
	})
	if err != nil {
		panic(err)
	}
	return m
}

// Generator is a function generator on a GPIB or simulated query channel.
type Generator struct {
	dev *device.Device

	// OutputState switches output 1 on (1) or off (0).
	OutputState *feature.Value

	// Shape is the waveform shape as a SCPI token.
	Shape *feature.Text

	// Frequency is the output frequency in Hz.
	Frequency *feature.Value

	// Voltage is the peak-to-peak amplitude in V.
	Voltage *feature.Value

	// Offset is the DC offset in V.
	Offset *feature.Value
}

// Open binds the generator model to a query channel.
func Open(conn channel.Querier, opts ...device.Option) (*Generator, error) {
	dev, err := device.New(Model, conn, opts...)
	if err != nil {
		return nil, err
	}

	g := &Generator{dev: dev}
	if g.OutputState, err = dev.Value("output1_state"); err != nil {
		return nil, err
	}
	if g.Shape, err = dev.Text("function_shape"); err != nil {
		return nil, err
	}
	if g.Frequency, err = dev.Value("frequency"); err != nil {
		return nil, err
	}
	if g.Voltage, err = dev.Value("voltage"); err != nil {
		return nil, err
	}
	if g.Offset, err = dev.Value("offset"); err != nil {
		return nil, err
	}
	return g, nil
}

// Device returns the underlying device.
func (g *Generator) Device() *device.Device {
	return g.dev
}

// Configure sets the waveform in one go and enables the output.
func (g *Generator) Configure(shape string, frequency, voltage, offset float64) error {
	if err := g.Shape.Set(shape); err != nil {
		return err
	}
	if err := g.Frequency.Set(frequency); err != nil {
		return err
	}
	if err := g.Voltage.Set(voltage); err != nil {
		return err
	}
	if err := g.Offset.Set(offset); err != nil {
		return err
	}
	return g.OutputState.Set(1)
}

// DisableOutput switches output 1 off.
func (g *Generator) DisableOutput() error {
	return g.OutputState.Set(0)
}

// Close closes the underlying channel.
func (g *Generator) Close() error {
	return g.dev.Close()
}

// Package scope drives an Agilent DSO-X 2014A oscilloscope over SCPI.
package scope

import (
	"github.com/labrig/labrig-go/pkg/channel"
	"github.com/labrig/labrig-go/pkg/device"
	"github.com/labrig/labrig-go/pkg/feature"
)

// Model is the DSO-X 2014A feature model. Waveform download and decoding are
// not part of the feature layer; this model covers the acquisition settings.
var Model = mustModel()

func mustModel() *device.Model {
	m, err := device.BuildModel("dsox2014a", []feature.Descriptor{
		feature.Cmd("timebase_scale",
			"Horizontal scale (s/div).",
			"TIMEBASE:SCALE"),

		feature.Cmd("channel1_scale",
			"Channel 1 vertical scale (V/div).",
			"CHANNEL1:SCALE"),

		feature.Cmd("channel2_scale",
			"Channel 2 vertical scale (V/div).",
			"CHANNEL2:SCALE"),

		feature.Cmd("trigger_level",
			"Trigger level (V).",
			"TRIGGER:LEVEL"),

		feature.CmdText("trigger_source",
			"Trigger source (CHANNEL1, CHANNEL2, EXTERNAL, ...).",
			"TRIGGER:SOURCE"),
	})
	if err != nil {
		panic(err)
	}
	return m
}

// Scope is an oscilloscope on a GPIB or simulated query channel.
type Scope struct {
	dev *device.Device

	// TimebaseScale is the horizontal scale in s/div.
	TimebaseScale *feature.Value

	// Channel1Scale is the channel 1 vertical scale in V/div.
	Channel1Scale *feature.Value

	// Channel2Scale is the channel 2 vertical scale in V/div.
	Channel2Scale *feature.Value

	// TriggerLevel is the trigger level in V.
	TriggerLevel *feature.Value

	// TriggerSource is the trigger source as a SCPI token.
	TriggerSource *feature.Text
}

// Open binds the scope model to a query channel.
func Open(conn channel.Querier, opts ...device.Option) (*Scope, error) {
	dev, err := device.New(Model, conn, opts...)
	if err != nil {
		return nil, err
	}

	s := &Scope{dev: dev}
	if s.TimebaseScale, err = dev.Value("timebase_scale"); err != nil {
		return nil, err
	}
	if s.Channel1Scale, err = dev.Value("channel1_scale"); err != nil {
		return nil, err
	}
	if s.Channel2Scale, err = dev.Value("channel2_scale"); err != nil {
		return nil, err
	}
	if s.TriggerLevel, err = dev.Value("trigger_level"); err != nil {
		return nil, err
	}
	if s.TriggerSource, err = dev.Text("trigger_source"); err != nil {
		return nil, err
	}
	return s, nil
}

// Device returns the underlying device.
func (s *Scope) Device() *device.Device {
	return s.dev
}

// Close closes the underlying channel.
func (s *Scope) Close() error {
	return s.dev.Close()
}

package modelfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labrig/labrig-go/pkg/channel"
	"github.com/labrig/labrig-go/pkg/device"
	"github.com/labrig/labrig-go/pkg/feature"
)

const driveYAML = `
model: unidrive-sp
mode_feature: mode
features:
  - name: mode
    doc: Operating mode of the drive.
    menu: 0
    parameter: 48
    symbols:
      1: open_loop
      2: closed_loop
      3: servo
      4: regen
  - name: speed
    doc: Speed of rotation.
    menu: 0
    parameter: 24
    decimals: 1
  - name: unlocked
    doc: Write 1 to unlock the drive.
    menu: 6
    parameter: 15
  - name: rated_speed_closed_loop
    doc: Rated speed in closed loop mode.
    menu: 0
    parameter: 45
    mode: closed_loop
`

const funcgenYAML = `
model: afg3022b
features:
  - name: frequency
    doc: Output frequency in Hz.
    command: FREQUENCY
  - name: function_shape
    doc: Waveform shape token.
    command: FUNCTION
    kind: text
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(driveYAML))
	require.NoError(t, err)

	assert.Equal(t, "unidrive-sp", m.Name())
	assert.Equal(t, "mode", m.ModeFeature())
	require.Len(t, m.Descriptors(), 4)

	descs := m.Descriptors()
	assert.Equal(t, feature.KindSymbol, descs[0].Kind)
	assert.Equal(t, "open_loop", descs[0].Symbols[1])

	assert.Equal(t, "speed", descs[1].Name)
	assert.Equal(t, 1, descs[1].Decimals)
	assert.Equal(t, uint16(23), descs[1].Address())

	assert.Equal(t, feature.ModeClosedLoop, descs[3].Mode)
}

func TestParseCommandFeatures(t *testing.T) {
	m, err := Parse([]byte(funcgenYAML))
	require.NoError(t, err)

	descs := m.Descriptors()
	require.Len(t, descs, 2)
	assert.Equal(t, "FREQUENCY", descs[0].Command)
	assert.True(t, descs[0].IsCommand())
	assert.Equal(t, feature.KindText, descs[1].Kind)
}

func TestParsedModelDrivesDevice(t *testing.T) {
	m, err := Parse([]byte(driveYAML))
	require.NoError(t, err)

	sim := channel.NewSim()
	sim.Preset(47, 2) // closed_loop
	d, err := device.New(m, sim)
	require.NoError(t, err)

	speed, err := d.Value("speed")
	require.NoError(t, err)
	require.NoError(t, speed.Set(12.3))

	raw, err := sim.ReadRegister(23)
	require.NoError(t, err)
	assert.Equal(t, int16(123), raw)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"NotYAML", "model: [unterminated"},
		{"MissingModelName", "features:\n  - name: x\n    menu: 0\n    parameter: 1\n"},
		{"MissingParameter", "model: m\nfeatures:\n  - name: x\n    menu: 0\n"},
		{"UnknownMode", "model: m\nfeatures:\n  - name: x\n    menu: 0\n    parameter: 1\n    mode: torque\n"},
		{"DuplicateName", "model: m\nfeatures:\n  - name: x\n    menu: 0\n    parameter: 1\n  - name: x\n    menu: 0\n    parameter: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drive.yaml")
	require.NoError(t, os.WriteFile(path, []byte(driveYAML), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "unidrive-sp", m.Name())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLint(t *testing.T) {
	const aliasedYAML = `
model: m
features:
  - name: min_frequency
    doc: Minimum frequency.
    menu: 0
    parameter: 1
  - name: min_speed
    menu: 0
    parameter: 1
`
	m, err := Parse([]byte(aliasedYAML))
	require.NoError(t, err)

	findings := Lint(m)
	require.Len(t, findings, 2)

	byCode := map[string]Finding{}
	for _, f := range findings {
		byCode[f.Code] = f
	}
	assert.Contains(t, byCode[CodeAliasedAddress].Message, "min_speed")
	assert.Contains(t, byCode[CodeMissingDoc].Message, "min_speed")

	t.Run("CleanModel", func(t *testing.T) {
		clean, err := Parse([]byte(funcgenYAML))
		require.NoError(t, err)
		assert.Empty(t, Lint(clean))
	})
}

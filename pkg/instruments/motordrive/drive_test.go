package motordrive

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labrig/labrig-go/pkg/channel"
	"github.com/labrig/labrig-go/pkg/feature"
)

// Register addresses from the model: 100*menu + parameter - 1.
const (
	addrReference = 4   // 0.05
	addrSpeed     = 23  // 0.24
	addrMode      = 47  // 0.48
	addrUnlocked  = 614 // 6.15
	addrRotate    = 633 // 6.34
)

func openTestDrive(t *testing.T) (*Drive, *channel.Sim) {
	t.Helper()
	sim := channel.NewSim()
	sim.Preset(addrMode, 1) // open_loop
	d, err := Open(sim)
	require.NoError(t, err)
	return d, sim
}

func TestModel(t *testing.T) {
	assert.Equal(t, "unidrive-sp", Model.Name())
	assert.Equal(t, "mode", Model.ModeFeature())

	// 0.01, 0.45 (twice) and 0.46, 0.47 are deliberate dual namings of the
	// same registers across modes.
	assert.Len(t, Model.Warnings(), 6)
}

func TestOpen(t *testing.T) {
	d, _ := openTestDrive(t)
	defer d.Close()

	assert.NotNil(t, d.Mode)
	assert.NotNil(t, d.Speed)
	assert.NotNil(t, d.Rotate)

	mode, err := d.Mode.Get()
	require.NoError(t, err)
	assert.Equal(t, "open_loop", mode)
}

func TestTargetRotationRate(t *testing.T) {
	d, sim := openTestDrive(t)
	defer d.Close()

	require.NoError(t, d.SetTargetRotationRate(12.3))

	// The speed register holds pairsOfPoles times the rate, scaled by one
	// decimal: 4 * 12.3 = 49.2 -> raw 492.
	raw, err := sim.ReadRegister(addrSpeed)
	require.NoError(t, err)
	assert.Equal(t, int16(492), raw)

	hz, err := d.TargetRotationRate()
	require.NoError(t, err)
	assert.Equal(t, 12.3, hz)
}

func TestStartRotationAt(t *testing.T) {
	d, sim := openTestDrive(t)
	defer d.Close()

	require.NoError(t, d.StartRotationAt(3))

	reg := func(addr uint16) int16 {
		raw, err := sim.ReadRegister(addr)
		require.NoError(t, err)
		return raw
	}
	assert.Equal(t, int16(3), reg(addrReference), "reference selection should be preset")
	assert.Equal(t, int16(1), reg(addrUnlocked), "drive should be unlocked")
	assert.Equal(t, int16(120), reg(addrSpeed), "speed register = 4 poles * 3 Hz, one decimal")
	assert.Equal(t, int16(1), reg(addrRotate), "rotation order should be given")
}

func TestStartRotationSkipsUnlockWhenUnlocked(t *testing.T) {
	d, sim := openTestDrive(t)
	defer d.Close()

	sim.Preset(addrUnlocked, 1)
	sim.Preset(addrSpeed, 80) // memorized speed, 2 Hz

	require.NoError(t, d.StartRotation())

	for _, op := range sim.History() {
		assert.NotEqual(t, "W 614 1", op, "unlock must not be rewritten when already unlocked")
	}
	raw, err := sim.ReadRegister(addrRotate)
	require.NoError(t, err)
	assert.Equal(t, int16(1), raw)
}

func TestStopRotation(t *testing.T) {
	d, sim := openTestDrive(t)
	defer d.Close()

	require.NoError(t, d.StartRotationAt(3))
	require.NoError(t, d.StopRotation())

	raw, err := sim.ReadRegister(addrRotate)
	require.NoError(t, err)
	assert.Equal(t, int16(0), raw)
}

func TestLockUnlock(t *testing.T) {
	d, sim := openTestDrive(t)
	defer d.Close()

	require.NoError(t, d.Unlock())
	raw, _ := sim.ReadRegister(addrUnlocked)
	assert.Equal(t, int16(1), raw)

	require.NoError(t, d.Lock())
	raw, _ = sim.ReadRegister(addrUnlocked)
	assert.Equal(t, int16(0), raw)
}

func TestModeGatedParameters(t *testing.T) {
	d, sim := openTestDrive(t) // open_loop
	defer d.Close()

	ratedOpen, err := d.Device().Value("rated_speed_open_loop")
	require.NoError(t, err)
	ratedClosed, err := d.Device().Value("rated_speed_closed_loop")
	require.NoError(t, err)

	_, err = ratedOpen.Get()
	assert.NoError(t, err)

	_, err = ratedClosed.Get()
	var me *feature.ModeError
	require.True(t, errors.As(err, &me))
	assert.Equal(t, feature.ModeClosedLoop, me.Required)
	assert.Equal(t, feature.ModeOpenLoop, me.Observed)

	// The gate follows the live mode; no reopening of the device needed.
	sim.Preset(addrMode, 2)
	_, err = ratedClosed.Get()
	assert.NoError(t, err)
	_, err = ratedOpen.Get()
	assert.True(t, errors.As(err, &me))
}

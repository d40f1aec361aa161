package vehicle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSportsCar(t *testing.T) *SportsCar {
	t.Helper()
	sport, err := NewSportsCar("Ferrari", "488 GTB", 2020, FuelPetrol, mustEngine(t, 320, EngineFourStroke), "Red", 2, "SPD-488")
	require.NoError(t, err)
	return sport
}

func TestSportsCar_ShiftGear(t *testing.T) {
	sport := newTestSportsCar(t)
	require.Equal(t, 1, sport.Gear())

	require.NoError(t, sport.ShiftGear(3))
	assert.Equal(t, 3, sport.Gear())

	for _, gear := range []int{0, 7, -1} {
		err := sport.ShiftGear(gear)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "ShiftGear(%d) should return ValidationError", gear)
		assert.Equal(t, "gear", verr.Field)
	}
	assert.Equal(t, 3, sport.Gear(), "rejected shifts must not change the gear")
}

func TestSportsCar_Turbo(t *testing.T) {
	sport := newTestSportsCar(t)
	require.False(t, sport.TurboEnabled())

	sport.EnableTurbo()
	assert.True(t, sport.TurboEnabled())

	sport.DisableTurbo()
	assert.False(t, sport.TurboEnabled())
}

func TestSportsCar_SetSpoiler(t *testing.T) {
	sport := newTestSportsCar(t)
	require.Empty(t, sport.Spoiler())

	require.NoError(t, sport.SetSpoiler(SpoilerWing))
	assert.Equal(t, "wing", sport.Spoiler())

	err := sport.SetSpoiler("canard")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "spoiler", verr.Field)
	assert.Equal(t, []string{"lip", "wing", "active"}, verr.Choices)
	assert.Equal(t, "wing", sport.Spoiler())
}

func TestSportsCar_Notifications(t *testing.T) {
	sport := newTestSportsCar(t)
	var got []string
	sport.SetNotifier(func(msg string) { got = append(got, msg) })

	sport.EnableTurbo()
	require.NoError(t, sport.ShiftGear(4))
	require.NoError(t, sport.SetSpoiler(SpoilerActive))
	sport.DisableTurbo()

	assert.Equal(t, []string{
		"Turbo mode is activated.",
		"Gear shifted to 4",
		"Spoiler set to: active",
		"Turbo mode deactivated.",
	}, got)

	// Rejected inputs emit nothing.
	got = nil
	_ = sport.ShiftGear(9)
	_ = sport.SetSpoiler("canard")
	assert.Empty(t, got)

	// A nil notifier restores the discarding default.
	sport.SetNotifier(nil)
	sport.EnableTurbo()
}

func TestSportsCar_InheritsCarBehavior(t *testing.T) {
	sport := newTestSportsCar(t)

	assert.Equal(t, "SPD-488", sport.LicensePlate())
	assert.Equal(t, 2, sport.NumDoors())

	require.NoError(t, sport.Accelerate(120))
	_, err := sport.Drive(150)
	require.NoError(t, err)
	assert.Equal(t, 120, sport.Speed())
	assert.Equal(t, 150.0, sport.Odometer())

	sport.Brake()
	assert.Equal(t, 0, sport.Speed())
}

func TestSportsCar_DisplayInfo(t *testing.T) {
	sport := newTestSportsCar(t)
	sport.EnableTurbo()
	require.NoError(t, sport.ShiftGear(3))
	require.NoError(t, sport.SetSpoiler(SpoilerWing))

	info := sport.DisplayInfo()
	// The base car section reports the specialized kind label.
	assert.Contains(t, info, "Type: Sports Car")
	assert.Contains(t, info, "License Plate: SPD-488")
	assert.Contains(t, info, "Turbo: Enabled")
	assert.Contains(t, info, "Gear: 3")
	assert.Contains(t, info, "Spoiler: wing")
	assert.NotContains(t, info, "Type: Car\n")
}

func TestSportsCar_DisplayInfoDefaults(t *testing.T) {
	sport := newTestSportsCar(t)
	info := sport.DisplayInfo()
	assert.Contains(t, info, "Turbo: Disabled")
	assert.Contains(t, info, "Gear: 1")
	assert.Contains(t, info, "Spoiler: None")
}

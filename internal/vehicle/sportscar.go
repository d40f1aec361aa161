package vehicle

import "fmt"

// SpoilerLip, SpoilerWing and SpoilerActive are the accepted spoiler kinds.
const (
	SpoilerLip    = "lip"
	SpoilerWing   = "wing"
	SpoilerActive = "active"
)

func spoilerChoices() []string {
	return []string{SpoilerLip, SpoilerWing, SpoilerActive}
}

const (
	minGear = 1
	maxGear = 6
)

// SportsCar is a Car with a turbo, a gearbox and an optional spoiler.
// Gear and spoiler changes emit a notification through an injectable sink;
// the default discards them.
type SportsCar struct {
	Car
	turboEnabled bool
	gear         int
	spoiler      string
	notify       func(string)
}

var _ Vehicle = (*SportsCar)(nil)

// NewSportsCar constructs a validated sports car. It counts once against the
// production counter, in first gear, turbo off, no spoiler.
func NewSportsCar(brand, model string, year int, fuelType FuelType, engine *Engine, color string, numDoors int, licensePlate string) (*SportsCar, error) {
	c, err := newCar(brand, model, year, fuelType, engine, color, numDoors, licensePlate)
	if err != nil {
		return nil, err
	}
	return &SportsCar{
		Car:    *c,
		gear:   minGear,
		notify: func(string) {},
	}, nil
}

// SetNotifier installs the sink receiving gear, spoiler and turbo
// notifications. A nil fn restores the discarding default.
func (s *SportsCar) SetNotifier(fn func(string)) {
	if fn == nil {
		fn = func(string) {}
	}
	s.notify = fn
}

// VehicleType returns the kind label.
func (s *SportsCar) VehicleType() string { return "Sports Car" }

// EnableTurbo switches the turbo on.
func (s *SportsCar) EnableTurbo() {
	s.turboEnabled = true
	s.notify("Turbo mode is activated.")
}

// DisableTurbo switches the turbo off.
func (s *SportsCar) DisableTurbo() {
	s.turboEnabled = false
	s.notify("Turbo mode deactivated.")
}

// TurboEnabled reports whether the turbo is on.
func (s *SportsCar) TurboEnabled() bool { return s.turboEnabled }

// ShiftGear selects a gear between 1 and 6.
func (s *SportsCar) ShiftGear(gear int) error {
	if gear < minGear || gear > maxGear {
		return newValidationError("gear", gear)
	}
	s.gear = gear
	s.notify(fmt.Sprintf("Gear shifted to %d", s.gear))
	return nil
}

// Gear returns the selected gear.
func (s *SportsCar) Gear() int { return s.gear }

// SetSpoiler mounts one of the accepted spoiler kinds.
func (s *SportsCar) SetSpoiler(spoiler string) error {
	switch spoiler {
	case SpoilerLip, SpoilerWing, SpoilerActive:
	default:
		return newChoiceError("spoiler", spoiler, spoilerChoices())
	}
	s.spoiler = spoiler
	s.notify(fmt.Sprintf("Spoiler set to: %s", spoiler))
	return nil
}

// Spoiler returns the mounted spoiler kind, empty when unset.
func (s *SportsCar) Spoiler() string { return s.spoiler }

// DisplayInfo extends the car rendering with turbo, gear and spoiler state.
func (s *SportsCar) DisplayInfo() string {
	turbo := "Disabled"
	if s.turboEnabled {
		turbo = "Enabled"
	}
	spoiler := "None"
	if s.spoiler != "" {
		spoiler = s.spoiler
	}
	return s.Car.displayInfo(s.VehicleType()) + fmt.Sprintf(
		"Turbo: %s\nGear: %d\nSpoiler: %s\n",
		turbo, s.gear, spoiler,
	)
}

package vehicle

import (
	"fmt"
	"strings"
)

// Bus carries a capacity-bounded, ordered passenger roster. Roster and
// color operations report outcomes instead of failing: a full bus or an
// unknown passenger is expected business state, not a usage error.
type Bus struct {
	base
	motion
	engine     *Engine
	color      string
	capacity   int
	passengers []string
}

var _ Vehicle = (*Bus)(nil)

// NewBus constructs a validated bus owning the given engine.
func NewBus(brand, model string, year int, fuelType FuelType, color string, capacity int, engine *Engine) (*Bus, error) {
	if engine == nil {
		return nil, newValidationError("engine", nil)
	}
	if capacity <= 0 {
		return nil, newValidationError("capacity", capacity)
	}
	b, err := newBase(brand, model, year, fuelType)
	if err != nil {
		return nil, err
	}
	return &Bus{
		base:     b,
		motion:   newMotion(b.String()),
		engine:   engine,
		color:    color,
		capacity: capacity,
	}, nil
}

// VehicleType returns the kind label.
func (b *Bus) VehicleType() string { return "Bus" }

// StartEngine describes the engine activation.
func (b *Bus) StartEngine() string {
	return fmt.Sprintf("%s engine started. Engine: %s", b.String(), b.engine)
}

// StopEngine reports the speed at the moment of stopping. It does not brake;
// resetting speed is a separate operation.
func (b *Bus) StopEngine() string {
	return fmt.Sprintf("%s engine stopped at %d km/h.", b.String(), b.Speed())
}

// AddPassenger appends name to the roster while there is room. Duplicates
// are allowed and insertion order is preserved.
func (b *Bus) AddPassenger(name string) (string, bool) {
	if len(b.passengers) >= b.capacity {
		return "The bus is full!", false
	}
	b.passengers = append(b.passengers, name)
	return fmt.Sprintf("%s boarded the bus.", name), true
}

// RemovePassenger removes the first matching name from the roster.
func (b *Bus) RemovePassenger(name string) (string, bool) {
	for i, p := range b.passengers {
		if p == name {
			b.passengers = append(b.passengers[:i], b.passengers[i+1:]...)
			return fmt.Sprintf("%s left the bus.", name), true
		}
	}
	return fmt.Sprintf("%s is not on this bus.", name), false
}

// ChangeColor repaints the bus, reporting a no-op when the color is already
// the same.
func (b *Bus) ChangeColor(newColor string) (string, bool) {
	if newColor == b.color {
		return "Color is already the same.", false
	}
	b.color = newColor
	return fmt.Sprintf("Color changed to %s.", newColor), true
}

// IncreaseHorsePower delegates to the owned engine. Non-positive increments
// are a reported no-op.
func (b *Bus) IncreaseHorsePower(hp int) (string, bool) {
	if !b.engine.IncreaseHorsepower(hp) {
		return "Invalid horsepower increment.", false
	}
	return fmt.Sprintf("Horsepower increased to %d.", b.engine.Horsepower()), true
}

// Passengers returns a copy of the roster in boarding order.
func (b *Bus) Passengers() []string {
	out := make([]string, len(b.passengers))
	copy(out, b.passengers)
	return out
}

// Capacity returns the maximum roster size.
func (b *Bus) Capacity() int { return b.capacity }

// Color returns the current color.
func (b *Bus) Color() string { return b.color }

// Engine returns the owned engine.
func (b *Bus) Engine() *Engine { return b.engine }

// DisplayInfo renders the full multi-line description.
func (b *Bus) DisplayInfo() string {
	roster := "No passengers"
	if len(b.passengers) > 0 {
		roster = strings.Join(b.passengers, ", ")
	}
	return fmt.Sprintf(
		"Vehicle: %s\nType: %s\nColor: %s\nEngine: %s\nCapacity: %d\nPassengers: %d / %d\nPassenger List: %s\nOdometer: %.1f km\nSpeed: %d km/h\nVIN: %s\n",
		b.String(), b.VehicleType(), b.color, b.engine, b.capacity, len(b.passengers), b.capacity, roster, b.Odometer(), b.Speed(), b.VIN(),
	)
}

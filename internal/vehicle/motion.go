package vehicle

import "fmt"

// motion carries the mutable movement state shared by every concrete kind:
// current speed in km/h and the cumulative odometer in km. The three mutators
// below are the only way speed and odometer change; the odometer never
// decreases. The label names the owning vehicle in result strings and is
// fixed at construction.
type motion struct {
	label    string
	speed    int
	odometer float64
}

func newMotion(label string) motion {
	return motion{label: label}
}

// Speed returns the current speed in km/h.
func (m *motion) Speed() int { return m.speed }

// Odometer returns the cumulative distance driven in km.
func (m *motion) Odometer() float64 { return m.odometer }

// Accelerate raises the current speed by delta km/h. There is no upper
// speed cap.
func (m *motion) Accelerate(delta int) error {
	if delta <= 0 {
		return newValidationError("speed", delta)
	}
	m.speed += delta
	return nil
}

// Brake resets speed to zero. The odometer is untouched.
func (m *motion) Brake() string {
	m.speed = 0
	return fmt.Sprintf("%s stopped.", m.label)
}

// Drive adds distance to the odometer and reports the running total.
func (m *motion) Drive(distance float64) (string, error) {
	if distance <= 0 {
		return "", newValidationError("distance", distance)
	}
	m.odometer += distance
	return fmt.Sprintf("%s drove %g km. Total: %.1f km", m.label, distance, m.odometer), nil
}

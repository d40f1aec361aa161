package vehicle

import "fmt"

// Motorcycle is a two-wheeled vehicle with an optional sidecar. Helmets are
// always required.
type Motorcycle struct {
	base
	motion
	engine         *Engine
	hasSidecar     bool
	helmetRequired bool
}

var _ Vehicle = (*Motorcycle)(nil)

// NewMotorcycle constructs a validated motorcycle owning the given engine.
func NewMotorcycle(brand, model string, year int, fuelType FuelType, engine *Engine, hasSidecar bool) (*Motorcycle, error) {
	if engine == nil {
		return nil, newValidationError("engine", nil)
	}
	b, err := newBase(brand, model, year, fuelType)
	if err != nil {
		return nil, err
	}
	return &Motorcycle{
		base:           b,
		motion:         newMotion(b.String()),
		engine:         engine,
		hasSidecar:     hasSidecar,
		helmetRequired: true,
	}, nil
}

// VehicleType returns the kind label.
func (m *Motorcycle) VehicleType() string { return "Motorcycle" }

// StartEngine describes the engine activation.
func (m *Motorcycle) StartEngine() string {
	return fmt.Sprintf("%s engine started. Engine: %s", m.String(), m.engine)
}

// Ride accelerates to riding speed and covers km, reporting the new total.
func (m *Motorcycle) Ride(km float64) (string, error) {
	if km <= 0 {
		return "", newValidationError("distance", km)
	}
	if err := m.Accelerate(60); err != nil {
		return "", err
	}
	if _, err := m.Drive(km); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s rode %g km. Total: %.1f km", m.String(), km, m.Odometer()), nil
}

// AttachSidecar attaches a sidecar. Attaching twice is a reported no-op.
func (m *Motorcycle) AttachSidecar() (string, bool) {
	if m.hasSidecar {
		return "Sidecar already attached.", false
	}
	m.hasSidecar = true
	return "Sidecar successfully attached.", true
}

// CheckHelmet reports the helmet policy.
func (m *Motorcycle) CheckHelmet() string {
	if m.helmetRequired {
		return "Helmet required: Yes"
	}
	return "Helmet required: No"
}

// HasSidecar reports whether a sidecar is attached.
func (m *Motorcycle) HasSidecar() bool { return m.hasSidecar }

// Engine returns the owned engine.
func (m *Motorcycle) Engine() *Engine { return m.engine }

// DisplayInfo renders the full multi-line description.
func (m *Motorcycle) DisplayInfo() string {
	sidecar := "No"
	if m.hasSidecar {
		sidecar = "Yes"
	}
	return fmt.Sprintf(
		"Vehicle: %s\nType: %s\nFuel: %s\nEngine: %s\nSidecar: %s\nOdometer: %.1f km\nSpeed: %d km/h\nVIN: %s\n",
		m.String(), m.VehicleType(), m.FuelType(), m.engine, sidecar, m.Odometer(), m.Speed(), m.VIN(),
	)
}

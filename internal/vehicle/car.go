package vehicle

import (
	"fmt"
	"sync/atomic"
)

// modelsProduced counts every car built since process start, sports cars
// included. Incremented atomically exactly once per instance.
var modelsProduced atomic.Int64

// ModelsProduced returns the process-wide number of cars produced.
func ModelsProduced() int64 {
	return modelsProduced.Load()
}

// Car is a four-wheeled vehicle with a mutable license plate.
type Car struct {
	base
	motion
	engine       *Engine
	color        string
	numDoors     int
	licensePlate string
}

var _ Vehicle = (*Car)(nil)

// NewCar constructs a validated car owning the given engine and increments
// the production counter.
func NewCar(brand, model string, year int, fuelType FuelType, engine *Engine, color string, numDoors int, licensePlate string) (*Car, error) {
	return newCar(brand, model, year, fuelType, engine, color, numDoors, licensePlate)
}

// newCar is the shared construction path for Car and SportsCar so the
// production counter moves exactly once per terminal instance.
func newCar(brand, model string, year int, fuelType FuelType, engine *Engine, color string, numDoors int, licensePlate string) (*Car, error) {
	if engine == nil {
		return nil, newValidationError("engine", nil)
	}
	if numDoors <= 0 {
		return nil, newValidationError("num_doors", numDoors)
	}
	b, err := newBase(brand, model, year, fuelType)
	if err != nil {
		return nil, err
	}
	modelsProduced.Add(1)
	return &Car{
		base:         b,
		motion:       newMotion(b.String()),
		engine:       engine,
		color:        color,
		numDoors:     numDoors,
		licensePlate: licensePlate,
	}, nil
}

// VehicleType returns the kind label.
func (c *Car) VehicleType() string { return "Car" }

// StartEngine describes the engine activation.
func (c *Car) StartEngine() string {
	return fmt.Sprintf("%s engine started. Engine: %s", c.String(), c.engine)
}

// LicensePlate returns the current plate.
func (c *Car) LicensePlate() string { return c.licensePlate }

// SetLicensePlate replaces the plate. No format validation is applied.
func (c *Car) SetLicensePlate(plate string) { c.licensePlate = plate }

// NumDoors returns the door count.
func (c *Car) NumDoors() int { return c.numDoors }

// Color returns the current color.
func (c *Car) Color() string { return c.color }

// Engine returns the owned engine.
func (c *Car) Engine() *Engine { return c.engine }

// DisplayInfo renders the full multi-line description.
func (c *Car) DisplayInfo() string {
	return c.displayInfo(c.VehicleType())
}

// displayInfo renders the car section with the given kind label so
// specializations can report their own type while reusing the layout.
func (c *Car) displayInfo(vehicleType string) string {
	return fmt.Sprintf(
		"Vehicle: %s\nType: %s\nFuel: %s\nEngine: %s\nColor: %s\nDoors: %d\nLicense Plate: %s\nOdometer: %.1f km\nSpeed: %d km/h\nVIN: %s\n",
		c.String(), vehicleType, c.FuelType(), c.engine, c.color, c.numDoors, c.licensePlate, c.Odometer(), c.Speed(), c.VIN(),
	)
}

// Package vehicle models a small taxonomy of vehicles sharing identity,
// engine ownership and movement state. Construction validates every identity
// field and assigns a random VIN; a failed validation leaves no partial
// object behind.
package vehicle

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// FuelType classifies what a vehicle runs on.
type FuelType string

const (
	FuelPetrol   FuelType = "petrol"
	FuelDiesel   FuelType = "diesel"
	FuelElectric FuelType = "electric"
)

// IsValidFuelType checks if a fuel type is valid
func IsValidFuelType(f FuelType) bool {
	switch f {
	case FuelPetrol, FuelDiesel, FuelElectric:
		return true
	default:
		return false
	}
}

func fuelTypeChoices() []string {
	return []string{string(FuelPetrol), string(FuelDiesel), string(FuelElectric)}
}

// minYear is the oldest model year accepted at construction.
const minYear = 1900

// Vehicle is the capability contract every concrete kind implements.
type Vehicle interface {
	// StartEngine describes the engine activation.
	StartEngine() string
	// VehicleType returns the kind label.
	VehicleType() string
	// DisplayInfo renders the full multi-line description of the vehicle.
	DisplayInfo() string
}

// base holds the identity fields shared by every concrete kind. It is
// validated once at construction and immutable afterwards.
type base struct {
	brand    string
	model    string
	year     int
	fuelType FuelType
	vin      string
}

// newBase validates identity fields in the fixed order brand, model, year,
// fuel type, failing fast on the first violation, then assigns a VIN.
func newBase(brand, model string, year int, fuelType FuelType) (base, error) {
	if brand == "" {
		return base{}, newValidationError("brand", brand)
	}
	if model == "" {
		return base{}, newValidationError("model", model)
	}
	if year < minYear || year > time.Now().Year() {
		return base{}, newValidationError("year", year)
	}
	if !IsValidFuelType(fuelType) {
		return base{}, newChoiceError("fuel_type", fuelType, fuelTypeChoices())
	}
	return base{
		brand:    brand,
		model:    model,
		year:     year,
		fuelType: fuelType,
		vin:      uuid.NewString(),
	}, nil
}

// Brand returns the vehicle brand.
func (b *base) Brand() string { return b.brand }

// Model returns the vehicle model.
func (b *base) Model() string { return b.model }

// Year returns the model year.
func (b *base) Year() int { return b.year }

// FuelType returns the fuel type.
func (b *base) FuelType() FuelType { return b.fuelType }

// VIN returns the identifier assigned at construction.
func (b *base) VIN() string { return b.vin }

func (b *base) String() string {
	return fmt.Sprintf("%d %s %s (%s)", b.year, b.brand, b.model, b.fuelType)
}

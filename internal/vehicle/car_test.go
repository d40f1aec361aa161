package vehicle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCar_ProductionCounter(t *testing.T) {
	before := ModelsProduced()

	_, err := NewCar("BMW", "M3", 2022, FuelPetrol, mustEngine(t, 150, EngineFourStroke), "Red", 4, "ABC-123")
	require.NoError(t, err)
	_, err = NewCar("Tesla", "Model S", 2024, FuelElectric, mustEngine(t, 170, EngineElectric), "White", 4, "EV-001")
	require.NoError(t, err)
	// A sports car counts once, not twice, despite reusing the car
	// construction path.
	_, err = NewSportsCar("Ferrari", "488 GTB", 2020, FuelPetrol, mustEngine(t, 320, EngineFourStroke), "Red", 2, "SPD-488")
	require.NoError(t, err)

	assert.Equal(t, before+3, ModelsProduced())
}

func TestCar_FailedConstructionDoesNotCount(t *testing.T) {
	before := ModelsProduced()

	_, err := NewCar("", "M3", 2022, FuelPetrol, mustEngine(t, 150, EngineFourStroke), "Red", 4, "ABC-123")
	require.Error(t, err)
	_, err = NewSportsCar("Ferrari", "488 GTB", 1800, FuelPetrol, mustEngine(t, 320, EngineFourStroke), "Red", 2, "SPD-488")
	require.Error(t, err)

	assert.Equal(t, before, ModelsProduced())
}

func TestCar_LicensePlate(t *testing.T) {
	car, err := NewCar("BMW", "M3", 2022, FuelPetrol, mustEngine(t, 150, EngineFourStroke), "Red", 4, "ABC-123")
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", car.LicensePlate())

	// No format validation applies to plates.
	car.SetLicensePlate("XYZ 999 !!")
	assert.Equal(t, "XYZ 999 !!", car.LicensePlate())
}

func TestNewCar_Validation(t *testing.T) {
	engine := mustEngine(t, 150, EngineFourStroke)

	for _, doors := range []int{0, -2} {
		car, err := NewCar("BMW", "M3", 2022, FuelPetrol, engine, "Red", doors, "ABC-123")
		assert.Nil(t, car)
		var verr *ValidationError
		require.True(t, errors.As(err, &verr), "doors %d should be rejected", doors)
		assert.Equal(t, "num_doors", verr.Field)
	}

	car, err := NewCar("BMW", "M3", 2022, FuelPetrol, nil, "Red", 4, "ABC-123")
	assert.Nil(t, car)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "engine", verr.Field)
}

func TestCar_MovementState(t *testing.T) {
	car, err := NewCar("BMW", "M3", 2022, FuelPetrol, mustEngine(t, 150, EngineFourStroke), "Red", 4, "ABC-123")
	require.NoError(t, err)

	require.NoError(t, car.Accelerate(80))
	assert.Equal(t, 80, car.Speed())

	msg, err := car.Drive(100)
	require.NoError(t, err)
	assert.Contains(t, msg, "2022 BMW M3 (petrol) drove 100 km. Total: 100.0 km")

	stop := car.Brake()
	assert.Equal(t, "2022 BMW M3 (petrol) stopped.", stop)
	assert.Equal(t, 0, car.Speed())
	assert.Equal(t, 100.0, car.Odometer())
}

func TestCar_DisplayInfo(t *testing.T) {
	car, err := NewCar("BMW", "M3", 2022, FuelPetrol, mustEngine(t, 150, EngineFourStroke), "Red", 4, "ABC-123")
	require.NoError(t, err)

	info := car.DisplayInfo()
	assert.Contains(t, info, "Vehicle: 2022 BMW M3 (petrol)")
	assert.Contains(t, info, "Type: Car")
	assert.Contains(t, info, "Color: Red")
	assert.Contains(t, info, "Doors: 4")
	assert.Contains(t, info, "License Plate: ABC-123")
	assert.Contains(t, info, "VIN: "+car.VIN())
}

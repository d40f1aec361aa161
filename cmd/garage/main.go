package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"

	"github.com/ukydev/fleet-garage/internal/vehicle"
)

func main() {
	// Optional .env for local runs
	_ = godotenv.Load()

	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if parsed, err := log.ParseLevel(lvl); err == nil {
			log.SetLevel(parsed)
		}
	}

	showTable := true
	if v := os.Getenv("GARAGE_SHOW_TABLE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			showTable = b
		}
	}

	fleet, err := buildFleet()
	if err != nil {
		log.WithError(err).Fatal("Failed to build fleet")
	}

	if err := runShowcase(fleet); err != nil {
		log.WithError(err).Fatal("Showcase run failed")
	}

	if showTable {
		renderFleetTable(os.Stdout, fleet)
	}

	log.WithField("models_produced", vehicle.ModelsProduced()).Info("Total models produced")
}

// fleet groups the showcase vehicles by kind.
type fleet struct {
	motorcycles []*vehicle.Motorcycle
	buses       []*vehicle.Bus
	cars        []*vehicle.Car
	sportsCars  []*vehicle.SportsCar
}

func (f *fleet) all() []vehicle.Vehicle {
	var out []vehicle.Vehicle
	for _, m := range f.motorcycles {
		out = append(out, m)
	}
	for _, b := range f.buses {
		out = append(out, b)
	}
	for _, c := range f.cars {
		out = append(out, c)
	}
	for _, s := range f.sportsCars {
		out = append(out, s)
	}
	return out
}

func buildFleet() (*fleet, error) {
	f := &fleet{}

	motorcycles := []struct {
		hp         int
		engineType vehicle.EngineType
		brand      string
		model      string
		year       int
		fuel       vehicle.FuelType
	}{
		{120, vehicle.EngineFourStroke, "Yamaha", "MT-09", 2023, vehicle.FuelPetrol},
		{100, vehicle.EngineFourStroke, "Royal Enfield", "Classic 500", 2021, vehicle.FuelDiesel},
		{85, vehicle.EngineElectric, "Zero", "SR/F", 2024, vehicle.FuelElectric},
	}
	for _, m := range motorcycles {
		engine, err := vehicle.NewEngine(m.hp, m.engineType)
		if err != nil {
			return nil, fmt.Errorf("failed to build engine for %s %s: %w", m.brand, m.model, err)
		}
		moto, err := vehicle.NewMotorcycle(m.brand, m.model, m.year, m.fuel, engine, false)
		if err != nil {
			return nil, fmt.Errorf("failed to build motorcycle %s %s: %w", m.brand, m.model, err)
		}
		f.motorcycles = append(f.motorcycles, moto)
	}

	buses := []struct {
		hp         int
		engineType vehicle.EngineType
		model      string
		year       int
		fuel       vehicle.FuelType
		color      string
		capacity   int
	}{
		{280, vehicle.EngineFourStroke, "Lion's City", 2017, vehicle.FuelDiesel, "Blue", 50},
		{440, vehicle.EngineElectric, "Lion's Coach", 2020, vehicle.FuelElectric, "White", 45},
		{102, vehicle.EngineFourStroke, "TGE Minibus", 2025, vehicle.FuelDiesel, "Black", 20},
	}
	for _, b := range buses {
		engine, err := vehicle.NewEngine(b.hp, b.engineType)
		if err != nil {
			return nil, fmt.Errorf("failed to build engine for MAN %s: %w", b.model, err)
		}
		bus, err := vehicle.NewBus("MAN", b.model, b.year, b.fuel, b.color, b.capacity, engine)
		if err != nil {
			return nil, fmt.Errorf("failed to build bus MAN %s: %w", b.model, err)
		}
		f.buses = append(f.buses, bus)
	}

	cars := []struct {
		hp           int
		engineType   vehicle.EngineType
		brand        string
		model        string
		year         int
		fuel         vehicle.FuelType
		color        string
		doors        int
		licensePlate string
	}{
		{150, vehicle.EngineFourStroke, "BMW", "M3", 2022, vehicle.FuelPetrol, "Red", 4, "ABC-123"},
		{170, vehicle.EngineElectric, "Tesla", "Model S", 2024, vehicle.FuelElectric, "White", 4, "EV-001"},
	}
	for _, c := range cars {
		engine, err := vehicle.NewEngine(c.hp, c.engineType)
		if err != nil {
			return nil, fmt.Errorf("failed to build engine for %s %s: %w", c.brand, c.model, err)
		}
		car, err := vehicle.NewCar(c.brand, c.model, c.year, c.fuel, engine, c.color, c.doors, c.licensePlate)
		if err != nil {
			return nil, fmt.Errorf("failed to build car %s %s: %w", c.brand, c.model, err)
		}
		f.cars = append(f.cars, car)
	}

	sportsCars := []struct {
		hp           int
		brand        string
		model        string
		year         int
		color        string
		licensePlate string
	}{
		{320, "Ferrari", "488 GTB", 2020, "Red", "SPD-488"},
		{390, "Lamborghini", "Huracan", 2021, "Green", "LMB-666"},
	}
	for _, s := range sportsCars {
		engine, err := vehicle.NewEngine(s.hp, vehicle.EngineFourStroke)
		if err != nil {
			return nil, fmt.Errorf("failed to build engine for %s %s: %w", s.brand, s.model, err)
		}
		sport, err := vehicle.NewSportsCar(s.brand, s.model, s.year, vehicle.FuelPetrol, engine, s.color, 2, s.licensePlate)
		if err != nil {
			return nil, fmt.Errorf("failed to build sports car %s %s: %w", s.brand, s.model, err)
		}
		sport.SetNotifier(func(msg string) {
			log.WithFields(log.Fields{"vehicle": sport.String(), "vin": sport.VIN()}).Info(msg)
		})
		f.sportsCars = append(f.sportsCars, sport)
	}

	return f, nil
}

func runShowcase(f *fleet) error {
	rideDistances := map[string]float64{
		"Yamaha":        100,
		"Royal Enfield": 50,
		"Zero":          25,
	}
	for _, m := range f.motorcycles {
		log.Info(m.StartEngine())
		summary, err := m.Ride(rideDistances[m.Brand()])
		if err != nil {
			return fmt.Errorf("ride failed for %s: %w", m, err)
		}
		log.Info(summary)
		if m.Brand() != "Zero" {
			msg, _ := m.AttachSidecar()
			log.Info(msg)
		}
		log.Info(m.CheckHelmet())
		log.WithField("speed_kmh", m.Speed()).Debug("Current speed")
	}

	for _, b := range f.buses {
		log.Info(b.StartEngine())
		logOutcome(b.ChangeColor("Yellow"))
		logOutcome(b.IncreaseHorsePower(50))
		logOutcome(b.AddPassenger("Luka"))
		logOutcome(b.AddPassenger("Giorgi"))
		logOutcome(b.RemovePassenger("Luka"))
		if err := b.Accelerate(40); err != nil {
			return fmt.Errorf("accelerate failed for %s: %w", b, err)
		}
		msg, err := b.Drive(60)
		if err != nil {
			return fmt.Errorf("drive failed for %s: %w", b, err)
		}
		log.Info(msg)
		log.Info(b.StopEngine())
	}

	for _, c := range f.cars {
		log.Info(c.StartEngine())
		if err := c.Accelerate(80); err != nil {
			return fmt.Errorf("accelerate failed for %s: %w", c, err)
		}
		msg, err := c.Drive(100)
		if err != nil {
			return fmt.Errorf("drive failed for %s: %w", c, err)
		}
		log.Info(msg)
		log.Info(c.Brake())
	}

	for _, s := range f.sportsCars {
		log.Info(s.StartEngine())
		if err := s.Accelerate(120); err != nil {
			return fmt.Errorf("accelerate failed for %s: %w", s, err)
		}
		msg, err := s.Drive(150)
		if err != nil {
			return fmt.Errorf("drive failed for %s: %w", s, err)
		}
		log.Info(msg)
		s.EnableTurbo()
		if err := s.ShiftGear(3); err != nil {
			return fmt.Errorf("gear shift failed for %s: %w", s, err)
		}
		if err := s.SetSpoiler(vehicle.SpoilerWing); err != nil {
			return fmt.Errorf("spoiler change failed for %s: %w", s, err)
		}
		log.Info(s.Brake())
	}

	return nil
}

// logOutcome logs a reported (non-error) operation result at a level
// matching whether it proceeded.
func logOutcome(msg string, ok bool) {
	if ok {
		log.Info(msg)
		return
	}
	log.Warn(msg)
}

func renderFleetTable(out *os.File, f *fleet) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Type", "Vehicle", "Odometer (km)", "Speed (km/h)", "VIN"})

	type rowSource interface {
		vehicle.Vehicle
		fmt.Stringer
		Odometer() float64
		Speed() int
		VIN() string
	}
	for _, v := range f.all() {
		r := v.(rowSource)
		table.Append([]string{
			r.VehicleType(),
			r.String(),
			fmt.Sprintf("%.1f", r.Odometer()),
			strconv.Itoa(r.Speed()),
			r.VIN(),
		})
	}
	table.Render()
}

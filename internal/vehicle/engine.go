package vehicle

import "fmt"

// EngineType classifies an engine.
type EngineType string

const (
	EngineTwoStroke  EngineType = "2-stroke"
	EngineFourStroke EngineType = "4-stroke"
	EngineElectric   EngineType = "electric"
	EngineDiesel     EngineType = "diesel"
)

// IsValidEngineType checks if an engine type is valid
func IsValidEngineType(t EngineType) bool {
	switch t {
	case EngineTwoStroke, EngineFourStroke, EngineElectric, EngineDiesel:
		return true
	default:
		return false
	}
}

func engineTypeChoices() []string {
	return []string{
		string(EngineTwoStroke),
		string(EngineFourStroke),
		string(EngineElectric),
		string(EngineDiesel),
	}
}

// Engine describes a vehicle engine. Identity is fixed at construction;
// only the owning vehicle may raise horsepower afterwards.
type Engine struct {
	horsepower int
	engineType EngineType
}

// NewEngine constructs a validated engine.
func NewEngine(horsepower int, engineType EngineType) (*Engine, error) {
	if horsepower <= 0 {
		return nil, newValidationError("horsepower", horsepower)
	}
	if !IsValidEngineType(engineType) {
		return nil, newChoiceError("engine_type", engineType, engineTypeChoices())
	}
	return &Engine{horsepower: horsepower, engineType: engineType}, nil
}

// Horsepower returns the current horsepower.
func (e *Engine) Horsepower() int {
	return e.horsepower
}

// Type returns the engine type.
func (e *Engine) Type() EngineType {
	return e.engineType
}

// IncreaseHorsepower adds hp to the engine. Non-positive increments are a
// no-op and report false.
func (e *Engine) IncreaseHorsepower(hp int) bool {
	if hp <= 0 {
		return false
	}
	e.horsepower += hp
	return true
}

func (e *Engine) String() string {
	return fmt.Sprintf("%d HP %s engine", e.horsepower, e.engineType)
}

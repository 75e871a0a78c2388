package orca

import (
	"github.com/orcaswarm/orcaswarm/geom"
)

// Scenario is a named preset agent configuration together with its
// simulation parameters.
type Scenario struct {
	Name             string
	Description      string
	Agents           []Agent
	Tau              float64
	DeltaT           float64
	ArrivalThreshold float64
}

// NewEngine builds a fresh engine for the scenario; the scenario's
// agent list is copied by the engine and can be reused.
func (s Scenario) NewEngine(seed int64) *Engine {
	return NewEngineWithSeed(s.Agents, s.Tau, s.DeltaT, s.ArrivalThreshold, seed)
}

// HeadOnScenario is two agents swapping places along the x-axis.
func HeadOnScenario() Scenario {
	return Scenario{
		Name:        "head-on",
		Description: "two agents crossing head-on along the x-axis",
		Agents: []Agent{
			MakeAgent(geom.MakePoint(10, 0), geom.MakePoint(-10, 0), 1.0, 1.0),
			MakeAgent(geom.MakePoint(-10, 0), geom.MakePoint(10, 0), 1.0, 1.0),
		},
		Tau:              2.0,
		DeltaT:           0.1,
		ArrivalThreshold: 0.5,
	}
}

// CircleScenario is ten agents on a circle of radius 60 around the
// origin, each heading to the antipode of its starting position.
func CircleScenario() Scenario {
	return Scenario{
		Name:        "circle",
		Description: "ten agents crossing a circle towards their antipodes",
		Agents: []Agent{
			MakeAgent(geom.MakePoint(60.0, 0.0), geom.MakePoint(-60.0, 0.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(48.5, 35.3), geom.MakePoint(-48.5, -35.3), 8.0, 20.0),
			MakeAgent(geom.MakePoint(18.5, 57.1), geom.MakePoint(-18.5, -57.1), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-18.5, 57.1), geom.MakePoint(18.5, -57.1), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-48.5, 35.3), geom.MakePoint(48.5, -35.3), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-60.0, 0.0), geom.MakePoint(60.0, 0.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-48.5, -35.3), geom.MakePoint(48.5, 35.3), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-18.5, -57.1), geom.MakePoint(18.5, 57.1), 8.0, 20.0),
			MakeAgent(geom.MakePoint(18.5, -57.1), geom.MakePoint(-18.5, 57.1), 8.0, 20.0),
			MakeAgent(geom.MakePoint(48.5, -35.3), geom.MakePoint(-48.5, 35.3), 8.0, 20.0),
		},
		Tau:              0.01,
		DeltaT:           0.01,
		ArrivalThreshold: 0.1,
	}
}

// TwoLinesScenario is two facing rows of five agents swapping sides.
func TwoLinesScenario() Scenario {
	return Scenario{
		Name:        "two-lines",
		Description: "two facing rows of five agents swapping sides",
		Agents: []Agent{
			MakeAgent(geom.MakePoint(60.0, 80.0), geom.MakePoint(-60.0, 80.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(60.0, 40.0), geom.MakePoint(-60.0, 40.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(60.0, 0.0), geom.MakePoint(-60.0, 0.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(60.0, -40.0), geom.MakePoint(-60.0, -40.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(60.0, -80.0), geom.MakePoint(-60.0, -80.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-60.0, 80.0), geom.MakePoint(60.0, 80.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-60.0, 40.0), geom.MakePoint(60.0, 40.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-60.0, 0.0), geom.MakePoint(60.0, 0.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-60.0, -40.0), geom.MakePoint(60.0, -40.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-60.0, -80.0), geom.MakePoint(60.0, -80.0), 8.0, 20.0),
		},
		Tau:              0.01,
		DeltaT:           0.01,
		ArrivalThreshold: 0.1,
	}
}

// SquareScenario is four agents at the corners of a square crossing
// along the diagonals.
func SquareScenario() Scenario {
	return Scenario{
		Name:        "square",
		Description: "four agents crossing a square along its diagonals",
		Agents: []Agent{
			MakeAgent(geom.MakePoint(-60.0, 60.0), geom.MakePoint(60.0, -60.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(60.0, -60.0), geom.MakePoint(-60.0, 60.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(60.0, 60.0), geom.MakePoint(-60.0, -60.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-60.0, -60.0), geom.MakePoint(60.0, 60.0), 8.0, 20.0),
		},
		Tau:              0.01,
		DeltaT:           0.01,
		ArrivalThreshold: 0.1,
	}
}

// ScatteredScenario is six agents with mixed positions and goals.
func ScatteredScenario() Scenario {
	return Scenario{
		Name:        "scattered",
		Description: "six agents with mixed positions and goals",
		Agents: []Agent{
			MakeAgent(geom.MakePoint(1.0, 1.0), geom.MakePoint(0.0, 0.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(60.0, 15.0), geom.MakePoint(-60.0, 0.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(40.0, -5.0), geom.MakePoint(-20.0, 30.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-5.0, -30.0), geom.MakePoint(-40.0, 50.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-50.0, 15.0), geom.MakePoint(40.0, -10.0), 8.0, 20.0),
			MakeAgent(geom.MakePoint(-60.0, 0.0), geom.MakePoint(60.0, 0.0), 8.0, 20.0),
		},
		Tau:              0.01,
		DeltaT:           0.01,
		ArrivalThreshold: 0.1,
	}
}

// Scenarios lists every preset in display order.
func Scenarios() []Scenario {
	return []Scenario{
		HeadOnScenario(),
		CircleScenario(),
		TwoLinesScenario(),
		SquareScenario(),
		ScatteredScenario(),
	}
}

// ScenarioByName resolves a preset by its name.
func ScenarioByName(name string) (Scenario, bool) {
	for _, scenario := range Scenarios() {
		if scenario.Name == name {
			return scenario, true
		}
	}

	return Scenario{}, false
}

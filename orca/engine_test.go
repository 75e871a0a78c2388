package orca

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orcaswarm/orcaswarm/geom"
)

// runUntilConverged drives the engine with the standard driver cycle
// and tracks the minimum pairwise distance seen after every move.
func runUntilConverged(t *testing.T, engine *Engine, maxTicks int) (ticks int, minDistance float64) {
	t.Helper()

	minDistance = math.Inf(1)

	for ticks = 0; ticks < maxTicks; ticks++ {
		if engine.Converged() {
			return ticks, minDistance
		}

		err := engine.Iteration()
		assert.NoError(t, err)
		if err != nil {
			return ticks, minDistance
		}

		engine.MoveAgents(engine.GetDeltaT())

		agents := engine.GetAgents()
		for i := 0; i < len(agents); i++ {
			for j := i + 1; j < len(agents); j++ {
				d := agents[i].GetPosition().From(agents[j].GetPosition()).Norm()
				if d < minDistance {
					minDistance = d
				}
			}
		}
	}

	assert.Fail(t, "engine did not converge within the tick budget")
	return ticks, minDistance
}

func TestEngineAssignsIdsInSequenceOrder(t *testing.T) {
	engine := NewEngineWithSeed([]Agent{
		MakeAgent(geom.MakePoint(0, 0), geom.MakePoint(1, 0), 1, 1),
		MakeAgent(geom.MakePoint(5, 0), geom.MakePoint(6, 0), 1, 1),
		MakeAgent(geom.MakePoint(9, 0), geom.MakePoint(8, 0), 1, 1),
	}, 2, 0.1, 0.5, 1)

	for i, agent := range engine.GetAgents() {
		assert.Equal(t, i, agent.GetId())
	}
}

func TestEngineCopiesAgents(t *testing.T) {
	agents := []Agent{
		MakeAgent(geom.MakePoint(0, 0), geom.MakePoint(10, 0), 1, 1),
	}

	engine := NewEngineWithSeed(agents, 2, 0.1, 0.5, 1)

	assert.NoError(t, engine.Iteration())
	engine.MoveAgents(engine.GetDeltaT())

	// the caller's agents are untouched
	assert.Equal(t, geom.MakePoint(0, 0), agents[0].GetPosition())
	assert.NotEqual(t, geom.MakePoint(0, 0), engine.GetAgents()[0].GetPosition())
}

func TestEngineParameters(t *testing.T) {
	engine := NewEngineWithSeed(nil, 2, 0.1, 0.5, 1)

	assert.Equal(t, 2.0, engine.GetTau())
	assert.Equal(t, 0.1, engine.GetDeltaT())
	assert.Equal(t, 0.5, engine.GetArrivalThreshold())
	assert.Equal(t, 0, engine.AgentCount())
	assert.True(t, engine.Converged())
}

func TestEngineVelocityNeverExceedsPreferred(t *testing.T) {
	engine := SquareScenario().NewEngine(1)

	for tick := 0; tick < 200; tick++ {
		assert.NoError(t, engine.Iteration())

		for _, agent := range engine.GetAgents() {
			assert.LessOrEqual(t, agent.GetVelocity().Norm(), agent.GetPrefVelocity().Norm()+1e-12)
			assert.LessOrEqual(t, agent.GetPrefVelocity().Norm(), agent.GetMaxSpeed()+1e-12)
		}

		engine.MoveAgents(engine.GetDeltaT())
	}
}

func TestHeadOnPairConverges(t *testing.T) {
	engine := HeadOnScenario().NewEngine(1)

	ticks, _ := runUntilConverged(t, engine, 5000)

	assert.Greater(t, ticks, 0)
	for _, agent := range engine.GetAgents() {
		assert.True(t, agent.Arrived(engine.GetArrivalThreshold()))
	}
}

func TestOffsetPairCrossingKeepsSeparation(t *testing.T) {
	engine := NewEngineWithSeed([]Agent{
		MakeAgent(geom.MakePoint(60, 0.3), geom.MakePoint(-60, 0), 8, 20),
		MakeAgent(geom.MakePoint(-60, -0.3), geom.MakePoint(60, 0), 8, 20),
	}, 0.01, 0.01, 0.1, 1)

	_, minDistance := runUntilConverged(t, engine, 10000)

	// the sum of radii, minus float dust from riding the constraint
	assert.GreaterOrEqual(t, minDistance, 16.0-1e-9)
}

func TestPerturbedSquareCrossingConverges(t *testing.T) {
	engine := NewEngineWithSeed([]Agent{
		MakeAgent(geom.MakePoint(-60, 61), geom.MakePoint(60, -60), 8, 20),
		MakeAgent(geom.MakePoint(62, -59), geom.MakePoint(-60, 60), 8, 20),
		MakeAgent(geom.MakePoint(59, 62), geom.MakePoint(-60, -60), 8, 20),
		MakeAgent(geom.MakePoint(-61, -63), geom.MakePoint(60, 60), 8, 20),
	}, 0.01, 0.01, 0.1, 1)

	_, minDistance := runUntilConverged(t, engine, 20000)

	assert.GreaterOrEqual(t, minDistance, 16.0-1e-9)
}

func TestSquareScenarioKeepsSeparation(t *testing.T) {
	// the exactly symmetric square creeps into a standoff that takes
	// very long to break; assert the separation invariant over the
	// approach instead of convergence
	engine := SquareScenario().NewEngine(1)

	minDistance := math.Inf(1)
	for tick := 0; tick < 3000; tick++ {
		assert.NoError(t, engine.Iteration())
		engine.MoveAgents(engine.GetDeltaT())

		agents := engine.GetAgents()
		for i := 0; i < len(agents); i++ {
			for j := i + 1; j < len(agents); j++ {
				d := agents[i].GetPosition().From(agents[j].GetPosition()).Norm()
				if d < minDistance {
					minDistance = d
				}
			}
		}
	}

	assert.GreaterOrEqual(t, minDistance, 16.0-1e-9)
}

func TestCircleScenarioTerminates(t *testing.T) {
	// ten agents meeting at the center exceed what the 2D program can
	// satisfy: the run either converges or surfaces ErrInfeasible,
	// never anything else
	engine := CircleScenario().NewEngine(1)

	for tick := 0; tick < 60000; tick++ {
		if engine.Converged() {
			return
		}

		if err := engine.Iteration(); err != nil {
			assert.ErrorIs(t, err, ErrInfeasible)
			return
		}

		engine.MoveAgents(engine.GetDeltaT())
	}

	assert.Fail(t, "circle scenario neither converged nor reported infeasibility")
}

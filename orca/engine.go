package orca

import (
	"math/rand"
	"time"

	"github.com/orcaswarm/orcaswarm/geom"
)

// Engine owns the agent population and the simulation parameters. All
// mutation of agent state happens on the caller's goroutine, inside
// Iteration and MoveAgents; drivers may read agent state between those
// calls but must synchronize externally if they need a consistent
// snapshot while the loop is running.
type Engine struct {
	agents           []*Agent
	tau              float64
	deltaT           float64
	arrivalThreshold float64
	rng              *rand.Rand
}

// NewEngine copies the given agent sequence into a new engine. Agent
// ids are assigned here, monotonically in sequence order, so ids are
// scoped to the engine and stable across runs.
func NewEngine(agents []Agent, tau float64, deltaT float64, arrivalThreshold float64) *Engine {
	return NewEngineWithSeed(agents, tau, deltaT, arrivalThreshold, time.Now().UnixNano())
}

// NewEngineWithSeed is NewEngine with a fixed seed for the solver's
// shuffle, which makes runs reproducible.
func NewEngineWithSeed(agents []Agent, tau float64, deltaT float64, arrivalThreshold float64, seed int64) *Engine {
	owned := make([]*Agent, len(agents))
	for i := range agents {
		ag := agents[i]
		ag.id = i
		owned[i] = &ag
	}

	return &Engine{
		agents:           owned,
		tau:              tau,
		deltaT:           deltaT,
		arrivalThreshold: arrivalThreshold,
		rng:              rand.New(rand.NewSource(seed)),
	}
}

// Iteration advances the velocity decisions by one step. It computes
// every agent's new velocity against the previous step's velocities,
// then commits them all at once: a commit must not be visible to the
// other agents' computations within the same step.
func (e *Engine) Iteration() error {
	newVelocities := make([]geom.Vector2, 0, len(e.agents))

	index := BuildNeighborIndex(e.agents)

	for _, agent := range e.agents {
		halfPlanes := agent.OrcaA(index.Candidates(agent), e.tau)

		solution, err := SolveLinearProgram(halfPlanes, agent.GetPrefVelocity(), agent.GetMaxSpeed(), e.rng)
		if err != nil {
			return err
		}

		newVelocities = append(newVelocities, solution.ToVector())
	}

	for i, agent := range e.agents {
		agent.UpdateVelocity(newVelocities[i])
	}

	return nil
}

// MoveAgents integrates every agent's position for deltaT time.
func (e *Engine) MoveAgents(deltaT float64) {
	for _, agent := range e.agents {
		agent.Move(deltaT)
	}
}

// Converged reports whether every agent is within the arrival
// threshold of its destination.
func (e *Engine) Converged() bool {
	for _, agent := range e.agents {
		if !agent.Arrived(e.arrivalThreshold) {
			return false
		}
	}

	return true
}

// Finalize is the teardown hook run after convergence. It has no
// required side effects.
func (e *Engine) Finalize() {}

// GetAgents returns the engine's agents. The slice and the agents stay
// owned by the engine; callers must not retain them across steps.
func (e *Engine) GetAgents() []*Agent {
	return e.agents
}

func (e *Engine) AgentCount() int {
	return len(e.agents)
}

func (e *Engine) GetTau() float64 {
	return e.tau
}

func (e *Engine) GetDeltaT() float64 {
	return e.deltaT
}

func (e *Engine) GetArrivalThreshold() float64 {
	return e.arrivalThreshold
}

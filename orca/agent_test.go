package orca

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orcaswarm/orcaswarm/geom"
)

func TestMakeAgentPreferredVelocity(t *testing.T) {
	agent := MakeAgent(geom.MakePoint(0, 0), geom.MakePoint(10, 0), 1, 2)

	assert.Equal(t, geom.MakeVector2(2, 0), agent.GetPrefVelocity())
	assert.Equal(t, geom.MakeNullVector2(), agent.GetVelocity())
}

func TestMakeStationaryAgent(t *testing.T) {
	agent := MakeStationaryAgent(geom.MakePoint(3, 4), 1, 2)

	assert.Equal(t, agent.GetPosition(), agent.GetDestination())
	assert.True(t, agent.Arrived(0))
}

func TestMoveRefreshesPreferredVelocity(t *testing.T) {
	agent := MakeAgent(geom.MakePoint(0, 0), geom.MakePoint(10, 0), 1, 2)

	agent.UpdateVelocity(geom.MakeVector2(1, 0))
	agent.Move(0.5)

	assert.Equal(t, geom.MakePoint(0.5, 0), agent.GetPosition())
	assert.Equal(t, geom.MakeVector2(2, 0), agent.GetPrefVelocity())

	// close to the destination the preferred velocity shrinks below maxSpeed
	near := MakeAgent(geom.MakePoint(9.5, 0), geom.MakePoint(10, 0), 1, 2)
	assert.Equal(t, geom.MakeVector2(0.5, 0), near.GetPrefVelocity())
}

func TestUpdateVelocityLimitsToPreferredNorm(t *testing.T) {
	agent := MakeAgent(geom.MakePoint(9, 0), geom.MakePoint(10, 0), 1, 2)

	// preferred velocity has norm 1 here; a larger update is clamped
	agent.UpdateVelocity(geom.MakeVector2(5, 5))

	assert.InDelta(t, 1, agent.GetVelocity().Norm(), 1e-12)
	assert.LessOrEqual(t, agent.GetVelocity().Norm(), agent.GetPrefVelocity().Norm())
	assert.LessOrEqual(t, agent.GetPrefVelocity().Norm(), agent.GetMaxSpeed())
}

func TestArrived(t *testing.T) {
	agent := MakeAgent(geom.MakePoint(9.6, 0), geom.MakePoint(10, 0), 1, 2)

	assert.True(t, agent.Arrived(0.5))
	assert.False(t, agent.Arrived(0.1))
}

func TestOrcaABHeadOnPair(t *testing.T) {
	engine := NewEngineWithSeed([]Agent{
		MakeAgent(geom.MakePoint(10, 0), geom.MakePoint(-10, 0), 1, 1),
		MakeAgent(geom.MakePoint(-10, 0), geom.MakePoint(10, 0), 1, 1),
	}, 2, 0.1, 0.5, 1)

	agents := engine.GetAgents()
	h := agents[0].OrcaAB(agents[1], 2)

	// both velocities are zero: the relative velocity leaves the
	// obstacle through the truncation circle, straight along the axis
	assert.Equal(t, geom.MakeVector2(1, 0), h.Normal())
	assert.Equal(t, geom.MakePoint(-4.5, 0), h.NormalPos())
	assert.True(t, h.Contains(h.NormalPos()))
}

func TestOrcaABCollinearRelativeVelocity(t *testing.T) {
	engine := NewEngineWithSeed([]Agent{
		MakeAgent(geom.MakePoint(0, 0), geom.MakePoint(100, 0), 1, 20),
		MakeAgent(geom.MakePoint(20, 0), geom.MakePoint(20, 0), 1, 20),
	}, 2, 0.1, 0.5, 1)

	agents := engine.GetAgents()

	// relative velocity along the obstacle axis, beyond the truncation
	// circle center (10, 0): it sits at the center (15, 0) of the cone
	// circle chosen for it
	agents[0].UpdateVelocity(geom.MakeVector2(15, 0))

	h := agents[0].OrcaAB(agents[1], 2)

	assert.Greater(t, h.Normal().Norm(), 0.0)
	assert.True(t, h.Contains(h.NormalPos()))
}

func TestOrcaANeighborFilter(t *testing.T) {
	engine := NewEngineWithSeed([]Agent{
		MakeAgent(geom.MakePoint(0, 0), geom.MakePoint(10, 0), 0.1, 1),
		MakeAgent(geom.MakePoint(1.5, 0), geom.MakePoint(10, 0), 0.1, 1),
		MakeAgent(geom.MakePoint(2, 0), geom.MakePoint(10, 0), 0.1, 1),
		MakeAgent(geom.MakePoint(0, 2.5), geom.MakePoint(10, 0), 0.1, 1),
	}, 2, 0.1, 0.5, 1)

	agents := engine.GetAgents()

	// only agents within 2*maxSpeed contribute half-planes; the
	// boundary distance is included
	halfPlanes := agents[0].OrcaA(agents, 2)

	assert.Len(t, halfPlanes, 2)
}

func TestAgentEqualsById(t *testing.T) {
	engine := NewEngineWithSeed([]Agent{
		MakeAgent(geom.MakePoint(0, 0), geom.MakePoint(1, 0), 1, 1),
		MakeAgent(geom.MakePoint(5, 0), geom.MakePoint(6, 0), 1, 1),
	}, 2, 0.1, 0.5, 1)

	agents := engine.GetAgents()

	assert.True(t, agents[0].Equals(agents[0]))
	assert.False(t, agents[0].Equals(agents[1]))
}

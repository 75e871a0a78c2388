package orca

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orcaswarm/orcaswarm/geom"
)

func TestNeighborIndexCandidates(t *testing.T) {
	engine := NewEngineWithSeed([]Agent{
		MakeAgent(geom.MakePoint(0, 0), geom.MakePoint(10, 0), 0.5, 1),
		MakeAgent(geom.MakePoint(1, 0), geom.MakePoint(10, 0), 0.5, 1),
		MakeAgent(geom.MakePoint(-1.5, 0), geom.MakePoint(10, 0), 0.5, 1),
		MakeAgent(geom.MakePoint(50, 50), geom.MakePoint(10, 0), 0.5, 1),
	}, 2, 0.1, 0.5, 1)

	agents := engine.GetAgents()
	index := BuildNeighborIndex(agents)

	candidates := index.Candidates(agents[0])

	// the far agent is pruned, the queried agent is excluded, and the
	// remaining candidates keep the sequence order
	assert.Len(t, candidates, 2)
	assert.Equal(t, 1, candidates[0].GetId())
	assert.Equal(t, 2, candidates[1].GetId())
}

func TestNeighborIndexNeverPrunesExactNeighbors(t *testing.T) {
	// every agent within 2*maxSpeed must survive the index prefilter
	engine := NewEngineWithSeed([]Agent{
		MakeAgent(geom.MakePoint(0, 0), geom.MakePoint(10, 0), 0.5, 1),
		MakeAgent(geom.MakePoint(2, 0), geom.MakePoint(10, 0), 0.5, 1),
		MakeAgent(geom.MakePoint(0, -2), geom.MakePoint(10, 0), 0.5, 1),
		MakeAgent(geom.MakePoint(1.4, 1.4), geom.MakePoint(10, 0), 0.5, 1),
	}, 2, 0.1, 0.5, 1)

	agents := engine.GetAgents()
	index := BuildNeighborIndex(agents)

	candidates := index.Candidates(agents[0])

	assert.Len(t, candidates, 3)

	halfPlanes := agents[0].OrcaA(candidates, engine.GetTau())
	assert.Len(t, halfPlanes, 3)
}

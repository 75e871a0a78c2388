package orca

import (
	"github.com/dhconnelly/rtreego"

	"github.com/orcaswarm/orcaswarm/common/utils"
)

type agentEntry struct {
	agent *Agent
	rect  rtreego.Rect
}

func (e *agentEntry) Bounds() rtreego.Rect {
	return e.rect
}

// NeighborIndex is an R-tree over the agents' disks, used to prune
// candidate pairs before the exact 2*maxSpeed distance test in OrcaA.
// The query box is a superset of the exact neighborhood, so the index
// never changes which half-planes get built, only how many far pairs
// are measured.
type NeighborIndex struct {
	tree      *rtreego.Rtree
	sequence  []*Agent
	maxRadius float64
}

func BuildNeighborIndex(agents []*Agent) *NeighborIndex {
	tree := rtreego.NewTree(2, 25, 50)

	maxRadius := 0.0
	for _, ag := range agents {
		if ag.GetRadius() > maxRadius {
			maxRadius = ag.GetRadius()
		}

		x, y := ag.GetPosition().Get()
		rect, err := rtreego.NewRect(
			rtreego.Point{x - ag.GetRadius(), y - ag.GetRadius()},
			[]float64{2 * ag.GetRadius(), 2 * ag.GetRadius()},
		)
		utils.Check(err, "could not build agent bounding box")

		tree.Insert(&agentEntry{agent: ag, rect: rect})
	}

	return &NeighborIndex{
		tree:      tree,
		sequence:  agents,
		maxRadius: maxRadius,
	}
}

// Candidates returns the agents whose disks may lie within 2*maxSpeed
// of a, excluding a itself, in the order of the engine's agent
// sequence.
func (index *NeighborIndex) Candidates(a *Agent) []*Agent {
	reach := 2*a.GetMaxSpeed() + index.maxRadius

	x, y := a.GetPosition().Get()
	query, err := rtreego.NewRect(
		rtreego.Point{x - reach, y - reach},
		[]float64{2 * reach, 2 * reach},
	)
	utils.Check(err, "could not build neighborhood query box")

	hits := index.tree.SearchIntersect(query)

	found := make(map[int]struct{}, len(hits))
	for _, hit := range hits {
		entry := hit.(*agentEntry)
		found[entry.agent.GetId()] = struct{}{}
	}

	candidates := make([]*Agent, 0, len(hits))
	for _, other := range index.sequence {
		if other.GetId() == a.GetId() {
			continue
		}

		if _, ok := found[other.GetId()]; ok {
			candidates = append(candidates, other)
		}
	}

	return candidates
}

// Package orca implements Optimal Reciprocal Collision Avoidance for a
// population of disk agents: the per-pair half-plane construction, the
// randomized incremental linear program bounded by the maxSpeed disk,
// and the engine driving the synchronous iteration loop.
package orca

import (
	"math"
	"strconv"

	"github.com/orcaswarm/orcaswarm/common/utils"
	"github.com/orcaswarm/orcaswarm/geom"
)

// Agent is one disk-shaped agent. Ids are assigned by the engine at
// construction time, in sequence order; two agents compare equal iff
// their ids are equal.
//
// The preferred velocity always points at the destination with norm
// min(distance-derived, maxSpeed); it is recomputed on every position
// change.
type Agent struct {
	id           int
	position     geom.Point
	destination  geom.Point
	velocity     geom.Vector2
	prefVelocity geom.Vector2
	radius       float64
	maxSpeed     float64
}

func MakeAgent(position geom.Point, destination geom.Point, radius float64, maxSpeed float64) Agent {
	utils.Assert(radius > 0, "agent radius must be strictly positive")
	utils.Assert(maxSpeed >= 0, "agent max speed must not be negative")

	return Agent{
		position:     position,
		destination:  destination,
		velocity:     geom.MakeNullVector2(),
		prefVelocity: destination.From(position).LimitNorm(maxSpeed),
		radius:       radius,
		maxSpeed:     maxSpeed,
	}
}

// MakeStationaryAgent builds an agent that has already arrived: its
// destination equals its position.
func MakeStationaryAgent(position geom.Point, radius float64, maxSpeed float64) Agent {
	return MakeAgent(position, position, radius, maxSpeed)
}

func (a Agent) GetId() int {
	return a.id
}

func (a Agent) GetPosition() geom.Point {
	return a.position
}

func (a Agent) GetDestination() geom.Point {
	return a.destination
}

func (a Agent) GetVelocity() geom.Vector2 {
	return a.velocity
}

func (a Agent) GetPrefVelocity() geom.Vector2 {
	return a.prefVelocity
}

func (a Agent) GetRadius() float64 {
	return a.radius
}

func (a Agent) GetMaxSpeed() float64 {
	return a.maxSpeed
}

func (a Agent) Equals(b *Agent) bool {
	return a.id == b.id
}

// Arrived tests whether the agent is within threshold of its
// destination.
func (a Agent) Arrived(threshold float64) bool {
	return a.destination.From(a.position).Norm() <= threshold
}

// Move advances the agent with its current velocity for deltaT time
// and refreshes its preferred velocity.
func (a *Agent) Move(deltaT float64) {
	a.position = a.position.Add(a.velocity.MultScalar(deltaT))
	a.prefVelocity = a.destination.From(a.position).LimitNorm(a.maxSpeed)
}

// UpdateVelocity stores v, limited to the norm of the current
// preferred velocity (itself at most maxSpeed).
func (a *Agent) UpdateVelocity(v geom.Vector2) {
	a.velocity = v.LimitNormOf(a.prefVelocity)
}

// OrcaAB returns ORCA_A|B^tau as a half-plane, where A is the
// receiver. The construction assumes B runs the same algorithm with
// the same maximum speed: each agent takes half of the displacement u
// that moves the relative velocity out of the velocity obstacle.
func (a *Agent) OrcaAB(b *Agent, tau float64) geom.HalfPlane {
	// v_A - v_B
	vDiff := a.velocity.Sub(b.velocity)

	voMainCircleCenter := geom.MakePointFromVector(b.position.From(a.position))
	voTruncationCircleCenter := voMainCircleCenter.DivScalar(tau)

	voMainCircleRadius := a.radius + b.radius

	axis := voMainCircleCenter.ToVector()

	closestCircleCenter := voTruncationCircleCenter

	voHalfAperture := math.Asin(voMainCircleRadius / axis.Norm())

	leftProjection := vDiff.ProjectionOnto(axis.Rotated(voHalfAperture))
	rightProjection := vDiff.ProjectionOnto(axis.Rotated(-voHalfAperture))

	// A relative velocity orthogonal to or pointing away from the
	// obstacle axis can only leave the obstacle through its
	// truncation circle.
	if vDiff.Dot(axis) > 0 {
		var projection geom.Vector2
		switch {
		case leftProjection.Dot(axis) <= 0:
			projection = rightProjection
		case rightProjection.Dot(axis) <= 0:
			projection = leftProjection
		case leftProjection.Norm() > rightProjection.Norm():
			projection = leftProjection
		default:
			projection = rightProjection
		}

		// Center of the cone circle tangent at the projection: the
		// perpendicular to the cone edge through v_A - v_B, cut with
		// the axis line.
		perpendicular := geom.MakePerpendicularLine(
			geom.MakeLineFromOrigin(geom.MakePointFromVector(projection)),
			geom.MakePointFromVector(vDiff),
		)

		projectionCircleCenter, err := perpendicular.Intersect(geom.MakeLineFromOrigin(voMainCircleCenter))
		utils.Check(err, "orca: cone edge perpendicular cannot be parallel to the obstacle axis")

		if projectionCircleCenter.ToVector().Norm() > voTruncationCircleCenter.ToVector().Norm() {
			closestCircleCenter = projectionCircleCenter
		}
	}

	closestCircleRadius := voMainCircleRadius * closestCircleCenter.ToVector().Norm() / axis.Norm()

	centerToV := vDiff.Sub(closestCircleCenter.ToVector())

	// When v_A - v_B is exactly the chosen circle center, centerToV
	// has no direction; the vector to the border is then taken from
	// the right projection.
	var centerToBorder geom.Vector2
	if centerToV.IsNorm(0) {
		centerToBorder = rightProjection.Sub(vDiff)
	} else {
		centerToBorder = centerToV.Normalized(closestCircleRadius)
	}

	u := centerToBorder.Sub(centerToV)

	return geom.MakeHalfPlane(
		geom.MakePointFromVector(a.velocity.Add(u.DivScalar(2))),
		centerToBorder,
	)
}

// OrcaA returns ORCA_A^tau as the half-planes against every other
// agent within 2*maxSpeed of A, in input order. B's maximum speed is
// assumed equal to A's.
func (a *Agent) OrcaA(agents []*Agent, tau float64) []geom.HalfPlane {
	halfPlanes := make([]geom.HalfPlane, 0, len(agents))

	for _, b := range agents {
		if a.Equals(b) {
			continue
		}

		if a.position.From(b.position).Norm() <= 2*a.maxSpeed {
			halfPlanes = append(halfPlanes, a.OrcaAB(b, tau))
		}
	}

	return halfPlanes
}

func (a Agent) String() string {
	return "<Agent #" + strconv.Itoa(a.id) + " " + a.position.String() + " -> " + a.destination.String() + ">"
}

package orca

import (
	"math"
	"math/rand"
	"time"

	"github.com/orcaswarm/orcaswarm/common/utils/number"
	"github.com/orcaswarm/orcaswarm/geom"
)

var defaultRng = rand.New(rand.NewSource(time.Now().UnixNano()))

// SolveLinearProgram solves the 2D linear program over the given
// half-planes restricted to the disk of radius maxSpeed, minimizing
// the distance to prefVelocity. The contract is |prefVelocity| <=
// maxSpeed; a larger preferred velocity is clamped at entry.
//
// The half-planes are incorporated in a uniformly random order
// (expected O(n) with the incremental reoptimization below), shuffled
// in place. A nil rng falls back to a package-level seeded source;
// pass a seeded rng for reproducible runs.
//
// Returns ErrInfeasible when no velocity in the disk satisfies every
// half-plane.
func SolveLinearProgram(halfPlanes []geom.HalfPlane, prefVelocity geom.Vector2, maxSpeed float64, rng *rand.Rand) (geom.Point, error) {
	if rng == nil {
		rng = defaultRng
	}

	rng.Shuffle(len(halfPlanes), func(i, j int) {
		halfPlanes[i], halfPlanes[j] = halfPlanes[j], halfPlanes[i]
	})

	vMax := prefVelocity.LimitNorm(maxSpeed)

	solution := geom.MakePointFromVector(vMax)

	for i := 0; i < len(halfPlanes); i++ {
		hi := halfPlanes[i]

		if hi.Contains(solution) {
			continue
		}

		// The optimum moves onto h_i's bounding line. Intersect that
		// line with the disk:
		//   line:   y = slope*x + yIntercept
		//   circle: x^2 + y^2 = maxSpeed^2
		//   (slope^2+1)*x^2 + 2*slope*yIntercept*x + yIntercept^2 - maxSpeed^2 = 0
		bounding := hi.BoundingLine()

		a := bounding.Slope()*bounding.Slope() + 1
		b := 2 * bounding.Slope() * bounding.YIntercept()

		// For a vertical line only the discriminant's sign matters,
		// and Pythagoras gives it directly.
		var discriminant float64
		if bounding.IsVertical() {
			discriminant = number.Sign(maxSpeed - math.Abs(bounding.XIntercept()))
		} else {
			discriminant = 4 * (maxSpeed*maxSpeed*a - bounding.YIntercept()*bounding.YIntercept())
		}

		if discriminant < 0 {
			// The bounding line misses the disk: the disk is either
			// fully inside h_i (redundant constraint) or fully
			// outside (no feasible velocity).
			if hi.Normal().Dot(hi.NormalPos().From(geom.MakeOrigin())) < 0 {
				continue
			}

			return geom.Point{}, ErrInfeasible
		}

		if discriminant == 0 {
			if hi.Normal().Dot(hi.NormalPos().From(geom.MakeOrigin())) < 0 {
				continue
			}

			// The tangent point is the only velocity h_i admits;
			// force it and recheck every half-plane.
			var err error
			if bounding.IsVertical() {
				solution, err = bounding.PointAtY(0)
			} else {
				solution, err = bounding.PointAtX(-b / (2 * a))
			}
			if err != nil {
				return geom.Point{}, err
			}

			for _, h := range halfPlanes {
				if !h.Contains(solution) {
					return geom.Point{}, ErrInfeasible
				}
			}

			return solution, nil
		}

		// Two intersections with the disk. left and right bound the
		// solution's parameter along the bounding line: x for a
		// non-vertical line, y for a vertical one. Which endpoint is
		// "left" follows the half-plane's normal, so the notion stays
		// defined for vertical lines.
		var left, right float64
		if bounding.IsVertical() {
			left = math.Sqrt(maxSpeed*maxSpeed - bounding.XIntercept()*bounding.XIntercept())
			right = -left
		} else {
			left = (-b - math.Sqrt(discriminant)) / (2 * a)
			right = (-b + math.Sqrt(discriminant)) / (2 * a)
		}

		if (bounding.IsVertical() && hi.Normal().GetX() < 0) ||
			(!bounding.IsVertical() && hi.Normal().GetY() < 0) {
			left, right = right, left
		}

		// Tighten [left, right] with every previously incorporated
		// half-plane.
		for j := 0; j < i; j++ {
			h := halfPlanes[j]

			if bounding.Parallel(h.BoundingLine()) {
				// Parallel constraints either overlap on h_i's whole
				// bounding line or exclude it entirely.
				if hi.Normal().Dot(h.Normal()) > 0 || hi.Contains(h.NormalPos()) {
					continue
				}

				return geom.Point{}, ErrInfeasible
			}

			angleDiff := number.TrueMod(hi.Normal().XAngle()-h.Normal().XAngle(), 2*math.Pi)

			intersection, err := bounding.Intersect(h.BoundingLine())
			if err != nil {
				return geom.Point{}, err
			}

			if angleDiff < math.Pi {
				if bounding.IsVertical() {
					if (hi.Normal().GetX() < 0) == (intersection.GetY() > left) {
						left = intersection.GetY()
					}
				} else if (hi.Normal().GetY() < 0) == (intersection.GetX() < left) {
					left = intersection.GetX()
				}
			} else {
				if bounding.IsVertical() {
					if (hi.Normal().GetX() < 0) == (intersection.GetY() < right) {
						right = intersection.GetY()
					}
				} else if (hi.Normal().GetY() < 0) == (intersection.GetX() > right) {
					right = intersection.GetX()
				}
			}
		}

		// Oriented emptiness test for [left, right].
		if ((bounding.IsVertical() && hi.Normal().GetX() > 0) ||
			(!bounding.IsVertical() && hi.Normal().GetY() < 0)) && left < right {
			return geom.Point{}, ErrInfeasible
		}

		if ((bounding.IsVertical() && hi.Normal().GetX() < 0) ||
			(!bounding.IsVertical() && hi.Normal().GetY() > 0)) && left > right {
			return geom.Point{}, ErrInfeasible
		}

		// Reoptimize: project the preferred velocity onto the
		// bounding line and clamp its parameter into [left, right].
		projection := geom.MakePointFromVector(vMax).ProjectionOnto(bounding)

		var err error
		if bounding.IsVertical() {
			if (hi.Normal().GetX() < 0) == (projection.GetY() < left) {
				solution, err = bounding.PointAtY(left)
			} else if (hi.Normal().GetX() < 0) == (projection.GetY() > right) {
				solution, err = bounding.PointAtY(right)
			} else {
				solution = projection
			}
		} else {
			if (hi.Normal().GetY() < 0) == (projection.GetX() > left) {
				solution, err = bounding.PointAtX(left)
			} else if (hi.Normal().GetY() < 0) == (projection.GetX() < right) {
				solution, err = bounding.PointAtX(right)
			} else {
				solution = projection
			}
		}
		if err != nil {
			return geom.Point{}, err
		}
	}

	return solution, nil
}

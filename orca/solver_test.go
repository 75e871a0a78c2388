package orca

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/orcaswarm/orcaswarm/geom"
)

func makeHP(px, py, nx, ny float64) geom.HalfPlane {
	return geom.MakeHalfPlane(geom.MakePoint(px, py), geom.MakeVector2(nx, ny))
}

func solverRng() *rand.Rand {
	return rand.New(rand.NewSource(1))
}

func TestSolveLinearProgram(t *testing.T) {
	examples := []struct {
		Name       string
		HalfPlanes []geom.HalfPlane
		VPref      geom.Vector2
		MaxSpeed   float64
		Expected   geom.Point
		Infeasible bool
	}{
		{
			Name:       "no constraints returns the preferred velocity",
			HalfPlanes: []geom.HalfPlane{},
			VPref:      geom.MakeVector2(0.3, -0.4),
			MaxSpeed:   1,
			Expected:   geom.MakePoint(0.3, -0.4),
		},
		{
			Name:       "a satisfied constraint leaves the preferred velocity",
			HalfPlanes: []geom.HalfPlane{makeHP(-2, 0, 1, 0)},
			VPref:      geom.MakeVector2(1, 0),
			MaxSpeed:   1,
			Expected:   geom.MakePoint(1, 0),
		},
		{
			Name:       "a violated vertical constraint moves onto its line",
			HalfPlanes: []geom.HalfPlane{makeHP(0.5, 0, 1, 0)},
			VPref:      geom.MakeVector2(0, 0),
			MaxSpeed:   1,
			Expected:   geom.MakePoint(0.5, 0),
		},
		{
			Name:       "a violated horizontal constraint moves onto its line",
			HalfPlanes: []geom.HalfPlane{makeHP(0, 0.5, 0, 1)},
			VPref:      geom.MakeVector2(0, 0),
			MaxSpeed:   1,
			Expected:   geom.MakePoint(0, 0.5),
		},
		{
			Name:       "a violated diagonal constraint projects onto its line",
			HalfPlanes: []geom.HalfPlane{makeHP(0.3, 0.3, 1, 1)},
			VPref:      geom.MakeVector2(0, 0),
			MaxSpeed:   1,
			Expected:   geom.MakePoint(0.3, 0.3),
		},
		{
			Name:       "a tangent constraint forces the tangent point",
			HalfPlanes: []geom.HalfPlane{makeHP(1, 0, 1, 0)},
			VPref:      geom.MakeVector2(0, 0),
			MaxSpeed:   1,
			Expected:   geom.MakePoint(1, 0),
		},
		{
			Name:       "two axis constraints intersect at the corner",
			HalfPlanes: []geom.HalfPlane{makeHP(0.3, 0, 1, 0), makeHP(0, 0.4, 0, 1)},
			VPref:      geom.MakeVector2(0, 0),
			MaxSpeed:   1,
			Expected:   geom.MakePoint(0.3, 0.4),
		},
		{
			Name:       "a bounding line outside the disk is infeasible",
			HalfPlanes: []geom.HalfPlane{makeHP(2, 0, 1, 0)},
			VPref:      geom.MakeVector2(1, 0),
			MaxSpeed:   1,
			Infeasible: true,
		},
		{
			Name:       "anti-aligned parallel constraints are infeasible",
			HalfPlanes: []geom.HalfPlane{makeHP(0, 0.2, 0, 1), makeHP(0, -0.2, 0, -1)},
			VPref:      geom.MakeVector2(0, 0),
			MaxSpeed:   1,
			Infeasible: true,
		},
	}

	for _, example := range examples {
		t.Run(example.Name, func(t *testing.T) {
			solution, err := SolveLinearProgram(example.HalfPlanes, example.VPref, example.MaxSpeed, solverRng())

			if example.Infeasible {
				assert.ErrorIs(t, err, ErrInfeasible)
				return
			}

			assert.NoError(t, err)
			assert.InDelta(t, example.Expected.GetX(), solution.GetX(), 1e-12)
			assert.InDelta(t, example.Expected.GetY(), solution.GetY(), 1e-12)

			for _, h := range example.HalfPlanes {
				assert.True(t, h.Contains(solution), "solution must satisfy every half-plane")
			}

			assert.LessOrEqual(t, solution.ToVector().Norm(), example.MaxSpeed+1e-12)
		})
	}
}

func TestSolveLinearProgramClampsPreferredVelocity(t *testing.T) {
	solution, err := SolveLinearProgram(nil, geom.MakeVector2(3, 0), 1, solverRng())

	assert.NoError(t, err)
	assert.Equal(t, geom.MakePoint(1, 0), solution)
}

func TestSolveLinearProgramRedundantConstraintOutsideDisk(t *testing.T) {
	// the whole disk lies inside the half-plane; the constraint is dropped
	solution, err := SolveLinearProgram([]geom.HalfPlane{makeHP(-2, 0, 1, 0)}, geom.MakeVector2(-0.5, 0), 1, solverRng())

	assert.NoError(t, err)
	assert.Equal(t, geom.MakePoint(-0.5, 0), solution)
}

func TestSolveLinearProgramDeterministicWithSeed(t *testing.T) {
	halfPlanes := func() []geom.HalfPlane {
		return []geom.HalfPlane{
			makeHP(0.3, 0, 1, 0),
			makeHP(0, 0.4, 0, 1),
			makeHP(-0.9, 0, 1, 0),
		}
	}

	first, err := SolveLinearProgram(halfPlanes(), geom.MakeVector2(0, 0), 1, rand.New(rand.NewSource(99)))
	assert.NoError(t, err)

	second, err := SolveLinearProgram(halfPlanes(), geom.MakeVector2(0, 0), 1, rand.New(rand.NewSource(99)))
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

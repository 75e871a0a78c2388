// Package geom is the 2D geometry kernel of the avoidance engine:
// points, free vectors, lines in slope/intercept form and half-planes.
//
// All comparisons are exact floating-point comparisons. The solver's
// branches are driven by sign tests whose outcomes must stay consistent
// within one iteration, so no epsilon tolerance is introduced anywhere
// in this package.
package geom

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/orcaswarm/orcaswarm/common/utils/number"
)

type Vector2 struct {
	x float64
	y float64
}

func MakeVector2(x float64, y float64) Vector2 {
	return Vector2{x, y}
}

// Returns a null vector2
func MakeNullVector2() Vector2 {
	return MakeVector2(0, 0)
}

// MakeUnitVector2 returns the unit vector making an angle of xAngle
// with the x-axis, with xAngle wrapped into [0, 2*Pi).
func MakeUnitVector2(xAngle float64) Vector2 {
	bound := number.TrueMod(xAngle, 2*math.Pi)
	return MakeVector2(math.Cos(bound), math.Sin(bound))
}

func (v Vector2) Get() (float64, float64) {
	return v.x, v.y
}

func (v Vector2) GetX() float64 {
	return v.x
}

func (v Vector2) GetY() float64 {
	return v.y
}

var floatformat = byte('f')

func (v Vector2) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = strconv.AppendFloat(b, v.x, floatformat, 4, 64)
	b = append(b, byte(','))
	b = strconv.AppendFloat(b, v.y, floatformat, 4, 64)
	return append(b, byte(']')), nil
}

func (v Vector2) MarshalJSONString() string {
	res, _ := json.Marshal(v)
	return string(res)
}

func (a Vector2) Add(b Vector2) Vector2 {
	a.x += b.x
	a.y += b.y
	return a
}

func (a Vector2) Sub(b Vector2) Vector2 {
	a.x -= b.x
	a.y -= b.y
	return a
}

func (a Vector2) Neg() Vector2 {
	return MakeVector2(-a.x, -a.y)
}

func (a Vector2) MultScalar(f float64) Vector2 {
	a.x *= f
	a.y *= f
	return a
}

func (a Vector2) DivScalar(f float64) Vector2 {
	a.x /= f
	a.y /= f
	return a
}

func (a Vector2) Dot(b Vector2) float64 {
	return a.x*b.x + a.y*b.y
}

func (a Vector2) Norm() float64 {
	return math.Sqrt(a.NormSq())
}

func (a Vector2) NormSq() float64 {
	return a.x*a.x + a.y*a.y
}

// XAngle returns the angle, in [0, 2*Pi), that the vector makes with
// the x-axis. The null vector is mapped to 0.
func (a Vector2) XAngle() float64 {
	if a.Norm() == 0 {
		return 0
	}

	if a.x == 0 {
		if a.y < 0 {
			return math.Pi/2 + math.Pi
		}

		return math.Pi / 2
	}

	angle := math.Atan(a.y / a.x)
	if a.x < 0 {
		angle += math.Pi
	}

	return number.TrueMod(angle, 2*math.Pi)
}

// Rotated returns the vector rotated by angle, preserving its norm.
func (a Vector2) Rotated(angle float64) Vector2 {
	return MakeUnitVector2(a.XAngle() + angle).Normalized(a.Norm())
}

// ProjectionOnto returns the projection of the vector onto b. The
// result always points in the direction of b, with norm |a.b| / |b|.
func (a Vector2) ProjectionOnto(b Vector2) Vector2 {
	return b.Normalized(math.Abs(a.Dot(b)) / b.Norm())
}

// Normalized returns the vector scaled to the given norm. Normalizing
// the null vector is a no-op.
func (a Vector2) Normalized(newNorm float64) Vector2 {
	norm := a.Norm()
	if norm != 0 {
		a.x *= newNorm / norm
		a.y *= newNorm / norm
	}
	return a
}

func (a Vector2) LimitNorm(maxNorm float64) Vector2 {
	if a.Norm() > maxNorm {
		return a.Normalized(maxNorm)
	}

	return a
}

func (a Vector2) LimitNormOf(b Vector2) Vector2 {
	return a.LimitNorm(b.Norm())
}

// Equals is exact componentwise equality.
func (a Vector2) Equals(b Vector2) bool {
	return a.x == b.x && a.y == b.y
}

// IsNorm tests the vector's norm against d, exactly.
func (a Vector2) IsNorm(d float64) bool {
	return a.Norm() == d
}

func (a Vector2) String() string {
	return "<Vector2(" + number.FloatToStr(a.x, 5) + ", " + number.FloatToStr(a.y, 5) + ")>"
}

package geom

import (
	"math"

	"github.com/orcaswarm/orcaswarm/common/utils/number"
)

var positiveInfinity = math.Inf(1)

// Line is stored in slope/intercept form: y = slope*x + yIntercept.
// A vertical line has slope +Inf and carries its x in xIntercept.
// Invariants:
//   - vertical: yIntercept = 0, xIntercept holds the x of the line
//   - horizontal (slope 0): xIntercept = 0, yIntercept holds the y
//   - otherwise: xIntercept = -yIntercept/slope
//
// An intercept of 0 is therefore only meaningful after checking
// IsVertical/IsHorizontal.
type Line struct {
	slope      float64
	yIntercept float64
	xIntercept float64
}

// MakeLine builds a line from a slope and an intercept. The intercept
// is read as the x-intercept when the slope is infinite, and as the
// y-intercept otherwise. A slope of -Inf is normalized to +Inf so that
// vertical lines have a single representative.
func MakeLine(slope float64, intercept float64) Line {
	if math.IsInf(slope, -1) {
		slope = math.Inf(1)
	}

	l := Line{slope: slope}
	if l.IsVertical() {
		l.yIntercept = 0
		l.xIntercept = intercept
	} else {
		l.yIntercept = intercept
		if l.IsHorizontal() {
			l.xIntercept = 0
		} else {
			l.xIntercept = -intercept / slope
		}
	}

	return l
}

// MakeLineThrough builds the line going through p1 and p2. Two equal
// points yield the horizontal line at their y.
func MakeLineThrough(p1 Point, p2 Point) Line {
	if p1.GetX() == p2.GetX() && p1.GetY() != p2.GetY() {
		return Line{slope: math.Inf(1), yIntercept: 0, xIntercept: p1.GetX()}
	}

	slope := 0.0
	if !p1.Equals(p2) {
		slope = (p2.GetY() - p1.GetY()) / (p2.GetX() - p1.GetX())
	}

	l := Line{slope: slope, yIntercept: p1.GetY() - p1.GetX()*slope}
	if !l.IsHorizontal() {
		l.xIntercept = -l.yIntercept / slope
	}

	return l
}

func MakeLineFromOrigin(p Point) Line {
	return MakeLineThrough(MakeOrigin(), p)
}

// MakeLineAtAngle builds the line through the origin making an angle
// of xAngle with the x-axis, with xAngle wrapped into [0, Pi).
func MakeLineAtAngle(xAngle float64) Line {
	bound := number.TrueMod(xAngle, math.Pi)
	if bound == math.Pi/2 {
		return Line{slope: math.Inf(1)}
	}

	return Line{slope: math.Tan(bound)}
}

// MakePerpendicularLine builds the perpendicular to that going
// through p.
func MakePerpendicularLine(that Line, p Point) Line {
	if that.IsHorizontal() {
		return Line{slope: math.Inf(1), yIntercept: 0, xIntercept: p.GetX()}
	}

	slope := -1 / that.slope
	l := Line{slope: slope, yIntercept: p.GetY() - p.GetX()*slope}
	if !l.IsHorizontal() {
		l.xIntercept = -l.yIntercept / slope
	}

	return l
}

func (l Line) Slope() float64 {
	return l.slope
}

func (l Line) YIntercept() float64 {
	return l.yIntercept
}

func (l Line) XIntercept() float64 {
	return l.xIntercept
}

// XAngle returns the angle in [0, Pi) that the line makes with the
// x-axis.
func (l Line) XAngle() float64 {
	return number.TrueMod(math.Atan(l.slope), math.Pi)
}

func (l Line) IsVertical() bool {
	return math.IsInf(l.slope, 1)
}

func (l Line) IsHorizontal() bool {
	return l.slope == 0
}

// Contains tests whether p lies on the line, exactly.
func (l Line) Contains(p Point) bool {
	if l.IsVertical() {
		return p.GetX() == l.xIntercept
	}

	return p.GetY() == l.slope*p.GetX()+l.yIntercept
}

// Rotated returns the line through the origin at the rotated angle.
func (l Line) Rotated(angle float64) Line {
	return MakeLineAtAngle(l.XAngle() + angle)
}

// Intersect returns the intersection point of the two lines, or
// ErrLinesParallel when their slopes are equal.
func (l Line) Intersect(that Line) (Point, error) {
	if l.Parallel(that) {
		return Point{}, ErrLinesParallel
	}

	if l.IsVertical() {
		return that.PointAtX(l.xIntercept)
	}

	if that.IsVertical() {
		return l.PointAtX(that.xIntercept)
	}

	return l.PointAtX((that.yIntercept - l.yIntercept) / (l.slope - that.slope))
}

// PointAtX returns the point on the line at the given x, or
// ErrLineVertical when the line does not define it uniquely.
func (l Line) PointAtX(x float64) (Point, error) {
	if l.IsVertical() {
		return Point{}, ErrLineVertical
	}

	return MakePoint(x, l.slope*x+l.yIntercept), nil
}

// PointAtY returns the point on the line at the given y, or
// ErrLineHorizontal when the line does not define it uniquely.
func (l Line) PointAtY(y float64) (Point, error) {
	if l.IsHorizontal() {
		return Point{}, ErrLineHorizontal
	}

	if l.IsVertical() {
		return MakePoint(l.xIntercept, y), nil
	}

	return MakePoint((y-l.yIntercept)/l.slope, y), nil
}

// Parallel tests whether the two lines have equal slopes.
func (l Line) Parallel(that Line) bool {
	return l.slope == that.slope
}

func (l Line) Equals(that Line) bool {
	return l.slope == that.slope &&
		((l.IsVertical() && l.xIntercept == that.xIntercept) ||
			(!l.IsVertical() && l.yIntercept == that.yIntercept))
}

func (l Line) String() string {
	if l.IsVertical() {
		return "<Line(x = " + number.FloatToStr(l.xIntercept, 5) + ")>"
	}

	return "<Line(y = " + number.FloatToStr(l.slope, 5) + "x + " + number.FloatToStr(l.yIntercept, 5) + ")>"
}

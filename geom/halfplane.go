package geom

// HalfPlane is the closed half of the plane { P : (P - normalPos) . normal >= 0 }.
// Points on the bounding line are included.
type HalfPlane struct {
	normalPos    Point
	normal       Vector2
	boundingLine Line
}

// MakeHalfPlane builds a half-plane from a point on its bounding line
// and an inward normal. A null normal defaults to (0, 1).
func MakeHalfPlane(normalPos Point, normal Vector2) HalfPlane {
	if normal.Norm() == 0 {
		normal = MakeVector2(0, 1)
	}

	var boundingLine Line
	if normal.GetY() == 0 {
		boundingLine = MakeLine(positiveInfinity, normalPos.GetX())
	} else {
		slope := -normal.GetX() / normal.GetY()
		boundingLine = MakeLine(slope, normalPos.GetY()-normalPos.GetX()*slope)
	}

	return HalfPlane{
		normalPos:    normalPos,
		normal:       normal,
		boundingLine: boundingLine,
	}
}

func (h HalfPlane) NormalPos() Point {
	return h.normalPos
}

func (h HalfPlane) Normal() Vector2 {
	return h.normal
}

func (h HalfPlane) BoundingLine() Line {
	return h.boundingLine
}

// Contains tests whether p belongs to the half-plane, bounding line
// included.
func (h HalfPlane) Contains(p Point) bool {
	return p.From(h.normalPos).Dot(h.normal) >= 0
}

// Equals compares bounding lines only: two half-planes with the same
// bounding line and opposite normals compare equal. The solver never
// relies on half-plane equality, only on containment, so this
// area-equality convention is kept from the reference geometry.
func (h HalfPlane) Equals(that HalfPlane) bool {
	return h.boundingLine.Equals(that.boundingLine)
}

func (h HalfPlane) String() string {
	return "<HalfPlane(" + h.normalPos.String() + ", " + h.normal.String() + ")>"
}

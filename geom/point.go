package geom

import (
	"encoding/json"
	"strconv"

	"github.com/orcaswarm/orcaswarm/common/utils/number"
)

type Point struct {
	x float64
	y float64
}

func MakePoint(x float64, y float64) Point {
	return Point{x, y}
}

// Returns the origin
func MakeOrigin() Point {
	return MakePoint(0, 0)
}

func MakePointFromVector(v Vector2) Point {
	return MakePoint(v.GetX(), v.GetY())
}

func (p Point) Get() (float64, float64) {
	return p.x, p.y
}

func (p Point) GetX() float64 {
	return p.x
}

func (p Point) GetY() float64 {
	return p.y
}

func (p Point) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = strconv.AppendFloat(b, p.x, floatformat, 4, 64)
	b = append(b, byte(','))
	b = strconv.AppendFloat(b, p.y, floatformat, 4, 64)
	return append(b, byte(']')), nil
}

func (p Point) MarshalJSONString() string {
	res, _ := json.Marshal(p)
	return string(res)
}

func (p Point) Add(v Vector2) Point {
	p.x += v.GetX()
	p.y += v.GetY()
	return p
}

func (p Point) Sub(v Vector2) Point {
	p.x -= v.GetX()
	p.y -= v.GetY()
	return p
}

func (p Point) AddPoint(that Point) Point {
	p.x += that.x
	p.y += that.y
	return p
}

// From returns the vector going from that to p.
func (p Point) From(that Point) Vector2 {
	return MakeVector2(p.x-that.x, p.y-that.y)
}

func (p Point) MultScalar(f float64) Point {
	p.x *= f
	p.y *= f
	return p
}

func (p Point) DivScalar(f float64) Point {
	p.x /= f
	p.y /= f
	return p
}

func (p Point) ToVector() Vector2 {
	return MakeVector2(p.x, p.y)
}

// ProjectionOnto returns the orthogonal projection of p onto l.
func (p Point) ProjectionOnto(l Line) Point {
	if l.IsVertical() {
		return MakePoint(l.XIntercept(), p.y)
	}

	denom := l.Slope()*l.Slope() + 1
	return MakePoint(
		(p.x+l.Slope()*(p.y-l.YIntercept()))/denom,
		(l.Slope()*(p.x+l.Slope()*p.y)+l.YIntercept())/denom,
	)
}

// Equals is exact componentwise equality.
func (p Point) Equals(that Point) bool {
	return p.x == that.x && p.y == that.y
}

func (p Point) String() string {
	return "<Point(" + number.FloatToStr(p.x, 5) + ", " + number.FloatToStr(p.y, 5) + ")>"
}

package curve

import (
	"errors"
	"fmt"

	"smallcurve/gf25"
)

// ErrInvalidPoint is returned by New when exactly one coordinate is supplied.
var ErrInvalidPoint = errors.New("curve: point needs both coordinates or neither")

// Point is an affine point on a short Weierstrass curve y^2 = x^3 + ax + b
// over GF(5^2), or the point at infinity. Points are immutable values and
// comparable; == is group-element equality. The zero value is the affine
// point (0, 0); use Infinity for the identity.
type Point struct {
	x, y     gf25.Elem
	infinity bool
}

// Infinity returns the identity element.
func Infinity() Point {
	return Point{infinity: true}
}

// NewAffine returns the affine point (x, y). No on-curve check is performed;
// callers are expected to supply points of the curve they pass to Add.
func NewAffine(x, y gf25.Elem) Point {
	return Point{x: x, y: y}
}

// New builds a point from optional coordinates: both nil gives the identity,
// both set gives the affine point. Exactly one coordinate is rejected.
func New(x, y *gf25.Elem) (Point, error) {
	switch {
	case x == nil && y == nil:
		return Infinity(), nil
	case x != nil && y != nil:
		return NewAffine(*x, *y), nil
	case x == nil:
		return Point{}, fmt.Errorf("%w: x missing", ErrInvalidPoint)
	default:
		return Point{}, fmt.Errorf("%w: y missing", ErrInvalidPoint)
	}
}

// IsInfinity reports whether p is the identity.
func (p Point) IsInfinity() bool {
	return p.infinity
}

// Coords returns the affine coordinates; ok is false for the identity.
func (p Point) Coords() (x, y gf25.Elem, ok bool) {
	if p.infinity {
		return gf25.Zero(), gf25.Zero(), false
	}
	return p.x, p.y, true
}

func (p Point) String() string {
	if p.infinity {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}

// Neg returns the additive inverse (x, -y); the identity maps to itself.
func Neg(p Point) Point {
	if p.infinity {
		return p
	}
	return Point{x: p.x, y: p.y.Neg()}
}

// Add applies the chord-and-tangent law to p and q on the curve with
// coefficient a (the constant term b does not enter the formulas). Cases are
// resolved in order: an identity operand yields the other operand; equal x
// with differing y is an inverse pair and yields the identity; an equal pair
// with y = 0 sits on a vertical tangent and yields the identity; otherwise
// the tangent slope (3x1^2+a)/(2y1) or chord slope (y2-y1)/(x2-x1) gives
// x3 = l^2 - x1 - x2, y3 = l(x1-x3) - y1. Once those cases are excluded
// both slope denominators are nonzero; a division error is nonetheless
// propagated, never replaced with a value.
func Add(p, q Point, a gf25.Elem) (Point, error) {
	if p.infinity {
		return q, nil
	}
	if q.infinity {
		return p, nil
	}
	if p.x == q.x && p.y != q.y {
		return Infinity(), nil
	}
	var slope gf25.Elem
	if p == q {
		if p.y.IsZero() {
			return Infinity(), nil
		}
		xx := p.x.Mul(p.x)
		num := gf25.New(3, 0).Mul(xx).Add(a)
		den := gf25.New(2, 0).Mul(p.y)
		l, err := num.Div(den)
		if err != nil {
			return Point{}, fmt.Errorf("curve: tangent slope: %w", err)
		}
		slope = l
	} else {
		l, err := q.y.Sub(p.y).Div(q.x.Sub(p.x))
		if err != nil {
			return Point{}, fmt.Errorf("curve: chord slope: %w", err)
		}
		slope = l
	}
	x3 := slope.Mul(slope).Sub(p.x).Sub(q.x)
	y3 := slope.Mul(p.x.Sub(x3)).Sub(p.y)
	return Point{x: x3, y: y3}, nil
}

// Double returns p added to itself.
func Double(p Point, a gf25.Elem) (Point, error) {
	return Add(p, p, a)
}

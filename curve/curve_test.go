package curve

import (
	"errors"
	"testing"

	"smallcurve/gf25"
)

// curvePoints brute-forces the affine points of y^2 = x^3 + ax + b.
func curvePoints(a, b gf25.Elem) []Point {
	var pts []Point
	for _, x := range gf25.All() {
		rhs := x.Mul(x).Mul(x).Add(a.Mul(x)).Add(b)
		for _, y := range gf25.All() {
			if y.Mul(y) == rhs {
				pts = append(pts, NewAffine(x, y))
			}
		}
	}
	return pts
}

func TestAddIdentityOperands(t *testing.T) {
	a := gf25.One()
	p := NewAffine(gf25.New(1, 2), gf25.New(4, 4))
	if got, err := Add(Infinity(), p, a); err != nil || got != p {
		t.Fatalf("inf + p = %v, %v", got, err)
	}
	if got, err := Add(p, Infinity(), a); err != nil || got != p {
		t.Fatalf("p + inf = %v, %v", got, err)
	}
	if got, err := Add(Infinity(), Infinity(), a); err != nil || !got.IsInfinity() {
		t.Fatalf("inf + inf = %v, %v", got, err)
	}
	if got, err := Double(Infinity(), a); err != nil || !got.IsInfinity() {
		t.Fatalf("2*inf = %v, %v", got, err)
	}
}

func TestAddInversePair(t *testing.T) {
	// (2,1) and (2,4) lie on y^2 = x^3 + 4x and negate each other.
	a := gf25.New(4, 0)
	p := NewAffine(gf25.New(2, 0), gf25.New(1, 0))
	q := NewAffine(gf25.New(2, 0), gf25.New(4, 0))
	if got, err := Add(p, q, a); err != nil || !got.IsInfinity() {
		t.Fatalf("p + (-p) = %v, %v", got, err)
	}
	// The rule keys on x and y alone, with no on-curve check.
	r := NewAffine(gf25.New(2, 0), gf25.New(2, 0))
	if got, err := Add(p, r, a); err != nil || !got.IsInfinity() {
		t.Fatalf("equal x, differing y = %v, %v", got, err)
	}
}

func TestDoubleOrderTwoPoint(t *testing.T) {
	// y^2 = x^3 + 4x has the three order-2 points (0,0), (1,0), (4,0).
	a := gf25.New(4, 0)
	for _, x := range []int{0, 1, 4} {
		p := NewAffine(gf25.New(x, 0), gf25.Zero())
		got, err := Double(p, a)
		if err != nil {
			t.Fatalf("2*(%d,0): %v", x, err)
		}
		if !got.IsInfinity() {
			t.Fatalf("2*(%d,0) = %v want infinity", x, got)
		}
	}
}

func TestDoubleDemoPoint(t *testing.T) {
	a := gf25.One()
	p := NewAffine(gf25.New(1, 2), gf25.New(4, 4))
	d, err := Double(p, a)
	if err != nil {
		t.Fatalf("2p: %v", err)
	}
	want := NewAffine(gf25.New(1, 2), gf25.New(1, 1))
	if d != want {
		t.Fatalf("2p = %v want %v", d, want)
	}
	if d != Neg(p) {
		t.Fatalf("2p = %v, expected the inverse of p", d)
	}
	sum, err := Add(p, d, a)
	if err != nil {
		t.Fatalf("p + 2p: %v", err)
	}
	if !sum.IsInfinity() {
		t.Fatalf("p + 2p = %v want infinity (p has order 3)", sum)
	}
}

func TestChordVectors(t *testing.T) {
	a := gf25.One()
	cases := []struct {
		p, q, want Point
	}{
		{
			NewAffine(gf25.New(0, 0), gf25.New(1, 0)),
			NewAffine(gf25.New(2, 0), gf25.New(1, 0)),
			NewAffine(gf25.New(3, 0), gf25.New(4, 0)),
		},
		{
			NewAffine(gf25.New(0, 0), gf25.New(1, 0)),
			NewAffine(gf25.New(1, 0), gf25.New(0, 1)),
			NewAffine(gf25.New(3, 3), gf25.New(3, 0)),
		},
	}
	for _, c := range cases {
		got, err := Add(c.p, c.q, a)
		if err != nil {
			t.Fatalf("%v + %v: %v", c.p, c.q, err)
		}
		if got != c.want {
			t.Fatalf("%v + %v = %v want %v", c.p, c.q, got, c.want)
		}
	}
}

// The demonstration curve y^2 = x^3 + x + 1 has group order 27 over GF(5^2),
// so the sweep must find 26 affine points.
func TestDemoCurveSweep(t *testing.T) {
	d := DefaultParams()
	pts := curvePoints(d.A, d.B)
	if len(pts) != 26 {
		t.Fatalf("found %d affine points, want 26", len(pts))
	}
	seen := make(map[Point]bool, len(pts))
	for _, p := range pts {
		if seen[p] {
			t.Fatalf("duplicate point %v", p)
		}
		seen[p] = true
	}
}

func TestGroupLawsOnDemoCurve(t *testing.T) {
	d := DefaultParams()
	set := append(curvePoints(d.A, d.B), Infinity())
	member := make(map[Point]bool, len(set))
	for _, p := range set {
		member[p] = true
	}
	for _, p := range set {
		inv, err := Add(p, Neg(p), d.A)
		if err != nil {
			t.Fatalf("p + (-p) for %v: %v", p, err)
		}
		if !inv.IsInfinity() {
			t.Fatalf("p + (-p) = %v for %v", inv, p)
		}
		for _, q := range set {
			pq, err := Add(p, q, d.A)
			if err != nil {
				t.Fatalf("%v + %v: %v", p, q, err)
			}
			if !member[pq] {
				t.Fatalf("%v + %v = %v escapes the group", p, q, pq)
			}
			qp, err := Add(q, p, d.A)
			if err != nil {
				t.Fatalf("%v + %v: %v", q, p, err)
			}
			if pq != qp {
				t.Fatalf("%v + %v = %v but reversed gives %v", p, q, pq, qp)
			}
		}
	}
}

func TestAssociativityOnDemoCurve(t *testing.T) {
	d := DefaultParams()
	set := append(curvePoints(d.A, d.B), Infinity())
	for _, p := range set {
		for _, q := range set {
			pq, err := Add(p, q, d.A)
			if err != nil {
				t.Fatalf("%v + %v: %v", p, q, err)
			}
			for _, r := range set {
				qr, err := Add(q, r, d.A)
				if err != nil {
					t.Fatalf("%v + %v: %v", q, r, err)
				}
				left, err := Add(pq, r, d.A)
				if err != nil {
					t.Fatalf("(p+q) + r: %v", err)
				}
				right, err := Add(p, qr, d.A)
				if err != nil {
					t.Fatalf("p + (q+r): %v", err)
				}
				if left != right {
					t.Fatalf("associativity fails at %v, %v, %v", p, q, r)
				}
			}
		}
	}
}

func TestNewOptionalCoords(t *testing.T) {
	x := gf25.New(1, 2)
	y := gf25.New(4, 4)
	p, err := New(&x, &y)
	if err != nil {
		t.Fatalf("New(&x, &y): %v", err)
	}
	if p != NewAffine(x, y) {
		t.Fatalf("New(&x, &y) = %v", p)
	}
	p, err = New(nil, nil)
	if err != nil {
		t.Fatalf("New(nil, nil): %v", err)
	}
	if !p.IsInfinity() {
		t.Fatalf("New(nil, nil) = %v want infinity", p)
	}
	if _, err := New(&x, nil); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("New(&x, nil) err = %v want ErrInvalidPoint", err)
	}
	if _, err := New(nil, &y); !errors.Is(err, ErrInvalidPoint) {
		t.Fatalf("New(nil, &y) err = %v want ErrInvalidPoint", err)
	}
}

func TestNeg(t *testing.T) {
	p := NewAffine(gf25.New(1, 2), gf25.New(4, 4))
	want := NewAffine(gf25.New(1, 2), gf25.New(1, 1))
	if got := Neg(p); got != want {
		t.Fatalf("-p = %v want %v", got, want)
	}
	if got := Neg(Infinity()); !got.IsInfinity() {
		t.Fatalf("-inf = %v", got)
	}
}

func TestCoords(t *testing.T) {
	p := NewAffine(gf25.New(1, 2), gf25.New(4, 4))
	x, y, ok := p.Coords()
	if !ok || x != gf25.New(1, 2) || y != gf25.New(4, 4) {
		t.Fatalf("Coords = %v, %v, %v", x, y, ok)
	}
	if _, _, ok := Infinity().Coords(); ok {
		t.Fatal("identity reported affine coords")
	}
	if !Infinity().IsInfinity() || p.IsInfinity() {
		t.Fatal("IsInfinity misreports")
	}
}

func TestPointString(t *testing.T) {
	cases := []struct {
		p    Point
		want string
	}{
		{Infinity(), "infinity"},
		{NewAffine(gf25.New(1, 2), gf25.New(4, 4)), "(1 + 2t, 4 + 4t)"},
		{NewAffine(gf25.Zero(), gf25.New(0, 1)), "(0, 1t)"},
		{NewAffine(gf25.New(3, 0), gf25.New(4, 0)), "(3, 4)"},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Fatalf("String = %q want %q", got, c.want)
		}
	}
}

func BenchmarkAdd(b *testing.B) {
	d := DefaultParams()
	q, err := Double(d.P, d.A)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Add(d.P, q, d.A); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDouble(b *testing.B) {
	d := DefaultParams()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Double(d.P, d.A); err != nil {
			b.Fatal(err)
		}
	}
}

package curve

import (
	"encoding/json"
	"fmt"
	"os"

	"smallcurve/gf25"
)

// Params bundles a curve definition with two seed points for the
// demonstration tools. B is part of the curve equation but does not enter
// the addition formulas.
type Params struct {
	A gf25.Elem
	B gf25.Elem
	P Point
	Q Point
}

// coeffPair is the JSON form of a field element, [a, b] for a + bt.
// Entries may be any integers; they are folded into the field on load.
type coeffPair [2]int

func (c coeffPair) elem() gf25.Elem {
	return gf25.New(c[0], c[1])
}

// pointFile mirrors one affine point in the params JSON.
type pointFile struct {
	X coeffPair `json:"X"`
	Y coeffPair `json:"Y"`
}

func (p pointFile) point() Point {
	return NewAffine(p.X.elem(), p.Y.elem())
}

// paramsFile mirrors the JSON schema stored on disk.
type paramsFile struct {
	A *coeffPair `json:"A"`
	B *coeffPair `json:"B"`
	P *pointFile `json:"P"`
	Q *pointFile `json:"Q"`
}

// LoadParams reads a curve parameter JSON file.
//
// Expected schema:
//
//	{ "A": [1,0], "B": [1,0],
//	  "P": {"X": [1,2], "Y": [4,4]},
//	  "Q": {"X": [1,2], "Y": [4,4]} }
//
// All four entries are required so a zero coefficient cannot be confused
// with an omitted one.
func LoadParams(path string) (*Params, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read params: %w", err)
	}
	var pf paramsFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("parse params: %w", err)
	}
	if pf.A == nil || pf.B == nil {
		return nil, fmt.Errorf("params: A and B required")
	}
	if pf.P == nil || pf.Q == nil {
		return nil, fmt.Errorf("params: seed points P and Q required")
	}
	return &Params{
		A: pf.A.elem(),
		B: pf.B.elem(),
		P: pf.P.point(),
		Q: pf.Q.point(),
	}, nil
}

// DefaultParams returns the demonstration instance: y^2 = x^3 + x + 1 over
// GF(5^2) with both seed points at (1 + 2t, 4 + 4t).
func DefaultParams() Params {
	p := NewAffine(gf25.New(1, 2), gf25.New(4, 4))
	return Params{
		A: gf25.One(),
		B: gf25.One(),
		P: p,
		Q: p,
	}
}

package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"smallcurve/curve"
	"smallcurve/gf25"
	"smallcurve/prof"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

var debugOn = os.Getenv("CURVEMAP_DEBUG") == "1"

func dbg(w io.Writer, f string, a ...any) {
	if debugOn {
		fmt.Fprintf(w, f, a...)
	}
}

type pointJSON struct {
	X    string `json:"x"`
	Y    string `json:"y"`
	XIdx int    `json:"x_idx"`
	YIdx int    `json:"y_idx"`
}

type sweepReport struct {
	A           string      `json:"a"`
	B           string      `json:"b"`
	Count       int         `json:"count"`
	Fingerprint string      `json:"fingerprint"`
	SpotChecks  int         `json:"spot_checks,omitempty"`
	Points      []pointJSON `json:"points"`
}

// ------------------------------ point sweep ------------------------------

// sweepPoints collects the affine points of y^2 = x^3 + ax + b by testing
// all 625 coordinate pairs.
func sweepPoints(a, b gf25.Elem) []curve.Point {
	defer prof.Track(time.Now(), "sweep")
	var pts []curve.Point
	for _, x := range gf25.All() {
		rhs := x.Mul(x).Mul(x).Add(a.Mul(x)).Add(b)
		dbg(os.Stderr, "x=%s rhs=%s\n", x, rhs)
		for _, y := range gf25.All() {
			if y.Mul(y) == rhs {
				pts = append(pts, curve.NewAffine(x, y))
			}
		}
	}
	return pts
}

func pointKey(p curve.Point) int {
	x, y, _ := p.Coords()
	return x.Index()*25 + y.Index()
}

func sortPoints(pts []curve.Point) {
	sort.Slice(pts, func(i, j int) bool { return pointKey(pts[i]) < pointKey(pts[j]) })
}

// ------------------------------ fingerprint ------------------------------

// fingerprintPrefix domain-separates the digest from other SHAKE uses.
const fingerprintPrefix = "curvemap/points/v1"

// fingerprint hashes the sorted point list to a 16-byte SHAKE-256 digest so
// sweeps of the same curve are comparable across runs.
func fingerprint(pts []curve.Point) [16]byte {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte(fingerprintPrefix))
	for _, p := range pts {
		x, y, _ := p.Coords()
		xa, xb := x.Coeffs()
		ya, yb := y.Coeffs()
		_, _ = h.Write([]byte{xa, xb, ya, yb})
	}
	var out [16]byte
	_, _ = h.Read(out[:])
	return out
}

// ------------------------------ spot checks ------------------------------

func newSpotPRNG(seedHex string) (io.Reader, error) {
	if seedHex == "" {
		return utils.NewPRNG()
	}
	seed, err := hex.DecodeString(strings.TrimPrefix(seedHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("seedhex: %w", err)
	}
	return utils.NewKeyedPRNG(seed)
}

// spotCheck draws n random pairs from the found set and verifies their sum
// stays inside the set extended by the identity.
func spotCheck(pts []curve.Point, a gf25.Elem, n int, prng io.Reader) error {
	defer prof.Track(time.Now(), "spotcheck")
	member := make(map[curve.Point]bool, len(pts)+1)
	for _, p := range pts {
		member[p] = true
	}
	member[curve.Infinity()] = true
	var idx [2]byte
	for i := 0; i < n; i++ {
		if _, err := io.ReadFull(prng, idx[:]); err != nil {
			return fmt.Errorf("draw pair: %w", err)
		}
		p := pts[int(idx[0])%len(pts)]
		q := pts[int(idx[1])%len(pts)]
		sum, err := curve.Add(p, q, a)
		if err != nil {
			return fmt.Errorf("%v + %v: %w", p, q, err)
		}
		if !member[sum] {
			return fmt.Errorf("%v + %v = %v escapes the point set", p, q, sum)
		}
	}
	return nil
}

// ------------------------- plotting: go-echarts HTML -------------------------

func buildScatter(pts []curve.Point, a, b gf25.Elem) *charts.Scatter {
	sc := charts.NewScatter()
	title := fmt.Sprintf("y^2 = x^3 + (%s)x + (%s) over GF(25)", a, b)
	sc.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: fmt.Sprintf("%d affine points; axes are the basis index a+5b", len(pts)),
		}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "900px", Height: "600px"}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:      opts.Bool(true),
			Trigger:   "item",
			Formatter: opts.FuncOpts(`function (p) { var v = p.value || []; return v[2] || ''; }`),
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: "x index", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "y index", Type: "value"}),
	)
	items := make([]opts.ScatterData, 0, len(pts))
	for _, p := range pts {
		x, y, _ := p.Coords()
		items = append(items, opts.ScatterData{Value: []interface{}{x.Index(), y.Index(), p.String()}})
	}
	sc.AddSeries("points", items,
		charts.WithScatterChartOpts(opts.ScatterChart{Symbol: "circle", SymbolSize: 12}))
	return sc
}

func renderChart(path string, pts []curve.Point, a, b gf25.Elem) error {
	defer prof.Track(time.Now(), "render")
	page := components.NewPage().SetPageTitle("curvemap")
	page.AddCharts(buildScatter(pts, a, b))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return page.Render(f)
}

// ------------------------------ JSON and I/O ------------------------------

func saveJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

func buildReport(par curve.Params, pts []curve.Point, fp [16]byte, spot int) sweepReport {
	out := sweepReport{
		A:           par.A.String(),
		B:           par.B.String(),
		Count:       len(pts),
		Fingerprint: hex.EncodeToString(fp[:]),
		SpotChecks:  spot,
		Points:      make([]pointJSON, 0, len(pts)),
	}
	for _, p := range pts {
		x, y, _ := p.Coords()
		out.Points = append(out.Points, pointJSON{
			X:    x.String(),
			Y:    y.String(),
			XIdx: x.Index(),
			YIdx: y.Index(),
		})
	}
	return out
}

// ------------------------------- main routine -------------------------------

func main() {
	paramsPath := flag.String("params", "", "curve parameter JSON file (default: built-in demo instance)")
	outDir := flag.String("out", "Curve_Reports", "output directory for reports")
	spot := flag.Int("spot", 0, "number of random pair sums to closure-check")
	seedHex := flag.String("seedhex", "", "optional hex seed for -spot sampling (deterministic)")
	flag.Parse()

	par := curve.DefaultParams()
	if *paramsPath != "" {
		loaded, err := curve.LoadParams(*paramsPath)
		if err != nil {
			log.Fatalf("load params: %v", err)
		}
		par = *loaded
	}

	log.Printf("[curvemap] sweeping y^2 = x^3 + (%s)x + (%s)", par.A, par.B)
	pts := sweepPoints(par.A, par.B)
	sortPoints(pts)
	log.Printf("[curvemap] found %d affine points", len(pts))

	if *spot > 0 {
		if len(pts) == 0 {
			log.Fatalf("spot check: no affine points to draw from")
		}
		prng, err := newSpotPRNG(*seedHex)
		if err != nil {
			log.Fatalf("spot prng: %v", err)
		}
		if err := spotCheck(pts, par.A, *spot, prng); err != nil {
			log.Fatalf("spot check: %v", err)
		}
		log.Printf("[curvemap] %d random pair sums stayed in the group", *spot)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir: %v", err)
	}
	ts := time.Now().Format("20060102_150405")

	fp := fingerprint(pts)
	jsonPath := filepath.Join(*outDir, fmt.Sprintf("curve_points_%s.json", ts))
	if err := saveJSON(jsonPath, buildReport(par, pts, fp, *spot)); err != nil {
		log.Fatalf("save report: %v", err)
	}

	htmlPath := filepath.Join(*outDir, fmt.Sprintf("curve_map_%s.html", ts))
	if err := renderChart(htmlPath, pts, par.A, par.B); err != nil {
		log.Fatalf("render html: %v", err)
	}

	if err := prof.WriteReport(os.Stderr); err != nil {
		log.Printf("warn: timing report: %v", err)
	}
	fmt.Println("Point map:", htmlPath)
	fmt.Println("Report JSON:", jsonPath)
}

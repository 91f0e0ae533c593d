// Package shape draws the eight phase glyphs.
//
// Every builder is a pure function of a centre point and a colour. Some return a
// single primitive (circle, polygon, path), others a group of primitives; callers
// must treat the result as an opaque fragment and never assume its arity.
package shape

import (
	"math"

	"github.com/fyrsmithlabs/phaseart/internal/phase"
	"github.com/fyrsmithlabs/phaseart/internal/svg"
)

// Func builds a glyph centred at (cx, cy) in the given colour.
type Func func(cx, cy float64, color string) *svg.Element

// Radius is the nominal radius of the single-primitive glyphs.
const Radius = 40

var builders = map[phase.Shape]Func{
	phase.ShapeCircle:   Circle,
	phase.ShapeTriangle: Triangle,
	phase.ShapeGrid:     Grid,
	phase.ShapePolygon:  Polygon,
	phase.ShapeSpiral:   Spiral,
	phase.ShapeLattice:  Lattice,
	phase.ShapeWave:     Wave,
	phase.ShapeRing:     Ring,
}

// For returns the builder for kind.
func For(kind phase.Shape) (Func, bool) {
	fn, ok := builders[kind]
	return fn, ok
}

// Circle is a filled disc.
func Circle(cx, cy float64, color string) *svg.Element {
	return svg.New("circle",
		svg.A("cx", svg.Num(cx)),
		svg.A("cy", svg.Num(cy)),
		svg.A("r", svg.Num(Radius)),
		svg.A("fill", color),
		svg.A("opacity", "0.85"),
	)
}

// Triangle is a filled, roughly equilateral triangle pointing up.
func Triangle(cx, cy float64, color string) *svg.Element {
	return svg.New("polygon",
		svg.A("points", svg.Points(
			[2]float64{cx, cy - 45},
			[2]float64{cx - 39, cy + 22},
			[2]float64{cx + 39, cy + 22},
		)),
		svg.A("fill", color),
		svg.A("opacity", "0.85"),
	)
}

// Grid is a 3x3 block of squares.
func Grid(cx, cy float64, color string) *svg.Element {
	const size = 15
	const step = size + 4

	g := svg.Group()
	for row := -1; row <= 1; row++ {
		for col := -1; col <= 1; col++ {
			g.Append(svg.New("rect",
				svg.A("x", svg.Num(cx+float64(col*step)-size/2.0)),
				svg.A("y", svg.Num(cy+float64(row*step)-size/2.0)),
				svg.A("width", svg.Num(size)),
				svg.A("height", svg.Num(size)),
				svg.A("fill", color),
				svg.A("opacity", "0.7"),
			))
		}
	}
	return g
}

// Polygon is a filled regular hexagon with a vertex pointing up.
func Polygon(cx, cy float64, color string) *svg.Element {
	const sides = 6

	pts := make([][2]float64, sides)
	for i := range pts {
		a := 2*math.Pi*float64(i)/sides - math.Pi/2
		pts[i] = [2]float64{cx + Radius*math.Cos(a), cy + Radius*math.Sin(a)}
	}
	return svg.New("polygon",
		svg.A("points", svg.Points(pts...)),
		svg.A("fill", color),
		svg.A("opacity", "0.85"),
	)
}

// Spiral is an open stroked path winding outward from the centre.
func Spiral(cx, cy float64, color string) *svg.Element {
	const steps = 80

	d := make([]byte, 0, 16*steps)
	d = append(d, "M "+svg.Num(cx)+" "+svg.Num(cy)...)
	for i := 1; i < steps; i++ {
		angle := float64(i) * 0.15
		r := float64(i) * 0.6
		d = append(d, " L "...)
		d = append(d, svg.Fixed(cx+r*math.Cos(angle), 1)...)
		d = append(d, ' ')
		d = append(d, svg.Fixed(cy+r*math.Sin(angle), 1)...)
	}
	return svg.New("path",
		svg.A("d", string(d)),
		svg.A("fill", "none"),
		svg.A("stroke", color),
		svg.A("stroke-width", "2.5"),
	)
}

// latticeNodes are the node offsets of the lattice glyph.
var latticeNodes = [...][2]float64{
	{-30, -20}, {0, -35}, {30, -20}, {-15, 10}, {15, 10}, {0, 35},
}

// latticeReach is the exclusive distance under which two nodes are joined.
const latticeReach = 45

// Lattice is a cluster of small nodes joined to their near neighbours.
func Lattice(cx, cy float64, color string) *svg.Element {
	g := svg.Group()
	for _, o := range latticeNodes {
		g.Append(svg.New("circle",
			svg.A("cx", svg.Num(cx+o[0])),
			svg.A("cy", svg.Num(cy+o[1])),
			svg.A("r", "8"),
			svg.A("fill", color),
			svg.A("opacity", "0.8"),
		))
	}
	for i, a := range latticeNodes {
		for _, b := range latticeNodes[i+1:] {
			if math.Hypot(a[0]-b[0], a[1]-b[1]) >= latticeReach {
				continue
			}
			g.Append(svg.New("line",
				svg.A("x1", svg.Num(cx+a[0])),
				svg.A("y1", svg.Num(cy+a[1])),
				svg.A("x2", svg.Num(cx+b[0])),
				svg.A("y2", svg.Num(cy+b[1])),
				svg.A("stroke", color),
				svg.A("stroke-width", "1"),
				svg.A("opacity", "0.4"),
			))
		}
	}
	return g
}

// Wave is three concentric closed polylines fading outward.
func Wave(cx, cy float64, color string) *svg.Element {
	const (
		rings    = 3
		segments = 36
	)

	g := svg.Group()
	for ring := 0; ring < rings; ring++ {
		r := float64(20 + ring*15)
		pts := make([][2]float64, segments+1)
		for i := range pts {
			a := 2 * math.Pi * float64(i) / segments
			pts[i] = [2]float64{cx + r*math.Cos(a), cy + r*math.Sin(a)}
		}
		g.Append(svg.New("polyline",
			svg.A("points", svg.Points(pts...)),
			svg.A("fill", "none"),
			svg.A("stroke", color),
			svg.A("stroke-width", "2"),
			svg.A("opacity", svg.Opacity(0.9-float64(ring)*0.2)),
		))
	}
	return g
}

// Ring is an unfilled stroked circle.
func Ring(cx, cy float64, color string) *svg.Element {
	return svg.New("circle",
		svg.A("cx", svg.Num(cx)),
		svg.A("cy", svg.Num(cy)),
		svg.A("r", svg.Num(Radius)),
		svg.A("fill", "none"),
		svg.A("stroke", color),
		svg.A("stroke-width", "3"),
		svg.A("opacity", "0.9"),
	)
}

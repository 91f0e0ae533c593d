// Package phase holds the registry of the eight pipeline phases.
//
// The registry is a statically initialized, read-only table. Registry order is
// significant: it fixes each phase's horizontal slot and its paint order in the
// composed artwork. ZIndex, OpacityRange and ScaleRange are carried as metadata
// only and do not influence rendering.
//
// Lookups never hand out references into the table, so the registry is safe for
// unsynchronized concurrent reads.
package phase

// Shape is the closed set of glyph kinds a phase is drawn with.
type Shape string

// Shape kinds, one per phase.
const (
	ShapeCircle   Shape = "circle"
	ShapeTriangle Shape = "triangle"
	ShapeGrid     Shape = "grid"
	ShapePolygon  Shape = "polygon"
	ShapeSpiral   Shape = "spiral"
	ShapeLattice  Shape = "lattice"
	ShapeWave     Shape = "wave"
	ShapeRing     Shape = "ring"
)

// String implements fmt.Stringer.
func (s Shape) String() string { return string(s) }

// Valid reports whether s is one of the eight shape kinds.
func (s Shape) Valid() bool {
	switch s {
	case ShapeCircle, ShapeTriangle, ShapeGrid, ShapePolygon,
		ShapeSpiral, ShapeLattice, ShapeWave, ShapeRing:
		return true
	}
	return false
}

// Motion is the closed set of animation behaviours, one per phase.
type Motion string

// Motion kinds. Each maps to a CSS class of the same name in the assembled document.
const (
	MotionRadialPulse       Motion = "radial_pulse"
	MotionUpwardDrift       Motion = "upward_drift"
	MotionSystematicScan    Motion = "systematic_scan"
	MotionShatter           Motion = "shatter"
	MotionInwardConvergence Motion = "inward_convergence"
	MotionSolidification    Motion = "solidification"
	MotionOutwardExpansion  Motion = "outward_expansion"
	MotionSteadyContraction Motion = "steady_contraction"
)

// String implements fmt.Stringer.
func (m Motion) String() string { return string(m) }

// Valid reports whether m is one of the eight motion kinds.
func (m Motion) Valid() bool {
	switch m {
	case MotionRadialPulse, MotionUpwardDrift, MotionSystematicScan, MotionShatter,
		MotionInwardConvergence, MotionSolidification, MotionOutwardExpansion,
		MotionSteadyContraction:
		return true
	}
	return false
}

// Range is an inclusive float interval.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Default tuning ranges shared by every phase.
var (
	DefaultOpacityRange = Range{Min: 0.4, Max: 1.0}
	DefaultScaleRange   = Range{Min: 0.8, Max: 1.2}
)

// Descriptor is the visual description of a single phase.
type Descriptor struct {
	Name         string
	Color        string
	Shape        Shape
	Motion       Motion
	ZIndex       int
	OpacityRange Range
	ScaleRange   Range
}

package phase

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownPhase indicates a name outside the eight canonical phases.
	ErrUnknownPhase = errors.New("unknown phase")

	// ErrInvalidDepth indicates an audit chain depth below one.
	ErrInvalidDepth = errors.New("invalid audit chain depth")
)

// Audit is the phase whose colour is used for audit rings.
const Audit = "audit"

// registry is the canonical table. Order matters.
var registry = [...]Descriptor{
	{Name: "observation", Color: "#1a1a4e", Shape: ShapeCircle, Motion: MotionRadialPulse, ZIndex: 0},
	{Name: "hypothesis", Color: "#f5a623", Shape: ShapeTriangle, Motion: MotionUpwardDrift, ZIndex: 1},
	{Name: "testing", Color: "#00d4ff", Shape: ShapeGrid, Motion: MotionSystematicScan, ZIndex: 2},
	{Name: "refutation", Color: "#dc3545", Shape: ShapePolygon, Motion: MotionShatter, ZIndex: 3},
	{Name: "revision", Color: "#28a745", Shape: ShapeSpiral, Motion: MotionInwardConvergence, ZIndex: 4},
	{Name: "consolidation", Color: "#6f42c1", Shape: ShapeLattice, Motion: MotionSolidification, ZIndex: 5},
	{Name: "propagation", Color: "#ffc107", Shape: ShapeWave, Motion: MotionOutwardExpansion, ZIndex: 6},
	{Name: Audit, Color: "#adb5bd", Shape: ShapeRing, Motion: MotionSteadyContraction, ZIndex: 7},
}

var (
	byName = make(map[string]int, len(registry))
	names  = make([]string, len(registry))
)

func init() {
	for i := range registry {
		registry[i].OpacityRange = DefaultOpacityRange
		registry[i].ScaleRange = DefaultScaleRange
		byName[registry[i].Name] = i
		names[i] = registry[i].Name
	}
}

// All returns every descriptor in registry order.
func All() []Descriptor {
	out := make([]Descriptor, len(registry))
	copy(out, registry[:])
	return out
}

// Names returns the canonical phase names in registry order.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Count returns the number of phases. Always 8.
func Count() int {
	return len(registry)
}

// Motions returns every motion kind in registry order.
func Motions() []Motion {
	out := make([]Motion, len(registry))
	for i, d := range registry {
		out[i] = d.Motion
	}
	return out
}

// Lookup returns the descriptor for name.
//
// Returns an error wrapping ErrUnknownPhase that names the offending value and
// lists every valid phase.
func Lookup(name string) (Descriptor, error) {
	d, _, err := LookupIndex(name)
	return d, err
}

// LookupIndex returns the descriptor for name together with its registry
// position.
func LookupIndex(name string) (Descriptor, int, error) {
	i, err := Index(name)
	if err != nil {
		return Descriptor{}, -1, err
	}
	return registry[i], i, nil
}

// Index returns the registry position of name.
func Index(name string) (int, error) {
	i, ok := byName[name]
	if !ok {
		return -1, fmt.Errorf("%w '%s'; valid phases: %s",
			ErrUnknownPhase, name, strings.Join(names, ", "))
	}
	return i, nil
}

// Color returns the hex colour of the named phase.
func Color(name string) (string, error) {
	d, err := Lookup(name)
	if err != nil {
		return "", err
	}
	return d.Color, nil
}

// Colors maps every phase name to its hex colour.
func Colors() map[string]string {
	out := make(map[string]string, len(registry))
	for _, d := range registry {
		out[d.Name] = d.Color
	}
	return out
}

package render

import (
	"fmt"
	"math"
	"strconv"

	"github.com/fyrsmithlabs/phaseart/internal/config"
	"github.com/fyrsmithlabs/phaseart/internal/phase"
	"github.com/fyrsmithlabs/phaseart/internal/shape"
	"github.com/fyrsmithlabs/phaseart/internal/svg"
)

// Canvas defaults.
const (
	DefaultWidth      = 1200
	DefaultHeight     = 800
	DefaultBackground = "#0d1117"
)

// Audit ring geometry.
const (
	auditRadiusFactor = 0.35
	auditRingStep     = 30
	auditOpacityStep  = 0.25
	auditMinOpacity   = 0.2
)

// Visualizer renders the phase pipeline onto a canvas.
type Visualizer struct {
	Width      int
	Height     int
	Background string

	// ActivePhases lists the phases selected for display. It defaults to all
	// eight and does not yet filter rendering.
	ActivePhases []string
}

// Option configures a Visualizer.
type Option func(*Visualizer)

// WithCanvas sets the canvas size.
func WithCanvas(width, height int) Option {
	return func(v *Visualizer) {
		v.Width = width
		v.Height = height
	}
}

// WithBackground sets the background fill colour.
func WithBackground(color string) Option {
	return func(v *Visualizer) {
		v.Background = color
	}
}

// WithActivePhases sets the active phase list.
func WithActivePhases(names ...string) Option {
	return func(v *Visualizer) {
		v.ActivePhases = append([]string(nil), names...)
	}
}

// New creates a Visualizer with a 1200x800 canvas on #0d1117 unless overridden.
func New(opts ...Option) *Visualizer {
	v := &Visualizer{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Background:   DefaultBackground,
		ActivePhases: phase.Names(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// NewFromConfig creates a Visualizer from the canvas section of the
// configuration. Zero fields keep their defaults.
func NewFromConfig(c config.CanvasConfig, opts ...Option) *Visualizer {
	base := make([]Option, 0, len(opts)+3)
	if c.Width > 0 {
		base = append(base, func(v *Visualizer) { v.Width = c.Width })
	}
	if c.Height > 0 {
		base = append(base, func(v *Visualizer) { v.Height = c.Height })
	}
	if c.Background != "" {
		base = append(base, WithBackground(c.Background))
	}
	return New(append(base, opts...)...)
}

// Descriptor returns the descriptor of the named phase.
func (v *Visualizer) Descriptor(name string) (phase.Descriptor, error) {
	return phase.Lookup(name)
}

// PhaseColor returns the hex colour of the named phase.
func (v *Visualizer) PhaseColor(name string) (string, error) {
	return phase.Color(name)
}

// Colors maps every phase name to its hex colour.
func (v *Visualizer) Colors() map[string]string {
	return phase.Colors()
}

// PhaseCount returns the number of phases. Always 8.
func (v *Visualizer) PhaseCount() int {
	return phase.Count()
}

// RenderPhase draws a single phase as a <g id="phase-<name>"> group.
func (v *Visualizer) RenderPhase(name string) (*svg.Element, error) {
	d, i, err := phase.LookupIndex(name)
	if err != nil {
		return nil, err
	}
	return v.phaseGroup(d, i), nil
}

// RenderPipeline draws all phases inside <g id="pipeline"> in registry order.
func (v *Visualizer) RenderPipeline() *svg.Element {
	g := svg.Group(svg.A("id", "pipeline"))
	for i, d := range phase.All() {
		g.Append(v.phaseGroup(d, i))
	}
	return g
}

// RenderAuditChain draws depth concentric audit rings around the canvas
// centre. Ring 0 is innermost and most opaque; each further ring is 30px wider
// and fainter, down to a floor of 0.2.
func (v *Visualizer) RenderAuditChain(depth int) (*svg.Element, error) {
	if depth < 1 {
		return nil, fmt.Errorf("%w: depth must be >= 1, got %d", phase.ErrInvalidDepth, depth)
	}

	audit, err := phase.Lookup(phase.Audit)
	if err != nil {
		return nil, err
	}

	cx, cy := v.center()
	base := math.Min(float64(v.Width), float64(v.Height)) * auditRadiusFactor

	g := svg.Group(svg.A("id", "audit-chain"))
	for level := 0; level < depth; level++ {
		opacity := math.Max(auditMinOpacity, 1.0-float64(level)*auditOpacityStep)
		g.Append(svg.New("circle",
			svg.A("cx", svg.Num(cx)),
			svg.A("cy", svg.Num(cy)),
			svg.A("r", svg.Num(base+float64(level*auditRingStep))),
			svg.A("fill", "none"),
			svg.A("stroke", audit.Color),
			svg.A("stroke-width", "2"),
			svg.A("opacity", svg.Opacity(opacity)),
			svg.A("class", "audit-ring-"+strconv.Itoa(level)),
		))
	}
	return g, nil
}

// phaseGroup positions d in slot index and wraps its glyph in an identified group.
func (v *Visualizer) phaseGroup(d phase.Descriptor, index int) *svg.Element {
	spacing := float64(v.Width) / float64(phase.Count()+1)
	cx := spacing * float64(index+1)
	_, cy := v.center()

	g := svg.Group(
		svg.A("id", "phase-"+d.Name),
		svg.A("class", "phase "+d.Motion.String()),
		svg.A("data-phase", d.Name),
		svg.A("data-color", d.Color),
	)
	if build, ok := shape.For(d.Shape); ok {
		g.Append(build(cx, cy, d.Color))
	}
	return g
}

func (v *Visualizer) center() (float64, float64) {
	return float64(v.Width) / 2, float64(v.Height) / 2
}

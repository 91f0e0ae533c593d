package render

import (
	"strconv"

	"github.com/fyrsmithlabs/phaseart/internal/svg"
)

// Title is the fixed <title> of every assembled document.
const Title = "Governance as Performance Art — 8-Phase Orchestration Pipeline"

// Assemble wraps children in an <svg> root carrying the namespace, view box,
// explicit size, a full-canvas background, the motion stylesheet and the title.
func (v *Visualizer) Assemble(children ...*svg.Element) *svg.Element {
	w, h := strconv.Itoa(v.Width), strconv.Itoa(v.Height)

	root := svg.New("svg",
		svg.A("xmlns", svg.Namespace),
		svg.A("viewBox", "0 0 "+w+" "+h),
		svg.A("width", w),
		svg.A("height", h),
	)
	root.Append(
		svg.New("rect",
			svg.A("width", w),
			svg.A("height", h),
			svg.A("fill", v.Background),
		),
		svg.New("style").WithText(Styles()),
		svg.New("title").WithText(Title),
	)
	return root.Append(children...)
}

// GenerateDocument returns the complete artwork: the pipeline plus a single
// audit ring, as a standalone SVG document with XML declaration.
func (v *Visualizer) GenerateDocument() string {
	// depth 1 is always valid
	audit, _ := v.RenderAuditChain(1)
	return svg.Document(v.Assemble(v.RenderPipeline(), audit))
}

// PhaseDocument returns a standalone document holding only the named phase.
func (v *Visualizer) PhaseDocument(name string) (string, error) {
	g, err := v.RenderPhase(name)
	if err != nil {
		return "", err
	}
	return svg.Document(v.Assemble(g)), nil
}

// AuditDocument returns a standalone document holding depth audit rings.
func (v *Visualizer) AuditDocument(depth int) (string, error) {
	g, err := v.RenderAuditChain(depth)
	if err != nil {
		return "", err
	}
	return svg.Document(v.Assemble(g)), nil
}

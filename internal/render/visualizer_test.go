package render

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrsmithlabs/phaseart/internal/config"
	"github.com/fyrsmithlabs/phaseart/internal/phase"
	"github.com/fyrsmithlabs/phaseart/internal/svg"
)

func newTestVisualizer() *Visualizer {
	return New(WithCanvas(1200, 800))
}

func TestNew_Defaults(t *testing.T) {
	v := New()
	assert.Equal(t, 1200, v.Width)
	assert.Equal(t, 800, v.Height)
	assert.Equal(t, "#0d1117", v.Background)
	assert.Equal(t, phase.Names(), v.ActivePhases)

	v = New(WithCanvas(640, 480), WithBackground("#ffffff"), WithActivePhases("audit"))
	assert.Equal(t, 640, v.Width)
	assert.Equal(t, 480, v.Height)
	assert.Equal(t, "#ffffff", v.Background)
	assert.Equal(t, []string{"audit"}, v.ActivePhases)
}

func TestNewFromConfig(t *testing.T) {
	v := NewFromConfig(config.CanvasConfig{Width: 640, Height: 360, Background: "#ffffff"})
	assert.Equal(t, 640, v.Width)
	assert.Equal(t, 360, v.Height)
	assert.Equal(t, "#ffffff", v.Background)

	v = NewFromConfig(config.CanvasConfig{}, WithBackground("#000000"))
	assert.Equal(t, DefaultWidth, v.Width)
	assert.Equal(t, DefaultHeight, v.Height)
	assert.Equal(t, "#000000", v.Background)
}

func TestNewFromConfig_SingleDimension(t *testing.T) {
	v := NewFromConfig(config.CanvasConfig{Width: 900})
	assert.Equal(t, 900, v.Width)
	assert.Equal(t, DefaultHeight, v.Height)

	v = NewFromConfig(config.CanvasConfig{Height: 300})
	assert.Equal(t, DefaultWidth, v.Width)
	assert.Equal(t, 300, v.Height)

	g, err := v.RenderPhase("observation")
	require.NoError(t, err)
	circle := g.Children()[0]
	cy, _ := circle.Attr("cy")
	assert.Equal(t, "150", cy)
}

func TestVisualizer_Descriptor(t *testing.T) {
	v := newTestVisualizer()

	d, err := v.Descriptor("observation")
	require.NoError(t, err)
	assert.Equal(t, "observation", d.Name)
	assert.Equal(t, "#1a1a4e", d.Color)

	_, err = v.Descriptor("nonexistent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, phase.ErrUnknownPhase))
	assert.Contains(t, err.Error(), "unknown phase 'nonexistent'")
}

func TestVisualizer_Utilities(t *testing.T) {
	v := newTestVisualizer()

	c, err := v.PhaseColor("audit")
	require.NoError(t, err)
	assert.Equal(t, "#adb5bd", c)

	colors := v.Colors()
	assert.Len(t, colors, 8)
	assert.Equal(t, "#1a1a4e", colors["observation"])

	assert.Equal(t, 8, v.PhaseCount())
}

func TestRenderPhase(t *testing.T) {
	v := newTestVisualizer()

	t.Run("returns identified group", func(t *testing.T) {
		g, err := v.RenderPhase("hypothesis")
		require.NoError(t, err)

		root, err := svg.Parse(g.String())
		require.NoError(t, err)
		assert.Equal(t, "g", root.Name())
		assert.Equal(t, "phase-hypothesis", root.ID())
		assert.Contains(t, g.String(), "#f5a623")

		class, _ := root.Attr("class")
		assert.Equal(t, "phase upward_drift", class)
		dp, _ := root.Attr("data-phase")
		assert.Equal(t, "hypothesis", dp)
		dc, _ := root.Attr("data-color")
		assert.Equal(t, "#f5a623", dc)
	})

	t.Run("positions phase in its slot", func(t *testing.T) {
		g, err := v.RenderPhase("observation")
		require.NoError(t, err)
		require.Len(t, g.Children(), 1)
		circle := g.Children()[0]
		cx, _ := circle.Attr("cx")
		cy, _ := circle.Attr("cy")
		assert.Equal(t, "133.333", cx)
		assert.Equal(t, "400", cy)

		g, err = v.RenderPhase("audit")
		require.NoError(t, err)
		cx, _ = g.Children()[0].Attr("cx")
		assert.Equal(t, "1066.667", cx)
	})

	t.Run("layout follows canvas changes", func(t *testing.T) {
		v := New(WithCanvas(900, 300))
		g, err := v.RenderPhase("observation")
		require.NoError(t, err)
		cx, _ := g.Children()[0].Attr("cx")
		cy, _ := g.Children()[0].Attr("cy")
		assert.Equal(t, "100", cx)
		assert.Equal(t, "150", cy)

		v.Width = 1800
		g, err = v.RenderPhase("observation")
		require.NoError(t, err)
		cx, _ = g.Children()[0].Attr("cx")
		assert.Equal(t, "200", cx)
	})

	t.Run("unknown phase", func(t *testing.T) {
		g, err := v.RenderPhase("nonexistent")
		assert.Nil(t, g)
		assert.ErrorIs(t, err, phase.ErrUnknownPhase)
		assert.Contains(t, err.Error(), "nonexistent")
	})
}

func TestRenderPipeline(t *testing.T) {
	v := newTestVisualizer()
	out := v.RenderPipeline().String()

	for _, name := range phase.Names() {
		assert.Contains(t, out, `id="phase-`+name+`"`)
	}

	root, err := svg.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, "g", root.Name())
	assert.Equal(t, "pipeline", root.ID())
	require.Len(t, root.Children(), 8)

	for i, name := range phase.Names() {
		assert.Equal(t, "g", root.Children()[i].Name())
		assert.Equal(t, "phase-"+name, root.Children()[i].ID(), "paint order follows registry order")
	}
}

func TestRenderAuditChain(t *testing.T) {
	v := newTestVisualizer()

	t.Run("single depth", func(t *testing.T) {
		g, err := v.RenderAuditChain(1)
		require.NoError(t, err)
		root, err := svg.Parse(g.String())
		require.NoError(t, err)
		assert.Equal(t, "audit-chain", root.ID())
		assert.Len(t, root.ChildrenNamed("circle"), 1)
	})

	t.Run("multiple depth", func(t *testing.T) {
		g, err := v.RenderAuditChain(3)
		require.NoError(t, err)
		root, err := svg.Parse(g.String())
		require.NoError(t, err)
		circles := root.ChildrenNamed("circle")
		require.Len(t, circles, 3)

		var opacities []float64
		for i, c := range circles {
			o, _ := c.Attr("opacity")
			f, err := strconv.ParseFloat(o, 64)
			require.NoError(t, err)
			opacities = append(opacities, f)

			class, _ := c.Attr("class")
			assert.Equal(t, "audit-ring-"+strconv.Itoa(i), class)
			stroke, _ := c.Attr("stroke")
			assert.Equal(t, "#adb5bd", stroke)
			fill, _ := c.Attr("fill")
			assert.Equal(t, "none", fill)
		}
		assert.Greater(t, opacities[0], opacities[2])
		assert.Equal(t, []float64{1, 0.75, 0.5}, opacities)

		r0, _ := circles[0].Attr("r")
		r2, _ := circles[2].Attr("r")
		assert.Equal(t, "280", r0, "0.35 * min(1200, 800)")
		assert.Equal(t, "340", r2)

		cx, _ := circles[0].Attr("cx")
		cy, _ := circles[0].Attr("cy")
		assert.Equal(t, "600", cx)
		assert.Equal(t, "400", cy)
	})

	t.Run("opacity floor", func(t *testing.T) {
		g, err := v.RenderAuditChain(6)
		require.NoError(t, err)
		want := []string{"1", "0.75", "0.5", "0.25", "0.2", "0.2"}
		for i, c := range g.Children() {
			o, _ := c.Attr("opacity")
			assert.Equal(t, want[i], o)
		}
	})

	t.Run("zero depth", func(t *testing.T) {
		g, err := v.RenderAuditChain(0)
		assert.Nil(t, g)
		require.Error(t, err)
		assert.ErrorIs(t, err, phase.ErrInvalidDepth)
		assert.Contains(t, err.Error(), "depth")
		assert.Contains(t, err.Error(), "1")
		assert.Contains(t, err.Error(), "depth must be >= 1")
	})

	t.Run("negative depth", func(t *testing.T) {
		_, err := v.RenderAuditChain(-3)
		assert.ErrorIs(t, err, phase.ErrInvalidDepth)
	})
}

func TestStyles(t *testing.T) {
	css := Styles()

	wantRules := []string{
		".radial_pulse { animation: pulse 3s ease-in-out infinite; }",
		".upward_drift { animation: drift 4s ease-in-out infinite; }",
		".systematic_scan { animation: scan 2.5s linear infinite; }",
		".shatter { animation: shake 0.5s ease-in-out infinite; }",
		".inward_convergence { animation: converge 3s ease-in-out infinite; }",
		".solidification { animation: solidify 5s ease-in-out infinite; }",
		".outward_expansion { animation: expand 4s ease-in-out infinite; }",
		".steady_contraction { animation: contract 3s ease-in-out infinite; }",
	}
	for _, r := range wantRules {
		assert.Contains(t, css, r)
	}

	wantFrames := []string{
		"@keyframes pulse { 0%,100% { transform: scale(1); } 50% { transform: scale(1.15); } }",
		"@keyframes drift { 0%,100% { transform: translateY(0); } 50% { transform: translateY(-12px); } }",
		"@keyframes scan { 0% { transform: translateX(-5px); } 100% { transform: translateX(5px); } }",
		"@keyframes shake { 0%,100% { transform: translateX(0); } 25% { transform: translateX(-3px); } 75% { transform: translateX(3px); } }",
		"@keyframes converge { 0%,100% { transform: scale(1); } 50% { transform: scale(0.9); } }",
		"@keyframes solidify { 0%,100% { opacity: 0.7; } 50% { opacity: 1; } }",
		"@keyframes expand { 0%,100% { transform: scale(1); } 50% { transform: scale(1.1); } }",
		"@keyframes contract { 0%,100% { transform: scale(1); } 50% { transform: scale(0.92); } }",
	}
	for _, f := range wantFrames {
		assert.Contains(t, css, f)
	}

	anims := Animations()
	require.Len(t, anims, 8)
	for i, m := range phase.Motions() {
		assert.Equal(t, m, anims[i].Motion)
	}
	assert.Less(t, strings.Index(css, ".radial_pulse"), strings.Index(css, "@keyframes"))
}

package phase

import (
	"errors"
	"regexp"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

func TestRegistry_Invariants(t *testing.T) {
	all := All()
	require.Len(t, all, 8)
	assert.Equal(t, 8, Count())

	seen := make(map[string]bool)
	shapes := make(map[Shape]bool)
	motions := make(map[Motion]bool)
	var zs []int
	for _, d := range all {
		assert.False(t, seen[d.Name], "duplicate name %q", d.Name)
		seen[d.Name] = true

		assert.Regexp(t, hexColor, d.Color, "%s color is not #rrggbb", d.Name)
		assert.Len(t, d.Color, 7)
		assert.True(t, d.Shape.Valid(), "%s has invalid shape %q", d.Name, d.Shape)
		assert.True(t, d.Motion.Valid(), "%s has invalid motion %q", d.Name, d.Motion)

		shapes[d.Shape] = true
		motions[d.Motion] = true
		zs = append(zs, d.ZIndex)

		assert.Equal(t, DefaultOpacityRange, d.OpacityRange)
		assert.Equal(t, DefaultScaleRange, d.ScaleRange)
	}

	assert.Len(t, shapes, 8, "shapes must be unique per phase")
	assert.Len(t, motions, 8, "motions must be unique per phase")

	sort.Ints(zs)
	if diff := cmp.Diff([]int{0, 1, 2, 3, 4, 5, 6, 7}, zs); diff != "" {
		t.Errorf("z-indices are not a permutation of 0..7 (-want +got):\n%s", diff)
	}
}

func TestNames_CanonicalOrder(t *testing.T) {
	want := []string{
		"observation",
		"hypothesis",
		"testing",
		"refutation",
		"revision",
		"consolidation",
		"propagation",
		"audit",
	}
	if diff := cmp.Diff(want, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestLookup(t *testing.T) {
	want := map[string]string{
		"observation":   "#1a1a4e",
		"hypothesis":    "#f5a623",
		"testing":       "#00d4ff",
		"refutation":    "#dc3545",
		"revision":      "#28a745",
		"consolidation": "#6f42c1",
		"propagation":   "#ffc107",
		"audit":         "#adb5bd",
	}

	for name, color := range want {
		t.Run(name, func(t *testing.T) {
			d, err := Lookup(name)
			require.NoError(t, err)
			assert.Equal(t, name, d.Name)
			assert.Equal(t, color, d.Color)
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("nonexistent")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownPhase))
	assert.Contains(t, err.Error(), "nonexistent")
	for _, name := range Names() {
		assert.Contains(t, err.Error(), name)
	}

	_, err = Lookup("")
	assert.ErrorIs(t, err, ErrUnknownPhase)

	_, err = Lookup("Audit")
	assert.ErrorIs(t, err, ErrUnknownPhase, "lookup is case sensitive")
}

func TestIndex(t *testing.T) {
	for want, name := range Names() {
		got, err := Index(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	i, err := Index("nope")
	assert.ErrorIs(t, err, ErrUnknownPhase)
	assert.Equal(t, -1, i)
}

func TestLookupIndex(t *testing.T) {
	for want, name := range Names() {
		d, i, err := LookupIndex(name)
		require.NoError(t, err)
		assert.Equal(t, want, i)
		assert.Equal(t, name, d.Name)
		assert.Equal(t, All()[i], d)
	}

	d, i, err := LookupIndex("nonexistent")
	assert.ErrorIs(t, err, ErrUnknownPhase)
	assert.Contains(t, err.Error(), "nonexistent")
	assert.Equal(t, -1, i)
	assert.Equal(t, Descriptor{}, d)
}

func TestColor(t *testing.T) {
	c, err := Color("audit")
	require.NoError(t, err)
	assert.Equal(t, "#adb5bd", c)

	_, err = Color("nonexistent")
	assert.ErrorIs(t, err, ErrUnknownPhase)
}

func TestColors(t *testing.T) {
	colors := Colors()
	assert.Len(t, colors, 8)
	assert.Equal(t, "#1a1a4e", colors["observation"])
	assert.Equal(t, "#adb5bd", colors["audit"])
}

func TestMotions_FollowRegistryOrder(t *testing.T) {
	motions := Motions()
	require.Len(t, motions, 8)
	for i, d := range All() {
		assert.Equal(t, d.Motion, motions[i])
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Color = "#000000"
	all[0].Name = "mutated"

	d, err := Lookup("observation")
	require.NoError(t, err)
	assert.Equal(t, "#1a1a4e", d.Color)
	assert.Equal(t, "observation", All()[0].Name)

	names := Names()
	names[0] = "mutated"
	assert.Equal(t, "observation", Names()[0])
}

func TestShapeAndMotion_Valid(t *testing.T) {
	assert.False(t, Shape("hexagon").Valid())
	assert.False(t, Motion("spin").Valid())
	assert.Equal(t, "ring", ShapeRing.String())
	assert.Equal(t, "shatter", MotionShatter.String())
}

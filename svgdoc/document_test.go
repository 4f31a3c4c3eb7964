package svgdoc

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/benoitkugler/svgpathdata/geom"
	"github.com/benoitkugler/svgpathdata/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile(t *testing.T) {
	doc, err := ReadFile("testdata/shapes.svg", StrictErrorMode)
	require.NoError(t, err)

	assert.Equal(t, Bounds{0, 0, 200, 100}, doc.ViewBox)
	assert.Equal(t, "200", doc.Width)
	assert.Equal(t, "100px", doc.Height)
	assert.Equal(t, []string{"Formes géométriques"}, doc.Titles)
	assert.Equal(t, []string{"One of each supported element"}, doc.Descriptions)

	var tags []string
	for _, e := range doc.Elements {
		tags = append(tags, e.Tag)
	}
	assert.Equal(t, []string{"rect", "circle", "ellipse", "line", "polyline", "polygon", "path"}, tags)
	assert.Equal(t, "frame", doc.Elements[0].ID)

	line := doc.Elements[3]
	assert.Equal(t, "M0 0L20 10", line.Path.String())
	assert.Equal(t, "M0 0L10 10 20 0", doc.Elements[4].Path.String())
	assert.Equal(t, "M0 0L10 10 20 0Z", doc.Elements[5].Path.String())
}

func TestRectRadius(t *testing.T) {
	doc, err := ReadFile("testdata/shapes.svg", StrictErrorMode)
	require.NoError(t, err)
	cmds, err := doc.Elements[0].Path.Commands()
	require.NoError(t, err)
	// ry defaults to rx
	assert.Equal(t, []float64{15, 10}, cmds[0].Values)
	assert.Len(t, cmds, 10)
}

func TestTransforms(t *testing.T) {
	doc, err := ReadFile("testdata/shapes.svg", StrictErrorMode)
	require.NoError(t, err)

	circle := doc.Elements[1]
	assert.Equal(t, geom.Identity.Translate(100, 50), circle.Transform)
	box, err := circle.Placed().Bounds()
	require.NoError(t, err)
	assert.InDelta(t, 80, box.Min.X, 1e-9)
	assert.InDelta(t, 120, box.Max.X, 1e-9)

	// the rotation swaps the radii
	box, err = doc.Elements[2].Placed().Bounds()
	require.NoError(t, err)
	assert.InDelta(t, 90, box.Min.X, 1e-9)
	assert.InDelta(t, 20, box.Min.Y, 1e-9)
	assert.InDelta(t, 110, box.Max.X, 1e-9)
	assert.InDelta(t, 80, box.Max.Y, 1e-9)

	// elements without transform are returned as is
	assert.Same(t, doc.Elements[6].Path, doc.Elements[6].Placed())

	all, err := doc.Bounds()
	require.NoError(t, err)
	assert.Equal(t, 0., all.Min.X)
	assert.Equal(t, 0., all.Min.Y)
	assert.InDelta(t, 190, all.Max.X, 1e-9)
	assert.InDelta(t, 90, all.Max.Y, 1e-9)
}

func TestParseTransform(t *testing.T) {
	c := docCursor{}
	var tests = []struct {
		in   string
		want geom.Matrix2D
	}{
		{"translate(1)", geom.Matrix2D{A: 1, D: 1, E: 1}},
		{"scale(2)", geom.Matrix2D{A: 2, D: 2}},
		{"scale(2 3) translate(1,1)", geom.Matrix2D{A: 2, D: 3, E: 2, F: 3}},
		{"matrix(1,2,3,4,5,6)", geom.Matrix2D{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}},
		{"translate(1, 2), scale(2)", geom.Matrix2D{A: 2, D: 2, E: 1, F: 2}},
	}
	for _, tt := range tests {
		got, err := c.parseTransform(geom.Identity, tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	got, err := c.parseTransform(geom.Identity, "rotate(90 1 1)")
	require.NoError(t, err)
	x, y := got.Transform(2, 1)
	assert.InDelta(t, 1, x, 1e-12)
	assert.InDelta(t, 2, y, 1e-12)

	for _, in := range []string{"rotate(1 2)", "scale()", "translate 1 2", "shear(1)"} {
		_, err := c.parseTransform(geom.Identity, in)
		assert.Error(t, err, in)
	}
}

func TestParseUnit(t *testing.T) {
	c := docCursor{doc: &Document{ViewBox: Bounds{W: 300, H: 400}}}
	var tests = []struct {
		in   string
		ref  percentageReference
		want float64
	}{
		{"12", widthPercentage, 12},
		{" 12px ", widthPercentage, 12},
		{"1in", widthPercentage, 96},
		{"10%", widthPercentage, 30},
		{"10%", heightPercentage, 40},
		{"10%", diagPercentage, 50 / math.Sqrt2},
		{"-1.5e1", heightPercentage, -15},
	}
	for _, tt := range tests {
		got, err := c.parseUnit(tt.in, tt.ref)
		require.NoError(t, err, tt.in)
		assert.InDelta(t, tt.want, got, 1e-12, tt.in)
	}
	_, err := c.parseUnit("2em", widthPercentage)
	assert.Error(t, err)
	_, err = c.parseUnit("2..", widthPercentage)
	assert.Error(t, err)
}

const withText = `<svg viewBox="0 0 10 10"><text x="1" y="1">hello</text><path d="M0 0h1"/></svg>`

func TestErrorModes(t *testing.T) {
	doc, err := Read(strings.NewReader(withText), IgnoreErrorMode)
	require.NoError(t, err)
	assert.Len(t, doc.Elements, 1)

	_, err = Read(strings.NewReader(withText), StrictErrorMode)
	assert.Error(t, err)

	old := logging.Logger()
	defer logging.SetLogger(old)
	var buf bytes.Buffer
	logging.SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	doc, err = Read(strings.NewReader(withText), WarnErrorMode)
	require.NoError(t, err)
	assert.Len(t, doc.Elements, 1)
	assert.Contains(t, buf.String(), "element=text")
}

func TestReadErrors(t *testing.T) {
	for _, in := range []string{
		"",
		`<svg><path d="M0 0 L1"/></svg>`,
		`<svg><polygon points="0 0 1"/></svg>`,
		`<svg><rect width="1x" height="1"/></svg>`,
		`<svg><g transform="rotate(1 2)"/></svg>`,
		`<svg><path d="M0 0"`,
	} {
		_, err := Read(strings.NewReader(in), IgnoreErrorMode)
		assert.Error(t, err, in)
	}
}

func TestViewBoxErrors(t *testing.T) {
	_, err := Read(strings.NewReader(`<svg viewBox="0 0 x 10"></svg>`), StrictErrorMode)
	assert.ErrorContains(t, err, `invalid number "x"`)
	assert.NotErrorIs(t, err, errParamMismatch)

	_, err = Read(strings.NewReader(`<svg viewBox="0 0 10"></svg>`), StrictErrorMode)
	assert.ErrorIs(t, err, errParamMismatch)

	_, err = Read(strings.NewReader(`<svg><polyline points="0 0 1"/></svg>`), StrictErrorMode)
	assert.ErrorIs(t, err, errOddPoints)
}

func TestEmptyShapes(t *testing.T) {
	doc, err := Read(strings.NewReader(`<svg>
		<rect width="0" height="10"/>
		<circle r="0"/>
		<polyline points="1 1"/>
	</svg>`), StrictErrorMode)
	require.NoError(t, err)
	assert.Empty(t, doc.Elements)
}

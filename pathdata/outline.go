package pathdata

import (
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ rasterx.Adder = (*Outline)(nil) // assert interface conformance

// Operation is one step of an Outline.
type Operation interface {
	appendTo(b *strings.Builder)
}

type (
	MoveTo  fixed.Point26_6
	LineTo  fixed.Point26_6
	QuadTo  [2]fixed.Point26_6
	CubicTo [3]fixed.Point26_6
	Close   struct{}
)

// Outline records the calls of a rasterx.Adder, in 26.6 fixed point
// coordinates. It is typically filled with PathData.AddTo.
type Outline []Operation

// Clear empties the outline, keeping its storage.
func (o *Outline) Clear() { *o = (*o)[:0] }

// Start implements rasterx.Adder.
func (o *Outline) Start(a fixed.Point26_6) { *o = append(*o, MoveTo(a)) }

// Line implements rasterx.Adder.
func (o *Outline) Line(b fixed.Point26_6) { *o = append(*o, LineTo(b)) }

// QuadBezier implements rasterx.Adder.
func (o *Outline) QuadBezier(b, c fixed.Point26_6) { *o = append(*o, QuadTo{b, c}) }

// CubeBezier implements rasterx.Adder.
func (o *Outline) CubeBezier(b, c, d fixed.Point26_6) { *o = append(*o, CubicTo{b, c, d}) }

// Stop implements rasterx.Adder. Only closing stops are recorded.
func (o *Outline) Stop(closeLoop bool) {
	if closeLoop {
		*o = append(*o, Close{})
	}
}

// String returns the outline as path data, with coordinates
// rounded to the 1/64 resolution.
func (o Outline) String() string {
	var b strings.Builder
	for _, op := range o {
		op.appendTo(&b)
	}
	return b.String()
}

// Path converts the outline back to path data.
func (o Outline) Path() *PathData { return Parse(o.String()) }

func writePoints(b *strings.Builder, t byte, pts ...fixed.Point26_6) {
	buf := []byte{t}
	for i, p := range pts {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendNumber(buf, float64(p.X)/64)
		buf = append(buf, ' ')
		buf = appendNumber(buf, float64(p.Y)/64)
	}
	b.Write(buf)
}

func (op MoveTo) appendTo(b *strings.Builder)  { writePoints(b, 'M', fixed.Point26_6(op)) }
func (op LineTo) appendTo(b *strings.Builder)  { writePoints(b, 'L', fixed.Point26_6(op)) }
func (op QuadTo) appendTo(b *strings.Builder)  { writePoints(b, 'Q', op[:]...) }
func (op CubicTo) appendTo(b *strings.Builder) { writePoints(b, 'C', op[:]...) }
func (Close) appendTo(b *strings.Builder)      { b.WriteByte('Z') }

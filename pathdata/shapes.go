package pathdata

import "math"

// kappa is the distance of the control points of a cubic curve
// approximating a quarter of the unit circle.
const kappa = 0.552284749831

// Shape is a parametric figure outlined by path commands.
type Shape interface {
	// Commands returns a new slice on each call.
	Commands() []Command
}

// PathOf returns the path of s, which is regenerated on each traversal.
func PathOf(s Shape) *PathData {
	return &PathData{forms: allForms, src: Lazy(func(yield func(Command, error) bool) {
		for _, cmd := range s.Commands() {
			if !yield(cmd, nil) {
				return
			}
		}
	})}
}

// Ellipse is centered on (CX, CY), with radii RX and RY.
type Ellipse struct {
	CX, CY, RX, RY float64
}

// Commands returns four cubic curves, starting at the rightmost point.
func (e Ellipse) Commands() []Command {
	cx, cy, rx, ry := e.CX, e.CY, e.RX, e.RY
	kx, ky := rx*kappa, ry*kappa
	return []Command{
		moveTo(cx+rx, cy),
		cubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry),
		cubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy),
		cubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry),
		cubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy),
		{Type: 'Z'},
	}
}

// Rect is the rectangle with top left corner (X, Y) and size (W, H).
// Positive RX and RY round the corners; they are clamped
// to half the width and height. A zero or negative radius on either
// axis gives square corners, as SVG renders it, so RX=5, RY=0 is a
// plain polygon.
type Rect struct {
	X, Y, W, H float64
	RX, RY     float64
}

// Commands returns a polygon when one of the radii is not positive,
// and otherwise four lines joined by cubic corners.
func (r Rect) Commands() []Command {
	x, y, w, h := r.X, r.Y, r.W, r.H
	if r.RX <= 0 || r.RY <= 0 {
		return []Command{
			moveTo(x, y),
			lineTo(x+w, y),
			lineTo(x+w, y+h),
			lineTo(x, y+h),
			{Type: 'Z'},
		}
	}
	rx, ry := math.Min(r.RX, w/2), math.Min(r.RY, h/2)
	// distance from the corner to the control points
	cx, cy := rx*(1-kappa), ry*(1-kappa)
	return []Command{
		moveTo(x+rx, y),
		lineTo(x+w-rx, y),
		cubicTo(x+w-cx, y, x+w, y+cy, x+w, y+ry),
		lineTo(x+w, y+h-ry),
		cubicTo(x+w, y+h-cy, x+w-cx, y+h, x+w-rx, y+h),
		lineTo(x+rx, y+h),
		cubicTo(x+cx, y+h, x, y+h-cy, x, y+h-ry),
		lineTo(x, y+ry),
		cubicTo(x, y+cy, x+cx, y, x+rx, y),
		{Type: 'Z'},
	}
}

func moveTo(x, y float64) Command { return Command{Type: 'M', Values: []float64{x, y}} }

func lineTo(x, y float64) Command { return Command{Type: 'L', Values: []float64{x, y}} }

func cubicTo(x1, y1, x2, y2, x, y float64) Command {
	return Command{Type: 'C', Values: []float64{x1, y1, x2, y2, x, y}}
}

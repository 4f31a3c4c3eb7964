package pathdata

import (
	"fmt"

	"github.com/benoitkugler/svgpathdata/geom"
)

// Translated returns p moved by (dx, dy). It accepts any command:
// only absolute coordinates are shifted, and a relative moveto
// starting the path is shifted once.
func (p *PathData) Translated(dx, dy float64) *PathData {
	return p.rewrite(p.forms, func(st state, cmd Command, out []Command) ([]Command, error) {
		switch cmd.Type {
		case 'M', 'L', 'T', 'C', 'S', 'Q', 'H', 'V', 'A':
		case 'm':
			if st.index != 0 {
				return append(out, cmd), nil
			}
		default: // relative or closepath
			return append(out, cmd), nil
		}
		vals := append([]float64(nil), cmd.Values...)
		switch cmd.Type {
		case 'm':
			vals[0] += dx
			vals[1] += dy
		case 'H':
			for i := range vals {
				vals[i] += dx
			}
		case 'V':
			for i := range vals {
				vals[i] += dy
			}
		case 'A':
			for i := 0; i+7 <= len(vals); i += 7 {
				vals[i+5] += dx
				vals[i+6] += dy
			}
		default:
			for i := 0; i+2 <= len(vals); i += 2 {
				vals[i] += dx
				vals[i+1] += dy
			}
		}
		return append(out, Command{Type: cmd.Type, Values: vals}), nil
	})
}

// Transform applies the affine transformation m to every point of p,
// which must only contain M, L, C and Z commands (see AsPlain).
// Other commands stop the iteration with ErrInvalidTransform.
func (p *PathData) Transform(m geom.Matrix2D) *PathData {
	forms := p.forms | Absolute | Unreflected | CubicOnly | BaseCommandsOnly
	return p.rewrite(forms, func(_ state, cmd Command, out []Command) ([]Command, error) {
		switch cmd.Type {
		case 'Z':
			return append(out, cmd), nil
		case 'M', 'L', 'C':
			vals := make([]float64, len(cmd.Values))
			for i := 0; i+2 <= len(vals); i += 2 {
				vals[i], vals[i+1] = m.Transform(cmd.Values[i], cmd.Values[i+1])
			}
			return append(out, Command{Type: cmd.Type, Values: vals}), nil
		default:
			return nil, fmt.Errorf("%w: got %c", ErrInvalidTransform, cmd.Type)
		}
	})
}

// Transformed applies the matrix
//
//	a c e
//	b d f
//	0 0 1
//
// with the same restrictions as Transform.
func (p *PathData) Transformed(a, b, c, d, e, f float64) *PathData {
	return p.Transform(geom.Matrix2D{A: a, B: b, C: c, D: d, E: e, F: f})
}

// Scaled scales p by (sx, sy). See Transform.
func (p *PathData) Scaled(sx, sy float64) *PathData {
	return p.Transform(geom.Identity.Scale(sx, sy))
}

// SkewedX skews p along the x axis by deg degrees. See Transform.
func (p *PathData) SkewedX(deg float64) *PathData {
	return p.Transform(geom.Identity.SkewX(geom.Radians(deg)))
}

// SkewedY skews p along the y axis by deg degrees. See Transform.
func (p *PathData) SkewedY(deg float64) *PathData {
	return p.Transform(geom.Identity.SkewY(geom.Radians(deg)))
}

// Rotated rotates p by deg degrees around the origin. See Transform.
func (p *PathData) Rotated(deg float64) *PathData {
	return p.Transform(geom.Identity.Rotate(geom.Radians(deg)))
}

// RotatedAround rotates p by deg degrees around (cx, cy). See Transform.
func (p *PathData) RotatedAround(deg, cx, cy float64) *PathData {
	m := geom.Identity.Translate(cx, cy).Rotate(geom.Radians(deg)).Translate(-cx, -cy)
	return p.Transform(m)
}

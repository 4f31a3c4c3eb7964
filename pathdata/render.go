package pathdata

import (
	"github.com/benoitkugler/svgpathdata/geom"
	"github.com/srwiley/rasterx"
)

// Flattened returns the plain form of p (see AsPlain) where every
// cubic curve is replaced by lines, one per point returned by geom.FlattenCubic.
func (p *PathData) Flattened(opts geom.FlattenOptions) *PathData {
	plain := p.AsPlain()
	return plain.rewrite(plain.forms, func(st state, cmd Command, out []Command) ([]Command, error) {
		if cmd.Type != 'C' {
			return append(out, cmd), nil
		}
		p0 := geom.Point{X: st.X, Y: st.Y}
		var pts []geom.Point
		for i := 0; i+6 <= len(cmd.Values); i += 6 {
			v := cmd.Values[i:]
			p3 := geom.Point{X: v[4], Y: v[5]}
			pts = geom.AppendFlattenCubic(pts, p0, geom.Point{X: v[0], Y: v[1]}, geom.Point{X: v[2], Y: v[3]}, p3, opts)
			p0 = p3
		}
		for _, pt := range pts {
			out = append(out, lineTo(pt.X, pt.Y))
		}
		return out, nil
	})
}

// Bounds returns the exact bounding box of p, curves included.
func (p *PathData) Bounds() (geom.Rect, error) {
	var (
		box geom.Rect
		cur geom.Point
	)
	for cmd, err := range p.AsPlain().All() {
		if err != nil {
			return geom.Rect{}, err
		}
		v := cmd.Values
		switch cmd.Type {
		case 'M', 'L':
			cur = geom.Point{X: v[0], Y: v[1]}
			box = box.Extend(cur)
		case 'C':
			end := geom.Point{X: v[4], Y: v[5]}
			box = box.Union(geom.CubicBounds(cur, geom.Point{X: v[0], Y: v[1]}, geom.Point{X: v[2], Y: v[3]}, end))
			cur = end
		}
	}
	return box, nil
}

// AddTo replays the plain form of p (see AsPlain) on a,
// in 26.6 fixed point coordinates.
// Every subpath is ended by a.Stop, with closeLoop set for a Z command.
func (p *PathData) AddTo(a rasterx.Adder) error {
	var (
		open   bool // a subpath has been started and not stopped
		cursor Cursor
	)
	for cmd, err := range p.AsPlain().All() {
		if err != nil {
			if open {
				a.Stop(false)
			}
			return err
		}
		v := cmd.Values
		switch cmd.Type {
		case 'M':
			if open {
				a.Stop(false)
			}
			a.Start(geom.ToFixed(v[0], v[1]))
			open = true
		case 'Z':
			if open {
				a.Stop(true)
			}
			open = false
		default:
			if !open { // drawing after a closepath restarts at the subpath start
				a.Start(geom.ToFixed(cursor.X, cursor.Y))
				open = true
			}
			if cmd.Type == 'L' {
				a.Line(geom.ToFixed(v[0], v[1]))
			} else {
				a.CubeBezier(geom.ToFixed(v[0], v[1]), geom.ToFixed(v[2], v[3]), geom.ToFixed(v[4], v[5]))
			}
		}
		cursor = cursor.Update(cmd)
	}
	if open {
		a.Stop(false)
	}
	return nil
}

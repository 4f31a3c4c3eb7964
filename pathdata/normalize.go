package pathdata

import (
	"fmt"

	"github.com/benoitkugler/svgpathdata/geom"
)

// state is the traversal state passed to a rewrite function.
type state struct {
	Cursor // before the command

	prev  byte // type of the previous command, 0 for the first one
	index int
}

// rewriteFunc appends to out the commands replacing cmd.
type rewriteFunc func(st state, cmd Command, out []Command) ([]Command, error)

// rewrite returns a lazy view applying fn to each command of p.
// The cursor follows the commands of p, not the rewritten ones.
func (p *PathData) rewrite(forms NormalForm, fn rewriteFunc) *PathData {
	return &PathData{forms: forms, src: Lazy(func(yield func(Command, error) bool) {
		var (
			st  state
			buf []Command
		)
		for cmd, err := range p.All() {
			if err != nil {
				yield(Command{}, err)
				return
			}
			buf, err = fn(st, cmd, buf[:0])
			if err != nil {
				yield(Command{}, err)
				return
			}
			for _, c := range buf {
				if !yield(c, nil) {
					return
				}
			}
			st.Cursor = st.Cursor.Update(cmd)
			st.prev = cmd.Type
			st.index++
		}
	})}
}

// AsSimpleParams returns a view where each command carries exactly one chunk
// of values, extra moveto pairs being expressed as linetos.
func (p *PathData) AsSimpleParams() *PathData {
	if p.Has(SimpleParams) {
		return p
	}
	return p.view(simpleParamsView, func() *PathData {
		if s, ok := p.src.(Text); ok {
			simple := ToSimpleParams(string(s))
			return &PathData{src: Text(simple), forms: textForms(simple) | SimpleParams}
		}
		return p.rewrite(p.forms|SimpleParams, func(_ state, cmd Command, out []Command) ([]Command, error) {
			return append(out, cmd.Chunks()...), nil
		})
	})
}

func upper(t byte) byte { return t - 'a' + 'A' }

// AsAbsolute returns a view without relative commands.
func (p *PathData) AsAbsolute() *PathData {
	if p.Has(Absolute) {
		return p
	}
	return p.view(absoluteView, func() *PathData {
		return p.rewrite(p.forms|Absolute, func(st state, cmd Command, out []Command) ([]Command, error) {
			if !cmd.IsRelative() {
				return append(out, cmd), nil
			}
			return append(out, toAbsolute(st.Cursor, cmd)), nil
		})
	})
}

// toAbsolute translates the relative command cmd, starting at cur.
func toAbsolute(cur Cursor, cmd Command) Command {
	if cmd.Type == 'z' {
		return Command{Type: 'Z'}
	}
	var (
		v    = cmd.Values
		abs  = make([]float64, len(v))
		x, y = cur.X, cur.Y
	)
	switch cmd.Type {
	case 'm', 'l', 't':
		for i := 0; i < len(v); i += 2 {
			x, y = x+v[i], y+v[i+1]
			abs[i], abs[i+1] = x, y
		}
	case 'h':
		for i := range v {
			x += v[i]
			abs[i] = x
		}
	case 'v':
		for i := range v {
			y += v[i]
			abs[i] = y
		}
	case 'c', 's', 'q':
		n, _ := Arity(cmd.Type)
		for i := 0; i < len(v); i += n {
			for j := i; j < i+n; j += 2 {
				abs[j], abs[j+1] = x+v[j], y+v[j+1]
			}
			x, y = abs[i+n-2], abs[i+n-1]
		}
	case 'a':
		for i := 0; i < len(v); i += 7 {
			copy(abs[i:i+5], v[i:i+5])
			x, y = x+v[i+5], y+v[i+6]
			abs[i+5], abs[i+6] = x, y
		}
	}
	return Command{Type: upper(cmd.Type), Values: abs}
}

// AsUnreflected returns a view where smooth curves (S, s, T, t) are replaced
// by their explicit counterparts (C, c, Q, q).
func (p *PathData) AsUnreflected() *PathData {
	if p.Has(Unreflected) {
		return p
	}
	return p.view(unreflectedView, func() *PathData {
		return p.rewrite(p.forms|Unreflected, func(st state, cmd Command, out []Command) ([]Command, error) {
			switch cmd.Type {
			case 'S', 's':
				return append(out, unreflectCubic(st.Cursor, cmd)), nil
			case 'T', 't':
				return append(out, unreflectQuad(st.Cursor, cmd)), nil
			default:
				return append(out, cmd), nil
			}
		})
	})
}

// unreflectCubic expands a S or s command starting at cur into a C or c command.
func unreflectCubic(cur Cursor, cmd Command) Command {
	rel := cmd.Type == 's'
	vals := make([]float64, 0, len(cmd.Values)/4*6)
	for i := 0; i+4 <= len(cmd.Values); i += 4 {
		chunk := cmd.Values[i : i+4 : i+4]
		x1, y1 := cur.ReflectedCubic()
		if rel {
			x1, y1 = x1-cur.X, y1-cur.Y
		}
		vals = append(vals, x1, y1)
		vals = append(vals, chunk...)
		cur = cur.step(cmd.Type, chunk)
	}
	out := Command{Type: 'C', Values: vals}
	if rel {
		out.Type = 'c'
	}
	return out
}

// unreflectQuad expands a T or t command starting at cur into a Q or q command.
func unreflectQuad(cur Cursor, cmd Command) Command {
	rel := cmd.Type == 't'
	vals := make([]float64, 0, len(cmd.Values)*2)
	for i := 0; i+2 <= len(cmd.Values); i += 2 {
		chunk := cmd.Values[i : i+2 : i+2]
		qx, qy := cur.ReflectedQuad()
		if rel {
			qx, qy = qx-cur.X, qy-cur.Y
		}
		vals = append(vals, qx, qy)
		vals = append(vals, chunk...)
		cur = cur.step(cmd.Type, chunk)
	}
	out := Command{Type: 'Q', Values: vals}
	if rel {
		out.Type = 'q'
	}
	return out
}

// elevates reports whether AsCubicOnly replaces commands of type t,
// changing the cubic control point seen by a following S or s.
func elevates(t byte) bool {
	switch t {
	case 'Q', 'q', 'T', 't', 'A', 'a':
		return true
	}
	return false
}

// AsCubicOnly returns a view where quadratic curves and elliptical arcs
// are replaced by cubic Bézier curves.
// Arcs are always converted to absolute C commands, one per arc segment.
func (p *PathData) AsCubicOnly() *PathData {
	if p.Has(CubicOnly) {
		return p
	}
	return p.view(cubicOnlyView, func() *PathData {
		return p.rewrite(p.forms|CubicOnly, func(st state, cmd Command, out []Command) ([]Command, error) {
			switch cmd.Type {
			case 'Q', 'q':
				return append(out, elevateQuad(st.Cursor, cmd)), nil
			case 'T', 't':
				return append(out, elevateQuad(st.Cursor, unreflectQuad(st.Cursor, cmd))), nil
			case 'A', 'a':
				return appendArc(out, st.Cursor, cmd), nil
			case 'S', 's':
				if elevates(st.prev) {
					return append(out, unreflectCubic(st.Cursor, cmd)), nil
				}
			}
			return append(out, cmd), nil
		})
	})
}

// elevateQuad converts a Q or q command starting at cur into a C or c command.
func elevateQuad(cur Cursor, cmd Command) Command {
	rel := cmd.Type == 'q'
	p0 := geom.Point{X: cur.X, Y: cur.Y}
	if rel {
		p0 = geom.Point{}
	}
	vals := make([]float64, 0, len(cmd.Values)/4*6)
	for i := 0; i+4 <= len(cmd.Values); i += 4 {
		q := geom.Point{X: cmd.Values[i], Y: cmd.Values[i+1]}
		p1 := geom.Point{X: cmd.Values[i+2], Y: cmd.Values[i+3]}
		c1, c2 := geom.QuadraticToCubic(p0, q, p1)
		vals = append(vals, c1.X, c1.Y, c2.X, c2.Y, p1.X, p1.Y)
		if !rel {
			p0 = p1
		}
	}
	out := Command{Type: 'C', Values: vals}
	if rel {
		out.Type = 'c'
	}
	return out
}

// appendArc appends one absolute C command per cubic segment
// of the A or a command starting at cur.
func appendArc(out []Command, cur Cursor, cmd Command) []Command {
	rel := cmd.Type == 'a'
	x, y := cur.X, cur.Y
	for i := 0; i+7 <= len(cmd.Values); i += 7 {
		v := cmd.Values[i : i+7]
		x2, y2 := v[5], v[6]
		if rel {
			x2, y2 = x+x2, y+y2
		}
		curves := geom.ArcToCubic(x, y, v[0], v[1], v[2], v[3] != 0, v[4] != 0, x2, y2)
		for j := 0; j+6 <= len(curves); j += 6 {
			out = append(out, Command{Type: 'C', Values: curves[j : j+6 : j+6]})
		}
		x, y = x2, y2
	}
	return out
}

// AsNormalized returns the simple params, absolute, cubic only view of p.
func (p *PathData) AsNormalized() *PathData {
	if p.Has(SimpleParams | Absolute | CubicOnly) {
		return p
	}
	return p.view(normalizedView, func() *PathData {
		return p.AsSimpleParams().AsAbsolute().AsCubicOnly()
	})
}

// AsBaseCommands returns a view where horizontal and vertical lines are
// replaced by regular lines. Smooth curves, quadratic curves and arcs
// are not supported and yield ErrUnsupportedCommand: use AsNormalized and
// AsUnreflected first.
func (p *PathData) AsBaseCommands() *PathData {
	if p.Has(BaseCommandsOnly) {
		return p
	}
	return p.view(baseCommandsView, func() *PathData {
		return p.rewrite(p.forms|BaseCommandsOnly, func(st state, cmd Command, out []Command) ([]Command, error) {
			switch cmd.Type {
			case 'H', 'h', 'V', 'v':
				return append(out, toLine(st.Cursor, cmd)), nil
			case 'A', 'a', 'Q', 'q', 'T', 't', 'S', 's':
				return nil, fmt.Errorf("%w: %c in base commands form", ErrUnsupportedCommand, cmd.Type)
			default:
				return append(out, cmd), nil
			}
		})
	})
}

// toLine converts a H, h, V or v command starting at cur.
func toLine(cur Cursor, cmd Command) Command {
	vals := make([]float64, 0, 2*len(cmd.Values))
	for _, v := range cmd.Values {
		switch cmd.Type {
		case 'H':
			vals = append(vals, v, cur.Y)
		case 'h':
			vals = append(vals, v, 0)
		case 'V':
			vals = append(vals, cur.X, v)
		case 'v':
			vals = append(vals, 0, v)
		}
	}
	if cmd.IsRelative() {
		return Command{Type: 'l', Values: vals}
	}
	return Command{Type: 'L', Values: vals}
}

// AsPlain returns the view of p using only absolute M, L, C and Z commands,
// each with one chunk of values.
func (p *PathData) AsPlain() *PathData {
	if p.Has(SimpleParams | Absolute | Unreflected | CubicOnly | BaseCommandsOnly) {
		return p
	}
	return p.view(plainView, func() *PathData {
		return p.AsNormalized().AsUnreflected().AsBaseCommands()
	})
}

package pathdata

// Cursor is the geometric state reached after a command:
// the current point, the start of the current subpath and
// the control points of the last cubic and quadratic curves.
//
// After a command of another family, the control point of a family
// equals the current point, so that its reflection is the current point.
type Cursor struct {
	X, Y   float64
	X0, Y0 float64 // start of the subpath
	CX, CY float64 // last cubic control point
	QX, QY float64 // last quadratic control point
}

// ReflectedCubic returns the implicit first control point of a smooth cubic (S) command.
func (c Cursor) ReflectedCubic() (x, y float64) { return 2*c.X - c.CX, 2*c.Y - c.CY }

// ReflectedQuad returns the implicit control point of a smooth quadratic (T) command.
func (c Cursor) ReflectedQuad() (x, y float64) { return 2*c.X - c.QX, 2*c.Y - c.QY }

// Update returns the state reached after cmd, which is assumed valid.
// A multi-chunk command is handled as the run of its chunks.
func (c Cursor) Update(cmd Command) Cursor {
	n, _ := Arity(cmd.Type)
	if n == 0 {
		return c.step(cmd.Type, nil)
	}
	for i := 0; i+n <= len(cmd.Values); i += n {
		t := cmd.Type
		if i > 0 {
			t = repeatType(t)
		}
		c = c.step(t, cmd.Values[i:i+n])
	}
	return c
}

func (c *Cursor) resetControls() {
	c.CX, c.CY = c.X, c.Y
	c.QX, c.QY = c.X, c.Y
}

func (c Cursor) step(t byte, v []float64) Cursor {
	switch t {
	case 'M':
		c.X, c.Y = v[0], v[1]
		c.X0, c.Y0 = c.X, c.Y
		c.resetControls()
	case 'm':
		c.X, c.Y = c.X+v[0], c.Y+v[1]
		c.X0, c.Y0 = c.X, c.Y
		c.resetControls()
	case 'Z', 'z':
		c.X, c.Y = c.X0, c.Y0
		c.resetControls()
	case 'L':
		c.X, c.Y = v[0], v[1]
		c.resetControls()
	case 'l':
		c.X, c.Y = c.X+v[0], c.Y+v[1]
		c.resetControls()
	case 'H':
		c.X = v[0]
		c.resetControls()
	case 'h':
		c.X += v[0]
		c.resetControls()
	case 'V':
		c.Y = v[0]
		c.resetControls()
	case 'v':
		c.Y += v[0]
		c.resetControls()
	case 'A':
		c.X, c.Y = v[5], v[6]
		c.resetControls()
	case 'a':
		c.X, c.Y = c.X+v[5], c.Y+v[6]
		c.resetControls()
	case 'C':
		c.CX, c.CY = v[2], v[3]
		c.X, c.Y = v[4], v[5]
		c.QX, c.QY = c.X, c.Y
	case 'c':
		c.CX, c.CY = c.X+v[2], c.Y+v[3]
		c.X, c.Y = c.X+v[4], c.Y+v[5]
		c.QX, c.QY = c.X, c.Y
	case 'S':
		c.CX, c.CY = v[0], v[1]
		c.X, c.Y = v[2], v[3]
		c.QX, c.QY = c.X, c.Y
	case 's':
		c.CX, c.CY = c.X+v[0], c.Y+v[1]
		c.X, c.Y = c.X+v[2], c.Y+v[3]
		c.QX, c.QY = c.X, c.Y
	case 'Q':
		c.QX, c.QY = v[0], v[1]
		c.X, c.Y = v[2], v[3]
		c.CX, c.CY = c.X, c.Y
	case 'q':
		c.QX, c.QY = c.X+v[0], c.Y+v[1]
		c.X, c.Y = c.X+v[2], c.Y+v[3]
		c.CX, c.CY = c.X, c.Y
	case 'T':
		c.QX, c.QY = c.ReflectedQuad()
		c.X, c.Y = v[0], v[1]
		c.CX, c.CY = c.X, c.Y
	case 't':
		c.QX, c.QY = c.ReflectedQuad()
		c.X, c.Y = c.X+v[0], c.Y+v[1]
		c.CX, c.CY = c.X, c.Y
	}
	return c
}

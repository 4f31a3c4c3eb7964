package pathdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReflectedCubic(t *testing.T) {
	c := Cursor{X: 10, Y: 0, CX: 5, CY: 0}
	x, y := c.ReflectedCubic()
	assert.Equal(t, 15., x)
	assert.Equal(t, 0., y)
}

func updateAll(t *testing.T, s string) Cursor {
	t.Helper()
	cmds, err := SplitSteps(s)
	if err != nil {
		t.Fatal(err)
	}
	var c Cursor
	for _, cmd := range cmds {
		c = c.Update(cmd)
	}
	return c
}

func TestCursorUpdate(t *testing.T) {
	var tests = []struct {
		in   string
		want Cursor
	}{
		{"M10 20", Cursor{X: 10, Y: 20, X0: 10, Y0: 20, CX: 10, CY: 20, QX: 10, QY: 20}},
		{"M10 20 l5 5", Cursor{X: 15, Y: 25, X0: 10, Y0: 20, CX: 15, CY: 25, QX: 15, QY: 25}},
		{"M10 20 l5 5 c0 0 5 0 5 5", Cursor{X: 20, Y: 30, X0: 10, Y0: 20, CX: 20, CY: 25, QX: 20, QY: 30}},
		{"M10 20 l5 5 c0 0 5 0 5 5 s10 0 10 10", Cursor{X: 30, Y: 40, X0: 10, Y0: 20, CX: 30, CY: 30, QX: 30, QY: 40}},
		{"M10 20 l5 5 c0 0 5 0 5 5 z", Cursor{X: 10, Y: 20, X0: 10, Y0: 20, CX: 10, CY: 20, QX: 10, QY: 20}},
		{"M0 0 Q5 10 10 0", Cursor{X: 10, Y: 0, CX: 10, CY: 0, QX: 5, QY: 10}},
		{"M0 0 Q5 10 10 0 T20 0", Cursor{X: 20, Y: 0, CX: 20, CY: 0, QX: 15, QY: -10}},
		{"M0 0 q5 10 10 0 t10 0", Cursor{X: 20, Y: 0, CX: 20, CY: 0, QX: 15, QY: -10}},
		{"M1 2 3 4", Cursor{X: 3, Y: 4, X0: 1, Y0: 2, CX: 3, CY: 4, QX: 3, QY: 4}},
		{"m1 2 3 4", Cursor{X: 4, Y: 6, X0: 1, Y0: 2, CX: 4, CY: 6, QX: 4, QY: 6}},
		{"a1 1 0 0 1 2 0 1 1 0 0 1 2 0", Cursor{X: 4, CX: 4, QX: 4}},
		{"M1 1 H5 v3", Cursor{X: 5, Y: 4, X0: 1, Y0: 1, CX: 5, CY: 4, QX: 5, QY: 4}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, updateAll(t, tt.in), tt.in)
	}
}

func TestCursorIsValue(t *testing.T) {
	c := Cursor{X: 1, Y: 1}
	next := c.Update(Command{Type: 'l', Values: []float64{1, 1}})
	assert.Equal(t, Cursor{X: 1, Y: 1}, c)
	assert.Equal(t, 2., next.X)
}

package svgdoc

import (
	"fmt"
	"math"
	"strings"

	"github.com/benoitkugler/svgpathdata/geom"
	"github.com/benoitkugler/svgpathdata/pathdata"
)

type percentageReference uint8

const (
	widthPercentage percentageReference = iota
	heightPercentage
	diagPercentage
)

// absolute units, in user units (pixels)
var unitScales = map[string]float64{
	"":   1,
	"px": 1,
	"pt": 4. / 3,
	"pc": 16,
	"mm": 96 / 25.4,
	"cm": 96 / 2.54,
	"in": 96,
}

// parseFloat parses the whole string s as a number.
func parseFloat(s string) (float64, error) {
	f, n := pathdata.ParseNumber([]byte(s))
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("svgdoc: invalid number %q", s)
	}
	return f, nil
}

// parseBasicFloat parses a number, ignoring a trailing px unit.
func parseBasicFloat(s string) (float64, error) {
	return parseFloat(strings.TrimSuffix(strings.TrimSpace(s), "px"))
}

// parseUnit parses a length, which may be expressed in an absolute unit,
// or as a percentage of the view box.
func (c *docCursor) parseUnit(s string, ref percentageReference) (float64, error) {
	s = strings.TrimSpace(s)
	if v, ok := strings.CutSuffix(s, "%"); ok {
		f, err := parseFloat(v)
		if err != nil {
			return 0, err
		}
		w, h := c.doc.ViewBox.W, c.doc.ViewBox.H
		switch ref {
		case widthPercentage:
			return f / 100 * w, nil
		case heightPercentage:
			return f / 100 * h, nil
		default:
			return f / 100 * math.Sqrt(w*w+h*h) / math.Sqrt2, nil
		}
	}
	i := len(s)
	for i > 0 && ('a' <= s[i-1] && s[i-1] <= 'z') {
		i--
	}
	scale, ok := unitScales[s[i:]]
	if !ok {
		return 0, fmt.Errorf("svgdoc: unsupported unit in %q", s)
	}
	f, err := parseFloat(s[:i])
	return f * scale, err
}

// getPoints reads a list of numbers separated by commas or spaces into c.points.
func (c *docCursor) getPoints(s string) error {
	c.points = c.points[:0]
	for _, field := range splitOnCommaOrSpace(s) {
		f, err := parseFloat(field)
		if err != nil {
			return err
		}
		c.points = append(c.points, f)
	}
	return nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

// parseTransform applies the transform list v after m1.
func (c *docCursor) parseTransform(m1 geom.Matrix2D, v string) (geom.Matrix2D, error) {
	ts := strings.Split(v, ")")
	for _, t := range ts {
		t = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(t), ","))
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m1, errParamMismatch // badly formed transformation
		}
		err := c.getPoints(d[1])
		if err != nil {
			return m1, err
		}
		m1, err = c.readTransformAttr(m1, strings.ToLower(strings.TrimSpace(d[0])))
		if err != nil {
			return m1, err
		}
	}
	return m1, nil
}

package svgdoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/benoitkugler/svgpathdata/geom"
	"github.com/benoitkugler/svgpathdata/logging"
	"github.com/benoitkugler/svgpathdata/pathdata"
)

var (
	errParamMismatch = errors.New("svgdoc: param mismatch")
	errOddPoints     = errors.New("svgdoc: polygon has odd number of points")
)

// docCursor is used while parsing SVG files
type docCursor struct {
	doc                     *Document
	errorMode               ErrorMode
	transforms              []geom.Matrix2D // one per open element
	points                  []float64
	inTitleText, inDescText bool
}

type svgFunc func(c *docCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":      svgF,
	"g":        gF,
	"line":     lineF,
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, // circleF handles ellipse also
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
	"desc":     descF,
	"title":    titleF,
}

// elements whose content is never drawn directly
var skippedElements = map[string]bool{
	"defs":           true,
	"symbol":         true,
	"clipPath":       true,
	"mask":           true,
	"marker":         true,
	"pattern":        true,
	"linearGradient": true,
	"radialGradient": true,
	"style":          true,
	"metadata":       true,
}

func (c *docCursor) transform() geom.Matrix2D { return c.transforms[len(c.transforms)-1] }

// pushTransform combines the transform attribute, if any,
// with the current transform, and pushes it on the stack.
func (c *docCursor) pushTransform(attrs []xml.Attr) error {
	m := c.transform()
	for _, attr := range attrs {
		if attr.Name.Local != "transform" {
			continue
		}
		var err error
		m, err = c.parseTransform(m, attr.Value)
		if err != nil {
			return err
		}
	}
	c.transforms = append(c.transforms, m)
	return nil
}

func (c *docCursor) readStartElement(se xml.StartElement) error {
	df, ok := drawFuncs[se.Name.Local]
	if !ok {
		switch c.errorMode {
		case StrictErrorMode:
			return fmt.Errorf("svgdoc: cannot process svg element %s", se.Name.Local)
		case WarnErrorMode:
			logging.Logger().Warn("svgdoc: cannot process svg element", slog.String("element", se.Name.Local))
		}
		return nil
	}
	if err := df(c, se.Attr); err != nil {
		return fmt.Errorf("element %s: %w", se.Name.Local, err)
	}
	return nil
}

// addElement records a drawing element, with the current transform
func (c *docCursor) addElement(tag string, attrs []xml.Attr, p *pathdata.PathData) {
	var id string
	for _, attr := range attrs {
		if attr.Name.Local == "id" {
			id = attr.Value
		}
	}
	c.doc.Elements = append(c.doc.Elements, Element{Tag: tag, ID: id, Path: p, Transform: c.transform()})
}

func svgF(c *docCursor, attrs []xml.Attr) error {
	c.doc.ViewBox = Bounds{}
	var (
		width, height float64
		err           error
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			if err = c.getPoints(attr.Value); err != nil {
				return err
			}
			if len(c.points) != 4 {
				return errParamMismatch
			}
			c.doc.ViewBox = Bounds{X: c.points[0], Y: c.points[1], W: c.points[2], H: c.points[3]}
		case "width":
			c.doc.Width = attr.Value
			if !strings.HasSuffix(attr.Value, "%") { // relative to an unknown viewport
				width, err = parseBasicFloat(attr.Value)
			}
		case "height":
			c.doc.Height = attr.Value
			if !strings.HasSuffix(attr.Value, "%") {
				height, err = parseBasicFloat(attr.Value)
			}
		}
		if err != nil {
			return err
		}
	}
	if c.doc.ViewBox.W == 0 {
		c.doc.ViewBox.W = width
	}
	if c.doc.ViewBox.H == 0 {
		c.doc.ViewBox.H = height
	}
	return nil
}

func gF(*docCursor, []xml.Attr) error { return nil } // g does nothing but push the transform

func rectF(c *docCursor, attrs []xml.Attr) error {
	var (
		r            pathdata.Rect
		hasRx, hasRy bool
		err          error
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x":
			r.X, err = c.parseUnit(attr.Value, widthPercentage)
		case "y":
			r.Y, err = c.parseUnit(attr.Value, heightPercentage)
		case "width":
			r.W, err = c.parseUnit(attr.Value, widthPercentage)
		case "height":
			r.H, err = c.parseUnit(attr.Value, heightPercentage)
		case "rx":
			r.RX, err = c.parseUnit(attr.Value, widthPercentage)
			hasRx = true
		case "ry":
			r.RY, err = c.parseUnit(attr.Value, heightPercentage)
			hasRy = true
		}
		if err != nil {
			return err
		}
	}
	if r.W == 0 || r.H == 0 { // not drawn, but not an error
		return nil
	}
	// a single radius applies to both axes
	if hasRx && !hasRy {
		r.RY = r.RX
	} else if hasRy && !hasRx {
		r.RX = r.RY
	}
	c.addElement("rect", attrs, pathdata.PathOf(r))
	return nil
}

func circleF(c *docCursor, attrs []xml.Attr) error {
	var (
		e   pathdata.Ellipse
		err error
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "cx":
			e.CX, err = c.parseUnit(attr.Value, widthPercentage)
		case "cy":
			e.CY, err = c.parseUnit(attr.Value, heightPercentage)
		case "r":
			e.RX, err = c.parseUnit(attr.Value, diagPercentage)
			e.RY = e.RX
		case "rx":
			e.RX, err = c.parseUnit(attr.Value, widthPercentage)
		case "ry":
			e.RY, err = c.parseUnit(attr.Value, heightPercentage)
		}
		if err != nil {
			return err
		}
	}
	if e.RX == 0 || e.RY == 0 { // not drawn, but not an error
		return nil
	}
	tag := "ellipse"
	if e.RX == e.RY {
		tag = "circle"
	}
	c.addElement(tag, attrs, pathdata.PathOf(e))
	return nil
}

func lineF(c *docCursor, attrs []xml.Attr) error {
	var (
		x1, x2, y1, y2 float64
		err            error
	)
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "x1":
			x1, err = c.parseUnit(attr.Value, widthPercentage)
		case "x2":
			x2, err = c.parseUnit(attr.Value, widthPercentage)
		case "y1":
			y1, err = c.parseUnit(attr.Value, heightPercentage)
		case "y2":
			y2, err = c.parseUnit(attr.Value, heightPercentage)
		}
		if err != nil {
			return err
		}
	}
	c.addElement("line", attrs, pathdata.FromCommands(
		pathdata.Command{Type: 'M', Values: []float64{x1, y1}},
		pathdata.Command{Type: 'L', Values: []float64{x2, y2}},
	))
	return nil
}

// readPolyline returns the commands for the points attribute,
// or nil if there are less than two points.
func readPolyline(c *docCursor, attrs []xml.Attr) ([]pathdata.Command, error) {
	c.points = c.points[:0]
	for _, attr := range attrs {
		if attr.Name.Local != "points" {
			continue
		}
		if err := c.getPoints(attr.Value); err != nil {
			return nil, err
		}
		if len(c.points)%2 != 0 {
			return nil, errOddPoints
		}
	}
	if len(c.points) < 4 {
		return nil, nil
	}
	pts := append([]float64(nil), c.points...)
	return []pathdata.Command{
		{Type: 'M', Values: pts[:2:2]},
		{Type: 'L', Values: pts[2:]},
	}, nil
}

func polylineF(c *docCursor, attrs []xml.Attr) error {
	cmds, err := readPolyline(c, attrs)
	if err != nil || cmds == nil {
		return err
	}
	c.addElement("polyline", attrs, pathdata.FromCommands(cmds...))
	return nil
}

func polygonF(c *docCursor, attrs []xml.Attr) error {
	cmds, err := readPolyline(c, attrs)
	if err != nil || cmds == nil {
		return err
	}
	cmds = append(cmds, pathdata.Command{Type: 'Z'})
	c.addElement("polygon", attrs, pathdata.FromCommands(cmds...))
	return nil
}

func pathF(c *docCursor, attrs []xml.Attr) error {
	for _, attr := range attrs {
		if attr.Name.Local != "d" {
			continue
		}
		p := pathdata.Parse(attr.Value)
		// report syntax errors now rather than on the first traversal
		for _, err := range p.All() {
			if err != nil {
				return err
			}
		}
		c.addElement("path", attrs, p)
	}
	return nil
}

func descF(c *docCursor, attrs []xml.Attr) error {
	c.inDescText = true
	c.doc.Descriptions = append(c.doc.Descriptions, "")
	return nil
}

func titleF(c *docCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.doc.Titles = append(c.doc.Titles, "")
	return nil
}

func (c *docCursor) readTransformAttr(m1 geom.Matrix2D, k string) (geom.Matrix2D, error) {
	ln := len(c.points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(geom.Radians(c.points[0]))
		} else if ln == 3 {
			m1 = m1.Translate(c.points[1], c.points[2]).
				Rotate(geom.Radians(c.points[0])).
				Translate(-c.points[1], -c.points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(c.points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(c.points[0], c.points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(geom.Radians(c.points[0]))
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(geom.Radians(c.points[0]))
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(c.points[0], c.points[0])
		} else if ln == 2 {
			m1 = m1.Scale(c.points[0], c.points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(geom.Matrix2D{
				A: c.points[0],
				B: c.points[1],
				C: c.points[2],
				D: c.points[3],
				E: c.points[4],
				F: c.points[5]})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}

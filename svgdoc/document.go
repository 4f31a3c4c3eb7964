// Package svgdoc extracts the geometry of SVG documents:
// every drawing element (path, rect, circle, ellipse, line, polyline and polygon)
// is converted to path data, together with its transform.
// Styling, gradients, text and references are not supported.
package svgdoc

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"github.com/benoitkugler/svgpathdata/geom"
	"github.com/benoitkugler/svgpathdata/pathdata"
	"golang.org/x/net/html/charset"
)

// ErrorMode determines how unsupported elements are handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode silently skips unsupported elements.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs unsupported elements.
	WarnErrorMode
	// StrictErrorMode fails on unsupported elements.
	StrictErrorMode
)

// Bounds defines a bounding box, such as a viewport.
type Bounds struct{ X, Y, W, H float64 }

// Element is a drawing element of a document.
type Element struct {
	Tag  string // name of the SVG element
	ID   string
	Path *pathdata.PathData // in the element user space
	// Transform maps the user space of the element
	// to the document space.
	Transform geom.Matrix2D
}

// Placed returns the path of the element in document space.
// It uses the plain form when the element has a transform.
func (e Element) Placed() *pathdata.PathData {
	if e.Transform == geom.Identity {
		return e.Path
	}
	return e.Path.AsPlain().Transform(e.Transform)
}

// Document holds data from parsed SVGs.
type Document struct {
	ViewBox       Bounds
	Width, Height string // top level width and height attributes
	Titles        []string
	Descriptions  []string
	Elements      []Element
}

// Bounds returns the extent of all the elements, in document space.
func (d *Document) Bounds() (geom.Rect, error) {
	var box geom.Rect
	for _, e := range d.Elements {
		r, err := e.Placed().Bounds()
		if err != nil {
			return geom.Rect{}, err
		}
		box = box.Union(r)
	}
	return box, nil
}

// Read reads the document from the given io.Reader.
// errMode determines if the document ignores, errors out, or logs a warning
// if it does not handle an element found in the file.
func Read(stream io.Reader, errMode ErrorMode) (*Document, error) {
	doc := new(Document)
	cursor := &docCursor{doc: doc, errorMode: errMode, transforms: []geom.Matrix2D{geom.Identity}}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("svgdoc: invalid svg xml document")
				}
				break
			}
			return doc, err
		}
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			if skippedElements[se.Name.Local] { // not rendered: skip the whole subtree
				if err = decoder.Skip(); err != nil {
					return doc, err
				}
				continue
			}
			if err = cursor.pushTransform(se.Attr); err != nil {
				return doc, err
			}
			if err = cursor.readStartElement(se); err != nil {
				return doc, err
			}
		case xml.EndElement:
			cursor.transforms = cursor.transforms[:len(cursor.transforms)-1]
			switch se.Name.Local {
			case "title":
				cursor.inTitleText = false
			case "desc":
				cursor.inDescText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				doc.Titles[len(doc.Titles)-1] += string(se)
			}
			if cursor.inDescText {
				doc.Descriptions[len(doc.Descriptions)-1] += string(se)
			}
		}
	}
	return doc, nil
}

// ReadFile reads the document from the named file. See Read.
func ReadFile(name string, errMode ErrorMode) (*Document, error) {
	fin, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fin.Close()
	return Read(fin, errMode)
}

// Package pathdata implements SVG path data ("d" attributes):
// lexing, normal form conversions, affine transforms,
// curve flattening and parametric shapes.
//
// A PathData is an immutable view over a source, which may be a
// string, a slice of commands or a generator. Conversions are lazy:
// they return a new PathData whose commands are computed on each traversal,
// and which is cached by its parent.
package pathdata

import (
	"fmt"
	"iter"
	"log/slog"
	"strings"
	"sync"

	"github.com/benoitkugler/svgpathdata/logging"
)

// Source is the origin of the commands of a PathData.
// It is one of Text, Steps or Lazy.
type Source interface {
	isSource()
}

// Text is raw path data, lexed on each traversal.
type Text string

// Steps is an already split command list.
type Steps []Command

// Lazy produces commands on demand. It must be deterministic and
// side effect free: each call yields the same sequence.
type Lazy func(yield func(Command, error) bool)

func (Text) isSource()  {}
func (Steps) isSource() {}
func (Lazy) isSource()  {}

// NormalForm is a set of syntactic guarantees.
type NormalForm uint8

const (
	// SimpleParams : every command has exactly one chunk of values.
	SimpleParams NormalForm = 1 << iota
	// Absolute : no relative command.
	Absolute
	// Unreflected : no S, s, T or t command.
	Unreflected
	// CubicOnly : no A, a, Q, q, T or t command.
	CubicOnly
	// BaseCommandsOnly : only M, m, L, l, C, c, Z and z commands.
	BaseCommandsOnly
	// OneSegment : a single subpath.
	OneSegment
)

const allForms = SimpleParams | Absolute | Unreflected | CubicOnly | BaseCommandsOnly | OneSegment

var formNames = [...]string{"SimpleParams", "Absolute", "Unreflected", "CubicOnly", "BaseCommandsOnly", "OneSegment"}

func (f NormalForm) String() string {
	var names []string
	for i, name := range formNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

type viewKind uint8

const (
	simpleParamsView viewKind = iota
	absoluteView
	unreflectedView
	cubicOnlyView
	normalizedView
	baseCommandsView
	plainView
	viewCount
)

var viewNames = [viewCount]string{"simple params", "absolute", "unreflected", "cubic only", "normalized", "base commands", "plain"}

// PathData is an immutable path, safe for concurrent use.
type PathData struct {
	src   Source
	forms NormalForm

	mu    sync.Mutex
	views [viewCount]*PathData // written once
}

// New wraps src, which must not be nil.
func New(src Source) (*PathData, error) {
	switch src := src.(type) {
	case Text:
		return &PathData{src: src, forms: textForms(string(src))}, nil
	case Steps:
		if src == nil {
			return nil, fmt.Errorf("%w: nil steps", ErrInvalidSource)
		}
		return &PathData{src: src}, nil
	case Lazy:
		if src == nil {
			return nil, fmt.Errorf("%w: nil generator", ErrInvalidSource)
		}
		return &PathData{src: src}, nil
	default:
		return nil, ErrInvalidSource
	}
}

// Parse returns the path data for the "d" string s.
// The string is validated lazily, when traversed.
func Parse(s string) *PathData {
	return &PathData{src: Text(s), forms: textForms(s)}
}

// FromCommands wraps the given commands, which must not be modified afterwards.
func FromCommands(cmds ...Command) *PathData {
	if cmds == nil {
		cmds = []Command{}
	}
	return &PathData{src: Steps(cmds)}
}

// FromFunc wraps a command generator. See Lazy.
func FromFunc(fn Lazy) (*PathData, error) { return New(fn) }

// Source returns the underlying source.
func (p *PathData) Source() Source { return p.src }

// Forms returns the guarantees known for p.
func (p *PathData) Forms() NormalForm { return p.forms }

// Has reports whether all the guarantees in f are known to hold.
func (p *PathData) Has(f NormalForm) bool { return p.forms&f == f }

// All iterates over the commands. Commands which are not valid
// (see Command.Validate) stop the iteration with an error.
// The yielded values must not be modified.
func (p *PathData) All() iter.Seq2[Command, error] {
	switch src := p.src.(type) {
	case Text:
		return scanSteps(string(src))
	case Steps:
		return func(yield func(Command, error) bool) {
			for _, cmd := range src {
				if err := cmd.Validate(); err != nil {
					yield(Command{}, err)
					return
				}
				if !yield(cmd, nil) {
					return
				}
			}
		}
	case Lazy:
		return func(yield func(Command, error) bool) {
			for cmd, err := range src {
				if err == nil {
					err = cmd.Validate()
				}
				if err != nil {
					yield(Command{}, err)
					return
				}
				if !yield(cmd, nil) {
					return
				}
			}
		}
	}
	return func(yield func(Command, error) bool) { yield(Command{}, ErrInvalidSource) }
}

// Commands collects the commands of p.
func (p *PathData) Commands() ([]Command, error) {
	var out []Command
	for cmd, err := range p.All() {
		if err != nil {
			return nil, err
		}
		out = append(out, cmd)
	}
	return out, nil
}

// MarshalText returns the original string for Text sources,
// and otherwise the commands, each written as its letter followed
// by its values separated by a space.
func (p *PathData) MarshalText() ([]byte, error) {
	if s, ok := p.src.(Text); ok {
		return []byte(s), nil
	}
	var buf []byte
	for cmd, err := range p.All() {
		if err != nil {
			return buf, err
		}
		buf = cmd.appendText(buf)
	}
	return buf, nil
}

// String implements fmt.Stringer. The output stops
// at the first invalid command.
func (p *PathData) String() string {
	b, _ := p.MarshalText()
	return string(b)
}

// view returns the cached view kind, calling build if it is
// not yet computed. build is called without holding the lock, since
// it usually requires other views of p.
func (p *PathData) view(kind viewKind, build func() *PathData) *PathData {
	p.mu.Lock()
	v := p.views[kind]
	p.mu.Unlock()
	if v != nil {
		return v
	}

	v = build()

	p.mu.Lock()
	defer p.mu.Unlock()
	if existing := p.views[kind]; existing != nil { // lost the race
		return existing
	}
	p.views[kind] = v
	logging.Logger().Debug("pathdata: derived view", slog.String("view", viewNames[kind]), slog.String("forms", v.forms.String()))
	return v
}

// Segments splits p in its subpaths, each starting with a moveto.
// A relative moveto starting a subpath (other than the first one) is
// resolved to an absolute one, so that each segment is standalone.
func (p *PathData) Segments() ([]*PathData, error) {
	if p.Has(OneSegment) {
		return []*PathData{p}, nil
	}
	if s, ok := p.src.(Text); ok {
		if parts, ok := splitTextSegments(string(s)); ok {
			out := make([]*PathData, len(parts))
			for i, part := range parts {
				out[i] = &PathData{src: Text(part), forms: textForms(part) | OneSegment}
			}
			return out, nil
		}
	}

	var (
		out     []*PathData
		current []Command
		cursor  Cursor
		index   int
	)
	flush := func() {
		if len(current) != 0 {
			out = append(out, &PathData{src: Steps(current), forms: p.forms | OneSegment})
		}
		current = nil
	}
	for cmd, err := range p.All() {
		if err != nil {
			return nil, err
		}
		switch {
		case cmd.Type == 'M':
			flush()
			current = append(current, cmd)
		case cmd.Type == 'm' && index == 0:
			current = append(current, cmd)
		case cmd.Type == 'm':
			flush()
			current = append(current, Command{Type: 'M', Values: []float64{cursor.X + cmd.Values[0], cursor.Y + cmd.Values[1]}})
			if len(cmd.Values) > 2 {
				current = append(current, Command{Type: 'l', Values: cmd.Values[2:]})
			}
		default:
			current = append(current, cmd)
		}
		cursor = cursor.Update(cmd)
		index++
	}
	flush()
	return out, nil
}

// splitTextSegments returns false when the segments of s may not
// be used directly, that is when s does not start with a moveto or
// when a subpath other than the first starts with a relative moveto.
func splitTextSegments(s string) ([]string, bool) {
	parts := SplitSegments(s)
	if len(parts) == 0 {
		return nil, false
	}
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) {
			continue
		}
		if s[i] != 'm' && s[i] != 'M' {
			return nil, false
		}
		break
	}
	for _, part := range parts[1:] {
		if part[0] == 'm' {
			return nil, false
		}
	}
	return parts, true
}

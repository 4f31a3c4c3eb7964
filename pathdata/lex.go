package pathdata

import (
	"fmt"
	"iter"
	"regexp"
	"strings"
)

// syntactic guarantees checked on Text sources
var (
	oneSegmentRe = regexp.MustCompile(`(?i)^\s*m[^mz]*(?:z\s*)?$`)
	relativeRe   = regexp.MustCompile(`[a-df-z]`) // 'e' is an exponent
	reflectedRe  = regexp.MustCompile(`(?i)[st]`)
	nonCubicRe   = regexp.MustCompile(`(?i)[aqt]`)
	nonBaseRe    = regexp.MustCompile(`(?i)[ahqstv]`)
)

// textForms returns the normal forms verified by s.
func textForms(s string) NormalForm {
	var f NormalForm
	if ToSimpleParams(s) == s {
		f |= SimpleParams
	}
	if !relativeRe.MatchString(s) {
		f |= Absolute
	}
	if !reflectedRe.MatchString(s) {
		f |= Unreflected
	}
	if !nonCubicRe.MatchString(s) {
		f |= CubicOnly
	}
	if !nonBaseRe.MatchString(s) {
		f |= BaseCommandsOnly
	}
	if oneSegmentRe.MatchString(s) {
		f |= OneSegment
	}
	return f
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isCommandLetter(c byte) bool {
	_, ok := Arity(c)
	return ok
}

type scanner struct {
	b   []byte
	pos int
}

func (sc *scanner) skipSeparators() {
	for sc.pos < len(sc.b) && (isSpace(sc.b[sc.pos]) || sc.b[sc.pos] == ',') {
		sc.pos++
	}
}

// atValue reports whether a value may start at the current position.
func (sc *scanner) atValue() bool {
	return sc.pos < len(sc.b) && !isCommandLetter(sc.b[sc.pos])
}

// value reads the index-th value of a command of type t.
// Whitespace is allowed between a sign and its digits.
// Arc flags are single '0' or '1' characters which may be packed together.
func (sc *scanner) value(t byte, index int) (float64, error) {
	start := sc.pos
	if t == 'A' || t == 'a' {
		if k := index % 7; k == 3 || k == 4 {
			switch sc.b[sc.pos] {
			case '0':
				sc.pos++
				return 0, nil
			case '1':
				sc.pos++
				return 1, nil
			}
			return 0, fmt.Errorf("%w: arc flag should be 0 or 1 in command %c at offset %d", ErrMalformedInput, t, start)
		}
	}
	i := sc.pos
	neg := false
	if c := sc.b[i]; c == '-' || c == '+' {
		neg = c == '-'
		i++
		for i < len(sc.b) && isSpace(sc.b[i]) {
			i++
		}
	}
	if i >= len(sc.b) || !(sc.b[i] >= '0' && sc.b[i] <= '9' || sc.b[i] == '.') {
		return 0, fmt.Errorf("%w: invalid number in command %c at offset %d", ErrMalformedInput, t, start)
	}
	f, n := ParseNumber(sc.b[i:])
	if n == 0 {
		return 0, fmt.Errorf("%w: invalid number in command %c at offset %d", ErrMalformedInput, t, start)
	}
	sc.pos = i + n
	if neg {
		f = -f
	}
	return f, nil
}

// next reads one command group. It returns false at the end of input.
func (sc *scanner) next() (Command, bool, error) {
	sc.skipSeparators()
	if sc.pos >= len(sc.b) {
		return Command{}, false, nil
	}
	t := sc.b[sc.pos]
	if !isCommandLetter(t) {
		return Command{}, false, fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformedInput, t, sc.pos)
	}
	sc.pos++
	cmd := Command{Type: t}
	for {
		sc.skipSeparators()
		if !sc.atValue() {
			break
		}
		v, err := sc.value(t, len(cmd.Values))
		if err != nil {
			return Command{}, false, err
		}
		cmd.Values = append(cmd.Values, v)
	}
	if err := cmd.Validate(); err != nil {
		return Command{}, false, fmt.Errorf("%w (offset %d)", err, sc.pos)
	}
	return cmd, true, nil
}

// scanSteps lazily lexes s; an error stops the sequence.
func scanSteps(s string) iter.Seq2[Command, error] {
	return func(yield func(Command, error) bool) {
		sc := scanner{b: []byte(s)}
		for {
			cmd, ok, err := sc.next()
			if err != nil {
				yield(Command{}, err)
				return
			}
			if !ok || !yield(cmd, nil) {
				return
			}
		}
	}
}

// SplitSteps lexes the path data s into its command groups.
func SplitSteps(s string) ([]Command, error) {
	var out []Command
	for cmd, err := range scanSteps(s) {
		if err != nil {
			return nil, err
		}
		out = append(out, cmd)
	}
	return out, nil
}

// SplitSegments splits s before every moveto letter.
// Text preceding the first moveto is dropped.
func SplitSegments(s string) []string {
	var out []string
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] != 'm' && s[i] != 'M' {
			continue
		}
		if start >= 0 {
			out = append(out, s[start:i])
		}
		start = i
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

// ToSimpleParams rewrites s so that every command carries exactly one
// chunk of values, by repeating the command letter before each extra chunk.
// Extra moveto pairs are prefixed with L or l.
// The text between values is kept, so that ToSimpleParams returns s itself
// when nothing needs rewriting. Malformed input is copied unchanged from
// the first error on.
func ToSimpleParams(s string) string {
	var (
		sc   = scanner{b: []byte(s)}
		out  strings.Builder
		last int // s[:last] has been written to out
	)
scan:
	for {
		sc.skipSeparators()
		if sc.pos >= len(sc.b) {
			break
		}
		t := sc.b[sc.pos]
		n, ok := Arity(t)
		if !ok {
			break
		}
		sc.pos++
		for count := 0; ; count++ {
			sc.skipSeparators()
			if !sc.atValue() {
				break
			}
			start := sc.pos
			if _, err := sc.value(t, count); err != nil {
				break scan
			}
			if n > 0 && count > 0 && count%n == 0 {
				out.WriteString(s[last:start])
				out.WriteByte(repeatType(t))
				last = start
			}
		}
	}
	if last == 0 {
		return s
	}
	out.WriteString(s[last:])
	return out.String()
}

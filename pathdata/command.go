package pathdata

import (
	"fmt"
	"strconv"
)

// Command is one path instruction: a command letter and its values.
// The values of a command with more than one chunk (for instance "L 1 2 3 4")
// encode an implicit run of commands sharing the same letter.
type Command struct {
	Type   byte
	Values []float64
}

// Arity returns the minimal number of values expected by the
// command letter t, or false if t is not a path command.
func Arity(t byte) (int, bool) {
	switch t {
	case 'M', 'm', 'L', 'l', 'T', 't':
		return 2, true
	case 'H', 'h', 'V', 'v':
		return 1, true
	case 'S', 's', 'Q', 'q':
		return 4, true
	case 'C', 'c':
		return 6, true
	case 'A', 'a':
		return 7, true
	case 'Z', 'z':
		return 0, true
	default:
		return 0, false
	}
}

// IsRelative reports whether the command uses relative coordinates.
func (c Command) IsRelative() bool { return 'a' <= c.Type && c.Type <= 'z' }

// Validate checks that the command letter is known and that the
// number of values is a positive multiple of its arity.
func (c Command) Validate() error {
	n, ok := Arity(c.Type)
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrMalformedInput, c.Type)
	}
	if n == 0 {
		if len(c.Values) != 0 {
			return fmt.Errorf("%w: %c takes no values, got %d", ErrMalformedInput, c.Type, len(c.Values))
		}
		return nil
	}
	if len(c.Values) == 0 || len(c.Values)%n != 0 {
		return fmt.Errorf("%w: %c expects a positive multiple of %d values, got %d",
			ErrMalformedInput, c.Type, n, len(c.Values))
	}
	return nil
}

// repeatType returns the letter implied by the extra chunks of a command:
// the extra pairs of a moveto are linetos.
func repeatType(t byte) byte {
	switch t {
	case 'M':
		return 'L'
	case 'm':
		return 'l'
	default:
		return t
	}
}

// Chunks splits the command in single chunk commands.
// The values are shared with c.
func (c Command) Chunks() []Command {
	n, _ := Arity(c.Type)
	if n == 0 || len(c.Values) <= n {
		return []Command{c}
	}
	out := make([]Command, 0, len(c.Values)/n)
	for i := 0; i+n <= len(c.Values); i += n {
		t := c.Type
		if i > 0 {
			t = repeatType(t)
		}
		out = append(out, Command{Type: t, Values: c.Values[i : i+n : i+n]})
	}
	return out
}

func (c Command) String() string {
	return string(c.appendText(nil))
}

// appendText writes the command letter followed by its values
// separated by a single space.
func (c Command) appendText(buf []byte) []byte {
	buf = append(buf, c.Type)
	for i, v := range c.Values {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = appendNumber(buf, v)
	}
	return buf
}

func appendNumber(buf []byte, v float64) []byte {
	if v == 0 {
		v = 0 // no negative zero
	}
	return strconv.AppendFloat(buf, v, 'f', -1, 64)
}

package pathdata

import "errors"

var (
	// ErrMalformedInput is returned for unparseable path data
	// or commands with a wrong number of values.
	ErrMalformedInput = errors.New("pathdata: malformed input")

	// ErrUnsupportedCommand is returned by a normal form which
	// does not handle a command type.
	ErrUnsupportedCommand = errors.New("pathdata: unsupported command")

	// ErrInvalidTransform is returned when an affine transform meets
	// a command other than M, L, C or Z.
	ErrInvalidTransform = errors.New("pathdata: transform requires M, L, C and Z commands only")

	// ErrInvalidSource is returned by New for a nil source.
	ErrInvalidSource = errors.New("pathdata: invalid source")
)

// Command pathdata rewrites SVG path data.
//
// Usage:
//
//	pathdata [flags] <path data | file.svg>
//
// The path is printed in the form selected by -form, after the optional
// affine operations. For SVG files, one line is printed per drawing element,
// in document space.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/benoitkugler/svgpathdata/logging"
	"github.com/benoitkugler/svgpathdata/pathdata"
	"github.com/benoitkugler/svgpathdata/svgdoc"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "pathdata: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	form       string
	translate  string
	scale      string
	rotate     float64
	segments   bool
	bounds     bool
	configFile string
	verbose    bool
}

func run(args []string, stdout, stderr io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("pathdata", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.form, "form", "", "output form: simple, absolute, unreflected, cubic, normalized, base, plain or flat")
	fs.StringVar(&opts.translate, "translate", "", "translate by `dx,dy`")
	fs.StringVar(&opts.scale, "scale", "", "scale by `sx,sy` (applied on the plain form)")
	fs.Float64Var(&opts.rotate, "rotate", 0, "rotate by `degrees` (applied on the plain form)")
	fs.BoolVar(&opts.segments, "segments", false, "print one line per subpath")
	fs.BoolVar(&opts.bounds, "bounds", false, "print the bounding box instead of the path")
	fs.StringVar(&opts.configFile, "config", "", "TOML configuration `file`")
	fs.BoolVar(&opts.verbose, "v", false, "log debug messages to stderr")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: pathdata [flags] <path data | file.svg>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("expected one argument")
	}

	if opts.verbose {
		logging.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer logging.SetLogger(nil)
	}

	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		return err
	}
	if opts.form == "" {
		opts.form = cfg.Form
	}

	input := fs.Arg(0)
	var paths []*pathdata.PathData
	if strings.HasSuffix(strings.ToLower(input), ".svg") {
		mode := svgdoc.WarnErrorMode
		if cfg.Strict {
			mode = svgdoc.StrictErrorMode
		}
		doc, err := svgdoc.ReadFile(input, mode)
		if err != nil {
			return err
		}
		for _, e := range doc.Elements {
			paths = append(paths, e.Placed())
		}
	} else {
		paths = append(paths, pathdata.Parse(input))
	}

	for _, p := range paths {
		out, err := opts.apply(p, cfg)
		if err != nil {
			return err
		}
		if err := opts.print(stdout, out); err != nil {
			return err
		}
	}
	return nil
}

// apply performs the affine operations and selects the output form.
func (opts options) apply(p *pathdata.PathData, cfg config) (*pathdata.PathData, error) {
	if opts.translate != "" {
		dx, dy, err := parsePair(opts.translate)
		if err != nil {
			return nil, fmt.Errorf("-translate: %w", err)
		}
		p = p.Translated(dx, dy)
	}
	if opts.scale != "" {
		sx, sy, err := parsePair(opts.scale)
		if err != nil {
			return nil, fmt.Errorf("-scale: %w", err)
		}
		p = p.AsPlain().Scaled(sx, sy)
	}
	if opts.rotate != 0 {
		p = p.AsPlain().Rotated(opts.rotate)
	}

	switch opts.form {
	case "":
		return p, nil
	case "simple":
		return p.AsSimpleParams(), nil
	case "absolute":
		return p.AsAbsolute(), nil
	case "unreflected":
		return p.AsUnreflected(), nil
	case "cubic":
		return p.AsCubicOnly(), nil
	case "normalized":
		return p.AsNormalized(), nil
	case "base":
		return p.AsBaseCommands(), nil
	case "plain":
		return p.AsPlain(), nil
	case "flat":
		return p.Flattened(cfg.Flatten), nil
	default:
		return nil, fmt.Errorf("unknown form %q", opts.form)
	}
}

func (opts options) print(w io.Writer, p *pathdata.PathData) error {
	if opts.bounds {
		box, err := p.Bounds()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%g %g %g %g\n", box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)
		return err
	}
	parts := []*pathdata.PathData{p}
	if opts.segments {
		var err error
		if parts, err = p.Segments(); err != nil {
			return err
		}
	}
	for _, part := range parts {
		// text views are echoed verbatim: lex them once to report malformed input
		if _, err := part.Commands(); err != nil {
			return err
		}
		b, err := part.MarshalText()
		if err != nil {
			return err
		}
		if _, err = fmt.Fprintf(w, "%s\n", b); err != nil {
			return err
		}
	}
	return nil
}

func parsePair(s string) (float64, float64, error) {
	a, b, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("expected two comma separated numbers, got %q", s)
	}
	x, err := parseNumber(a)
	if err != nil {
		return 0, 0, err
	}
	y, err := parseNumber(b)
	return x, y, err
}

func parseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	f, n := pathdata.ParseNumber([]byte(s))
	if n == 0 || n != len(s) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

// Package emitter writes the GhostPrompter icon into its application bundle.
//
// Emission has two tiers. Creating the resources directory and writing
// AppIcon.svg are fatal: any error is returned and nothing is printed.
// Creating the AppIcon.iconset directory is best-effort: its outcome is an
// IconsetResult that is reported on the output but never returned as an
// error.
package emitter

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/Mavwarf/ghosticon/internal/icon"
	"github.com/Mavwarf/ghosticon/internal/paths"
)

// IconsetResult is the outcome of the best-effort iconset step.
type IconsetResult struct {
	Path string
	Err  error
}

// OK reports whether the iconset directory exists.
func (r IconsetResult) OK() bool { return r.Err == nil }

// Emitter writes the icon document and bundle directories.
type Emitter struct {
	out  io.Writer
	root string
	log  zerolog.Logger
}

// Option configures an Emitter.
type Option func(*Emitter)

// WithRoot places the bundle under dir instead of the working directory.
func WithRoot(dir string) Option {
	return func(e *Emitter) { e.root = dir }
}

// WithLogger sets the diagnostic logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Emitter) { e.log = l }
}

// New returns an Emitter printing its result lines to out.
func New(out io.Writer, opts ...Option) *Emitter {
	e := &Emitter{out: out, log: zerolog.Nop()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// SVGPath is where the document is written, as printed in the confirmation.
func (e *Emitter) SVGPath() string { return paths.Join(e.root, paths.SVGPath) }

// IconsetPath is the directory reserved for rasterized icon sizes.
func (e *Emitter) IconsetPath() string { return paths.Join(e.root, paths.IconsetPath) }

// EnsureOutputDir creates the parent directory of the SVG path.
func (e *Emitter) EnsureOutputDir() error {
	dir := filepath.Dir(e.SVGPath())
	e.log.Debug().Str("dir", dir).Msg("ensure output dir")
	if err := paths.EnsureDir(dir); err != nil {
		return fmt.Errorf("creating %s: %w", dir, err)
	}
	return nil
}

// WriteDocument writes the icon document to the SVG path, replacing any
// existing file.
func (e *Emitter) WriteDocument() error {
	p := e.SVGPath()
	data := icon.Bytes()
	e.log.Debug().Str("path", p).Int("bytes", len(data)).Msg("write svg")
	if err := paths.WriteFile(p, data); err != nil {
		return fmt.Errorf("writing %s: %w", p, err)
	}
	return nil
}

// Confirm prints the SVG confirmation line.
func (e *Emitter) Confirm() error {
	_, err := fmt.Fprintf(e.out, "SVG icon created at %s\n", e.SVGPath())
	return err
}

// EnsureIconset creates the iconset directory. Failure is captured in the
// result rather than returned.
func (e *Emitter) EnsureIconset() IconsetResult {
	p := e.IconsetPath()
	e.log.Debug().Str("dir", p).Msg("ensure iconset dir")
	if err := paths.EnsureDir(p); err != nil {
		e.log.Warn().Err(err).Str("dir", p).Msg("iconset skipped")
		return IconsetResult{Path: p, Err: err}
	}
	return IconsetResult{Path: p}
}

// Report prints the outcome of the iconset step. Only a failure to write to
// the output is returned.
func (e *Emitter) Report(r IconsetResult) error {
	if r.OK() {
		_, err := fmt.Fprintln(e.out, "Icon created successfully!")
		return err
	}
	if _, err := fmt.Fprintf(e.out, "Note: Could not create full iconset: %v\n", r.Err); err != nil {
		return err
	}
	_, err := fmt.Fprintln(e.out, "The app will use a default icon.")
	return err
}

// Run performs the full emission. The returned error covers the fatal tier
// only; the iconset outcome is in the result.
func (e *Emitter) Run() (IconsetResult, error) {
	if err := e.EnsureOutputDir(); err != nil {
		return IconsetResult{}, err
	}
	if err := e.WriteDocument(); err != nil {
		return IconsetResult{}, err
	}
	if err := e.Confirm(); err != nil {
		return IconsetResult{}, err
	}
	r := e.EnsureIconset()
	if err := e.Report(r); err != nil {
		return r, err
	}
	return r, nil
}

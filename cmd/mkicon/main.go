// mkicon writes the GhostPrompter app icon into GhostPrompter.app.
// Usage: mkicon [--dir <dir>] [--verbose]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Mavwarf/ghosticon/internal/diag"
	"github.com/Mavwarf/ghosticon/internal/emitter"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

type options struct {
	dir     string
	verbose bool
	command string // "" | "help" | "version"
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Run 'mkicon help' for usage.\n")
		os.Exit(1)
	}

	switch opts.command {
	case "help":
		printUsage(os.Stdout)
		return
	case "version":
		fmt.Printf("mkicon %s (%s)\n", version, buildDate)
		return
	}

	if err := run(os.Stdout, os.Stderr, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run emits the icon. Only fatal-tier failures are returned; an iconset
// failure has already been reported on stdout.
func run(stdout, stderr io.Writer, opts options) error {
	log := diag.New(stderr, opts.verbose)
	e := emitter.New(stdout, emitter.WithRoot(opts.dir), emitter.WithLogger(log))
	r, err := e.Run()
	if err != nil {
		return err
	}
	log.Debug().Bool("iconset", r.OK()).Msg("done")
	return nil
}

func parseArgs(args []string) (options, error) {
	var opts options
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--dir", "-C":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a directory", args[i])
			}
			opts.dir = args[i+1]
			i++
		case "--verbose":
			opts.verbose = true
		case "help", "-h", "--help":
			opts.command = "help"
		case "version", "-V", "--version":
			opts.command = "version"
		default:
			return opts, fmt.Errorf("unknown argument %q", args[i])
		}
	}
	return opts, nil
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `mkicon - write the GhostPrompter app icon

Usage:
  mkicon [--dir <dir>] [--verbose]
  mkicon version
  mkicon help

Writes GhostPrompter.app/Contents/Resources/AppIcon.svg and creates the
AppIcon.iconset directory next to it. Paths are relative to the working
directory unless --dir is given.

Options:
  -C, --dir <dir>   Create the bundle under <dir>
      --verbose     Print diagnostics to stderr
`)
}

// tapem validates and summarizes Test Anything Protocol streams.
//
// Usage:
//
//	./run-tests.sh | tapem
//	tapem -f results.tap
//	prove --verbose | tapem --ascii
//
// Every input line is echoed unchanged as it is read. After the stream
// ends, tapem prints a themed report — results, failures, protocol errors,
// totals, verdict — and exits with the combined failure/error count,
// clamped to 100. Exit 0 means a fully clean run.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/tapem/internal/config"
	"github.com/dkoosis/tapem/internal/version"
	"github.com/dkoosis/tapem/pkg/tap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("tapem", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var file string
	fs.StringVar(&file, "file", "", "Read TAP input from a file instead of stdin")
	fs.StringVar(&file, "f", "", "Shorthand for --file")
	var ascii bool
	fs.BoolVar(&ascii, "ascii", false, "Use ASCII-compatible emoticons")
	fs.BoolVar(&ascii, "a", false, "Shorthand for --ascii")
	themeName := fs.String("theme", "", "Theme: emoji, ascii")
	noColor := fs.Bool("no-color", false, "Disable color styling")
	showVersion := fs.Bool("version", false, "Print version and exit")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "tapem %s (%s, built %s)\n",
			version.Version, version.CommitHash, version.BuildDate)
		return 0
	}

	cfg := config.Load()
	theme := config.Resolve(cfg, config.Flags{
		Theme:   *themeName,
		ASCII:   ascii,
		NoColor: *noColor,
	}, isTTYWriter(stdout))

	acc := tap.New(theme, stdout)

	in := stdin
	var f *os.File
	if file != "" {
		var err error
		f, err = os.Open(file)
		if err != nil {
			fmt.Fprintf(stderr, "tapem: %v\n", err)
			return 2
		}
		in = f
	}

	drainErr := acc.Drain(in)
	if f != nil {
		// The input file must be released before the run is sealed,
		// whether or not reading completed normally.
		if err := f.Close(); err != nil {
			fmt.Fprintf(stderr, "tapem: closing %s: %v\n", file, err)
		}
	}
	if drainErr != nil {
		// A truncated stream still gets its report.
		fmt.Fprintf(stderr, "tapem: %v\n", drainErr)
	}

	acc.Finalize()
	for _, line := range acc.Summarize() {
		fmt.Fprintln(stdout, line)
	}
	return acc.ExitCode()
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

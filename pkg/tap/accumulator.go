package tap

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dkoosis/tapem/pkg/render"
)

// Accumulator is the single owner of run state while a stream is open.
// It is not safe for concurrent use; TAP streams are strictly sequential.
type Accumulator struct {
	theme render.Theme
	echo  io.Writer

	declared  map[int]bool
	seen      map[int]bool
	results   []Result
	successes int
	failures  int
	protoErrs []string

	sealed     bool
	errorCount int
}

// New creates an Accumulator that echoes every input line to echo.
// The theme is fixed for the lifetime of the run.
func New(theme render.Theme, echo io.Writer) *Accumulator {
	return &Accumulator{
		theme:    theme,
		echo:     echo,
		declared: make(map[int]bool),
		seen:     make(map[int]bool),
	}
}

// Drain consumes r to EOF, one line per ProcessLine call. It uses
// bufio.Reader rather than a Scanner so lines of any length survive and
// the echo stays byte-faithful, terminators included.
func (a *Accumulator) Drain(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if line != "" {
			a.ProcessLine(line)
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
}

// ProcessLine records one raw input line, terminator included if present.
// The line is echoed verbatim regardless of validation outcome.
func (a *Accumulator) ProcessLine(line string) {
	trimmed := strings.TrimSpace(line)
	fields := strings.Fields(trimmed)

	switch {
	case len(fields) > 0 && fields[0] == "ok":
		a.record(trimmed, StatusSuccess)
		a.foundNumber(fieldAt(fields, 1))
	case len(fields) > 1 && fields[0] == "not" && fields[1] == "ok":
		a.record(trimmed, StatusFailure)
		a.foundNumber(fieldAt(fields, 2))
	}

	if len(fields) > 0 && strings.Contains(fields[0], "..") {
		a.maybeRange(fields[0])
	}

	_, _ = io.WriteString(a.echo, line)
}

func (a *Accumulator) record(text string, status Status) {
	glyph := a.theme.Glyphs.Success
	if status == StatusFailure {
		glyph = a.theme.Glyphs.Failure
		a.failures++
	} else {
		a.successes++
	}
	a.results = append(a.results, Result{
		Text:   a.theme.Prefix(glyph, text),
		Status: status,
	})
}

// foundNumber validates an extracted result number. An unparsable token is
// reported and skips the remaining checks; the range and duplicate checks
// are only meaningful for an actual integer.
func (a *Accumulator) foundNumber(token string) {
	n, err := strconv.Atoi(token)
	if err != nil {
		a.protoErrf("Invalid test number: '%s'", token)
		return
	}
	if len(a.declared) == 0 {
		a.protoErrf("No test range defined before result no. %d", n)
	} else if !a.declared[n] {
		a.protoErrf("Test result %d doesn't fit into any previous range", n)
	}
	if a.seen[n] {
		a.protoErrf("Multiple results for test no. %d", n)
	} else {
		a.seen[n] = true
	}
}

// maybeRange treats a token containing ".." as a candidate range
// declaration "A..B". Tokens that don't parse as two integers are ignored;
// "foo..bar" is legitimate unrelated text, not a protocol error.
func (a *Accumulator) maybeRange(token string) {
	parts := strings.SplitN(token, "..", 2)
	lo, err := strconv.Atoi(parts[0])
	if err != nil {
		return
	}
	hi, err := strconv.Atoi(parts[1])
	if err != nil {
		return
	}
	if lo > hi {
		a.protoErrf("Invalid range: %s", token)
		return
	}
	for n := lo; n <= hi; n++ {
		if a.declared[n] {
			a.protoErrf("Overlapping range '%s' at '%d'", token, n)
		} else {
			a.declared[n] = true
		}
	}
}

func (a *Accumulator) protoErrf(format string, args ...any) {
	a.protoErrs = append(a.protoErrs, fmt.Sprintf(format, args...))
}

// Finalize seals the run: it appends the structural errors that are only
// detectable once the stream has ended, then derives the error count.
// Calling it again is a no-op.
func (a *Accumulator) Finalize() {
	if a.sealed {
		return
	}
	a.sealed = true

	rangeSize := len(a.declared)
	if rangeSize == 0 {
		a.protoErrf("No test range found")
	}
	if len(a.results) == 0 {
		a.protoErrf("No test results found")
	}
	if len(a.seen) > rangeSize || len(a.results) > rangeSize {
		a.protoErrf("More test results than possible for test range: %d/%d",
			max(len(a.seen), len(a.results)), rangeSize)
	}

	a.errorCount = a.failures + len(a.protoErrs)
}

// ExitCode returns the process exit status for the sealed run, clamped to
// 100 — higher exit codes collide with shell and signal conventions.
// Meaningful only after Finalize.
func (a *Accumulator) ExitCode() int {
	return min(a.errorCount, 100)
}

func fieldAt(fields []string, i int) string {
	if i < len(fields) {
		return fields[i]
	}
	return ""
}

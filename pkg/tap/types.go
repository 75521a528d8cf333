// Package tap validates Test Anything Protocol streams.
//
// An Accumulator consumes input lines one at a time, echoes each line
// unchanged, and records results, range declarations and protocol errors.
// Finalize seals the run; Summarize and ExitCode read the sealed state.
package tap

// Status classifies a result line.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
)

// Result is one themed result line, kept in input order.
type Result struct {
	Text   string // glyph-prefixed copy of the trimmed input line
	Status Status
}

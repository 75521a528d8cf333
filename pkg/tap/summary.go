package tap

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// substitution is one step of the glyph rewrite applied to the summary
// line. Order matters: "not ok" must be consumed before the bare "ok"
// inside it can match.
type substitution struct {
	old, new string
}

// Summarize renders the report as a finite slice of lines. Each block is
// emitted only when its source collection is non-empty. Meaningful only
// after Finalize; recomputing is cheap, the sealed state never changes.
func (a *Accumulator) Summarize() []string {
	th := a.theme
	g := th.Glyphs
	var lines []string

	if len(a.results) > 0 {
		lines = append(lines, "", th.Header.Render(th.Prefix(g.Tap, "TAP Test results:")))
		for _, r := range a.results {
			lines = append(lines, a.styleFor(r.Status).Render(r.Text))
		}
	}

	if a.failures > 0 {
		lines = append(lines, "", th.Header.Render(th.Prefix(g.Attention, "Test failures:")))
		for _, r := range a.results {
			if r.Status == StatusFailure {
				lines = append(lines, th.Failure.Render(r.Text))
			}
		}
	}

	if len(a.protoErrs) > 0 {
		lines = append(lines, th.Header.Render(th.Prefix(g.Attention, "Protocol error(s) were found:")))
		for _, e := range a.protoErrs {
			lines = append(lines, th.Error.Render(th.Prefix(g.Disaster, e)))
		}
	}

	summary := fmt.Sprintf("%d ok  |  %d not ok  |  %d tap errors",
		a.successes, a.failures, len(a.protoErrs))
	lines = append(lines, "", th.Muted.Render("Summary: "+summary))
	glyphed := a.glyphSummary(summary)

	if a.errorCount == 0 {
		lines = append(lines, th.Success.Render(th.Prefix(g.GreatSuccess, "All tests successful - "+glyphed)))
		return lines
	}

	verdict := "Some tests failed - "
	if a.successes == 0 && len(a.results) == len(a.declared) {
		verdict = "All tests failed - "
	}
	glyph := g.Disaster
	if len(a.protoErrs) > 0 || a.successes == 0 {
		glyph = g.Catastrophe
	}
	lines = append(lines, th.Failure.Render(th.Prefix(glyph, verdict+glyphed)))
	return lines
}

// glyphSummary rewrites the plain summary line with theme glyphs.
func (a *Accumulator) glyphSummary(summary string) string {
	g := a.theme.Glyphs
	subs := []substitution{
		{"not ok", g.Failure},
		{"ok", g.Success},
		{"tap errors", g.TapError},
	}
	for _, s := range subs {
		summary = strings.ReplaceAll(summary, s.old, s.new)
	}
	return summary
}

func (a *Accumulator) styleFor(s Status) lipgloss.Style {
	if s == StatusFailure {
		return a.theme.Failure
	}
	return a.theme.Success
}

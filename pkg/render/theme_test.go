package render

import (
	"strings"
	"testing"
)

func TestThemeByName(t *testing.T) {
	if got := ThemeByName("ascii").Name; got != "ascii" {
		t.Errorf("expected ascii theme, got %s", got)
	}
	if got := ThemeByName("emoji").Name; got != "emoji" {
		t.Errorf("expected emoji theme, got %s", got)
	}
	if got := ThemeByName("nonsense").Name; got != "emoji" {
		t.Errorf("unknown names fall back to emoji, got %s", got)
	}
}

func TestPrefix_AlignsSeparatorColumn(t *testing.T) {
	th := ASCIITheme()
	// "<3" is narrower than ":-)"; padding keeps the separator stable.
	wide := th.Prefix(th.Glyphs.Success, "x")
	narrow := th.Prefix(th.Glyphs.GreatSuccess, "x")
	if strings.Index(wide, "|") != strings.Index(narrow, "|") {
		t.Errorf("separator columns differ:\n%q\n%q", wide, narrow)
	}
	if !strings.HasSuffix(wide, "| x") {
		t.Errorf("unexpected prefix shape: %q", wide)
	}
}

func TestPrefix_ASCIIGlyphLayout(t *testing.T) {
	th := ASCIITheme()
	if got := th.Prefix(th.Glyphs.Success, "ok 1"); got != ":-)  | ok 1" {
		t.Errorf("got %q", got)
	}
	if got := th.Prefix(th.Glyphs.Attention, "Test failures:"); got != "!!   | Test failures:" {
		t.Errorf("got %q", got)
	}
}

func TestMonochrome_KeepsGlyphTable(t *testing.T) {
	th := Monochrome(EmojiTheme())
	if th.Glyphs != EmojiTheme().Glyphs {
		t.Error("monochrome must not alter glyphs")
	}
	if got := th.Header.Render("plain"); got != "plain" {
		t.Errorf("monochrome styles must render text unchanged, got %q", got)
	}
	if th.Header.GetBold() {
		t.Error("monochrome header must drop bold")
	}
}

package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/justy989/cursedterm/internal/vt"
)

func TestRenderGridProducesOneLinePerRow(t *testing.T) {
	term := vt.New(3, 10, nil, nil)
	term.Write([]byte("hi"))

	out := NewRenderer().Render(term)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Render produced %d lines, want 3", len(lines))
	}
}

func TestRenderGridIncludesWrittenText(t *testing.T) {
	term := vt.New(3, 10, nil, nil)
	term.Write([]byte("hello"))

	out := NewRenderer().Render(term)
	if !strings.Contains(out, "hello") {
		t.Fatalf("Render output missing written text: %q", out)
	}
}

func TestRendererSkipsRepaintingCleanRows(t *testing.T) {
	term := vt.New(3, 10, nil, nil)
	term.Write([]byte("hello"))
	rd := NewRenderer()

	first := rd.Render(term)
	if !strings.Contains(first, "hello") {
		t.Fatalf("first render missing written text: %q", first)
	}

	// No further writes: every row's dirty flag was cleared by the first
	// Render call and the cursor hasn't moved, so the clean rows reuse the
	// cache and the cursor's row repaints to the same string.
	second := rd.Render(term)
	if second != first {
		t.Fatalf("second render with nothing dirty = %q, want identical cached output %q", second, first)
	}
}

func TestRenderFooterShowsRunningStatus(t *testing.T) {
	out := RenderFooter(FooterData{Shell: "/bin/bash", Running: true}, 60)
	if !strings.Contains(out, "running") {
		t.Errorf("footer should show running status, got %q", out)
	}
	if !strings.Contains(out, "Ctrl+Q") {
		t.Errorf("footer should show the quit hint, got %q", out)
	}
}

func TestRenderFooterShowsExitCode(t *testing.T) {
	out := RenderFooter(FooterData{Shell: "/bin/bash", Running: false, ExitCode: 1}, 60)
	if !strings.Contains(out, "exited (code 1)") {
		t.Errorf("footer should show exit code, got %q", out)
	}
}

func TestGlyphStyleReverseSwapsColors(t *testing.T) {
	g := vt.Glyph{Rune: 'x', FG: 1, BG: 2, Attrs: vt.AttrReverse}
	s := glyphStyle(g, false)
	if s.GetForeground() != ansiPalette[2] {
		t.Errorf("reversed glyph foreground = %v, want palette[2]", s.GetForeground())
	}
	if s.GetBackground() != ansiPalette[1] {
		t.Errorf("reversed glyph background = %v, want palette[1]", s.GetBackground())
	}
}

func TestGlyphStyleDefaultColorsFallBackToTheme(t *testing.T) {
	g := vt.Glyph{Rune: 'x', FG: vt.ColorDefault, BG: vt.ColorDefault}
	s := glyphStyle(g, false)
	if s.GetForeground() != lipgloss.Color(ActiveTheme.Text) {
		t.Errorf("default foreground = %v, want theme text", s.GetForeground())
	}
}

func TestSetThemeRejectsUnknownName(t *testing.T) {
	prev := ActiveTheme
	defer func() { ActiveTheme = prev }()

	if SetTheme("nonexistent") {
		t.Fatal("SetTheme should reject an unknown theme name")
	}
	if SetTheme("light") != true {
		t.Fatal("SetTheme(\"light\") should succeed")
	}
	if ActiveTheme.Name != "light" {
		t.Errorf("ActiveTheme.Name = %q, want \"light\"", ActiveTheme.Name)
	}
}

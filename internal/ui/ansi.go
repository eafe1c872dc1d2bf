package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/justy989/cursedterm/internal/vt"
)

// ansiPalette maps the 16 ANSI color indices the interpreter's SGR handling
// produces (spec §4.6: 30-37/90-97 foreground, 40-47/100-107 background)
// onto concrete lipgloss colors. Index 0-7 are the normal intensities,
// 8-15 the bright ones, in the conventional black/red/green/yellow/
// blue/magenta/cyan/white order.
var ansiPalette = [16]lipgloss.Color{
	lipgloss.Color("#000000"), lipgloss.Color("#CD0000"),
	lipgloss.Color("#00CD00"), lipgloss.Color("#CDCD00"),
	lipgloss.Color("#0000EE"), lipgloss.Color("#CD00CD"),
	lipgloss.Color("#00CDCD"), lipgloss.Color("#E5E5E5"),
	lipgloss.Color("#7F7F7F"), lipgloss.Color("#FF0000"),
	lipgloss.Color("#00FF00"), lipgloss.Color("#FFFF00"),
	lipgloss.Color("#5C5CFF"), lipgloss.Color("#FF00FF"),
	lipgloss.Color("#00FFFF"), lipgloss.Color("#FFFFFF"),
}

// glyphStyle converts one grid cell's colors and attributes into a lipgloss
// style. ColorDefault falls back to the chrome's own text/background so the
// grid blends with its frame instead of punching a hole of terminal black.
func glyphStyle(g vt.Glyph, cursor bool) lipgloss.Style {
	s := lipgloss.NewStyle()

	fg := ActiveTheme.Text
	if g.FG != vt.ColorDefault {
		fg = ansiPalette[g.FG&0xF]
	}
	bg := ActiveTheme.BG
	if g.BG != vt.ColorDefault {
		bg = ansiPalette[g.BG&0xF]
	}

	if g.Attrs&vt.AttrReverse != 0 {
		fg, bg = bg, fg
	}
	if cursor {
		fg, bg = bg, fg
	}

	s = s.Foreground(fg).Background(bg)

	if g.Attrs&vt.AttrBold != 0 {
		s = s.Bold(true)
	}
	if g.Attrs&vt.AttrFaint != 0 {
		s = s.Faint(true)
	}
	if g.Attrs&vt.AttrItalic != 0 {
		s = s.Italic(true)
	}
	if g.Attrs&vt.AttrUnderline != 0 {
		s = s.Underline(true)
	}
	if g.Attrs&vt.AttrStruck != 0 {
		s = s.Strikethrough(true)
	}
	if g.Attrs&vt.AttrBlink != 0 {
		s = s.Blink(true)
	}
	if g.Attrs&vt.AttrInvisible != 0 {
		s = s.Foreground(bg)
	}

	return s
}

// renderRow renders one grid row, coalescing runs of cells that share a
// style into a single lipgloss.Render call instead of one per glyph.
func renderRow(cells []vt.Glyph, cursorCol int, hasCursor bool) string {
	var b strings.Builder

	start := 0
	for start < len(cells) {
		atCursor := hasCursor && start == cursorCol
		style := glyphStyle(cells[start], atCursor)
		end := start + 1
		for end < len(cells) {
			endAtCursor := hasCursor && end == cursorCol
			if endAtCursor || atCursor || cells[end] != cells[start] {
				break
			}
			end++
		}

		var run strings.Builder
		for _, c := range cells[start:end] {
			r := c.Rune
			if r == 0 {
				r = ' '
			}
			run.WriteRune(r)
		}
		b.WriteString(style.Render(run.String()))
		start = end
	}

	return b.String()
}

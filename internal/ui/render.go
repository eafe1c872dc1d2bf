package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/justy989/cursedterm/internal/vt"
)

// Renderer holds the previous tick's painted rows so Render can repaint
// only what vt.Terminal's dirty bitmap says actually changed (spec §6
// rendering contract: "walks rows; for each dirty row, paints every cell
// and clears the dirty flag"), instead of re-styling all 24x80 cells every
// ~16,666µs tick regardless of how much of the screen is still. It must
// live across ticks, so the model owns one rather than a package function
// building one per call.
type Renderer struct {
	lines     []string
	cursorRow int // row the cursor was drawn on last tick, -1 if none
}

// NewRenderer returns a Renderer with no cached rows, so its first Render
// call repaints every row (harmless: a fresh Grid starts fully dirty too).
func NewRenderer() *Renderer {
	return &Renderer{cursorRow: -1}
}

// Render paints the terminal's active screen, one styled row per line,
// honoring the cursor highlight at (x, y) unless DECTCEM has hidden it. A
// row is repainted only if vt.Terminal reports it dirty, the cursor is on
// it this tick, or the cursor was on it last tick; every other row reuses
// its cached string from the last call.
func (rd *Renderer) Render(term *vt.Terminal) string {
	rows := term.Rows()
	cols := term.Cols()

	if len(rd.lines) != rows {
		rd.lines = make([]string, rows)
		rd.cursorRow = -1
	}

	cursorX, cursorY := term.CursorPos()
	curRow := -1
	if !term.CursorHidden() {
		curRow = cursorY
	}

	for r := 0; r < rows; r++ {
		dirty := term.DirtyRow(r)
		movedCursor := r == curRow || r == rd.cursorRow
		if !dirty && !movedCursor {
			continue
		}
		cells := make([]vt.Glyph, cols)
		for c := 0; c < cols; c++ {
			cells[c] = term.CellAt(r, c)
		}
		rd.lines[r] = renderRow(cells, cursorX, r == curRow)
	}
	rd.cursorRow = curRow

	return strings.Join(rd.lines, "\n")
}

// FooterData holds the information displayed in the status footer below
// the grid.
type FooterData struct {
	Shell     string // the shell command running inside the PTY
	Running   bool   // whether the child process is still alive
	ExitCode  int    // the child's exit code, meaningful only if !Running
	ThemeName string
}

// RenderFooter draws the one-line status bar beneath the grid viewport.
func RenderFooter(d FooterData, width int) string {
	var sections []string

	if d.Shell != "" {
		sections = append(sections,
			footerKeyStyle().Render("shell:")+" "+d.Shell)
	}

	status := "running"
	statusStyle := lipgloss.NewStyle().Foreground(ActiveTheme.Secondary)
	if !d.Running {
		status = fmt.Sprintf("exited (code %d)", d.ExitCode)
		statusStyle = lipgloss.NewStyle().Foreground(ActiveTheme.Warning)
	}
	sections = append(sections,
		footerKeyStyle().Render("status:")+" "+statusStyle.Render(status))

	hint := footerDimStyle().Render("Ctrl+Q: quit")

	left := strings.Join(sections, footerDimStyle().Render("  |  "))
	leftWidth := lipgloss.Width(left)
	hintWidth := lipgloss.Width(hint)
	gap := width - leftWidth - hintWidth - 2
	if gap < 1 {
		gap = 1
	}

	line := left + strings.Repeat(" ", gap) + hint
	return footerStyle().Width(width).Render(line)
}

// RenderFrame composes the bordered grid viewport and the footer into the
// full program view.
func RenderFrame(rd *Renderer, term *vt.Terminal, footer FooterData) string {
	grid := frameStyle().Render(rd.Render(term))
	width := lipgloss.Width(grid)
	return grid + "\n" + RenderFooter(footer, width)
}

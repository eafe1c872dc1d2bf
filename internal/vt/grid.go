package vt

// Default fixed dimensions. The source this spec was distilled from does
// not implement resize, and neither do we (spec §1 Non-goals).
const (
	DefaultRows = 24
	DefaultCols = 80

	// tabSpaces is the default tab-stop interval laid down on reset.
	tabSpaces = 5

	csiBufSize  = 512
	csiMaxArgs  = 16
	strMaxArgs  = 16
)

// Grid holds the two screens (primary and alternate) of row-major Glyph
// cells, the per-row dirty vector, the tab-stop vector, and the active
// scroll region. Rows are stored as slices — reference types in Go — so
// scrolling can rotate row ownership between index positions without
// copying cell contents, mirroring the original's pointer-swap technique.
type Grid struct {
	rows, cols int

	lines    [][]Glyph // active screen (primary unless ALTSCREEN)
	altLines [][]Glyph // the other screen, held ready for swapScreen

	dirty []bool
	tabs  []bool

	top, bottom int // scroll region, 0-indexed inclusive
}

// newGrid allocates a Grid of the given dimensions with both screens blank,
// every row dirty, and tab stops every tabSpaces columns.
func newGrid(rows, cols int) Grid {
	g := Grid{
		rows:   rows,
		cols:   cols,
		lines:  makeRows(rows, cols),
		altLines: makeRows(rows, cols),
		dirty:  make([]bool, rows),
		tabs:   make([]bool, cols),
	}
	g.resetScrollRegion()
	g.resetTabs()
	g.markAllDirty()
	return g
}

func makeRows(rows, cols int) [][]Glyph {
	blank := blankGlyph(ColorDefault, ColorDefault)
	lines := make([][]Glyph, rows)
	for r := range lines {
		lines[r] = make([]Glyph, cols)
		for c := range lines[r] {
			lines[r][c] = blank
		}
	}
	return lines
}

func (g *Grid) resetScrollRegion() {
	g.top = 0
	g.bottom = g.rows - 1
}

func (g *Grid) resetTabs() {
	for i := range g.tabs {
		g.tabs[i] = i != 0 && i%tabSpaces == 0
	}
}

func (g *Grid) markDirty(row int) {
	if row >= 0 && row < g.rows {
		g.dirty[row] = true
	}
}

func (g *Grid) markRangeDirty(top, bottom int) {
	top = clamp(top, 0, g.rows-1)
	bottom = clamp(bottom, 0, g.rows-1)
	for r := top; r <= bottom; r++ {
		g.dirty[r] = true
	}
}

func (g *Grid) markAllDirty() {
	g.markRangeDirty(0, g.rows-1)
}

// cellAt returns a pointer to the live cell so callers can mutate in place.
func (g *Grid) cellAt(x, y int) *Glyph {
	return &g.lines[y][x]
}

package vt

// setGlyph writes a cell and marks its row dirty. Callers must precondition
// bounds themselves — this primitive does not clamp (spec §4.2).
func (t *Terminal) setGlyph(r rune, attrs Glyph, x, y int) {
	t.grid.markDirty(y)
	g := attrs
	g.Rune = r
	*t.grid.cellAt(x, y) = g
}

// clearRegion clears a rectangle, swapping any inverted corner pair rather
// than asserting on it (spec §9: "specify swap as the contract").
func (t *Terminal) clearRegion(left, top, right, bottom int) {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	left = clamp(left, 0, t.grid.cols-1)
	right = clamp(right, 0, t.grid.cols-1)
	top = clamp(top, 0, t.grid.rows-1)
	bottom = clamp(bottom, 0, t.grid.rows-1)

	blank := blankGlyph(t.cursor.Attrs.FG, t.cursor.Attrs.BG)
	for y := top; y <= bottom; y++ {
		t.grid.markDirty(y)
		row := t.grid.lines[y]
		for x := left; x <= right; x++ {
			row[x] = blank
		}
	}
}

// scrollUp scrolls the region [from, bottom] up by n rows: the top n rows
// of the region are discarded, blank rows appear at the bottom, and row
// ownership is rotated rather than copied.
func (t *Terminal) scrollUp(from, n int) {
	n = clamp(n, 0, t.grid.bottom-from+1)
	if n == 0 {
		return
	}
	t.clearRegion(0, from, t.grid.cols-1, from+n-1)
	t.grid.markRangeDirty(from+n, t.grid.bottom)

	lines := t.grid.lines
	for i := from; i <= t.grid.bottom-n; i++ {
		lines[i], lines[i+n] = lines[i+n], lines[i]
	}
}

// scrollDown is the mirror of scrollUp: rows shift toward the bottom of
// the region and blank rows appear at the top.
func (t *Terminal) scrollDown(from, n int) {
	n = clamp(n, 0, t.grid.bottom-from+1)
	if n == 0 {
		return
	}
	t.clearRegion(0, t.grid.bottom-n+1, t.grid.cols-1, t.grid.bottom)
	t.grid.markRangeDirty(from, t.grid.bottom-n)

	lines := t.grid.lines
	for i := t.grid.bottom; i >= from+n; i-- {
		lines[i], lines[i-n] = lines[i-n], lines[i]
	}
}

// insertBlankLine and deleteLine are only valid while the cursor sits
// inside the scroll region.
func (t *Terminal) insertBlankLine(n int) {
	if t.cursor.Y < t.grid.top || t.cursor.Y > t.grid.bottom {
		return
	}
	t.scrollDown(t.cursor.Y, n)
}

func (t *Terminal) deleteLine(n int) {
	if t.cursor.Y < t.grid.top || t.cursor.Y > t.grid.bottom {
		return
	}
	t.scrollUp(t.cursor.Y, n)
}

// insertBlank shifts the tail of the cursor's row right by n, filling the
// vacated range with cleared cells.
func (t *Terminal) insertBlank(n int) {
	y := t.cursor.Y
	row := t.grid.lines[y]
	cols := t.grid.cols
	n = clamp(n, 0, cols-t.cursor.X)
	blank := blankGlyph(t.cursor.Attrs.FG, t.cursor.Attrs.BG)

	for x := cols - 1; x >= t.cursor.X+n; x-- {
		row[x] = row[x-n]
	}
	for x := t.cursor.X; x < t.cursor.X+n; x++ {
		row[x] = blank
	}
	t.grid.markDirty(y)
}

// deleteChar shifts the tail of the cursor's row left by n, filling the
// vacated range at the end of the row with cleared cells.
func (t *Terminal) deleteChar(n int) {
	y := t.cursor.Y
	row := t.grid.lines[y]
	cols := t.grid.cols
	n = clamp(n, 0, cols-t.cursor.X)
	blank := blankGlyph(t.cursor.Attrs.FG, t.cursor.Attrs.BG)

	for x := t.cursor.X; x < cols-n; x++ {
		row[x] = row[x+n]
	}
	for x := cols - n; x < cols; x++ {
		row[x] = blank
	}
	t.grid.markDirty(y)
}

// putNewline advances the cursor down one line, scrolling the region if the
// cursor sits on its bottom edge, then optionally returns to column 0.
func (t *Terminal) putNewline(firstColumn bool) {
	y := t.cursor.Y
	if y == t.grid.bottom {
		t.scrollUp(t.grid.top, 1)
	} else {
		y++
	}

	x := t.cursor.X
	if firstColumn {
		x = 0
	}
	t.moveTo(x, y)
	t.grid.markDirty(t.cursor.Y)
}

// putTab advances (n > 0) or retreats (n < 0) the cursor to the next set
// tab stop, n times, clamped to the column range.
func (t *Terminal) putTab(n int) {
	x := t.cursor.X
	if n >= 0 {
		for ; n > 0 && x < t.grid.cols-1; n-- {
			x++
			for x < t.grid.cols-1 && !t.grid.tabs[x] {
				x++
			}
		}
	} else {
		for ; n < 0 && x > 0; n++ {
			x--
			for x > 0 && !t.grid.tabs[x] {
				x--
			}
		}
	}
	t.cursor.X = clamp(x, 0, t.grid.cols-1)
}

// altSlot returns 0 or 1 depending on which screen is active, indexing the
// two saved-cursor slots (spec §9: no reason for this to be process-global).
func (t *Terminal) altSlot() int {
	if t.mode&ModeAltScreen != 0 {
		return 1
	}
	return 0
}

func (t *Terminal) cursorSave() {
	t.saved[t.altSlot()] = t.cursor
}

func (t *Terminal) cursorLoad() {
	t.cursor = t.saved[t.altSlot()]
}

// swapScreen exchanges the primary/alternate row-handle arrays, toggles
// ALTSCREEN, and marks every row dirty.
func (t *Terminal) swapScreen() {
	t.grid.lines, t.grid.altLines = t.grid.altLines, t.grid.lines
	t.mode ^= ModeAltScreen
	t.grid.markAllDirty()
}

func (t *Terminal) swapToAltScreen() {
	if t.mode&ModeAltScreen == 0 {
		t.swapScreen()
	}
	t.clearRegion(0, 0, t.grid.cols-1, t.grid.rows-1)
}

func (t *Terminal) swapToPrimaryScreen() {
	if t.mode&ModeAltScreen != 0 {
		t.swapScreen()
	}
}

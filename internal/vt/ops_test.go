package vt

import "testing"

func TestClearRegionSwapsInvertedCorners(t *testing.T) {
	term := New(5, 5, nil, nil)
	term.setGlyph('x', term.cursor.Attrs, 1, 1)
	term.setGlyph('y', term.cursor.Attrs, 3, 3)

	// Deliberately inverted corners: (3,3) to (1,1).
	term.clearRegion(3, 3, 1, 1)

	if term.grid.lines[1][1].Rune != ' ' || term.grid.lines[3][3].Rune != ' ' {
		t.Fatalf("clearRegion should swap inverted corners and still clear the rectangle")
	}
}

func TestScrollUpRotatesRowHandles(t *testing.T) {
	term := New(5, 5, nil, nil)
	top := term.grid.lines[0]
	top[0].Rune = 'A'

	term.scrollUp(0, 1)

	if &term.grid.lines[4][0] != &top[0] {
		// Row ownership rotated: the row that held 'A' should now be at
		// the bottom as a (cleared) recycled row, not copied away.
		t.Fatalf("scrollUp should rotate the old top row handle to the bottom of the region")
	}
	if term.grid.lines[0][0].Rune == 'A' {
		t.Fatalf("scrollUp should have discarded the top row's old contents")
	}
}

func TestScrollUpRespectsRegionBounds(t *testing.T) {
	term := New(10, 5, nil, nil)
	term.grid.top, term.grid.bottom = 2, 7
	term.setGlyph('A', term.cursor.Attrs, 0, 1) // outside region, above top
	term.setGlyph('B', term.cursor.Attrs, 0, 8) // outside region, below bottom

	term.scrollUp(term.grid.top, 1)

	if term.grid.lines[1][0].Rune != 'A' {
		t.Fatalf("scrollUp must not touch rows above the scroll region")
	}
	if term.grid.lines[8][0].Rune != 'B' {
		t.Fatalf("scrollUp must not touch rows below the scroll region")
	}
}

func TestInsertAndDeleteCharShiftRow(t *testing.T) {
	term := New(1, 5, nil, nil)
	for i, r := range []rune{'a', 'b', 'c', 'd', 'e'} {
		term.setGlyph(r, term.cursor.Attrs, i, 0)
	}
	term.cursor.X = 1
	term.insertBlank(2)
	got := string([]rune{
		term.grid.lines[0][0].Rune, term.grid.lines[0][1].Rune, term.grid.lines[0][2].Rune,
		term.grid.lines[0][3].Rune, term.grid.lines[0][4].Rune,
	})
	if got != "a  bc" {
		t.Fatalf("insertBlank(2) at col 1 = %q, want %q", got, "a  bc")
	}

	term.cursor.X = 0
	term.deleteChar(2)
	got = string([]rune{
		term.grid.lines[0][0].Rune, term.grid.lines[0][1].Rune, term.grid.lines[0][2].Rune,
		term.grid.lines[0][3].Rune, term.grid.lines[0][4].Rune,
	})
	if got != " bc  " {
		t.Fatalf("deleteChar(2) at col 0 = %q, want %q", got, " bc  ")
	}
}

func TestCursorSaveLoadPerScreen(t *testing.T) {
	term := New(5, 5, nil, nil)
	term.cursor.X, term.cursor.Y = 2, 2
	term.cursorSave()

	term.swapToAltScreen()
	term.cursor.X, term.cursor.Y = 4, 4
	term.cursorSave()

	term.cursor.X, term.cursor.Y = 0, 0
	term.cursorLoad()
	if term.cursor.X != 4 || term.cursor.Y != 4 {
		t.Fatalf("alt-screen cursorLoad should restore the alt-screen save slot, got (%d,%d)", term.cursor.X, term.cursor.Y)
	}

	term.swapToPrimaryScreen()
	term.cursor.X, term.cursor.Y = 0, 0
	term.cursorLoad()
	if term.cursor.X != 2 || term.cursor.Y != 2 {
		t.Fatalf("primary-screen cursorLoad should restore the primary save slot, got (%d,%d)", term.cursor.X, term.cursor.Y)
	}
}

func TestSwapToAltScreenClearsIt(t *testing.T) {
	term := New(5, 5, nil, nil)
	term.setGlyph('Z', term.cursor.Attrs, 0, 0)
	term.swapToAltScreen()
	if term.grid.lines[0][0].Rune != ' ' {
		t.Fatalf("entering the alt screen should present a blank screen")
	}
	term.swapToPrimaryScreen()
	if term.grid.lines[0][0].Rune != 'Z' {
		t.Fatalf("returning to the primary screen should restore its prior contents")
	}
}

func TestPutNewlineScrollsAtRegionBottom(t *testing.T) {
	term := New(3, 5, nil, nil)
	term.setGlyph('A', term.cursor.Attrs, 0, 2)
	term.cursor.Y = 2
	term.putNewline(false)
	if term.cursor.Y != 2 {
		t.Fatalf("putNewline at region bottom should hold Y at the bottom (scroll instead), got %d", term.cursor.Y)
	}
	if term.grid.lines[2][0].Rune == 'A' {
		t.Fatalf("putNewline at region bottom should have scrolled the old bottom row away")
	}
}

func TestPutTabAdvancesToStop(t *testing.T) {
	term := New(1, 20, nil, nil)
	term.cursor.X = 0
	term.putTab(1)
	if term.cursor.X != tabSpaces {
		t.Fatalf("first tab from col 0 should land on col %d, got %d", tabSpaces, term.cursor.X)
	}
}

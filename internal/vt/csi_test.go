package vt

import "testing"

func feedCSI(t *Terminal, s string) {
	t.Write([]byte(s))
}

func TestCSIArgParsingAdvancesPastDigits(t *testing.T) {
	term := New(24, 80, nil, nil)
	feedCSI(term, "\x1b[12;7H")
	if term.cursor.Y != 11 || term.cursor.X != 6 {
		t.Fatalf("CSI 12;7H should land at (6,11), got (%d,%d)", term.cursor.X, term.cursor.Y)
	}
}

func TestCSIPrivatePrefixParsed(t *testing.T) {
	term := New(5, 10, nil, nil)
	feedCSI(term, "\x1b[?25l")
	if term.mode&ModeHide == 0 {
		t.Fatalf("CSI ?25l should hide the cursor")
	}
}

func TestCSIMultipleModeArgsAllApplied(t *testing.T) {
	term := New(5, 10, nil, nil)
	feedCSI(term, "\x1b[?1004;2004h")
	if term.mode&ModeFocus == 0 || term.mode&ModeBrcktPaste == 0 {
		t.Fatalf("both mode args on one CSI h must be applied")
	}
}

type fakeResponder struct {
	got []byte
}

func (f *fakeResponder) WriteResponse(p []byte) (int, error) {
	f.got = append(f.got, p...)
	return len(p), nil
}

func TestCPRReportsRowColOrder(t *testing.T) {
	resp := &fakeResponder{}
	term := New(24, 80, resp, nil)
	term.moveToAbsolute(9, 4) // col 9 (0-indexed), row 4 (0-indexed)
	feedCSI(term, "\x1b[6n")

	want := "\x1b[5;10R" // row 5, col 10 (1-indexed) — row;col, not the source's col;row
	if string(resp.got) != want {
		t.Fatalf("CPR = %q, want %q", resp.got, want)
	}
}

func TestDECIDRespondsOnArg0(t *testing.T) {
	resp := &fakeResponder{}
	term := New(5, 10, resp, nil)
	feedCSI(term, "\x1b[0c")
	if string(resp.got) != "\x1b[?6c" {
		t.Fatalf("CSI 0c = %q, want DECID response", resp.got)
	}
}

func TestEraseDisplayMode2ClearsEverything(t *testing.T) {
	term := New(3, 3, nil, nil)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			term.setGlyph('x', term.cursor.Attrs, x, y)
		}
	}
	feedCSI(term, "\x1b[2J")
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if term.grid.lines[y][x].Rune != ' ' {
				t.Fatalf("ED 2 should blank cell (%d,%d)", x, y)
			}
		}
	}
}

func TestSetScrollRegionThenHome(t *testing.T) {
	term := New(24, 80, nil, nil)
	feedCSI(term, "\x1b[5;15r")
	if term.grid.top != 4 || term.grid.bottom != 14 {
		t.Fatalf("DECSTBM 5;15 should set region [4,14], got [%d,%d]", term.grid.top, term.grid.bottom)
	}
	if term.cursor.X != 0 || term.cursor.Y != 0 {
		t.Fatalf("DECSTBM should home the cursor, got (%d,%d)", term.cursor.X, term.cursor.Y)
	}
}

func TestPrivatePrefixedScrollRegionIsNoOp(t *testing.T) {
	term := New(24, 80, nil, nil)
	top, bottom := term.grid.top, term.grid.bottom
	term.cursor.X, term.cursor.Y = 3, 7
	feedCSI(term, "\x1b[?5;15r")
	if term.grid.top != top || term.grid.bottom != bottom {
		t.Fatalf("CSI ?5;15r is private-prefixed and must not touch the scroll region, got [%d,%d]", term.grid.top, term.grid.bottom)
	}
	if term.cursor.X != 3 || term.cursor.Y != 7 {
		t.Fatalf("CSI ?5;15r must not home the cursor, got (%d,%d)", term.cursor.X, term.cursor.Y)
	}
}

func TestCUPUnderOriginModeLandsOnRegionTop(t *testing.T) {
	term := New(24, 80, nil, nil)
	feedCSI(term, "\x1b[5;15r")
	feedCSI(term, "\x1b[?6h") // DECOM
	feedCSI(term, "\x1b[1;1H")
	if term.cursor.Y != 4 {
		t.Fatalf("CUP 1;1 under origin mode should land on the region top (row 4), got %d", term.cursor.Y)
	}
}

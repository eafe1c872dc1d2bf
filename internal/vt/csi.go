package vt

import (
	"fmt"
	"strconv"
)

// arg returns argument idx if present and positive, else def — the
// "argument defaults to 1 unless noted" rule from spec §4.5. Commands
// where 0 is itself meaningful (ED, EL, tab-clear, ...) pass def=0.
func (c *CSIBuffer) arg(idx, def int) int {
	if idx < c.nargs && c.args[idx] > 0 {
		return c.args[idx]
	}
	return def
}

// rawArg returns argument idx exactly as parsed (0 if absent, -1 on parse
// error), bypassing the positive-default substitution arg() applies.
func (c *CSIBuffer) rawArg(idx int) int {
	if idx < c.nargs {
		return c.args[idx]
	}
	return 0
}

// csiByte appends one byte to the CSI buffer and, once a final byte
// arrives or the buffer fills, parses and dispatches it (spec §4.3.3).
func (t *Terminal) csiByte(b byte) {
	if len(t.csi.buf) < csiBufSize {
		t.csi.buf = append(t.csi.buf, b)
	}
	isFinal := b >= 0x40 && b <= 0x7E
	if isFinal || len(t.csi.buf) >= csiBufSize {
		t.parseCSI()
		t.dispatchCSI()
		t.escape &^= escStart | escCSI
		t.csi.reset()
	}
}

// parseCSI parses the accumulated buffer per spec §4.5: an optional
// leading '?' sets the private flag, then a ';'-separated list of base-10
// integers (absent → 0, out-of-range → -1), up to csiMaxArgs. The byte
// that terminates numeric parsing becomes the final/mode identifier.
//
// Each strtol-equivalent scan advances past its digits before the
// separator check — the fixed parser spec §9 calls for, not the original's
// buggy unadvanced version.
func (t *Terminal) parseCSI() {
	buf := t.csi.buf
	i := 0
	if i < len(buf) && buf[i] == '?' {
		t.csi.private = true
		i++
	}

	nargs := 0
	for i < len(buf) && nargs < csiMaxArgs {
		start := i
		for i < len(buf) && buf[i] >= '0' && buf[i] <= '9' {
			i++
		}
		switch {
		case i > start:
			v, err := strconv.Atoi(string(buf[start:i]))
			if err != nil {
				v = -1
			}
			t.csi.args[nargs] = v
		default:
			t.csi.args[nargs] = 0
		}
		nargs++

		if i < len(buf) && buf[i] == ';' {
			i++
			continue
		}
		break
	}
	t.csi.nargs = nargs

	if i < len(buf) {
		t.csi.final = buf[i]
		i++
		if i < len(buf) {
			t.csi.inter = buf[i]
		}
	}
}

// dispatchCSI executes the parsed CSI sequence (spec §4.5).
func (t *Terminal) dispatchCSI() {
	c := &t.csi
	switch c.final {
	case '@':
		t.insertBlank(c.arg(0, 1))
	case 'A':
		t.moveTo(t.cursor.X, t.cursor.Y-c.arg(0, 1))
	case 'B', 'e':
		t.moveTo(t.cursor.X, t.cursor.Y+c.arg(0, 1))
	case 'C', 'a':
		t.moveTo(t.cursor.X+c.arg(0, 1), t.cursor.Y)
	case 'D':
		t.moveTo(t.cursor.X-c.arg(0, 1), t.cursor.Y)
	case 'E':
		t.moveTo(0, t.cursor.Y+c.arg(0, 1))
	case 'F':
		t.moveTo(0, t.cursor.Y-c.arg(0, 1))
	case 'G', '`':
		t.moveTo(c.arg(0, 1)-1, t.cursor.Y)
	case 'H', 'f':
		t.moveToAbsolute(c.arg(1, 1)-1, c.arg(0, 1)-1)
	case 'I':
		t.putTab(c.arg(0, 1))
	case 'J':
		t.eraseDisplay(c.arg(0, 0))
	case 'K':
		t.eraseLine(c.arg(0, 0))
	case 'L':
		t.insertBlankLine(c.arg(0, 1))
	case 'M':
		t.deleteLine(c.arg(0, 1))
	case 'P':
		t.deleteChar(c.arg(0, 1))
	case 'S':
		t.scrollUp(t.grid.top, c.arg(0, 1))
	case 'T':
		t.scrollDown(t.grid.top, c.arg(0, 1))
	case 'X':
		t.eraseChars(c.arg(0, 1))
	case 'Z':
		t.putTab(-c.arg(0, 1))
	case 'c':
		if c.arg(0, 0) == 0 {
			t.writeVTID()
		}
	case 'd':
		t.moveToAbsolute(t.cursor.X, c.arg(0, 1)-1)
	case 'g':
		t.clearTabs(c.rawArg(0))
	case 'h', 'l':
		set := c.final == 'h'
		for i := 0; i < c.nargs; i++ {
			t.applyMode(c.private, c.args[i], set)
		}
	case 'm':
		t.applySGR(c.args[:], c.nargs)
	case 'n':
		if c.arg(0, 0) == 6 {
			t.writeCPR()
		}
	case 'r':
		if !c.private {
			t.setScrollRegion(c.arg(0, 1), c.arg(1, t.grid.rows))
		}
	case 's':
		t.cursorSave()
	case 'u':
		t.cursorLoad()
	default:
		t.logger.Printf("[vt] unhandled CSI final %q (args=%v)", c.final, c.args[:c.nargs])
	}
}

func (t *Terminal) eraseDisplay(mode int) {
	switch mode {
	case 0:
		t.clearRegion(t.cursor.X, t.cursor.Y, t.grid.cols-1, t.cursor.Y)
		t.clearRegion(0, t.cursor.Y+1, t.grid.cols-1, t.grid.rows-1)
	case 1:
		t.clearRegion(0, 0, t.grid.cols-1, t.cursor.Y-1)
		t.clearRegion(0, t.cursor.Y, t.cursor.X, t.cursor.Y)
	case 2:
		t.clearRegion(0, 0, t.grid.cols-1, t.grid.rows-1)
	}
}

func (t *Terminal) eraseLine(mode int) {
	switch mode {
	case 0:
		t.clearRegion(t.cursor.X, t.cursor.Y, t.grid.cols-1, t.cursor.Y)
	case 1:
		t.clearRegion(0, t.cursor.Y, t.cursor.X, t.cursor.Y)
	case 2:
		t.clearRegion(0, t.cursor.Y, t.grid.cols-1, t.cursor.Y)
	}
}

// eraseChars erases n cells from the cursor without shifting the rest of
// the row (ECH, unlike DCH which shifts).
func (t *Terminal) eraseChars(n int) {
	blank := blankGlyph(t.cursor.Attrs.FG, t.cursor.Attrs.BG)
	row := t.grid.lines[t.cursor.Y]
	end := clamp(t.cursor.X+n, 0, t.grid.cols)
	for x := t.cursor.X; x < end; x++ {
		row[x] = blank
	}
	t.grid.markDirty(t.cursor.Y)
}

func (t *Terminal) clearTabs(mode int) {
	switch mode {
	case 0:
		if t.cursor.X < len(t.grid.tabs) {
			t.grid.tabs[t.cursor.X] = false
		}
	case 3:
		for i := range t.grid.tabs {
			t.grid.tabs[i] = false
		}
	}
}

func (t *Terminal) setScrollRegion(top, bottom int) {
	top--
	bottom--
	top = clamp(top, 0, t.grid.rows-1)
	bottom = clamp(bottom, 0, t.grid.rows-1)
	if top < bottom {
		t.grid.top = top
		t.grid.bottom = bottom
	}
	t.moveToAbsolute(0, 0)
}

// writeCPR answers CSI n 6 with the (fixed) row;col ordering — spec §9
// flags the source's row/col transposition as a bug to not reproduce.
func (t *Terminal) writeCPR() {
	if t.resp == nil {
		return
	}
	resp := fmt.Sprintf("\x1b[%d;%dR", t.cursor.Y+1, t.cursor.X+1)
	if _, err := t.resp.WriteResponse([]byte(resp)); err != nil {
		t.logger.Printf("[vt] CPR response write failed: %v", err)
	}
}

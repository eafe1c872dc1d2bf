package vt

// isControlCode reports whether r is a C0 or C1 control code (spec §4.3
// step 2; mirrors the original's is_controller).
func isControlCode(r rune) bool {
	return (r >= 0 && r <= 0x1F) || r == 0x7F || (r >= 0x80 && r <= 0x9F)
}

// isStrTerminator reports whether r ends an in-progress STR sequence
// (spec §4.3 step 1): BEL, CAN, SUB, ESC, or any C1 control.
func isStrTerminator(r rune) bool {
	return r == 0x07 || r == 0x18 || r == 0x1A || r == 0x1B || (r >= 0x80 && r <= 0x9F)
}

// put is the single entry point the escape state machine exposes. Every
// code point the PTY reader or the echo path decodes passes through here
// while the Terminal's mutex is held.
func (t *Terminal) put(r rune) {
	// 1. STR accumulation takes priority over everything while STR is set.
	if t.escape&escSTR != 0 {
		if isStrTerminator(r) {
			t.escape &^= escStart | escSTR | escDCS
			if t.mode&ModeSixel != 0 {
				t.mode &^= ModeSixel
				return
			}
			t.escape |= escStrEnd
			// fall through: terminator bytes are also control codes, so
			// step 2 below dispatches BEL/ESC/etc. normally. STR is
			// already cleared above, so the ESC half of an ST terminator
			// can set START without this block re-intercepting the '\'
			// that completes it.
		} else {
			t.strAccumulate(r)
			return
		}
	}

	// 2. Control codes (C0 or C1).
	if isControlCode(r) {
		t.controlCode(r)
		return
	}

	// 3. START set (preceded by ESC).
	if t.escape&escStart != 0 {
		switch {
		case t.escape&escCSI != 0:
			t.csiByte(byte(r))
		case t.escape&escUTF8 != 0:
			switch r {
			case 'G':
				t.mode |= ModeUTF8
			case '@':
				t.mode &^= ModeUTF8
			}
			t.escape &^= escStart | escUTF8
		case t.escape&(escAltCharset|escTest) != 0:
			t.escape &^= escStart | escAltCharset | escTest
		default:
			if t.escHandle(r) {
				t.escape &^= escStart
			}
		}
		return
	}

	// 4. Printable glyph.
	t.putChar(r)
}

// controlCode dispatches a single C0/C1 control code (spec §4.4).
func (t *Terminal) controlCode(r rune) {
	switch r {
	case 0x09: // HT
		t.putTab(1)
		return
	case 0x08: // BS
		t.moveTo(t.cursor.X-1, t.cursor.Y)
		return
	case 0x0D: // CR
		t.moveTo(0, t.cursor.Y)
		return
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		t.putNewline(t.mode&ModeCRLF != 0)
		return
	case 0x05, 0x00, 0x11, 0x13, 0x7F: // ENQ, NUL, XON, XOFF, DEL
		return
	case 0x90, 0x9D, 0x9E, 0x9F: // DCS, OSC, PM, APC
		t.beginSTR(strTypeForC1(byte(r)))
		return
	}

	switch r {
	case 0x07: // BEL
		if t.escape&escStrEnd != 0 {
			t.strHandle()
		}
	case 0x1B: // ESC
		t.csi.reset()
		t.escape &^= escCSI | escAltCharset | escTest
		t.escape |= escStart
		return // preserves STR/STR_END for a following ST terminator byte
	case 0x1A: // SUB
		t.setGlyph('?', t.cursor.Attrs, t.cursor.X, t.cursor.Y)
		t.csi.reset()
	case 0x18: // CAN
		t.csi.reset()
	case 0x85: // NEL
		t.putNewline(true)
	case 0x88: // HTS
		t.grid.tabs[t.cursor.X] = true
	case 0x9A: // DECID
		t.writeVTID()
	default:
		// all other C1 controls are recognized but no-op in this core
	}
	t.escape &^= escStrEnd | escSTR
}

// strTypeForC1 maps a C1 string-introducer byte to the STR buffer's type
// byte (spec §3 STR buffer: ']' OSC, 'P' DCS, '_' APC, '^' PM).
func strTypeForC1(b byte) byte {
	switch b {
	case 0x90:
		return 'P'
	case 0x9D:
		return ']'
	case 0x9E:
		return '^'
	default: // 0x9F
		return '_'
	}
}

// beginSTR is str_sequence (spec §4.8): zero the buffer, record the type,
// set STR; DCS additionally sets the DCS state bit.
func (t *Terminal) beginSTR(typ byte) {
	t.str.reset(typ)
	t.escape |= escSTR
	if typ == 'P' {
		t.escape |= escDCS
	}
}

// escHandle processes the byte immediately following a bare ESC, per
// spec §4.6. It returns true ("consumed") when the escape should clear,
// false when it armed a substate that routes subsequent bytes elsewhere.
func (t *Terminal) escHandle(r rune) bool {
	switch r {
	case '[':
		t.escape |= escCSI
		t.csi.reset()
		return false
	case '#':
		t.escape |= escTest
		return false
	case '%':
		t.escape |= escUTF8
		return false
	case '(', ')', '*', '+':
		t.escape |= escAltCharset
		return false
	case 'P', '_', '^', ']', 'k':
		t.beginSTR(byte(r))
		return false
	case 'D': // IND
		t.putNewline(false)
		return true
	case 'E': // NEL
		t.putNewline(true)
		return true
	case 'H': // HTS
		t.grid.tabs[t.cursor.X] = true
		return true
	case 'M': // RI
		t.reverseIndex()
		return true
	case 'Z': // DECID
		t.writeVTID()
		return true
	case 'c': // RIS
		t.fullReset()
		return true
	case '=': // APPKEYPAD set
		t.mode |= ModeAppKeypad
		return true
	case '>': // APPKEYPAD clear
		t.mode &^= ModeAppKeypad
		return true
	case '7': // save
		t.cursorSave()
		return true
	case '8': // restore
		t.cursorLoad()
		return true
	case '\\': // ST
		if t.escape&escStrEnd != 0 {
			t.strHandle()
		}
		return true
	default:
		t.logger.Printf("[vt] unhandled ESC intermediate %q", r)
		return true
	}
}

// reverseIndex is RI: cursor up one row, scrolling the region down if
// already on its top edge.
func (t *Terminal) reverseIndex() {
	y := t.cursor.Y
	if y == t.grid.top {
		t.scrollDown(t.grid.top, 1)
	} else {
		y--
	}
	t.moveTo(t.cursor.X, y)
}

// fullReset is RIS: default attrs, tabs every tabSpaces columns, full
// scroll region, WRAP+UTF8 modes, both screens cleared, both save slots.
func (t *Terminal) fullReset() {
	t.cursor = Cursor{}
	t.cursor.Attrs.FG = ColorDefault
	t.cursor.Attrs.BG = ColorDefault

	t.grid.resetTabs()
	t.grid.resetScrollRegion()
	t.grid.lines = makeRows(t.grid.rows, t.grid.cols)
	t.grid.altLines = makeRows(t.grid.rows, t.grid.cols)
	t.grid.markAllDirty()

	t.mode = ModeWrap | ModeUTF8

	t.saved[0] = t.cursor
	t.saved[1] = t.cursor
}

// writeVTID answers DECID with the VT identifier (spec §6).
func (t *Terminal) writeVTID() {
	if t.resp != nil {
		if _, err := t.resp.WriteResponse([]byte("\x1b[?6c")); err != nil {
			t.logger.Printf("[vt] DECID response write failed: %v", err)
		}
	}
}

// putChar places a printable glyph at the cursor, applying wrap and
// insert-mode policy first (spec §4.7).
func (t *Terminal) putChar(r rune) {
	if t.mode&ModeWrap != 0 && t.cursor.State&CursorWrapNext != 0 {
		t.grid.cellAt(t.cursor.X, t.cursor.Y).Attrs |= AttrWrap
		t.putNewline(true)
	}
	if t.mode&ModeInsert != 0 && t.cursor.X+1 < t.grid.cols {
		t.insertBlank(1)
	}
	if t.cursor.X+1 > t.grid.cols {
		t.putNewline(true)
	}

	t.setGlyph(r, t.cursor.Attrs, t.cursor.X, t.cursor.Y)

	if t.cursor.X+1 < t.grid.cols {
		t.cursor.X++
	} else {
		t.cursor.State |= CursorWrapNext
	}
}

package vt

// Mode is the combined set of public and DEC-private terminal mode flags.
type Mode uint32

const (
	ModeWrap Mode = 1 << iota
	ModeInsert
	ModeAppKeypad
	ModeAltScreen
	ModeCRLF
	ModeMouseBtn
	ModeMouseMotion
	ModeReverse
	ModeKbdLock
	ModeHide
	ModeEcho
	ModeAppCursor
	ModeMouseGR
	Mode8Bit
	ModeBlink
	ModeFBlink
	ModeFocus
	ModeMouseEx10
	ModeMouseEMany
	ModeBrcktPaste
	ModePrint
	ModeUTF8
	ModeSixel
	ModeMouse // aggregate: set whenever any individual mouse variant is on
)

// applyMode processes one CSI h/l argument under the given private flag.
// set is true for 'h' (set mode), false for 'l' (reset mode).
func (t *Terminal) applyMode(private bool, arg int, set bool) {
	if private {
		t.applyPrivateMode(arg, set)
		return
	}
	switch arg {
	case 2:
		t.setMode(ModeKbdLock, set)
	case 4:
		t.setMode(ModeInsert, set)
	case 12:
		t.setMode(ModeEcho, !set) // inverted
	case 20:
		t.setMode(ModeCRLF, !set) // inverted
	}
}

func (t *Terminal) applyPrivateMode(arg int, set bool) {
	switch arg {
	case 1:
		t.setMode(ModeAppCursor, set)
	case 5:
		t.setMode(ModeReverse, set)
	case 6:
		t.cursor.State &^= CursorOrigin
		if set {
			t.cursor.State |= CursorOrigin
		}
		t.moveToAbsolute(0, 0)
	case 7:
		t.setMode(ModeWrap, set)
	case 25:
		// DECTCEM: set means visible (HIDE cleared), reset means hidden.
		t.setMode(ModeHide, !set)
	case 9:
		t.setMouseVariant(ModeMouseEx10, set)
	case 1000:
		t.setMouseVariant(ModeMouseBtn, set)
	case 1002:
		t.setMouseVariant(ModeMouseMotion, set)
	case 1003:
		t.setMouseVariant(ModeMouseEMany, set)
	case 1004:
		t.setMode(ModeFocus, set)
	case 1006:
		t.setMode(ModeMouseGR, set)
	case 1034:
		t.setMode(Mode8Bit, set)
	case 1049:
		if set {
			t.cursorSave()
			t.swapToAltScreen()
		} else {
			t.swapToPrimaryScreen()
			t.cursorLoad()
		}
	case 47, 1047:
		if set {
			t.swapToAltScreen()
		} else {
			t.swapToPrimaryScreen()
		}
	case 1048:
		if set {
			t.cursorSave()
		} else {
			t.cursorLoad()
		}
	case 2004:
		t.setMode(ModeBrcktPaste, set)
	case 0, 2, 3, 4, 8, 12, 18, 19, 42, 1001, 1005, 1015:
		// accepted, intentionally ignored
	}
}

// setMouseVariant implements "clears the aggregate MOUSE bit then sets its
// own" (spec §4.6): the variant bit always reflects set/reset, and the
// aggregate tracks whether any variant remains active.
func (t *Terminal) setMouseVariant(variant Mode, set bool) {
	t.mode &^= ModeMouse
	t.setMode(variant, set)
	if t.mode&(ModeMouseEx10|ModeMouseBtn|ModeMouseMotion|ModeMouseEMany) != 0 {
		t.mode |= ModeMouse
	}
}

func (t *Terminal) setMode(m Mode, set bool) {
	if set {
		t.mode |= m
	} else {
		t.mode &^= m
	}
}

// applySGR applies a CSI ... m sequence to the cursor's drawing template.
func (t *Terminal) applySGR(args []int, nargs int) {
	if nargs == 0 {
		args = []int{0}
		nargs = 1
	}
	a := &t.cursor.Attrs
	for i := 0; i < nargs; i++ {
		p := args[i]
		switch {
		case p == 0:
			a.Attrs = 0
			a.FG = ColorDefault
			a.BG = ColorDefault
		case p == 1:
			a.Attrs |= AttrBold
		case p == 2:
			a.Attrs |= AttrFaint
		case p == 3:
			a.Attrs |= AttrItalic
		case p == 4:
			a.Attrs |= AttrUnderline
		case p == 5 || p == 6:
			a.Attrs |= AttrBlink
		case p == 7:
			a.Attrs |= AttrReverse
		case p == 8:
			a.Attrs |= AttrInvisible
		case p == 9:
			a.Attrs |= AttrStruck
		case p == 22:
			a.Attrs &^= AttrBoldFaint
		case p == 23:
			a.Attrs &^= AttrItalic
		case p == 24:
			a.Attrs &^= AttrUnderline
		case p == 25:
			a.Attrs &^= AttrBlink
		case p == 27:
			a.Attrs &^= AttrReverse
		case p == 28:
			a.Attrs &^= AttrInvisible
		case p == 29:
			a.Attrs &^= AttrStruck
		case p >= 30 && p <= 37:
			a.FG = Color(p - 30)
		case p == 38:
			// Extended color selector: accepted, not acted upon (spec §4.6).
		case p == 39:
			a.FG = ColorDefault
		case p >= 40 && p <= 47:
			a.BG = Color(p - 40)
		case p == 48:
			// Extended color selector: accepted, not acted upon.
		case p == 49:
			a.BG = ColorDefault
		case p >= 90 && p <= 97:
			a.FG = Color(p - 90 + 8)
		case p >= 100 && p <= 107:
			a.BG = Color(p - 100 + 8)
		}
	}
}

package vt

import (
	"log"
	"sync"
)

// escState is the bitset of concurrent escape-machine substates (spec §4.3).
type escState uint8

const (
	escStart escState = 1 << iota
	escCSI
	escSTR
	escAltCharset
	escStrEnd
	escTest
	escUTF8
	escDCS
)

// Responder is the PTY write side the interpreter uses for the handful of
// sequences it answers unprompted (DECID, cursor position report). It is
// satisfied by internal/pty.Session; kept as an interface so the core stays
// free of any PTY dependency.
type Responder interface {
	WriteResponse(p []byte) (int, error)
}

// CSIBuffer accumulates a CSI sequence's raw bytes and, once parsed, its
// arguments (spec §3 "CSI buffer").
type CSIBuffer struct {
	buf     []byte
	private bool
	args    [csiMaxArgs]int
	nargs   int
	final   byte
	inter   byte
}

func (c *CSIBuffer) reset() {
	c.buf = c.buf[:0]
	c.private = false
	c.nargs = 0
	c.final = 0
	c.inter = 0
}

// STRBuffer accumulates an OSC/DCS/APC/PM/legacy-title payload (spec §3
// "STR buffer").
type STRBuffer struct {
	typ  byte
	buf  []byte
	args []string
}

func (s *STRBuffer) reset(typ byte) {
	s.typ = typ
	s.buf = s.buf[:0]
	s.args = nil
}

// Terminal is the VT/ANSI interpreter: the escape state machine plus the
// grid it drives. It is the single mutator of its own state — callers
// (the PTY reader and the echo path) must go through Put/Write, which take
// an internal mutex for the duration of the call (spec §9 "two-thread grid
// mutation").
type Terminal struct {
	mu sync.Mutex

	grid   Grid
	cursor Cursor
	saved  [2]Cursor

	mode   Mode
	escape escState

	csi CSIBuffer
	str STRBuffer

	utf8 utf8Decoder

	resp   Responder
	logger *log.Logger
}

// New creates a Terminal at the given fixed size; the program itself passes
// DefaultRows x DefaultCols (spec §3 Lifecycle: the grid is created once at
// startup at a fixed size).
func New(rows, cols int, resp Responder, logger *log.Logger) *Terminal {
	if logger == nil {
		logger = log.Default()
	}
	t := &Terminal{
		grid:   newGrid(rows, cols),
		resp:   resp,
		logger: logger,
	}
	t.cursor.Attrs.FG = ColorDefault
	t.cursor.Attrs.BG = ColorDefault
	t.mode = ModeWrap | ModeUTF8 | ModeEcho
	return t
}

// Write implements io.Writer: it UTF-8 decodes p (carrying any residual
// partial sequence across calls) and feeds each code point to Put. This is
// the reader task's entry point (spec §5).
func (t *Terminal) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.utf8.Feed(p, func(r rune) { t.put(r) })
	return len(p), nil
}

// Put feeds a single already-decoded code point into the state machine.
// Exported so the echo path (which already has discrete key bytes, often
// plain ASCII) can drive the interpreter under the same lock without
// re-running the UTF-8 decoder loop for a single byte at a time.
func (t *Terminal) Put(r rune) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.put(r)
}

// --- Read-side accessors for the renderer (spec §6 rendering contract) ---

// Rows and Cols report the fixed grid dimensions.
func (t *Terminal) Rows() int { return t.grid.rows }
func (t *Terminal) Cols() int { return t.grid.cols }

// CellAt returns a copy of the cell at (row, col) of the active screen.
func (t *Terminal) CellAt(row, col int) Glyph {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.grid.lines[row][col]
}

// CursorPos returns the current cursor column and row.
func (t *Terminal) CursorPos() (x, y int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cursor.X, t.cursor.Y
}

// CursorHidden reports whether DECTCEM has hidden the cursor.
func (t *Terminal) CursorHidden() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode&ModeHide != 0
}

// DirtyRow reports and clears row r's dirty flag in one step, so a render
// pass that walks rows in order never double-paints.
func (t *Terminal) DirtyRow(r int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	d := t.grid.dirty[r]
	t.grid.dirty[r] = false
	return d
}

// EchoEnabled reports whether local echo is currently on (spec §5 key
// writer task).
func (t *Terminal) EchoEnabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.mode&ModeEcho != 0
}

// SetResponder installs the Responder used to answer DECID/CPR sequences.
// Exists because the Responder (the PTY session) is typically constructed
// after the Terminal it wraps, breaking the constructor-argument cycle.
func (t *Terminal) SetResponder(resp Responder) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.resp = resp
}

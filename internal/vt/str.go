package vt

import "strconv"

// strBufSize bounds an OSC/DCS/APC/PM payload the same way csiBufSize bounds
// a CSI sequence — a guard against a runaway or malicious child process,
// not a protocol limit.
const strBufSize = 1 << 20

// strAccumulate appends one decoded code point to the in-progress STR
// payload (spec §4.8). DCS sixel graphics are a non-goal: an empty DCS
// payload's first byte being 'q' flips on ModeSixel, and everything after
// is discarded rather than buffered, so a child emitting sixel data
// doesn't grow the buffer to strBufSize for nothing.
func (t *Terminal) strAccumulate(r rune) {
	if t.mode&ModeSixel != 0 {
		return
	}
	if t.str.typ == 'P' && len(t.str.buf) == 0 && r == 'q' {
		t.mode |= ModeSixel
		return
	}
	if len(t.str.buf) < strBufSize {
		t.str.buf = append(t.str.buf, encodeUTF8(r)...)
	}
}

// strHandle dispatches a completed STR payload once its terminator has
// been seen (spec §4.8). Only OSC carries a selector this core acts on;
// DCS/APC/PM payloads are accepted and otherwise ignored.
func (t *Terminal) strHandle() {
	defer func() {
		t.mode &^= ModeSixel
		t.escape &^= escStrEnd | escSTR | escDCS
		t.str.buf = t.str.buf[:0]
		t.str.args = nil
	}()

	t.str.args = splitSTRArgs(t.str.buf)

	switch t.str.typ {
	case ']':
		t.handleOSC()
	case 'P', '^', '_', 'k':
		// DCS, PM, APC, legacy title: accepted, no-op.
	default:
		t.logger.Printf("[vt] unhandled STR type %q", t.str.typ)
	}
}

// splitSTRArgs splits buf on ';', capped at strMaxArgs fields.
func splitSTRArgs(buf []byte) []string {
	args := make([]string, 0, strMaxArgs)
	start := 0
	for i := 0; i <= len(buf) && len(args) < strMaxArgs; i++ {
		if i == len(buf) || buf[i] == ';' {
			args = append(args, string(buf[start:i]))
			start = i + 1
		}
	}
	return args
}

// handleOSC accepts the numeric OSC selectors spec §4.8 calls out — window
// and icon title, palette get/set, clipboard (OSC 52), palette reset — as
// no-ops; anything else is logged and otherwise ignored.
func (t *Terminal) handleOSC() {
	if len(t.str.args) == 0 {
		return
	}
	selector, err := strconv.Atoi(t.str.args[0])
	if err != nil {
		t.logger.Printf("[vt] malformed OSC selector %q", t.str.args[0])
		return
	}
	switch selector {
	case 0, 1, 2, 4, 52, 104:
		// title set, palette query/set, clipboard, palette reset: no-op.
	default:
		t.logger.Printf("[vt] unhandled OSC selector %d", selector)
	}
}

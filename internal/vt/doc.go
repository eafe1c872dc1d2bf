// Package vt implements the VT/ANSI byte-stream interpreter at the heart of
// cursedterm: a UTF-8 decoder, an escape-sequence state machine (ground,
// ESC-intermediate, CSI, STR/OSC/DCS/APC/PM, charset, test), and the
// two-screen grid model it mutates.
//
// The package has no knowledge of PTYs, rendering surfaces, or input
// devices — see internal/pty and internal/app for the collaborators that
// feed bytes in and read the grid back out.
package vt

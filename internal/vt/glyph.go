package vt

// Attr is the set of per-cell rendering attributes a Glyph may carry.
type Attr uint16

const (
	AttrBold Attr = 1 << iota
	AttrFaint
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrInvisible
	AttrStruck
	AttrWrap
	AttrWide
	AttrWDummy

	AttrBoldFaint = AttrBold | AttrFaint
)

// Color is a small palette index. ColorDefault is the distinguished value
// meaning "terminal default foreground/background", never a real index.
type Color int32

const ColorDefault Color = -1

// Glyph is a single screen cell: one code point plus its rendering
// attributes and colors.
type Glyph struct {
	Rune  rune
	Attrs Attr
	FG    Color
	BG    Color
}

// blankGlyph returns a space cell carrying the given colors and no
// attributes — the shape every clear/scroll operation fills with.
func blankGlyph(fg, bg Color) Glyph {
	return Glyph{Rune: ' ', FG: fg, BG: bg}
}

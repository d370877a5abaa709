// Package font is the fixed glyph catalog for the charger's dot-matrix
// display: 5x8-pixel monochrome glyphs stored column-major, one byte per
// column with bit 0 at the top row.
//
// The character set is deliberately small: uppercase A-Z, digits, a few
// punctuation marks and the two Finnish letters the charger's labels need.
// The Finnish glyphs are reached through substitution: 'a' renders as ä and
// 'o' renders as ö.
package font

const (
	// Width is the number of pixel columns in one glyph.
	Width = 5
	// Height is the number of pixel rows in one glyph.
	Height = 8
	// Advance is the cursor advance for a drawn glyph: Width plus one
	// blank spacing column.
	Advance = Width + 1
	// MarkAdvance is the cursor advance for the narrow decimal mark.
	MarkAdvance = 2
)

// Mark is the single column drawn for ',' and '.'; both characters render
// as the same two-pixel decimal mark.
const Mark = 0xC0

// glyphs holds one Width-byte column run per character, in catalog order:
// A-Z, ä, ö, then '/' through ':' by ASCII order, then '>' and '<'.
var glyphs = [...]byte{
	0x7E, 0x09, 0x09, 0x09, 0x7E, // A
	0x7F, 0x49, 0x49, 0x49, 0x36, // B
	0x3E, 0x41, 0x41, 0x41, 0x22, // C
	0x7F, 0x41, 0x41, 0x41, 0x3E, // D
	0x7F, 0x49, 0x49, 0x49, 0x41, // E
	0x7F, 0x09, 0x09, 0x09, 0x01, // F
	0x3E, 0x41, 0x49, 0x49, 0x7A, // G
	0x7F, 0x08, 0x08, 0x08, 0x7F, // H
	0x00, 0x41, 0x7F, 0x41, 0x00, // I
	0x20, 0x40, 0x41, 0x3F, 0x01, // J
	0x7F, 0x08, 0x14, 0x22, 0x41, // K
	0x7F, 0x40, 0x40, 0x40, 0x40, // L
	0x7F, 0x02, 0x0C, 0x02, 0x7F, // M
	0x7F, 0x04, 0x08, 0x10, 0x7F, // N
	0x3E, 0x41, 0x41, 0x41, 0x3E, // O
	0x7F, 0x09, 0x09, 0x09, 0x06, // P
	0x3E, 0x41, 0x51, 0x21, 0x5E, // Q
	0x7F, 0x09, 0x19, 0x29, 0x46, // R
	0x46, 0x49, 0x49, 0x49, 0x31, // S
	0x01, 0x01, 0x7F, 0x01, 0x01, // T
	0x3F, 0x40, 0x40, 0x40, 0x3F, // U
	0x0F, 0x30, 0x40, 0x30, 0x0F, // V
	0x3F, 0x40, 0x38, 0x40, 0x3F, // W
	0x63, 0x14, 0x08, 0x14, 0x63, // X
	0x07, 0x08, 0x70, 0x08, 0x07, // Y
	0x61, 0x51, 0x49, 0x45, 0x43, // Z
	0x20, 0x55, 0x54, 0x55, 0x78, // ä
	0x38, 0x45, 0x44, 0x45, 0x38, // ö
	0x00, 0x60, 0x1C, 0x03, 0x00, // /
	0x3E, 0x51, 0x49, 0x45, 0x3E, // 0
	0x00, 0x42, 0x7F, 0x40, 0x00, // 1
	0x42, 0x61, 0x51, 0x49, 0x46, // 2
	0x21, 0x41, 0x45, 0x4B, 0x31, // 3
	0x18, 0x14, 0x12, 0x7F, 0x10, // 4
	0x27, 0x45, 0x45, 0x45, 0x39, // 5
	0x3C, 0x4A, 0x49, 0x49, 0x30, // 6
	0x01, 0x71, 0x09, 0x05, 0x03, // 7
	0x36, 0x49, 0x49, 0x49, 0x36, // 8
	0x06, 0x49, 0x49, 0x29, 0x1E, // 9
	0x00, 0x24, 0x00, 0x00, 0x00, // :
	0x00, 0x22, 0x14, 0x08, 0x00, // >
	0x00, 0x08, 0x14, 0x22, 0x00, // <
}

// Glyph returns the column bytes for c, or false for characters outside
// the catalog. Space and the decimal mark are not glyphs; the compositor
// handles them on its own.
func Glyph(c byte) ([]byte, bool) {
	off, ok := offset(c)
	if !ok {
		return nil, false
	}
	return glyphs[off : off+Width], true
}

func offset(c byte) (int, bool) {
	switch {
	case c >= 'A' && c <= 'Z':
		return int(c-'A') * Width, true
	case c >= '/' && c <= ':':
		// '/' sits right after the two Finnish glyphs.
		return int(c-'/'+28) * Width, true
	case c == 'a': // rendered as ä
		return 26 * Width, true
	case c == 'o': // rendered as ö
		return 27 * Width, true
	case c == '>':
		return 40 * Width, true
	case c == '<':
		return 41 * Width, true
	}
	return 0, false
}

// Supported reports whether c may appear in static display text: either a
// cataloged glyph or one of the characters the compositor draws itself.
func Supported(c byte) bool {
	if c == ' ' || c == ',' || c == '.' {
		return true
	}
	_, ok := offset(c)
	return ok
}

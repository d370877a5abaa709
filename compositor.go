package chargerui

import (
	"runtime"

	"github.com/aurinkolabs/chargerui/internal/font"
	"github.com/aurinkolabs/chargerui/internal/glass"
)

// Transport is the asynchronous page channel to the display.
type Transport interface {
	// Init queues the display power-on sequence. Asynchronous like Send.
	Init()
	// Send queues one page transfer addressed to (page, column) and
	// returns immediately. The buffer belongs to the transport until
	// Ready reports true again.
	Send(page, column uint8, data []byte)
	// Ready reports that no transfer is in flight and the last buffer
	// handed to Send may be reused.
	Ready() bool
}

// compositor rasterizes a resolved field list into page buffers and
// streams them out. One page buffer is reused for all eight pages, so
// ownership bounces between the compositor and the transport: the buffer
// is filled only while the transport reports ready.
type compositor struct {
	out Transport
	buf [glass.Cols]byte
}

// render repaints the whole display from the field list, page by page.
// There is no dirty tracking; every cycle rewrites all eight pages.
func (c *compositor) render(fields []renderField) {
	for page := uint8(0); page < glass.Pages; page++ {
		c.waitReady()

		for i := range c.buf {
			c.buf[i] = 0
		}
		for _, f := range fields {
			c.drawField(f, page)
		}

		c.out.Send(page, 0, c.buf[:])
	}
}

// waitReady spins until the transport releases the page buffer. A stalled
// transfer stalls the whole device; recovery lives outside this core, so
// there is no timeout here.
func (c *compositor) waitReady() {
	for !c.out.Ready() {
		runtime.Gosched()
	}
}

// fieldShift resolves the overlap of a field starting at row y with page
// p. A field spans rows [y, y+8). When its top row falls inside the page
// the glyph columns shift left by y mod 8 (top-anchored); when only its
// bottom rows fall inside they shift right by the complement
// (bottom-anchored). At most one of the two cases holds for any
// (field, page) pair.
func fieldShift(y, page uint8) (shift uint8, top, ok bool) {
	start := page * 8
	end := y + font.Height
	switch {
	case y >= start && y < start+8:
		return y - start, true, true
	case y < start && end > start && end <= start+8:
		return 8 - (end - start), false, true
	}
	return 0, false, false
}

// drawField merges the part of one field that overlaps the given page
// into the page buffer. Columns are combined with OR, never overwritten,
// so the two halves of a split field and any overlapping fields merge.
func (c *compositor) drawField(f renderField, page uint8) {
	shift, top, ok := fieldShift(f.y, page)
	if !ok {
		return
	}

	pos := int(f.x)
	for _, ch := range f.content {
		if ch == ' ' {
			pos += font.Advance
			continue
		}
		if ch == ',' || ch == '.' {
			if pos < len(c.buf) {
				c.buf[pos] |= shifted(font.Mark, shift, top)
			}
			pos += font.MarkAdvance
			continue
		}
		g, found := font.Glyph(ch)
		if !found {
			// Unknown bytes (slot padding included) draw nothing and do
			// not advance the cursor.
			continue
		}
		for i, col := range g {
			if pos+i >= len(c.buf) {
				break
			}
			c.buf[pos+i] |= shifted(col, shift, top)
		}
		pos += font.Advance
	}
}

func shifted(col, shift uint8, top bool) byte {
	if top {
		return col << shift
	}
	return col >> shift
}

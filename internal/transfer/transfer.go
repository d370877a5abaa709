// Package transfer streams page buffers to the charger's display glass
// over an asynchronous byte channel.
//
// The driver keeps at most one transfer in flight. Completion is reported
// out-of-band through the link's done callback and observed by callers as
// a readiness flag; there is no blocking primitive and deliberately no
// timeout. A stalled link stalls the device.
package transfer

import (
	"sync/atomic"

	"tinygo.org/x/drivers"
)

// Link is the raw byte channel to the display. Start begins a write and
// must invoke done exactly once when the bytes are on the wire; done may
// be called from a completion interrupt, another goroutine, or inline
// before Start returns. command selects command mode (true) or pixel data
// mode (false).
type Link interface {
	Start(command bool, p []byte, done func())
}

// Pin is a two-state output line.
type Pin interface {
	High()
	Low()
}

// Driver owns the single outstanding transfer to the display. The caller
// must observe Ready before handing over another buffer and before
// touching a buffer already handed over.
type Driver struct {
	link Link
	cmd  [3]byte
	busy atomic.Bool
}

// New returns a Driver in the ready state.
func New(link Link) *Driver {
	return &Driver{link: link}
}

// Ready reports whether the previous transfer has completed and buffer
// ownership is back with the caller.
func (d *Driver) Ready() bool {
	return !d.busy.Load()
}

// Send queues one page transfer: a page/column addressing command
// followed by the data bytes. It returns immediately; completion is
// observable only through Ready. The caller must not mutate data until
// Ready reports true again.
func (d *Driver) Send(page, column uint8, data []byte) {
	d.busy.Store(true)

	d.cmd[0] = 0xB0 | page&0x07
	d.cmd[1] = 0x10 | column>>4
	d.cmd[2] = column & 0x0F

	d.link.Start(true, d.cmd[:], func() {
		d.link.Start(false, data, func() {
			d.busy.Store(false)
		})
	})
}

// initSeq powers up an EA DOGL128-6 glass: start line 0, reversed ADC,
// normal COM order, bias 1/9, booster and regulator on, contrast, display
// on.
var initSeq = []byte{
	0x40,       // display start line 0
	0xA1,       // ADC reverse
	0xC0,       // COM0-COM63
	0xA6,       // display normal
	0xA2,       // bias 1/9, duty 1/65
	0x2F,       // booster, regulator and follower on
	0xF8, 0x00, // internal booster 4x
	0x27,       // regulator ratio
	0x81, 0x0F, // contrast
	0xAC, 0x01, // no indicator
	0xAF, // display on
}

// Init queues the power-on command sequence. Like Send it returns
// immediately; poll Ready before the first page transfer.
func (d *Driver) Init() {
	d.busy.Store(true)
	d.link.Start(true, initSeq, func() {
		d.busy.Store(false)
	})
}

// SPILink drives a 4-wire SPI display connection: a shared SPI bus plus
// data/command select and an active-low chip select.
type SPILink struct {
	bus drivers.SPI
	dc  Pin
	cs  Pin
}

// NewSPILink wraps an SPI bus and the two control lines.
func NewSPILink(bus drivers.SPI, dc, cs Pin) *SPILink {
	return &SPILink{bus: bus, dc: dc, cs: cs}
}

// Start shifts p out on the bus. The SPI transaction itself is
// synchronous, so done is invoked before Start returns.
func (l *SPILink) Start(command bool, p []byte, done func()) {
	if command {
		l.dc.Low()
	} else {
		l.dc.High()
	}
	l.cs.Low()
	_ = l.bus.Tx(p, nil)
	l.cs.High()
	done()
}

package chargerui

import (
	"errors"
	"strconv"

	"github.com/aurinkolabs/chargerui/internal/font"
	"github.com/aurinkolabs/chargerui/internal/glass"
)

// TextField is one positioned span of display text: either fixed text or
// a reference into the menu's content-slot bank, resolved when the view
// becomes active.
type TextField struct {
	x, y uint8
	text []byte
	slot int8 // content slot index, -1 for fixed text
}

// text places fixed display text at (x, y).
func text(s string, x, y uint8) TextField {
	return TextField{x: x, y: y, text: []byte(s), slot: -1}
}

// dynamic places content slot i at (x, y).
func dynamic(i int8, x, y uint8) TextField {
	return TextField{x: x, y: y, slot: i}
}

// view is a fixed list of text fields shown as one screen.
type view []TextField

const (
	// maxFields is the render list capacity; no view declares more.
	maxFields = 15

	slotCount = 8
	slotWidth = 8
)

// renderField is a text field resolved against the slot bank: content
// aliases either the view's fixed text or one of the menu's mutable slot
// buffers.
type renderField struct {
	x, y    uint8
	content []byte
}

// Both calibration steps share one layout.
var calibFields = view{
	dynamic(0, 40, 2), // PANEELI / AKKU
	dynamic(1, 90, 2), // panel number 1-4
	text("ASETA", 15, 15),
	dynamic(2, 50, 15), // JÄNNITE / VIRTA
	dynamic(3, 95, 15), // 1/2 or 2/2
	dynamic(4, 40, 28), // reference value
	dynamic(5, 7, 41),  // selection mark before TAKAISIN
	text("TAKAISIN", 13, 41),
	dynamic(6, 60, 41), // selection marks around OK
	text("OK", 84, 41),
	text("MITTAUS", 19, 54),
	dynamic(7, 67, 54), // live reading of the calibrated channel
}

// views is the static catalog, indexed by viewID. Lowercase a and o in
// the labels render as ä and ö.
var views = [viewNone]view{
	viewPanel: {
		text("PANEELI", 0, 2),
		text("JaNNITE", 47, 2),
		text("VIRTA", 96, 2),
		text("1", 20, 15),
		text("2", 20, 28),
		text("3", 20, 41),
		text("4", 20, 54),
		dynamic(0, 45, 15), // panel 1 voltage
		dynamic(1, 85, 15), // panel 1 current
		dynamic(2, 45, 28), // panel 2 voltage
		dynamic(3, 85, 28), // panel 2 current
		dynamic(4, 45, 41), // panel 3 voltage
		dynamic(5, 85, 41), // panel 3 current
		dynamic(6, 45, 54), // panel 4 voltage
		dynamic(7, 85, 54), // panel 4 current
	},
	viewBattery: {
		text("AKKU", 53, 2),
		text("JaNNITE", 10, 20),
		text("VIRTA", 80, 20),
		dynamic(0, 5, 38),  // battery voltage
		dynamic(1, 70, 38), // battery current
	},
	viewSetup1: {
		text("VIRITYS 1/3", 15, 2),
		text("PANEELI 1: JaNNITE", 10, 15),
		text("PANEELI 1: VIRTA", 10, 28),
		text("PANEELI 2: JaNNITE", 10, 41),
		text("PANEELI 2: VIRTA", 10, 54),
		dynamic(0, 5, 15), // selection 0
		dynamic(1, 5, 28), // selection 1
		dynamic(2, 5, 41), // selection 2
		dynamic(3, 5, 54), // selection 3
	},
	viewSetup2: {
		text("VIRITYS 2/3", 15, 2),
		text("PANEELI 3: JaNNITE", 10, 15),
		text("PANEELI 3: VIRTA", 10, 28),
		text("PANEELI 4: JaNNITE", 10, 41),
		text("PANEELI 4: VIRTA", 10, 54),
		dynamic(0, 5, 15),
		dynamic(1, 5, 28),
		dynamic(2, 5, 41),
		dynamic(3, 5, 54),
	},
	viewSetup3: {
		text("VIRITYS 3/3", 15, 2),
		text("AKKU: JaNNITE", 10, 15),
		text("AKKU: VIRTA", 10, 28),
		text("TALLENNA", 10, 41),
		text("PERUUTA", 10, 54),
		dynamic(0, 5, 15),
		dynamic(1, 5, 28),
		dynamic(2, 5, 41),
		dynamic(3, 5, 54),
	},
	viewCalib1: calibFields,
	viewCalib2: calibFields,
}

// validateCatalog checks the whole static catalog once at startup. Any
// error here is a build-time configuration mistake and the device must
// refuse to start rather than render garbage.
func validateCatalog() error {
	for id := viewPanel; id < viewNone; id++ {
		if err := validateView(views[id]); err != nil {
			return errors.New(id.String() + " view: " + err.Error())
		}
	}
	return nil
}

// validateView checks one view's field list: coordinates on the panel,
// static text restricted to the glyph catalog, and dynamic fields
// referencing slots 0, 1, 2, ... in order of appearance so that the
// substitution count matches the placeholders exactly.
func validateView(v view) error {
	if len(v) == 0 {
		return errors.New("no fields")
	}
	if len(v) > maxFields {
		return errors.New("more than " + strconv.Itoa(maxFields) + " fields")
	}
	next := int8(0)
	for i, f := range v {
		at := "field " + strconv.Itoa(i)
		if f.x >= glass.Cols {
			return errors.New(at + ": x out of range")
		}
		if int(f.y)+font.Height > glass.Rows {
			return errors.New(at + ": y out of range")
		}
		if f.slot < 0 {
			for _, c := range f.text {
				if !font.Supported(c) {
					return errors.New(at + ": unsupported character " + strconv.Quote(string(c)))
				}
			}
			continue
		}
		if f.slot != next {
			return errors.New(at + ": content slot " + strconv.Itoa(int(f.slot)) +
				" out of order, want " + strconv.Itoa(int(next)))
		}
		next++
		if next > slotCount {
			return errors.New(at + ": more dynamic fields than content slots")
		}
	}
	return nil
}

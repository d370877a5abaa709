// Package chargerui is the on-device operator interface for a small
// solar battery charger: a multi-view menu driven by a single button with
// short and long presses, rendered onto a 128x64 page-addressed
// monochrome display.
//
// The package owns the menu navigation state machine and the display
// compositor. Everything hardware-specific — button classification,
// measurement acquisition, calibration adjustment and the display byte
// channel — is supplied by the caller through the Driver and Transport
// interfaces; see cmd/ for bindings to real and emulated hardware.
package chargerui

import (
	"errors"
	"time"
)

// Driver joins the core to its out-of-scope collaborators.
type Driver interface {
	// Click returns the classified button input for this cycle. The
	// implementation handles debouncing and the short/long dwell
	// threshold; a value other than ClickNone is acted on exactly once.
	Click() Click

	// Measurements returns the adjusted readings for all ten channels,
	// indexed by the Panel1Voltage..BatteryCurrent constants. The array
	// is read during the same cycle and not retained.
	Measurements() *[ChannelCount]float32

	// Act is invoked at most once per cycle when the menu commits an
	// operator action. On ActionSelectChannel the calibration context
	// carries the chosen channel; the driver stores captured raw
	// readings into calib.Sample on the capture actions and applies or
	// discards the adjustment on save and cancel.
	Act(a Action, calib *Calibration)
}

// UI is the assembled operator interface.
type UI struct {
	menu   Menu
	comp   compositor
	calib  Calibration
	driver Driver
	log    Logger

	cycle time.Duration
	init  bool
}

// New assembles the interface core. out is the display transport, driver
// supplies the hardware collaborators and cycle is the control cycle
// length for Run. log may be nil.
func New(cycle time.Duration, out Transport, driver Driver, log Logger) (*UI, error) {
	if cycle <= 0 {
		return nil, errors.New("cycle length must be positive")
	}
	if out == nil {
		return nil, errors.New("must provide display transport")
	}
	if driver == nil {
		return nil, errors.New("must provide driver")
	}
	if log == nil {
		log = printlnLogger{}
	}

	return &UI{
		menu:   newMenu(),
		comp:   compositor{out: out},
		driver: driver,
		log:    log,
		cycle:  cycle,
	}, nil
}

// Init validates the static view catalog and powers up the display. A
// catalog error is a build configuration mistake; the device refuses to
// start rather than render garbage.
func (u *UI) Init() error {
	if u.init {
		return errors.New("already initialized")
	}
	if err := validateCatalog(); err != nil {
		return errors.New("view catalog: " + err.Error())
	}

	u.comp.out.Init()
	u.log.Info("display initialized")

	u.init = true
	return nil
}

// Step runs one control cycle: consume the click, update the menu,
// dispatch the committed action to the driver and repaint the full
// display. It returns the action for callers that want to observe it.
func (u *UI) Step() Action {
	click := u.driver.Click()

	a := u.menu.HandleClick(click, &u.calib)
	u.menu.RefreshContent(u.driver.Measurements(), &u.calib)

	if a != ActionNone {
		u.log.Debugf("%s in %s view", a.String(), u.menu.view.String())
		u.driver.Act(a, &u.calib)
	}

	u.comp.render(u.menu.fields)
	return a
}

// Run drives Step at the fixed cycle length. It returns only if Init has
// not been called.
func (u *UI) Run() error {
	if !u.init {
		return errors.New("not initialized")
	}
	for range time.Tick(u.cycle) {
		u.Step()
	}
	return nil
}

package chargerui

import (
	"github.com/aurinkolabs/chargerui/internal/fixfmt"
)

// Setup-view task numbers beyond the calibration channels 0-9.
const (
	taskSave   = 10
	taskCancel = 11
)

// Menu owns the navigation state machine: the active view, the selection
// cursor, the mutable content-slot bank and the resolved render list the
// compositor draws from. It is mutated only through HandleClick and
// RefreshContent.
type Menu struct {
	view      viewID
	prev      viewID // setup view to restore when calibration backs out
	lastView  viewID // view rendered last cycle, for entry detection
	selection uint8

	slots  [slotCount][slotWidth]byte
	fields []renderField
}

func newMenu() Menu {
	return Menu{
		view:     viewNone,
		prev:     viewSetup1,
		lastView: viewNone,
		fields:   make([]renderField, 0, maxFields),
	}
}

// HandleClick applies one classified button input and reports the task,
// if any, for the surrounding control loop. A short click is the primary
// action (cursor and view cycling), a long click the secondary action
// (commit or drill down).
func (m *Menu) HandleClick(c Click, calib *Calibration) Action {
	if m.view == viewNone {
		// Nothing to act on until RefreshContent brings up the panel
		// overview on the first cycle.
		return ActionNone
	}
	switch c {
	case ClickShort:
		return m.primaryAction()
	case ClickLong:
		return m.secondaryAction(calib)
	}
	return ActionNone
}

// primaryAction moves the cursor or toggles between the overview screens.
// It never produces a task for the control loop.
func (m *Menu) primaryAction() Action {
	switch m.view {
	case viewPanel:
		m.view = viewBattery
		m.changeView()

	case viewBattery:
		m.view = viewPanel
		m.changeView()

	case viewSetup1, viewSetup2:
		// The next setup screen opens when the cursor runs off the end.
		m.selection++
		if m.selection > 3 {
			m.view++
			m.selection = 0
			m.changeView()
		}

	case viewSetup3:
		m.selection++
		if m.selection > 3 {
			m.view = viewSetup1
			m.selection = 0
			m.changeView()
		}

	case viewCalib1, viewCalib2:
		// Calibration screens only toggle between back and capture.
		m.selection++
		if m.selection > 1 {
			m.selection = 0
		}
	}

	return ActionNone
}

// secondaryAction commits the current selection. On the setup screens the
// view and cursor collapse into a task number: 0-9 select a measurement
// channel to calibrate, 10 saves, 11 cancels. The render list is always
// re-resolved afterwards.
func (m *Menu) secondaryAction(calib *Calibration) Action {
	action := ActionNone

	switch m.view {
	case viewPanel, viewBattery:
		m.view = viewSetup1
		m.selection = 0

	case viewSetup1, viewSetup2, viewSetup3:
		task := (uint8(m.view)-2)*4 + m.selection
		m.selection = 0

		switch task {
		case taskSave:
			m.view = viewPanel
			action = ActionSave
		case taskCancel:
			m.view = viewPanel
			action = ActionCancel
		default:
			m.prev = m.view
			m.view = viewCalib1
			calib.Channel = task
			action = ActionSelectChannel
		}

	case viewCalib1:
		if m.selection == 0 {
			m.view = m.prev
		} else {
			m.view = viewCalib2
			action = ActionCaptureSample1
		}
		m.selection = 0

	case viewCalib2:
		if m.selection == 0 {
			m.view = viewCalib1
		} else {
			m.view = m.prev
			action = ActionCaptureSample2
		}
		m.selection = 0
	}

	m.changeView()

	return action
}

// changeView resolves the active view's field list into the render list,
// pointing dynamic fields at their slot buffers.
func (m *Menu) changeView() {
	m.fields = m.fields[:0]
	for _, f := range views[m.view] {
		rf := renderField{x: f.x, y: f.y, content: f.text}
		if f.slot >= 0 {
			rf.content = m.slots[f.slot][:]
		}
		m.fields = append(m.fields, rf)
	}
}

// setSlot copies s into slot i, zero-filling the remainder. Zero bytes
// draw nothing and advance nothing.
func (m *Menu) setSlot(i int, s string) {
	n := copy(m.slots[i][:], s)
	for ; n < slotWidth; n++ {
		m.slots[i][n] = 0
	}
}

// RefreshContent rewrites the mutable content slots for the active view:
// measurement text, unit markers and the selection cursor. The first call
// promotes the uninitialized state to the panel overview.
func (m *Menu) RefreshContent(meas *[ChannelCount]float32, calib *Calibration) {
	if m.view == viewNone {
		m.view = viewPanel
		m.changeView()
	}

	// Labels that depend on the calibrated channel are written on view
	// entry only; per-cycle updates below touch just the cursor slots and
	// the live reading.
	if (m.view == viewCalib1 || m.view == viewCalib2) && m.view != m.lastView {
		m.enterCalibration(calib)
	}

	switch m.view {
	case viewPanel:
		for i := 0; i < 8; i++ {
			fixfmt.Format(m.slots[i][:], meas[i])
			if i%2 == 0 {
				m.slots[i][6] = 'V'
			} else {
				m.slots[i][6] = 'A'
			}
		}

	case viewBattery:
		fixfmt.Format(m.slots[0][:], meas[BatteryVoltage])
		fixfmt.Format(m.slots[1][:], meas[BatteryCurrent])
		m.slots[0][6] = 'V'
		m.slots[1][6] = 'A'

	case viewSetup1, viewSetup2, viewSetup3:
		for i := 0; i < 4; i++ {
			m.setSlot(i, "       ")
		}
		m.slots[m.selection][0] = '>'

	case viewCalib1, viewCalib2:
		if m.selection == 0 {
			m.setSlot(5, ">      ")
			m.setSlot(6, "<      ")
		} else {
			m.setSlot(5, "       ")
			m.setSlot(6, "   >  <")
		}
		fixfmt.Format(m.slots[7][:], meas[calib.Channel])
	}

	m.lastView = m.view
}

// enterCalibration fills the calibration screen's channel labels: what is
// being calibrated, which step this is, the reference value to apply and
// the unit of the live reading.
func (m *Menu) enterCalibration(calib *Calibration) {
	m.setSlot(1, "       ")
	if calib.Channel > Panel4Current {
		m.setSlot(0, "  AKKU ")
	} else {
		m.setSlot(0, "PANEELI")
		m.slots[1][0] = (calib.Channel+2)/2 + '0'
	}

	quantity := "VIRTA"
	unit := byte('A')
	ref := 1
	if calib.Channel%2 == 0 {
		quantity = "JaNNITE"
		unit = 'V'
		ref = 0
	}

	step := 0
	stepLabel := "1/2    "
	if m.view == viewCalib2 {
		step = 1
		stepLabel = "2/2    "
	}

	m.setSlot(2, quantity)
	m.setSlot(3, stepLabel)
	fixfmt.Format(m.slots[4][:], calibrationPoints[ref][step])
	m.slots[7][6] = unit
}

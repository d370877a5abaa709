package chargerui

// Click is the classified state of the operator button for one control
// cycle. Classification (debounce and dwell timing) happens outside the
// core; see Driver.
type Click uint8

const (
	ClickNone Click = iota
	ClickShort
	ClickLong
)

func (c Click) String() string {
	switch c {
	case ClickNone:
		return "none"
	case ClickShort:
		return "short"
	case ClickLong:
		return "long"
	default:
		return "INVALID"
	}
}

// Action is the task the menu hands to the surrounding control loop once
// per cycle.
type Action uint8

const (
	ActionNone Action = iota
	// ActionSelectChannel means the operator picked a measurement channel
	// to calibrate; the channel number is in the Calibration context.
	ActionSelectChannel
	// ActionCaptureSample1 asks for the raw reading at the first
	// calibration reference point.
	ActionCaptureSample1
	// ActionCaptureSample2 asks for the raw reading at the second
	// calibration reference point.
	ActionCaptureSample2
	// ActionSave commits the pending adjustment.
	ActionSave
	// ActionCancel discards the pending adjustment.
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionSelectChannel:
		return "select channel"
	case ActionCaptureSample1:
		return "capture sample 1"
	case ActionCaptureSample2:
		return "capture sample 2"
	case ActionSave:
		return "save"
	case ActionCancel:
		return "cancel"
	default:
		return "INVALID"
	}
}

// Measurement channel numbering in the readings array: voltage and
// current for each of the four panels, then the battery pair.
const (
	Panel1Voltage = iota
	Panel1Current
	Panel2Voltage
	Panel2Current
	Panel3Voltage
	Panel3Current
	Panel4Voltage
	Panel4Current
	BatteryVoltage
	BatteryCurrent

	// ChannelCount is the number of measurement channels.
	ChannelCount = 10
)

// Calibration carries the operator's calibration choice between the menu
// and the adjustment collaborator: the menu writes Channel when a channel
// is selected, the collaborator fills Sample on the capture actions.
type Calibration struct {
	Channel uint8
	Sample  [2]float32
}

// calibrationPoints holds the nominal reference values the operator is
// asked to apply: row 0 for voltage channels, row 1 for current channels,
// columns for steps 1/2 and 2/2.
var calibrationPoints = [2][2]float32{
	{2.0, 15.0}, // V
	{1.0, 5.0},  // A
}

// CalibrationPoint returns the nominal reference value for the given
// channel and step (0 or 1). Even channels measure voltage, odd channels
// current.
func CalibrationPoint(channel uint8, step int) float32 {
	if channel%2 == 0 {
		return calibrationPoints[0][step]
	}
	return calibrationPoints[1][step]
}

// viewID names one screen of the menu system. The numeric order is
// load-bearing: the setup views' task numbers are computed from it, so
// reordering the constants changes what a long click commits.
type viewID uint8

const (
	viewPanel viewID = iota
	viewBattery
	viewSetup1
	viewSetup2
	viewSetup3
	viewCalib1
	viewCalib2
	viewNone
)

func (v viewID) String() string {
	switch v {
	case viewPanel:
		return "panel"
	case viewBattery:
		return "battery"
	case viewSetup1:
		return "setup 1/3"
	case viewSetup2:
		return "setup 2/3"
	case viewSetup3:
		return "setup 3/3"
	case viewCalib1:
		return "calibration 1/2"
	case viewCalib2:
		return "calibration 2/2"
	case viewNone:
		return "none"
	default:
		return "INVALID"
	}
}

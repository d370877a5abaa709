//go:build tinygo

// Hardware main for the charger's operator interface. Binds the core to
// the board: SPI display link, button on a pulled-up GPIO with dwell
// classification, ADC measurement sampling with linear adjustment.
package main

import (
	"machine"
	"time"

	"github.com/aurinkolabs/chargerui"
	"github.com/aurinkolabs/chargerui/internal/transfer"
)

// cycle is the fixed control cycle length.
const cycle = 50 * time.Millisecond

// shortClickThreshold separates a short from a long press, in cycles.
const shortClickThreshold = 20

// pin adapts machine.Pin to transfer.Pin.
type pin struct {
	p machine.Pin
}

func (p pin) High() { p.p.High() }
func (p pin) Low()  { p.p.Low() }

// board is the Driver implementation for the charger hardware.
type board struct {
	button machine.Pin
	held   uint16
	click  chargerui.Click

	adc      [chargerui.ChannelCount]machine.ADC
	readings [chargerui.ChannelCount]float32
	coeff    [chargerui.ChannelCount]float32
	offset   [chargerui.ChannelCount]float32

	// pending adjustment for the channel under calibration
	pendingCoeff  float32
	pendingOffset float32
	raw           [2]float32
}

// poll samples the ADC channels and advances the button dwell counter.
// Called once per cycle before the core runs.
func (b *board) poll() {
	for i := range b.adc {
		raw := float32(b.adc[i].Get())
		b.readings[i] = raw*b.coeff[i] + b.offset[i]
	}

	b.click = chargerui.ClickNone
	if !b.button.Get() { // active low
		b.held++
		return
	}
	if b.held > 0 {
		if b.held >= shortClickThreshold {
			b.click = chargerui.ClickLong
		} else {
			b.click = chargerui.ClickShort
		}
		b.held = 0
	}
}

func (b *board) Click() chargerui.Click {
	return b.click
}

func (b *board) Measurements() *[chargerui.ChannelCount]float32 {
	return &b.readings
}

func (b *board) Act(a chargerui.Action, calib *chargerui.Calibration) {
	ch := calib.Channel
	switch a {
	case chargerui.ActionCaptureSample1:
		b.raw[0] = float32(b.adc[ch].Get())
		calib.Sample[0] = b.readings[ch]
	case chargerui.ActionCaptureSample2:
		b.raw[1] = float32(b.adc[ch].Get())
		calib.Sample[1] = b.readings[ch]
		b.fit(ch)
	case chargerui.ActionSave:
		b.coeff[ch] = b.pendingCoeff
		b.offset[ch] = b.pendingOffset
	case chargerui.ActionCancel:
		b.pendingCoeff = b.coeff[ch]
		b.pendingOffset = b.offset[ch]
	}
}

// fit computes the two-point linear adjustment from the captured raw
// readings against the nominal reference values.
func (b *board) fit(ch uint8) {
	p0 := chargerui.CalibrationPoint(ch, 0)
	p1 := chargerui.CalibrationPoint(ch, 1)
	if b.raw[1] == b.raw[0] {
		return
	}
	b.pendingCoeff = (p1 - p0) / (b.raw[1] - b.raw[0])
	b.pendingOffset = p0 - b.raw[0]*b.pendingCoeff
}

func main() {
	machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 8_000_000,
		Mode:      0,
	})

	dc := machine.D9
	cs := machine.D10
	dc.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cs.Configure(machine.PinConfig{Mode: machine.PinOutput})
	cs.High()

	b := &board{button: machine.D2}
	b.button.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	machine.InitADC()
	adcPins := [chargerui.ChannelCount]machine.Pin{
		machine.A0, machine.A1, machine.A2, machine.A3, machine.A4,
		machine.A5, machine.A0, machine.A1, machine.A2, machine.A3,
	}
	for i, p := range adcPins {
		b.adc[i] = machine.ADC{Pin: p}
		b.adc[i].Configure(machine.ADCConfig{})
		b.coeff[i] = 1
	}

	link := transfer.NewSPILink(machine.SPI0, pin{dc}, pin{cs})
	out := transfer.New(link)

	ui, err := chargerui.New(cycle, out, b, nil)
	if err != nil {
		for {
			println("setup: " + err.Error())
			time.Sleep(time.Second)
		}
	}
	if err := ui.Init(); err != nil {
		for {
			println("init: " + err.Error())
			time.Sleep(time.Second)
		}
	}

	for range time.Tick(cycle) {
		b.poll()
		ui.Step()
	}
}

// Raspberry Pi front-end for the charger's operator interface. Drives a
// real EA DOGL128-class display over SPI through periph.io and reads the
// operator button from a GPIO. The Pi has no ADC, so measurements are
// zero unless an external acquisition process is wired in; the binary is
// mainly useful for exercising the display path on bench hardware.
//
// Wiring (defaults):
//
//	Display    Raspberry Pi
//	GND        GND
//	VCC        3.3V
//	SCL/CLK    GPIO11 (SPI0 CLK)
//	SI/MOSI    GPIO10 (SPI0 MOSI)
//	A0/DC      GPIO25
//	CS         GPIO8 (SPI0 CE0)
//	BUTTON     GPIO17, other side to GND
package main

import (
	"flag"
	"log"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/aurinkolabs/chargerui"
	"github.com/aurinkolabs/chargerui/internal/transfer"
)

const (
	cycle = 50 * time.Millisecond
	// shortClickThreshold separates a short from a long press, in cycles.
	shortClickThreshold = 20
)

// spiLink adapts a periph SPI connection plus the A0 (data/command) line
// to transfer.Link. Chip select is handled by the SPI controller.
type spiLink struct {
	c  spi.Conn
	dc gpio.PinOut
}

func (l *spiLink) Start(command bool, p []byte, done func()) {
	level := gpio.High
	if command {
		level = gpio.Low
	}
	if err := l.dc.Out(level); err != nil {
		log.Fatalf("dc pin: %v", err)
	}
	if err := l.c.Tx(p, nil); err != nil {
		log.Fatalf("spi tx: %v", err)
	}
	done()
}

// piDriver classifies the button GPIO with the same dwell logic the
// microcontroller build uses.
type piDriver struct {
	button   gpio.PinIn
	held     int
	click    chargerui.Click
	readings [chargerui.ChannelCount]float32
}

func (d *piDriver) poll() {
	d.click = chargerui.ClickNone
	if d.button.Read() == gpio.Low { // active low
		d.held++
		return
	}
	if d.held > 0 {
		if d.held >= shortClickThreshold {
			d.click = chargerui.ClickLong
		} else {
			d.click = chargerui.ClickShort
		}
		d.held = 0
	}
}

func (d *piDriver) Click() chargerui.Click {
	return d.click
}

func (d *piDriver) Measurements() *[chargerui.ChannelCount]float32 {
	return &d.readings
}

func (d *piDriver) Act(a chargerui.Action, calib *chargerui.Calibration) {
	switch a {
	case chargerui.ActionCaptureSample1:
		calib.Sample[0] = d.readings[calib.Channel]
	case chargerui.ActionCaptureSample2:
		calib.Sample[1] = d.readings[calib.Channel]
	}
	log.Printf("action: %s (channel %d)", a, calib.Channel)
}

func main() {
	var (
		spiBus    = flag.String("spi", "", "SPI bus name (empty for default)")
		dcPin     = flag.String("dc", "GPIO25", "data/command pin name")
		buttonPin = flag.String("button", "GPIO17", "operator button pin name")
		spiHz     = flag.Int("hz", 8_000_000, "SPI frequency in Hz")
	)
	flag.Parse()

	if _, err := host.Init(); err != nil {
		log.Fatalf("periph init: %v", err)
	}

	port, err := spireg.Open(*spiBus)
	if err != nil {
		log.Fatalf("open SPI bus: %v", err)
	}
	defer port.Close()

	conn, err := port.Connect(physic.Frequency(*spiHz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		log.Fatalf("connect SPI: %v", err)
	}

	dc := gpioreg.ByName(*dcPin)
	if dc == nil {
		log.Fatalf("GPIO pin %s not found", *dcPin)
	}

	button := gpioreg.ByName(*buttonPin)
	if button == nil {
		log.Fatalf("GPIO pin %s not found", *buttonPin)
	}
	if err := button.In(gpio.PullUp, gpio.NoEdge); err != nil {
		log.Fatalf("button pin: %v", err)
	}

	drv := &piDriver{button: button}
	out := transfer.New(&spiLink{c: conn, dc: dc})

	ui, err := chargerui.New(cycle, out, drv, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := ui.Init(); err != nil {
		log.Fatal(err)
	}

	for range time.Tick(cycle) {
		drv.poll()
		ui.Step()
	}
}

// Desktop simulator for the charger's operator interface. The display
// glass is emulated in memory and shown in a window; the space bar is the
// operator button, with the same short/long dwell classification the
// hardware uses. Measurements are synthesized.
package main

import (
	"image"
	"log"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/aurinkolabs/chargerui"
	"github.com/aurinkolabs/chargerui/internal/glass"
	"github.com/aurinkolabs/chargerui/internal/transfer"
)

const (
	ticksPerSecond = 20
	// shortClickThreshold separates a short from a long press, in ticks.
	shortClickThreshold = 20
	scale               = 4
)

// simDriver synthesizes measurements and classifies the space bar.
type simDriver struct {
	tick     int
	held     int
	click    chargerui.Click
	readings [chargerui.ChannelCount]float32
}

// poll advances the synthesized readings and the button state once per
// tick.
func (d *simDriver) poll() {
	d.tick++
	t := float64(d.tick) / ticksPerSecond
	for i := range d.readings {
		phase := t/7 + float64(i)
		if i%2 == 0 {
			d.readings[i] = float32(12 + 3*math.Sin(phase)) // V
		} else {
			d.readings[i] = float32(2.5 + 1.5*math.Sin(phase)) // A
		}
	}

	d.click = chargerui.ClickNone
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
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

func (d *simDriver) Click() chargerui.Click {
	return d.click
}

func (d *simDriver) Measurements() *[chargerui.ChannelCount]float32 {
	return &d.readings
}

func (d *simDriver) Act(a chargerui.Action, calib *chargerui.Calibration) {
	switch a {
	case chargerui.ActionCaptureSample1:
		calib.Sample[0] = d.readings[calib.Channel]
	case chargerui.ActionCaptureSample2:
		calib.Sample[1] = d.readings[calib.Channel]
	}
	log.Printf("action: %s (channel %d)", a, calib.Channel)
}

type game struct {
	ui    *chargerui.UI
	drv   *simDriver
	panel *glass.Glass

	img   *image.RGBA
	fbImg *ebiten.Image
}

func (g *game) Update() error {
	g.drv.poll()
	g.ui.Step()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.fbImg == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, glass.Cols, glass.Rows))
		g.fbImg = ebiten.NewImage(glass.Cols, glass.Rows)
	}

	for y := 0; y < glass.Rows; y++ {
		for x := 0; x < glass.Cols; x++ {
			i := (y*glass.Cols + x) * 4
			v := byte(0x20)
			if g.panel.Pixel(x, y) {
				v = 0xFF
			}
			g.img.Pix[i+0] = v
			g.img.Pix[i+1] = v
			g.img.Pix[i+2] = v
			g.img.Pix[i+3] = 0xFF
		}
	}

	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return glass.Cols, glass.Rows
}

func main() {
	panel := glass.New()
	drv := &simDriver{}
	out := transfer.New(panel)

	ui, err := chargerui.New(time.Second/ticksPerSecond, out, drv, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := ui.Init(); err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("chargerui simulator")
	ebiten.SetWindowSize(glass.Cols*scale, glass.Rows*scale)
	ebiten.SetTPS(ticksPerSecond)
	if err := ebiten.RunGame(&game{ui: ui, drv: drv, panel: panel}); err != nil {
		log.Fatal(err)
	}
}

// Headless frame renderer for the charger's operator interface. A YAML
// scenario scripts button clicks and measurement values cycle by cycle;
// the frames marked for snapshot are written out as scaled PNGs. Useful
// for documentation and for eyeballing layout changes without hardware.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	xdraw "golang.org/x/image/draw"
	"gopkg.in/yaml.v3"

	"github.com/aurinkolabs/chargerui"
	"github.com/aurinkolabs/chargerui/internal/glass"
	"github.com/aurinkolabs/chargerui/internal/transfer"
)

type scenario struct {
	Cycles []cycleSpec `yaml:"cycles"`
}

type cycleSpec struct {
	// Click is "", "none", "short" or "long".
	Click string `yaml:"click"`
	// Measurements optionally replaces all ten channel readings.
	Measurements []float32 `yaml:"measurements"`
	// Repeat runs this cycle N times (default 1).
	Repeat int `yaml:"repeat"`
	// Snapshot writes a PNG after the last repetition.
	Snapshot bool `yaml:"snapshot"`
}

func (s *scenario) validate() error {
	for i, c := range s.Cycles {
		switch c.Click {
		case "", "none", "short", "long":
		default:
			return fmt.Errorf("cycle %d: unknown click %q", i, c.Click)
		}
		if len(c.Measurements) != 0 && len(c.Measurements) != chargerui.ChannelCount {
			return fmt.Errorf("cycle %d: want %d measurements, got %d",
				i, chargerui.ChannelCount, len(c.Measurements))
		}
		if c.Repeat < 0 {
			return fmt.Errorf("cycle %d: negative repeat", i)
		}
	}
	return nil
}

// scriptDriver replays the scenario's clicks and readings.
type scriptDriver struct {
	click    chargerui.Click
	readings [chargerui.ChannelCount]float32
}

func (d *scriptDriver) Click() chargerui.Click {
	return d.click
}

func (d *scriptDriver) Measurements() *[chargerui.ChannelCount]float32 {
	return &d.readings
}

func (d *scriptDriver) Act(a chargerui.Action, calib *chargerui.Calibration) {
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
		scenarioPath = flag.String("scenario", "scenario.yaml", "scenario file")
		outDir       = flag.String("out", ".", "output directory for PNG frames")
		scale        = flag.Int("scale", 4, "integer upscale factor")
	)
	flag.Parse()

	raw, err := os.ReadFile(*scenarioPath)
	if err != nil {
		log.Fatal(err)
	}
	var sc scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		log.Fatalf("%s: %v", *scenarioPath, err)
	}
	if err := sc.validate(); err != nil {
		log.Fatalf("%s: %v", *scenarioPath, err)
	}

	panel := glass.New()
	drv := &scriptDriver{}
	out := transfer.New(panel)

	ui, err := chargerui.New(50*time.Millisecond, out, drv, nil)
	if err != nil {
		log.Fatal(err)
	}
	if err := ui.Init(); err != nil {
		log.Fatal(err)
	}

	frame := 0
	for i, c := range sc.Cycles {
		repeat := c.Repeat
		if repeat == 0 {
			repeat = 1
		}
		if len(c.Measurements) == chargerui.ChannelCount {
			copy(drv.readings[:], c.Measurements)
		}
		for n := 0; n < repeat; n++ {
			drv.click = chargerui.ClickNone
			if n == 0 {
				switch c.Click {
				case "short":
					drv.click = chargerui.ClickShort
				case "long":
					drv.click = chargerui.ClickLong
				}
			}
			ui.Step()
		}
		if c.Snapshot {
			name := filepath.Join(*outDir, fmt.Sprintf("frame%03d.png", frame))
			if err := writeFrame(name, panel, *scale); err != nil {
				log.Fatalf("cycle %d: %v", i, err)
			}
			log.Printf("wrote %s", name)
			frame++
		}
	}
}

func writeFrame(name string, panel *glass.Glass, scale int) error {
	src := panel.Image()
	dst := image.NewGray(image.Rect(0, 0, glass.Cols*scale, glass.Rows*scale))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

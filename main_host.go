package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"marcher/app"
	"marcher/hal"
	"marcher/internal/buildinfo"
)

func main() {
	var (
		headless bool
		software bool
		version  bool
		hcfg     hal.HeadlessConfig
		wcfg     hal.WindowConfig
		acfg     app.Config
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window (CPU renderer).")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.IntVar(&wcfg.Width, "width", 640, "Logical width in pixels.")
	flag.IntVar(&wcfg.Height, "height", 480, "Logical height in pixels.")
	flag.Float64Var(&hcfg.Scale, "scale", 1, "Device pixel ratio in headless mode.")
	flag.IntVar(&wcfg.RenderScale, "render-scale", 1, "CPU renderer internal downscale divisor.")
	flag.IntVar(&wcfg.Workers, "workers", 0, "CPU renderer workers (0 = NumCPU).")
	flag.BoolVar(&software, "software", false, "Render on the CPU in window mode.")
	flag.BoolVar(&acfg.HUD, "hud", false, "Draw FPS and pointer count (CPU renderer only).")
	flag.StringVar(&acfg.SnapshotDir, "snapshot-dir", "", "Write PNG snapshots to this directory (CPU renderer only).")
	flag.IntVar(&acfg.SnapshotEvery, "snapshot-every", 60, "Snapshot every N frames.")
	flag.StringVar(&acfg.RecordDir, "record", "", "Record a replay bundle under this directory.")
	flag.BoolVar(&version, "version", false, "Print the build identifier and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	var loop *app.Loop
	newApp := func(h hal.HAL) func() error {
		loop = app.New(h, acfg)
		return loop.Step
	}
	closeLoop := func() {
		if loop == nil {
			return
		}
		if err := loop.Close(); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}

	if headless {
		hcfg.Width, hcfg.Height = wcfg.Width, wcfg.Height
		hcfg.RenderScale, hcfg.Workers = wcfg.RenderScale, wcfg.Workers

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err := hal.RunHeadless(ctx, newApp, hcfg)
		closeLoop()
		if err != nil && !errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	wcfg.Software = software
	err := hal.RunWindow(wcfg, newApp)
	closeLoop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

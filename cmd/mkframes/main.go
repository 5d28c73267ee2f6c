package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"marcher/app"
	"marcher/export"
	"marcher/hal"
	"marcher/replay"
	"marcher/scene"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type options struct {
	width, height int
	scale         int
	frames        int
	fps           int
	start         time.Duration
	outDir        string
	gifPath       string
	replayDir     string
	workers       int
	pointer       string
}

func main() {
	var o options
	flag.IntVar(&o.width, "w", 320, "Frame width in pixels.")
	flag.IntVar(&o.height, "h", 240, "Frame height in pixels.")
	flag.IntVar(&o.scale, "scale", 1, "Render at 1/scale and upscale.")
	flag.IntVar(&o.frames, "frames", 60, "Number of frames to render.")
	flag.IntVar(&o.fps, "fps", 30, "Frames per second of scene time.")
	flag.DurationVar(&o.start, "start", 0, "Scene time of the first frame.")
	flag.StringVar(&o.outDir, "out", "", "Directory for PNG frames.")
	flag.StringVar(&o.gifPath, "gif", "", "Write an animated GIF to this path.")
	flag.StringVar(&o.replayDir, "replay", "", "Render the frames of a recorded replay bundle.")
	flag.IntVar(&o.workers, "workers", 0, "Render workers (0 = NumCPU).")
	flag.StringVar(&o.pointer, "pointer", "", "Hold a pointer at x,y (logical pixels, top-left origin).")
	flag.Parse()

	if o.outDir == "" && o.gifPath == "" {
		fatalf("usage: mkframes -out dir [-gif anim.gif] [-w 320 -h 240 -frames 60 -fps 30 -pointer x,y]\n       mkframes -replay bundle -out dir")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, o); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fatalf("mkframes: %v", err)
	}
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

// frameSource yields the uniforms of successive frames, io.EOF at the end.
type frameSource func() (scene.Uniforms, error)

func run(ctx context.Context, o options) error {
	src, closeSrc, total, err := newSource(o)
	if err != nil {
		return err
	}
	defer closeSrc()

	r := scene.NewRenderer()
	r.Scale = o.scale
	if o.workers > 0 {
		r.Workers = o.workers
	}

	var anim *export.GIF
	if o.gifPath != "" {
		anim = export.NewGIF(o.fps)
	}
	digits := export.Digits(total)

	var img *image.RGBA
	n := 0
	for ; total <= 0 || n < total; n++ {
		u, err := src()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		w, h := int(u.Resolution.X+0.5), int(u.Resolution.Y+0.5)
		if img == nil || img.Rect.Dx() != w || img.Rect.Dy() != h {
			img = image.NewRGBA(image.Rect(0, 0, w, h))
		}
		if err := r.Render(ctx, img, u); err != nil {
			return fmt.Errorf("frame %d: %w", n, err)
		}
		if o.outDir != "" {
			if err := export.SavePNG(img, export.FramePath(o.outDir, "frame", n, digits)); err != nil {
				return err
			}
		}
		if anim != nil {
			anim.Add(img)
		}
	}
	if anim != nil && anim.Len() > 0 {
		if err := anim.Save(o.gifPath); err != nil {
			return fmt.Errorf("gif: %w", err)
		}
	}
	pixels := 0
	if img != nil {
		pixels = img.Rect.Dx() * img.Rect.Dy()
	}
	message.NewPrinter(language.English).Printf("mkframes: %d frames, %d pixels each\n", n, pixels)
	return nil
}

func newSource(o options) (frameSource, func(), int, error) {
	if o.replayDir != "" {
		rd, err := replay.Open(o.replayDir)
		if err != nil {
			return nil, nil, 0, err
		}
		next := func() (scene.Uniforms, error) {
			rec, err := rd.Next()
			return rec.Uniforms, err
		}
		return next, func() { _ = rd.Close() }, 0, nil
	}

	if o.width <= 0 || o.height <= 0 {
		return nil, nil, 0, fmt.Errorf("invalid size %dx%d", o.width, o.height)
	}
	if o.fps <= 0 {
		return nil, nil, 0, fmt.Errorf("invalid fps: %d", o.fps)
	}

	pointers := app.NewPointers()
	if o.pointer != "" {
		x, y, err := parsePoint(o.pointer)
		if err != nil {
			return nil, nil, 0, err
		}
		pointers.Press(hal.MousePointer, x, y)
	}

	res := scene.V2(float32(o.width), float32(o.height))
	step := time.Second / time.Duration(o.fps)
	i := 0
	next := func() (scene.Uniforms, error) {
		t := o.start + time.Duration(i)*step
		i++
		touch, _ := pointers.Touch(res.Y, 1)
		return scene.Uniforms{
			Time:         float32(t.Seconds()),
			Touch:        touch,
			PointerCount: pointers.Count(),
			Resolution:   res,
		}, nil
	}
	return next, func() {}, o.frames, nil
}

func parsePoint(s string) (float64, float64, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("pointer %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("pointer x: %w", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("pointer y: %w", err)
	}
	return x, y, nil
}

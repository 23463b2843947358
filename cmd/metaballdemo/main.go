// Command metaballdemo renders the metaball selector transition of a menu
// bar, either as PNG frames or live in the terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/metaball"
	"github.com/gogpu/metaball/internal/config"
	"github.com/gogpu/metaball/internal/parallel"
	"github.com/gogpu/metaball/menu"
	"github.com/gogpu/metaball/render"
	"github.com/gogpu/metaball/render/term"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML settings file")
		items      = flag.Int("items", 0, "number of menu items (overrides config)")
		from       = flag.Int("from", 0, "item selected before the transition")
		to         = flag.Int("to", -1, "item selected by the transition (default: last item)")
		frames     = flag.Int("frames", 0, "PNG frames to write (overrides config)")
		out        = flag.String("out", "", "output directory for PNG frames (overrides config)")
		workers    = flag.Int("workers", -1, "frames rendered at once, 0 for GOMAXPROCS (overrides config)")
		live       = flag.Bool("term", false, "play transitions in the terminal instead of writing PNGs")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		metaball.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	flags := overrides{items: *items, frames: *frames, out: *out, workers: *workers}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	cfg, err := flags.resolve(cfg)
	if err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}
	if *to < 0 {
		*to = cfg.Items - 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *live {
		err = playTerminal(ctx, cfg, *configPath, flags, *from)
	} else {
		err = writeFrames(ctx, cfg, *from, *to)
	}
	if err != nil && ctx.Err() == nil {
		log.Fatalf("metaballdemo: %v", err)
	}
}

// overrides holds the command-line settings that take precedence over the
// config file. Zero values (and negative workers) leave the file's value.
type overrides struct {
	items   int
	frames  int
	out     string
	workers int
}

func (o overrides) apply(cfg config.Config) config.Config {
	if o.items > 0 {
		cfg.Items = o.items
	}
	if o.frames > 0 {
		cfg.Frames = o.frames
	}
	if o.out != "" {
		cfg.Out = o.out
	}
	if o.workers >= 0 {
		cfg.Workers = o.workers
	}
	return cfg
}

// resolve applies the overrides to cfg and validates the result. It runs at
// startup and on every config reload.
func (o overrides) resolve(cfg config.Config) (config.Config, error) {
	cfg = o.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func newBar(cfg config.Config, selected int) (*menu.Bar, error) {
	return menu.NewBar(cfg.Layout(),
		menu.WithPadding(cfg.Padding),
		menu.WithSelected(selected),
		menu.WithOnSelect(func(i int) {
			metaball.Logger().Info("selected", "item", i)
		}),
	)
}

func newRaster(cfg config.Config) (*render.Raster, error) {
	bg, fg, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	w, h := cfg.CanvasSize()
	return render.NewRaster(w, h, render.WithBackground(bg), render.WithFill(fg)), nil
}

// writeFrames renders one transition from item from to item to as evenly
// spaced PNG frames. Frames are independent and rendered in parallel, each
// on its own raster.
func writeFrames(ctx context.Context, cfg config.Config, from, to int) error {
	bar, err := newBar(cfg, from)
	if err != nil {
		return err
	}
	if err := bar.Select(to); err != nil {
		return err
	}
	if _, _, err := cfg.Colors(); err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Out, 0o750); err != nil {
		return err
	}

	steps := menu.Steps(cfg.Frames)
	jobs := make([]parallel.Job, len(steps))
	for i, t := range steps {
		res := bar.Frame(t)
		jobs[i] = func(context.Context) error {
			return writeFrame(cfg, i, res)
		}
	}

	pool := parallel.NewPool(cfg.Workers)
	defer pool.Close()
	if err := pool.Run(ctx, jobs); err != nil {
		return err
	}
	bar.Complete()

	metaball.Logger().Info("frames written", "count", len(steps), "dir", cfg.Out, "workers", pool.Workers())
	log.Printf("Wrote %d frames to %s\n", len(steps), cfg.Out)
	return nil
}

func writeFrame(cfg config.Config, i int, res metaball.Result) error {
	r, err := newRaster(cfg)
	if err != nil {
		return err
	}
	res.Draw(r)
	if cfg.Caption {
		if err := r.Caption(4, 12, fmt.Sprintf("%03d t=%.3f %T", i, res.Progress(), res)); err != nil {
			return err
		}
	}
	return r.SavePNG(filepath.Join(cfg.Out, fmt.Sprintf("frame_%03d.png", i)))
}

// playTerminal cycles the selection through every item until a key is
// pressed or ctx is done. When configPath is set, edits to the file are
// applied before the next transition, with flags still taking precedence.
func playTerminal(ctx context.Context, cfg config.Config, configPath string, flags overrides, from int) error {
	bar, err := newBar(cfg, from)
	if err != nil {
		return err
	}
	r, err := newRaster(cfg)
	if err != nil {
		return err
	}

	screen, err := term.Open()
	if err != nil {
		return err
	}
	defer screen.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		// Any key quits.
		for {
			ev := screen.Tcell().PollEvent()
			if ev == nil {
				return
			}
			if _, ok := ev.(*tcell.EventKey); ok {
				cancel()
				return
			}
		}
	}()

	reload := make(chan config.Config, 1)
	if configPath != "" {
		go func() {
			err := config.Watch(ctx, configPath, func(c config.Config) {
				c, err := flags.resolve(c)
				if err != nil {
					metaball.Logger().Warn("config reload rejected", "err", err)
					return
				}
				select {
				case <-reload:
				default:
				}
				reload <- c
			})
			if err != nil && !errors.Is(err, context.Canceled) {
				metaball.Logger().Warn("config watch stopped", "err", err)
			}
		}()
	}

	anim := menu.NewAnimator(cfg.Duration(), cfg.FPS)
	draw := func(res metaball.Result) {
		r.Clear()
		res.Draw(r)
		screen.Present(r.Image())
	}

	draw(bar.Frame(1))
	for next := (from + 1) % bar.Len(); ; next = (next + 1) % bar.Len() {
		select {
		case c := <-reload:
			if bar, err = newBar(c, min(bar.Selected(), c.Items-1)); err != nil {
				return err
			}
			if r, err = newRaster(c); err != nil {
				return err
			}
			anim = menu.NewAnimator(c.Duration(), c.FPS)
			next %= bar.Len()
			draw(bar.Frame(1))
		default:
		}

		if err := bar.Select(next); err != nil {
			return err
		}
		if err := bar.Animate(ctx, anim, draw); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
	}
}

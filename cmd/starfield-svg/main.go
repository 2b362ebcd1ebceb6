// Command starfield-svg runs the simulation headless for a number of
// frames and writes the last one as an SVG snapshot.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"starfield/internal/config"
	"starfield/internal/render/svg"
	"starfield/internal/scene"
)

type options struct {
	frames        int
	width, height int
	seed          uint64
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	seed := flag.Uint64("seed", 0, "random seed (0 uses the config seed, then the clock)")
	frames := flag.Int("frames", 120, "frames to simulate before the snapshot")
	width := flag.Int("width", 0, "canvas width (default: window.width)")
	height := flag.Int("height", 0, "canvas height (default: window.height)")
	out := flag.String("o", "-", "output file, - for stdout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	opts := options{frames: *frames, width: *width, height: *height, seed: *seed}
	if opts.width <= 0 {
		opts.width = cfg.Window.Width
	}
	if opts.height <= 0 {
		opts.height = cfg.Window.Height
	}
	if opts.seed == 0 {
		opts.seed = cfg.Seed
	}
	if opts.seed == 0 {
		opts.seed = uint64(time.Now().UnixNano())
	}

	var w io.Writer = os.Stdout
	if *out != "-" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	if err := snapshot(context.Background(), cfg, opts, bw); err != nil {
		log.Fatal(err)
	}
	if err := bw.Flush(); err != nil {
		log.Fatal(err)
	}
	log.Printf("starfield-svg: %d frames at %dx%d, seed %d", opts.frames, opts.width, opts.height, opts.seed)
}

// snapshot simulates opts.frames frames and encodes the last one.
func snapshot(ctx context.Context, cfg *config.Config, opts options, w io.Writer) error {
	if opts.frames < 1 {
		return fmt.Errorf("frames must be at least 1, got %d", opts.frames)
	}

	sc := scene.New(cfg.Scene(), rand.New(rand.NewPCG(opts.seed, opts.seed>>1|1)))
	sc.Resize(opts.width, opts.height)
	sc.Initialize()

	// Headless: every frame is due as soon as the loop takes it.
	frames := make(chan time.Time)
	surface := svg.New()
	loop := &scene.Loop{Scene: sc, Surface: surface, Frames: frames}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(frames)
		now := time.Now()
		for i := 0; i < opts.frames; i++ {
			select {
			case frames <- now:
			case <-gctx.Done():
				return nil
			}
		}
		return nil
	})
	g.Go(func() error {
		return loop.Run(gctx)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("snapshot interrupted after %d frames: %w", sc.Frames(), err)
	}
	return surface.Encode(w, opts.width, opts.height)
}

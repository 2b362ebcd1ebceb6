// Command starfield-term runs the space background in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"starfield/internal/config"
	"starfield/internal/render/term"
	"starfield/internal/scene"
)

func main() {
	if err := start(os.Args[1:], tcell.NewScreen); err != nil {
		log.Fatal(err)
	}
}

// start parses flags, loads the config and runs until quit. Logs stay on
// their current writer until the screen is up, so setup errors are seen.
func start(args []string, newScreen func() (tcell.Screen, error)) error {
	fs := flag.NewFlagSet("starfield-term", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML config file")
	seed := fs.Uint64("seed", 0, "random seed (0 picks one from the clock)")
	logPath := fs.String("log", "", "write logs to this file while the screen is up (default: discard)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	return run(cfg, *logPath, newScreen)
}

// redirectLog points the std logger at path, or discards it. The returned
// func restores the previous writer.
func redirectLog(path string) (restore func(), err error) {
	prev := log.Writer()
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(prev) }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(prev)
		f.Close()
	}, nil
}

func run(cfg *config.Config, logPath string, newScreen func() (tcell.Screen, error)) error {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	// The screen owns the terminal from here; errors returned after this
	// point are logged by main once Fini has run.
	restore, err := redirectLog(logPath)
	if err != nil {
		return err
	}
	defer restore()

	surface := term.New(screen)
	sc := scene.New(cfg.Scene(), rand.New(rand.NewPCG(cfg.Seed, cfg.Seed>>1|1)))
	sc.Resize(surface.PixelSize())
	sc.Initialize()
	log.Printf("starfield-term: %d stars, %d comets, seed %d", cfg.Stars.Count, cfg.Comets.Count, cfg.Seed)

	ticker := time.NewTicker(time.Second / time.Duration(cfg.Window.TPS))
	defer ticker.Stop()

	resizes := make(chan scene.Size, 1)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	// PollEvent blocks until Fini, so the pump lives outside the group.
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	// Input: forwards resizes to the loop and stops everything on quit keys.
	g.Go(func() error {
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventResize:
					screen.Sync()
					w, h := surface.PixelSize()
					select {
					case resizes <- scene.Size{Width: w, Height: h}:
					case <-ctx.Done():
						return nil
					}
				case *tcell.EventKey:
					if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
						cancel()
						return nil
					}
				}
			}
		}
	})

	loop := &scene.Loop{
		Scene:   sc,
		Surface: surface,
		Frames:  ticker.C,
		Resizes: resizes,
		Present: surface.Present,
	}
	g.Go(func() error {
		return loop.Run(ctx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Printf("starfield-term: stopped after %d frames", sc.Frames())
	return nil
}

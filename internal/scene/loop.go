package scene

import (
	"context"
	"fmt"
	"time"

	"starfield/internal/render"
)

// Size is a host viewport size in pixels.
type Size struct {
	Width, Height int
}

// Loop runs a scene against a host that signals frames over a channel.
// Every field is read only by Run, which is the sole writer of the scene
// and the surface while it executes.
type Loop struct {
	Scene   *Scene
	Surface render.Surface

	// Frames delivers one value per display refresh. Closing it stops the loop.
	Frames <-chan time.Time
	// Resizes is optional.
	Resizes <-chan Size
	// Present is called after each frame, if set.
	Present func() error
}

// Run processes resizes and frames until ctx is done or Frames is closed.
// Frames are never overlapped or skipped; a slow frame delays the next one.
func (l *Loop) Run(ctx context.Context) error {
	resizes := l.Resizes
	for {
		select {
		case <-ctx.Done():
			return nil

		case sz, ok := <-resizes:
			if !ok {
				resizes = nil
				continue
			}
			l.Scene.Resize(sz.Width, sz.Height)

		case _, ok := <-l.Frames:
			if !ok {
				return nil
			}
			l.Scene.Frame(l.Surface)
			if l.Present == nil {
				continue
			}
			if err := l.Present(); err != nil {
				return fmt.Errorf("present frame %d: %w", l.Scene.Frames(), err)
			}
		}
	}
}

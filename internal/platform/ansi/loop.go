package ansi

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/registry"
)

// Run drives the game with a plain poll-update-render-sleep loop on a raw
// terminal. It blocks until the player quits or ctx is cancelled.
func Run(ctx context.Context, game registry.Game, cfg core.RuntimeConfig) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("ansi: cannot enter raw mode: %w", err)
	}
	defer term.Restore(fd, oldState) //nolint:errcheck // Best-effort terminal restore

	renderer := NewRenderer(os.Stdout)
	if err := renderer.Setup(); err != nil {
		return fmt.Errorf("ansi: terminal setup failed: %w", err)
	}
	defer renderer.Restore() //nolint:errcheck // Best-effort terminal restore

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	game.Reset(cfg)
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	// Stdin reads block, so a reader goroutine feeds pending bytes through
	// a channel and the loop drains whatever arrived since the last frame.
	// The game loop itself stays single-threaded. The done channel unblocks
	// a pending send once the loop has returned and stopped receiving.
	inputCh := make(chan []byte, 8)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(inputCh)
		for {
			chunk := make([]byte, 64)
			n, readErr := os.Stdin.Read(chunk)
			if n > 0 {
				select {
				case inputCh <- chunk[:n]:
				case <-done:
					return
				}
			}
			if readErr != nil {
				return
			}
		}
	}()

	timer := NewFrameTimer(time.Second / time.Duration(cfg.TickRate))
	var buf InputBuffer
	frame := core.NewInputFrame()

	for {
		timer.StartFrame()

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		// Drain pending input into the per-frame buffer
		buf.Reset()
	drain:
		for {
			select {
			case chunk, ok := <-inputCh:
				if !ok {
					break drain
				}
				buf.Write(chunk)
			default:
				break drain
			}
		}

		frame.Clear()
		buf.Decode(&frame)
		quitting := frame.Has(core.ActionQuit)

		game.Step(frame)
		game.Render(screen)
		if err := renderer.Draw(screen); err != nil {
			return fmt.Errorf("ansi: render failed: %w", err)
		}

		if quitting {
			return nil
		}

		timer.Wait()
	}
}

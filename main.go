package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

// keyBufferSize bounds how many keypresses can wait for the next tick
const keyBufferSize = 16

func main() {
	configPath := flag.String("config", "", "path to a JSON configuration file")
	headless := flag.Bool("headless", false, "write frames to stdout instead of taking over the terminal")
	flag.Parse()

	config := utils.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = utils.LoadConfig(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
	}
	if *headless {
		config.Headless = true
	}

	// The pattern has to come from a redirected file, e.g. "go-gol-torus < pattern.txt"
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Println("No pattern file selected")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := play(ctx, os.Stdin, os.Stdout, config); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}

// play loads the pattern and runs the game on the terminal, or on out when
// no terminal is available or headless mode is requested
func play(ctx context.Context, pattern io.Reader, out io.Writer, config utils.Config) error {
	sim := model.NewSimulation()
	if err := model.LoadPattern(pattern, sim.Current()); err != nil {
		return errors.Wrap(err, "[play] failed to load pattern")
	}

	g := &game{
		sim:            sim,
		delay:          config.FrameDelay.Clamp(),
		maxGenerations: config.MaxGenerations,
		stats:          utils.NewStats(),
	}
	g.stats.Update(0, sim.Current().CountLivingCells())

	var renderer *model.TerminalRenderer
	if !config.Headless {
		var err error
		if renderer, err = model.NewTerminalRenderer(); err != nil {
			fmt.Fprintf(os.Stderr, "%v, falling back to plain output\n", err)
		}
	}

	if renderer == nil {
		g.renderer = model.NewPlainRenderer(out)
		state, err := g.run(ctx)
		if err != nil {
			return errors.Wrap(err, "[play] game loop failed")
		}
		fmt.Fprintf(out, "Stopped: %s | %s\n", state, g.stats.Summary())
		return nil
	}

	g.renderer = renderer
	state, err := runInteractive(ctx, g, config)
	renderer.Close()
	if err != nil {
		return errors.Wrap(err, "[play] game loop failed")
	}

	// The full-screen view is gone once the terminal is released, leave the last frame behind
	fmt.Fprint(out, sim.Current().String())
	fmt.Fprintf(out, "%s\nStopped: %s | %s\n", farewellMessage, state, g.stats.Summary())
	return nil
}

// runInteractive runs the game loop next to a goroutine feeding it keypresses
func runInteractive(ctx context.Context, g *game, config utils.Config) (State, error) {
	keys := make(chan rune, keyBufferSize)
	g.keys = keys

	var (
		eg    errgroup.Group
		state State
	)

	eg.Go(func() error {
		pumpKeys(keys)
		return nil
	})

	eg.Go(func() error {
		// Stops pumpKeys, which only returns on interrupt
		defer termbox.Interrupt()

		var err error
		if state, err = g.run(ctx); err != nil {
			return err
		}
		holdFarewell(ctx, keys, config.FarewellHold)
		return nil
	})

	err := eg.Wait()
	return state, err
}

// pumpKeys forwards terminal keypresses to keys until termbox.Interrupt is called.
// Keys arriving while the buffer is full are dropped.
func pumpKeys(keys chan<- rune) {
	for {
		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventInterrupt:
			return
		case termbox.EventKey:
			key := ev.Ch
			if ev.Key == termbox.KeyCtrlC {
				key = 'q'
			}
			if key == 0 {
				continue
			}
			select {
			case keys <- key:
			default:
			}
		}
	}
}

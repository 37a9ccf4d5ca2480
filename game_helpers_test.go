package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

type fakeRenderer struct {
	frames   int
	farewell string
	last     *model.Grid
}

func (r *fakeRenderer) Display(g *model.Grid) error {
	r.frames++
	r.last = g
	return nil
}

func (r *fakeRenderer) Farewell(g *model.Grid, message string) error {
	r.farewell = message
	r.last = g
	return nil
}

func (r *fakeRenderer) Close() {}

func newTestGame(keys <-chan rune, cells ...[2]int) (*game, *fakeRenderer) {
	sim := model.NewSimulation()
	for _, c := range cells {
		sim.Current().Set(c[0], c[1], true)
	}
	r := &fakeRenderer{}
	return &game{
		sim:      sim,
		renderer: r,
		keys:     keys,
		delay:    model.MinFrameDelay,
		stats:    utils.NewStats(),
	}, r
}

var glider = [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}}

func TestRunExtinct(t *testing.T) {
	g, r := newTestGame(nil)

	state, err := g.run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if state != StateExtinct {
		t.Fatalf("state = %s, want %s", state, StateExtinct)
	}
	if r.frames != 1 || r.farewell != farewellMessage {
		t.Fatalf("frames = %d, farewell = %q", r.frames, r.farewell)
	}
}

func TestRunStillLifeConverges(t *testing.T) {
	g, r := newTestGame(nil, [2]int{5, 5}, [2]int{5, 6}, [2]int{6, 5}, [2]int{6, 6})

	state, err := g.run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if state != StateConverged {
		t.Fatalf("state = %s, want %s", state, StateConverged)
	}
	if r.frames != 2 {
		t.Fatalf("frames = %d, want 2", r.frames)
	}
	if r.last.CountLivingCells() != 4 {
		t.Fatal("final frame lost the block")
	}
}

func TestRunBlinkerConverges(t *testing.T) {
	g, _ := newTestGame(nil, [2]int{10, 10}, [2]int{10, 11}, [2]int{10, 12})

	state, err := g.run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if state != StateConverged {
		t.Fatalf("state = %s, want %s", state, StateConverged)
	}
}

func TestRunQuitKey(t *testing.T) {
	for _, key := range []rune{'q', 'Q'} {
		keys := make(chan rune, 1)
		keys <- key
		g, r := newTestGame(keys, glider...)

		state, err := g.run(context.Background())
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		if state != StateQuit || r.frames != 1 {
			t.Fatalf("key %q: state = %s after %d frames", key, state, r.frames)
		}
	}
}

func TestRunSpeedKeys(t *testing.T) {
	keys := make(chan rune, 8)
	for _, k := range "++-x-q" {
		keys <- k
	}
	g, r := newTestGame(keys, glider...)
	g.delay = 300

	state, err := g.run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if state != StateQuit {
		t.Fatalf("state = %s, want %s", state, StateQuit)
	}
	// One key per tick: 300 -> 200 -> 100 -> 200 -> 200 -> 300
	if g.delay != 300 || r.frames != 6 {
		t.Fatalf("delay = %d after %d frames", g.delay, r.frames)
	}
}

func TestRunSpeedFloor(t *testing.T) {
	keys := make(chan rune, 8)
	for _, k := range "+++q" {
		keys <- k
	}
	g, _ := newTestGame(keys, glider...)

	if _, err := g.run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if g.delay != model.MinFrameDelay {
		t.Fatalf("delay = %d, want %d", g.delay, model.MinFrameDelay)
	}
}

func TestRunGenerationLimit(t *testing.T) {
	g, r := newTestGame(nil, glider...)
	g.maxGenerations = 5

	state, err := g.run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if state != StateLimit || r.frames != 5 || g.stats.TotalGenerations != 5 {
		t.Fatalf("state = %s after %d frames, stats %+v", state, r.frames, g.stats)
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	g, r := newTestGame(nil, glider...)

	state, err := g.run(ctx)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if state != StateQuit || r.frames != 1 {
		t.Fatalf("state = %s after %d frames", state, r.frames)
	}
}

func TestRunClosedKeys(t *testing.T) {
	keys := make(chan rune)
	close(keys)
	g, _ := newTestGame(keys, glider...)
	g.maxGenerations = 3

	state, err := g.run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if state != StateLimit || g.keys != nil {
		t.Fatalf("state = %s, keys = %v", state, g.keys)
	}
}

func TestResolveState(t *testing.T) {
	tests := []struct {
		name    string
		verdict model.Verdict
		quit    bool
		limit   bool
		want    State
	}{
		{"running", model.Verdict{}, false, false, StateRunning},
		{"extinct wins", model.Verdict{Extinct: true, Converged: true}, true, true, StateExtinct},
		{"converged over quit", model.Verdict{Converged: true}, true, true, StateConverged},
		{"quit over limit", model.Verdict{}, true, true, StateQuit},
		{"limit", model.Verdict{}, false, true, StateLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveState(tt.verdict, tt.quit, tt.limit); got != tt.want {
				t.Errorf("resolveState = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPlayHeadless(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    State
	}{
		{"all zero pattern", strings.Repeat(strings.Repeat("0", 78)+"\n", 23), StateExtinct},
		{"blinker", "\n\n0111\n", StateConverged},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := utils.DefaultConfig()
			config.Headless = true
			config.FrameDelay = model.MinFrameDelay

			var out bytes.Buffer
			if err := play(context.Background(), strings.NewReader(tt.pattern), &out, config); err != nil {
				t.Fatalf("play: %v", err)
			}
			if !strings.Contains(out.String(), farewellMessage) {
				t.Fatalf("farewell missing:\n%s", out.String())
			}
			if !strings.Contains(out.String(), "Stopped: "+tt.want.String()) {
				t.Fatalf("want state %s in output:\n%s", tt.want, out.String())
			}
		})
	}
}

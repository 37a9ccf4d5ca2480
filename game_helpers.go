package main

import (
	"context"
	"time"

	"github.com/sheikhrachel/go-gol-torus/model"
	"github.com/sheikhrachel/go-gol-torus/utils"
)

const farewellMessage = "That's it, come again!"

// State is where the game loop stands
type State int

const (
	StateRunning State = iota
	StateExtinct
	StateConverged
	StateQuit
	StateLimit
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExtinct:
		return "extinct"
	case StateConverged:
		return "converged"
	case StateQuit:
		return "quit"
	case StateLimit:
		return "generation limit reached"
	}
	return "unknown"
}

// game is the loop state: the simulation, where frames go and where keys come from
type game struct {
	sim            *model.Simulation
	renderer       model.Renderer
	keys           <-chan rune // nil when there is no keyboard
	delay          model.FrameDelay
	maxGenerations int
	stats          *utils.Stats
}

// run ticks the simulation until it dies out, repeats, hits the generation cap,
// the user quits or ctx is done. The final frame is drawn with the farewell message.
func (g *game) run(ctx context.Context) (State, error) {
	state := StateRunning

	for state == StateRunning {
		if err := g.renderer.Display(g.sim.Current()); err != nil {
			return state, err
		}

		verdict := g.sim.Step()
		g.stats.Update(g.sim.Generation(), g.sim.Current().CountLivingCells())

		quit := g.pollKey()
		limitReached := g.maxGenerations > 0 && g.sim.Generation() >= g.maxGenerations
		state = resolveState(verdict, quit, limitReached)

		if !sleep(ctx, g.delay.Duration()) && state == StateRunning {
			state = StateQuit
		}
	}

	return state, g.renderer.Farewell(g.sim.Current(), farewellMessage)
}

// pollKey applies at most one pending key without blocking and reports whether it asked to quit
func (g *game) pollKey() bool {
	select {
	case key, ok := <-g.keys:
		if !ok {
			g.keys = nil
			return false
		}
		switch model.ActionForKey(key) {
		case model.ActionFaster:
			g.delay = g.delay.Faster()
		case model.ActionSlower:
			g.delay = g.delay.Slower()
		case model.ActionQuit:
			return true
		}
	default:
	}
	return false
}

// resolveState picks the state after a tick; extinction wins over convergence,
// both win over a quit request and the generation cap
func resolveState(verdict model.Verdict, quit, limitReached bool) State {
	switch {
	case verdict.Extinct:
		return StateExtinct
	case verdict.Converged:
		return StateConverged
	case quit:
		return StateQuit
	case limitReached:
		return StateLimit
	}
	return StateRunning
}

// sleep waits for d and reports false if ctx ended first
func sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// holdFarewell keeps the final frame up until d passes, a key is pressed or ctx ends
func holdFarewell(ctx context.Context, keys <-chan rune, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-keys:
	case <-timer.C:
	}
}

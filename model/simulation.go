package model

// Verdict is what the convergence checks concluded about one step
type Verdict struct {
	Extinct   bool
	Converged bool
}

// Stopped reports whether either check ends the simulation
func (v Verdict) Stopped() bool {
	return v.Extinct || v.Converged
}

// Simulation owns the three generations the rule engine and detector work on
type Simulation struct {
	current    *Grid
	future     *Grid
	past       *Grid
	generation int
}

// NewSimulation allocates the current, future and past grids
func NewSimulation() *Simulation {
	return &Simulation{
		current: NewGrid(),
		future:  NewGrid(),
		past:    NewGrid(),
	}
}

// Current returns the generation that is displayed and loaded into
func (s *Simulation) Current() *Grid {
	return s.current
}

// Past returns the generation before the current one
func (s *Simulation) Past() *Grid {
	return s.past
}

// Generation returns how many steps have been taken
func (s *Simulation) Generation() int {
	return s.generation
}

// Step computes the next generation, checks it for extinction and repetition,
// then shifts past <- current <- future
func (s *Simulation) Step() Verdict {
	s.current.Advance(s.future)

	verdict := Verdict{
		Extinct:   IsExtinct(s.future),
		Converged: IsConverged(s.past, s.current, s.future),
	}

	s.past.CopyFrom(s.current)
	s.current.CopyFrom(s.future)
	s.generation++

	return verdict
}

package utils

import (
	"fmt"
	"time"
)

// Stats tracks how a run went, for the closing summary
type Stats struct {
	TotalGenerations  int
	Population        int
	PeakPopulation    int
	AveragePopulation float64
	StartTime         time.Time
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int) {
	s.TotalGenerations = generation
	s.Population = population
	s.PeakPopulation = max(s.PeakPopulation, population)

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary is a one-line report of the run
func (s *Stats) Summary() string {
	return fmt.Sprintf("%d generations in %.1fs | Final population: %d | Peak: %d | Avg: %.1f",
		s.TotalGenerations, time.Since(s.StartTime).Seconds(), s.Population, s.PeakPopulation, s.AveragePopulation)
}

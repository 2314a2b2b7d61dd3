package utils

import (
	"fmt"
	"time"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary formats the final stats line
func (s *Stats) Summary() string {
	return fmt.Sprintf("Final stats: %d generations in %.1f seconds | %.1f gen/sec, %.1f avg population, %d alive",
		s.TotalGenerations, time.Since(s.StartTime).Seconds(),
		s.GenerationsPerSecond, s.AveragePopulation, s.ActiveCells)
}

package services

import (
	"math"
	"sync"

	"github.com/address-cleanser/address-cleanser/internal/types/api/responses"
)

const (
	// ConfidenceWindow bounds how many recent confidence scores are averaged.
	ConfidenceWindow = 1000
	// RecentWindow bounds how many recent outcomes feed recent_error_count.
	RecentWindow = 100
)

// StatsAggregator accumulates processing outcomes. It is safe for
// concurrent use and implements interfaces.StatsRecorder.
type StatsAggregator struct {
	mu sync.Mutex

	totalProcessed int
	totalValid     int
	totalInvalid   int
	totalErrors    int

	confidences []float64
	recent      []bool
	recentNext  int
}

// NewStatsAggregator creates an empty aggregator.
func NewStatsAggregator() *StatsAggregator {
	return &StatsAggregator{
		confidences: make([]float64, 0, ConfidenceWindow),
		recent:      make([]bool, 0, RecentWindow),
	}
}

// Record counts one processed address. Only positive confidences enter the
// rolling window, oldest evicted first.
func (s *StatsAggregator) Record(valid bool, confidence float64, hasError bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totalProcessed++
	if valid {
		s.totalValid++
	} else {
		s.totalInvalid++
	}
	if hasError {
		s.totalErrors++
	}

	if confidence > 0 {
		if len(s.confidences) == ConfidenceWindow {
			copy(s.confidences, s.confidences[1:])
			s.confidences = s.confidences[:ConfidenceWindow-1]
		}
		s.confidences = append(s.confidences, confidence)
	}

	if len(s.recent) < RecentWindow {
		s.recent = append(s.recent, hasError)
	} else {
		s.recent[s.recentNext] = hasError
	}
	s.recentNext = (s.recentNext + 1) % RecentWindow
}

// Snapshot returns the current counters.
func (s *StatsAggregator) Snapshot() responses.StatsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sum float64
	for _, c := range s.confidences {
		sum += c
	}
	avg := 0.0
	if len(s.confidences) > 0 {
		avg = math.Round(sum/float64(len(s.confidences))*100) / 100
	}

	recentErrors := 0
	for _, e := range s.recent {
		if e {
			recentErrors++
		}
	}

	return responses.StatsResponse{
		TotalProcessed:    s.totalProcessed,
		TotalValid:        s.totalValid,
		TotalInvalid:      s.totalInvalid,
		TotalErrors:       s.totalErrors,
		AverageConfidence: avg,
		RecentErrorCount:  recentErrors,
	}
}

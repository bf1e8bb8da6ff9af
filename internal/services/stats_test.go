package services_test

import (
	"sync"
	"testing"

	"github.com/address-cleanser/address-cleanser/internal/services"
	"github.com/address-cleanser/address-cleanser/internal/types/api/responses"
	"github.com/stretchr/testify/assert"
)

func TestStatsAggregator_Empty(t *testing.T) {
	assert.Equal(t, responses.StatsResponse{}, services.NewStatsAggregator().Snapshot())
}

func TestStatsAggregator_Record(t *testing.T) {
	stats := services.NewStatsAggregator()

	stats.Record(true, 90, false)
	stats.Record(false, 60, true)
	stats.Record(false, 0, true)
	stats.Record(true, 70.555, false)

	snap := stats.Snapshot()
	assert.Equal(t, 4, snap.TotalProcessed)
	assert.Equal(t, 2, snap.TotalValid)
	assert.Equal(t, 2, snap.TotalInvalid)
	assert.Equal(t, 2, snap.TotalErrors)
	assert.Equal(t, 2, snap.RecentErrorCount)
	// Zero confidences stay out of the average: (90+60+70.555)/3.
	assert.Equal(t, 73.52, snap.AverageConfidence)
}

func TestStatsAggregator_ConfidenceWindowEvictsOldest(t *testing.T) {
	stats := services.NewStatsAggregator()

	for i := 0; i < services.ConfidenceWindow; i++ {
		stats.Record(true, 10, false)
	}
	for i := 0; i < services.ConfidenceWindow; i++ {
		stats.Record(true, 90, false)
	}

	snap := stats.Snapshot()
	assert.Equal(t, 2*services.ConfidenceWindow, snap.TotalProcessed)
	assert.Equal(t, 90.0, snap.AverageConfidence)
}

func TestStatsAggregator_RecentErrorCount(t *testing.T) {
	stats := services.NewStatsAggregator()

	for i := 0; i < 150; i++ {
		stats.Record(false, 50, true)
	}
	assert.Equal(t, services.RecentWindow, stats.Snapshot().RecentErrorCount)

	for i := 0; i < 60; i++ {
		stats.Record(true, 50, false)
	}
	snap := stats.Snapshot()
	assert.Equal(t, 40, snap.RecentErrorCount)
	assert.Equal(t, 150, snap.TotalErrors)
}

func TestStatsAggregator_ConcurrentRecord(t *testing.T) {
	stats := services.NewStatsAggregator()

	var wg sync.WaitGroup
	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				stats.Record(w%2 == 0, 50, w%4 == 0)
			}
		}(w)
	}
	wg.Wait()

	snap := stats.Snapshot()
	assert.Equal(t, 4000, snap.TotalProcessed)
	assert.Equal(t, 2000, snap.TotalValid)
	assert.Equal(t, 2000, snap.TotalInvalid)
	assert.Equal(t, 1000, snap.TotalErrors)
	assert.Equal(t, 50.0, snap.AverageConfidence)
}

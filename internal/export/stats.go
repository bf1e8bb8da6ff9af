package export

import (
	"math"

	"github.com/address-cleanser/address-cleanser/internal/types/business"
)

// ProcessingStats summarises a batch of results.
type ProcessingStats struct {
	TotalProcessed    int     `json:"total_processed"`
	Successful        int     `json:"successful"`
	Failed            int     `json:"failed"`
	SuccessRate       float64 `json:"success_rate"`
	AverageConfidence float64 `json:"average_confidence"`
}

// CalculateStats counts valid results and averages confidence. Rates are
// percentages rounded to two decimals.
func CalculateStats(results []business.FormattedAddress) ProcessingStats {
	stats := ProcessingStats{TotalProcessed: len(results)}
	if len(results) == 0 {
		return stats
	}

	var confidence float64
	for _, r := range results {
		if r.Valid {
			stats.Successful++
		}
		confidence += r.Confidence
	}
	stats.Failed = stats.TotalProcessed - stats.Successful
	stats.SuccessRate = round2(float64(stats.Successful) / float64(stats.TotalProcessed) * 100)
	stats.AverageConfidence = round2(confidence / float64(len(results)))
	return stats
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

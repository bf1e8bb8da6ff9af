package responses

import "github.com/address-cleanser/address-cleanser/internal/types/business"

// ValidationResult reports the individual checks behind an address verdict
type ValidationResult struct {
	State      bool `json:"state"`
	Zip        bool `json:"zip"`
	IsComplete bool `json:"is_complete"`
}

// AddressResponse is the REST projection of a processed address
type AddressResponse struct {
	Formatted  string               `json:"formatted"`
	Parsed     *business.Components `json:"parsed,omitempty"`
	Valid      ValidationResult     `json:"valid"`
	Confidence *float64             `json:"confidence,omitempty"`
	Errors     []string             `json:"errors"`
	Original   *string              `json:"original,omitempty"`
}

// BatchSummary summarizes a batch request
type BatchSummary struct {
	Total   int `json:"total"`
	Valid   int `json:"valid"`
	Invalid int `json:"invalid"`
	Errors  int `json:"errors"`
}

// BatchResponse is returned from the batch endpoints
type BatchResponse struct {
	Results []AddressResponse `json:"results"`
	Summary BatchSummary      `json:"summary"`
}

// StatsResponse reports service-lifetime counters
type StatsResponse struct {
	TotalProcessed    int     `json:"total_processed"`
	TotalValid        int     `json:"total_valid"`
	TotalInvalid      int     `json:"total_invalid"`
	TotalErrors       int     `json:"total_errors"`
	AverageConfidence float64 `json:"average_confidence"`
	RecentErrorCount  int     `json:"recent_error_count"`
}

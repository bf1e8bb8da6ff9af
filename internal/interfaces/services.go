package interfaces

import (
	"context"

	"github.com/address-cleanser/address-cleanser/internal/types/api/requests"
	"github.com/address-cleanser/address-cleanser/internal/types/api/responses"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
)

//go:generate mockgen -source=services.go -destination=../mocks/mock_services.go -package=mocks

// Tagger labels the tokens of a free-form address. It returns a
// business.RepeatedLabelError when it cannot give each label one span.
type Tagger interface {
	Tag(text string) (map[string]string, string, error)
}

// AddressProcessor runs one raw address through the full pipeline
type AddressProcessor interface {
	Process(raw string) business.FormattedAddress
}

// AddressService is the REST facing facade over the pipeline
type AddressService interface {
	ProcessSingle(ctx context.Context, address string, opts requests.ProcessOptions) responses.AddressResponse
	ProcessBatch(ctx context.Context, addresses []string, opts requests.ProcessOptions) responses.BatchResponse
	Stats() responses.StatsResponse
}

// StatsRecorder accumulates processing outcomes across requests
type StatsRecorder interface {
	Record(valid bool, confidence float64, hasError bool)
	Snapshot() responses.StatsResponse
}

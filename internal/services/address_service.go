package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/interfaces"
	"github.com/address-cleanser/address-cleanser/internal/types/api/requests"
	"github.com/address-cleanser/address-cleanser/internal/types/api/responses"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"go.uber.org/zap"
)

// AddressService projects pipeline results for the REST API and keeps
// service-lifetime statistics.
type AddressService struct {
	processor interfaces.AddressProcessor
	stats     interfaces.StatsRecorder
	batch     *BatchProcessor
	logger    *zap.Logger
}

// NewAddressService creates an AddressService. workers bounds batch
// concurrency; <= 0 means GOMAXPROCS.
func NewAddressService(processor interfaces.AddressProcessor, stats interfaces.StatsRecorder, workers int, logger *zap.Logger) *AddressService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AddressService{
		processor: processor,
		stats:     stats,
		batch:     NewBatchProcessor(processor, workers, logger),
		logger:    logger,
	}
}

// ProcessSingle processes one address and records the outcome.
func (s *AddressService) ProcessSingle(ctx context.Context, address string, opts requests.ProcessOptions) responses.AddressResponse {
	if strings.TrimSpace(address) == "" {
		s.stats.Record(false, 0, true)
		return responses.AddressResponse{
			Errors: []string{business.ErrInvalidInput.Error()},
		}
	}

	result := s.process(address)

	var resp responses.AddressResponse
	if result.Parsed.IsEmpty() {
		resp.Errors = []string{constants.NoParsedComponentsMsg}
	} else {
		resp.Formatted = result.SingleLine
		resp.Valid = responses.ValidationResult{
			State:      result.Validation.StateValid,
			Zip:        result.Validation.ZipValid,
			IsComplete: result.Validation.IsComplete,
		}
		resp.Errors = append([]string{}, result.Issues...)
		if opts.ReturnParsed {
			parsed := result.Parsed
			resp.Parsed = &parsed
		}
	}

	if opts.ReturnConfidence {
		confidence := result.Confidence
		resp.Confidence = &confidence
	}
	if opts.ReturnOriginal {
		original := address
		resp.Original = &original
	}

	s.stats.Record(result.Valid, result.Confidence, len(resp.Errors) > 0)
	return resp
}

func (s *AddressService) process(address string) (result business.FormattedAddress) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("address service panicked",
				zap.String("address", address),
				zap.Any("panic", r),
			)
			result = ErrorResult(address, fmt.Sprintf("Processing error: %v", r))
		}
	}()
	return s.processor.Process(address)
}

// ProcessBatch processes addresses concurrently, preserving input order.
func (s *AddressService) ProcessBatch(ctx context.Context, addresses []string, opts requests.ProcessOptions) responses.BatchResponse {
	results := make([]responses.AddressResponse, len(addresses))
	done := make([]bool, len(addresses))

	err := s.batch.ForEach(ctx, len(addresses), func(i int) {
		results[i] = s.ProcessSingle(ctx, addresses[i], opts)
		done[i] = true
	})
	if err != nil {
		s.logger.Warn("batch request interrupted", zap.Error(err))
		for i := range results {
			if !done[i] {
				results[i] = responses.AddressResponse{
					Errors: []string{fmt.Sprintf("Processing error: %s", err)},
				}
			}
		}
	}

	summary := responses.BatchSummary{Total: len(addresses)}
	for _, r := range results {
		if r.Valid.IsComplete {
			summary.Valid++
		} else {
			summary.Invalid++
		}
		if len(r.Errors) > 0 {
			summary.Errors++
		}
	}

	return responses.BatchResponse{
		Results: results,
		Summary: summary,
	}
}

// Stats returns the aggregated counters.
func (s *AddressService) Stats() responses.StatsResponse {
	return s.stats.Snapshot()
}

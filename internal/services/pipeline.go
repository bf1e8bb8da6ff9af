package services

import (
	"fmt"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/formatter"
	"github.com/address-cleanser/address-cleanser/internal/interfaces"
	"github.com/address-cleanser/address-cleanser/internal/parser"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"github.com/address-cleanser/address-cleanser/internal/validator"
	"go.uber.org/zap"
)

// Pipeline runs preprocess, tag, normalize, validate and format in order.
// It implements interfaces.AddressProcessor and never panics or fails for a
// single address.
type Pipeline struct {
	adapter *parser.Adapter
	logger  *zap.Logger
}

// NewPipeline creates a pipeline over the given tagger.
func NewPipeline(tagger interfaces.Tagger, logger *zap.Logger) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		adapter: parser.NewAdapter(tagger, logger),
		logger:  logger,
	}
}

// Process turns one raw address into its formatted record.
func (p *Pipeline) Process(raw string) (result business.FormattedAddress) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("address pipeline panicked",
				zap.String("address", raw),
				zap.Any("panic", r),
			)
			result = ErrorResult(raw, fmt.Sprintf("Processing error: %v", r))
		}
	}()

	if parser.Clean(raw) == "" {
		return ErrorResult(raw, business.ErrInvalidInput.Error())
	}

	tagged := p.adapter.Tag(parser.Preprocess(raw))
	tagged.Original = raw

	parsed := parser.Normalize(tagged.Tokens)
	validated := validator.Validate(parsed, tagged.Confidence)
	if tagged.Failed() {
		validated.Issues = append([]string{tagged.Error}, validated.Issues...)
	}

	result = formatter.BuildResult(raw, tagged, validated)
	if tagged.Failed() {
		result.AddressType = constants.AddressTypeError
	}

	p.logger.Debug("processed address",
		zap.String("address", raw),
		zap.Bool("valid", result.Valid),
		zap.Float64("confidence", result.Confidence),
		zap.String("parsing_strategy", tagged.ParsingStrategy),
	)
	return result
}

// ErrorResult is the record reported for an address that could not be
// processed at all.
func ErrorResult(raw, issue string) business.FormattedAddress {
	return business.FormattedAddress{
		Original:    raw,
		MultiLine:   []string{},
		Issues:      []string{issue},
		AddressType: constants.AddressTypeError,
		Validation: business.ValidationOutcome{
			Issues:        []string{issue},
			MissingFields: []string{},
		},
	}
}

package parser

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/address-cleanser/address-cleanser/internal/interfaces"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"go.uber.org/zap"
)

// RetryPenalty scales the confidence of a result produced by a fallback
// strategy.
const RetryPenalty = 0.8

var separatorWords = regexp.MustCompile(`(?i)\bAND\b|&`)

type strategy func(string) string

// fallbacks are tried in order after the tagger reports an ambiguous labeling.
var fallbacks = []strategy{
	func(addr string) string {
		return Clean(separatorWords.ReplaceAllString(addr, " "))
	},
	func(addr string) string {
		if i := strings.Index(addr, ","); i >= 0 {
			return strings.TrimSpace(addr[:i])
		}
		return addr
	},
	func(addr string) string {
		return commaSpacing.ReplaceAllString(addr, ", ")
	},
}

// Adapter wraps a Tagger and turns its output into a TaggedResult.
type Adapter struct {
	tagger interfaces.Tagger
	logger *zap.Logger
}

// NewAdapter creates an Adapter over tagger.
func NewAdapter(tagger interfaces.Tagger, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{tagger: tagger, logger: logger}
}

// Tag labels address. It never returns an error; failures are reported in
// the Error field of the result.
func (a *Adapter) Tag(address string) business.TaggedResult {
	cleaned := Clean(address)
	if cleaned == "" {
		return failed(address, business.ErrInvalidInput.Error())
	}

	tokens, addressType, err := a.safeTag(cleaned)
	if err == nil {
		return business.TaggedResult{
			Original:    address,
			Tokens:      tokens,
			AddressType: addressType,
			Confidence:  Score(tokens, addressType),
		}
	}

	if errors.Is(err, business.ErrRepeatedLabel) {
		return a.retry(cleaned, address, err)
	}

	a.logger.Warn("tagger failed",
		zap.String("address", address),
		zap.Error(err),
	)
	return failed(address, fmt.Sprintf("Parsing error: %s", err))
}

func (a *Adapter) retry(cleaned, original string, cause error) business.TaggedResult {
	for i, rewrite := range fallbacks {
		tokens, addressType, err := a.safeTag(rewrite(cleaned))
		if err != nil {
			a.logger.Debug("fallback strategy failed",
				zap.Int("strategy", i+1),
				zap.Error(err),
			)
			continue
		}
		strategyName := fmt.Sprintf("alternative_%d", i+1)
		a.logger.Debug("fallback strategy succeeded",
			zap.String("strategy", strategyName),
		)
		return business.TaggedResult{
			Original:        original,
			Tokens:          tokens,
			AddressType:     addressType,
			Confidence:      Score(tokens, addressType) * RetryPenalty,
			ParsingStrategy: strategyName,
		}
	}

	a.logger.Info("could not disambiguate address",
		zap.String("address", original),
		zap.Error(cause),
	)
	return failed(original, fmt.Sprintf("Could not parse address: %s", cause))
}

// safeTag converts a tagger panic into an error.
func (a *Adapter) safeTag(text string) (tokens map[string]string, addressType string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("tagger panic: %v", r)
		}
	}()
	return a.tagger.Tag(text)
}

func failed(original, msg string) business.TaggedResult {
	return business.TaggedResult{
		Original: original,
		Tokens:   map[string]string{},
		Error:    msg,
	}
}

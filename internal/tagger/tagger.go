// Package tagger provides a deterministic, rule-based US address tagger.
//
// Addresses are read right to left: ZIP code, state, city and then the
// street part, the same order a mail sorter reads an envelope. Every token
// receives exactly one label and contiguous tokens sharing a label are
// joined. A label that shows up again after a different label makes the
// input ambiguous and is reported as a business.RepeatedLabelError.
package tagger

import (
	"strings"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"github.com/address-cleanser/address-cleanser/internal/usps"
	"go.uber.org/zap"
)

const maxCityWords = 3

// RuleTagger implements interfaces.Tagger without any trained model.
type RuleTagger struct {
	logger *zap.Logger
}

// New creates a RuleTagger. A nil logger disables logging.
func New(logger *zap.Logger) *RuleTagger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RuleTagger{logger: logger}
}

// Tag labels the tokens of text and classifies the address.
func (t *RuleTagger) Tag(text string) (map[string]string, string, error) {
	toks := tokenize(text)
	if len(toks) == 0 {
		return map[string]string{}, constants.AddressTypeAmbiguous, nil
	}

	labels := make([]string, len(toks))
	end, zipFound := tagZip(toks, labels)
	anchor := tagState(toks, labels, end, zipFound)
	streetEnd := tagCity(toks, labels, anchor)
	tagStreet(toks[:streetEnd], labels)

	out, err := group(text, toks, labels)
	if err != nil {
		t.logger.Debug("ambiguous labeling",
			zap.String("input", text),
			zap.Error(err),
		)
		return nil, "", err
	}

	addressType := classify(out)
	t.logger.Debug("tagged address",
		zap.Int("tokens", len(toks)),
		zap.Int("labels", len(out)),
		zap.String("address_type", addressType),
	)
	return out, addressType, nil
}

// tagZip labels a trailing ZIP or ZIP+4 and returns the new end of the
// untagged prefix. A malformed ZIP after a comma and a state-like word is
// still labeled so validation can report it.
func tagZip(toks []token, labels []string) (int, bool) {
	end := len(toks)
	if end >= 2 && toks[end-1].plus4 && zipPattern.MatchString(toks[end-2].text) {
		labels[end-2], labels[end-1] = ZipCode, ZipPlus4
		return end - 2, true
	}
	last := toks[end-1]
	if zipPattern.MatchString(last.text) && (end == 1 || toks[end-2].text != "BOX") {
		labels[end-1] = ZipCode
		return end - 1, true
	}
	if end >= 2 && last.seg > 0 && badZipPattern.MatchString(last.text) && isStateWord(toks[end-2].text) {
		labels[end-1] = ZipCode
		return end - 1, true
	}
	return end, false
}

// tagState labels a state name or code ending at end. Codes and names are
// only trusted when a ZIP was found or they sit after a comma, so "CT" in
// "12 OAK CT" stays a street type.
func tagState(toks []token, labels []string, end int, zipFound bool) int {
	if end == 0 {
		return 0
	}
	last := toks[end-1]
	if !zipFound && last.seg == 0 {
		return end
	}
	for n := usps.LongestStateName; n >= 1; n-- {
		start := end - n
		if start < 0 || toks[start].seg != last.seg {
			continue
		}
		words := make([]string, 0, n)
		for _, tk := range toks[start:end] {
			words = append(words, tk.text)
		}
		if _, ok := usps.StateCode(strings.Join(words, " ")); !ok {
			continue
		}
		for i := start; i < end; i++ {
			labels[i] = StateName
		}
		return start
	}
	// An unknown two-letter code in front of a ZIP is still the state.
	if zipFound && isStateWord(last.text) {
		labels[end-1] = StateName
		return end - 1
	}
	return end
}

// isStateWord reports whether w is a known state or reads like a state
// code: two letters that are not a street type, directional or unit type.
func isStateWord(w string) bool {
	if _, ok := usps.StateCode(w); ok {
		return true
	}
	return len(w) == 2 &&
		isPlainWord(w) &&
		!usps.IsStreetType(w) &&
		!usps.IsDirectional(w) &&
		!usps.IsUnitType(w) &&
		w != "PO"
}

// tagCity labels the place name preceding anchor and returns where the
// street part ends.
func tagCity(toks []token, labels []string, anchor int) int {
	if anchor == 0 {
		return 0
	}
	q := anchor - 1
	start := anchor

	if seg := toks[q].seg; seg > 0 {
		// The city owns the whole comma segment before the anchor.
		s := q
		for s > 0 && toks[s-1].seg == seg {
			s--
		}
		for _, tk := range toks[s:anchor] {
			if !isPlainWord(tk.text) {
				return anchor
			}
		}
		if looksLikeUnit(toks[s:anchor]) {
			return anchor
		}
		start = s
	} else if anchor < len(toks) {
		// No comma: take a short run of plain words, leaving a street behind.
		for start > 1 && anchor-start < maxCityWords {
			w, prev := toks[start-1].text, toks[start-2].text
			if !isCityRunWord(w, prev) || usps.IsUnitType(prev) || !hasStreetWord(toks[:start-1]) {
				break
			}
			start--
		}
	}

	for i := start; i < anchor; i++ {
		labels[i] = PlaceName
	}
	return start
}

// looksLikeUnit matches segments such as "APT B" or "STE C".
func looksLikeUnit(seg []token) bool {
	return len(seg) == 2 && usps.IsUnitType(seg[0].text) && len(seg[1].text) <= 2
}

func isCityWord(w string) bool {
	return len(w) > 1 &&
		isPlainWord(w) &&
		!usps.IsStreetType(w) &&
		!usps.IsDirectional(w) &&
		!usps.IsUnitType(w) &&
		!isSeparator(w) &&
		w != "PO" && w != "BOX"
}

// isCityRunWord allows a street-type word such as "FORT" into a city when
// the street already ended with its own type.
func isCityRunWord(w, prev string) bool {
	if isCityWord(w) {
		return true
	}
	return len(w) > 1 && isPlainWord(w) && usps.IsStreetType(w) && usps.IsStreetType(prev)
}

func hasStreetWord(toks []token) bool {
	for _, tk := range toks {
		if !isNumeric(tk.text) && tk.text != "PO" && !isSeparator(tk.text) {
			return true
		}
	}
	return false
}

// group joins contiguous tokens sharing a label.
func group(text string, toks []token, labels []string) (map[string]string, error) {
	out := make(map[string]string)
	var current string
	var words []string

	flush := func() error {
		if current == "" {
			return nil
		}
		if _, seen := out[current]; seen {
			return &business.RepeatedLabelError{Label: current, Input: text}
		}
		out[current] = strings.Join(words, " ")
		return nil
	}

	for i, tk := range toks {
		if labels[i] == current {
			words = append(words, tk.text)
			continue
		}
		if err := flush(); err != nil {
			return nil, err
		}
		current, words = labels[i], []string{tk.text}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return out, nil
}

func classify(labels map[string]string) string {
	_, boxID := labels[USPSBoxID]
	_, boxType := labels[USPSBoxType]
	_, separator := labels[IntersectionSeparator]
	_, number := labels[AddressNumber]

	switch {
	case boxID || boxType:
		return constants.AddressTypePOBox
	case separator:
		return constants.AddressTypeIntersection
	case number:
		return constants.AddressTypeStreet
	default:
		return constants.AddressTypeAmbiguous
	}
}

package parser

import (
	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/tagger"
)

const (
	baseScore     = 50.0
	requiredScore = 30.0
	optionalScore = 20.0
	poBoxBonus    = 10.0
	maxScore      = 100.0
)

var requiredLabels = []string{
	tagger.AddressNumber,
	tagger.StreetName,
	tagger.PlaceName,
	tagger.StateName,
}

// Score rates how complete a tagging is, from 0 to 100.
func Score(tokens map[string]string, addressType string) float64 {
	if len(tokens) == 0 {
		return 0
	}

	score := baseScore

	required := 0
	for _, label := range requiredLabels {
		if _, ok := tokens[label]; ok {
			required++
		}
	}
	score += float64(required) / float64(len(requiredLabels)) * requiredScore

	optional := 0
	if _, ok := tokens[tagger.ZipCode]; ok {
		optional++
	}
	if hasStreetType(tokens) {
		optional++
	}
	score += float64(optional) / 2 * optionalScore

	if addressType == constants.AddressTypePOBox {
		_, box := tokens[tagger.USPSBoxID]
		_, place := tokens[tagger.PlaceName]
		if box && place {
			score += poBoxBonus
		}
	}

	return clamp(score)
}

func hasStreetType(tokens map[string]string) bool {
	if _, ok := tokens[tagger.StreetNamePostModifier]; ok {
		return true
	}
	_, ok := tokens[tagger.StreetNamePostType]
	return ok
}

func clamp(score float64) float64 {
	switch {
	case score < 0:
		return 0
	case score > maxScore:
		return maxScore
	}
	return score
}

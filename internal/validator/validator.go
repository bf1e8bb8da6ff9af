// Package validator checks canonical address components against USPS rules.
package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"github.com/address-cleanser/address-cleanser/internal/usps"
)

const (
	EmptyComponentsMessage = "Address dictionary is empty"

	minStreetNumber = 1
	maxStreetNumber = 99999
	minCityLength   = 2
	maxCityLength   = 50
)

// Confidence adjustments applied on top of the parser's confidence.
const (
	zipValidBonus       = 10.0
	zipInvalidPenalty   = -20.0
	stateValidBonus     = 10.0
	stateInvalidPenalty = -20.0
	completeBonus       = 15.0
	incompletePenalty   = -25.0
	maxConfidence       = 100.0
	minConfidence       = 0.0
)

var (
	zipNoise    = regexp.MustCompile(`[^\d-]`)
	zip5        = regexp.MustCompile(`^\d{5}$`)
	zip9        = regexp.MustCompile(`^\d{5}-\d{4}$`)
	nonDigits   = regexp.MustCompile(`\D`)
	cityPattern = regexp.MustCompile(`^[A-Za-z\s\-']+$`)
)

// RequiredFields must all be present for a street address to be complete.
var RequiredFields = []business.Field{
	business.FieldStreetNumber,
	business.FieldStreetName,
	business.FieldCity,
	business.FieldState,
}

var poBoxRequiredFields = []business.Field{
	business.FieldPOBox,
	business.FieldCity,
	business.FieldState,
}

// ValidateZip accepts exactly 5 digits or ZIP+4 after dropping everything
// but digits and hyphens.
func ValidateZip(zip string) (bool, string) {
	if zip == "" {
		return false, "ZIP code is missing"
	}
	cleaned := zipNoise.ReplaceAllString(strings.TrimSpace(zip), "")
	if zip5.MatchString(cleaned) || zip9.MatchString(cleaned) {
		return true, ""
	}
	return false, fmt.Sprintf("Invalid ZIP code format: %s. Expected 5 digits or ZIP+4 format (12345-6789)", zip)
}

// ValidateState accepts a two-letter code or full name, case-insensitively.
func ValidateState(state string) (bool, string) {
	if state == "" {
		return false, "State is missing"
	}
	if _, ok := usps.StateCode(state); ok {
		return true, ""
	}
	return false, fmt.Sprintf("Invalid state: %s. Must be a valid US state abbreviation or name", state)
}

// StateAbbreviation returns the two-letter code for a code or full name.
func StateAbbreviation(state string) (string, bool) {
	if strings.TrimSpace(state) == "" {
		return "", false
	}
	return usps.StateCode(state)
}

// ValidateStreetNumber strips non-digits and checks the remaining number is
// within range. Alphanumeric numbers such as "123A" pass.
func ValidateStreetNumber(number string) (bool, string) {
	if number == "" {
		return false, "Street number is missing"
	}
	digits := nonDigits.ReplaceAllString(strings.TrimSpace(number), "")
	if digits == "" {
		return false, fmt.Sprintf("Invalid street number: %s. Must contain digits", number)
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < minStreetNumber || n > maxStreetNumber {
		return false, fmt.Sprintf("Street number out of range: %s. Must be between %d and %d", number, minStreetNumber, maxStreetNumber)
	}
	return true, ""
}

// ValidateCity checks length and allowed characters.
func ValidateCity(city string) (bool, string) {
	if city == "" {
		return false, "City is missing"
	}
	trimmed := strings.TrimSpace(city)
	switch n := utf8.RuneCountInString(trimmed); {
	case n < minCityLength:
		return false, fmt.Sprintf("City name too short: %s. Must be at least %d characters", city, minCityLength)
	case n > maxCityLength:
		return false, fmt.Sprintf("City name too long: %s. Must be %d characters or less", city, maxCityLength)
	}
	if !cityPattern.MatchString(trimmed) {
		return false, fmt.Sprintf("City name contains invalid characters: %s. Only letters, spaces, hyphens, and apostrophes allowed", city)
	}
	return true, ""
}

// ValidateCompleteness reports whether c has the minimum fields for
// delivery and which street fields are missing. A PO Box with city and
// state is complete without any street fields.
func ValidateCompleteness(c business.Components) (bool, []string) {
	missing := []string{}
	for _, f := range RequiredFields {
		if !c.Has(f) {
			missing = append(missing, string(f))
		}
	}

	if c.Has(business.FieldPOBox) && hasAll(c, poBoxRequiredFields) {
		return true, []string{}
	}

	return len(missing) == 0, missing
}

func hasAll(c business.Components, fields []business.Field) bool {
	for _, f := range fields {
		if !c.Has(f) {
			return false
		}
	}
	return true
}

// CombineConfidence adjusts a parser confidence by the three validation
// outcomes and clamps the result to [0, 100].
func CombineConfidence(base float64, zipValid, stateValid, complete bool) float64 {
	score := base
	score += pick(zipValid, zipValidBonus, zipInvalidPenalty)
	score += pick(stateValid, stateValidBonus, stateInvalidPenalty)
	score += pick(complete, completeBonus, incompletePenalty)

	switch {
	case score < minConfidence:
		return minConfidence
	case score > maxConfidence:
		return maxConfidence
	}
	return score
}

func pick(ok bool, yes, no float64) float64 {
	if ok {
		return yes
	}
	return no
}

// Validate runs the ZIP, state and completeness checks. Street number and
// city checks are available separately and do not affect the verdict.
func Validate(c business.Components, parserConfidence float64) business.ValidationOutcome {
	if c.IsEmpty() {
		missing := make([]string, 0, len(RequiredFields))
		for _, f := range RequiredFields {
			missing = append(missing, string(f))
		}
		return business.ValidationOutcome{
			Issues:        []string{EmptyComponentsMessage},
			MissingFields: missing,
		}
	}

	issues := []string{}

	zipValid, msg := ValidateZip(c.ZipCode)
	if !zipValid {
		issues = append(issues, msg)
	}

	stateValid, msg := ValidateState(c.State)
	if !stateValid {
		issues = append(issues, msg)
	}

	complete, missing := ValidateCompleteness(c)
	if !complete {
		issues = append(issues, "Missing required fields: "+strings.Join(missing, ", "))
	}

	return business.ValidationOutcome{
		Valid:         zipValid && stateValid && complete,
		ZipValid:      zipValid,
		StateValid:    stateValid,
		IsComplete:    complete,
		Confidence:    CombineConfidence(parserConfidence, zipValid, stateValid, complete),
		Issues:        issues,
		MissingFields: missing,
	}
}

// Package formatter renders canonical components in USPS Publication 28 form.
package formatter

import (
	"strings"

	"github.com/address-cleanser/address-cleanser/internal/constants"
	"github.com/address-cleanser/address-cleanser/internal/parser"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
	"github.com/address-cleanser/address-cleanser/internal/usps"
)

// Abbreviate returns the USPS abbreviation for word, checking street types,
// then directionals, then unit designators. Unknown words come back upper-cased.
func Abbreviate(word string) string {
	w := strings.ToUpper(strings.TrimSpace(word))
	if w == "" {
		return ""
	}
	if abbr, ok := usps.StreetTypes[w]; ok {
		return abbr
	}
	if abbr, ok := usps.Directionals[w]; ok {
		return abbr
	}
	if abbr, ok := usps.UnitTypes[w]; ok {
		return abbr
	}
	return w
}

// StandardizeUnit abbreviates the designator of a unit such as "Suite 400".
func StandardizeUnit(unit string) string {
	words := strings.Fields(strings.ToUpper(unit))
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	}
	return Abbreviate(words[0]) + " " + strings.Join(words[1:], " ")
}

// FormatUSPS produces the abbreviated form of c.
func FormatUSPS(c business.Components) business.Components {
	var f business.Components
	if c.IsEmpty() {
		return f
	}

	f.StreetNumber = c.StreetNumber
	f.StreetName = join(" ",
		Abbreviate(c.StreetDirectionalPrefix),
		coreStreetName(c),
		Abbreviate(c.StreetDirectionalSuffix),
		Abbreviate(c.StreetType),
	)

	switch {
	case c.Unit != "":
		f.Unit = StandardizeUnit(c.Unit)
	case c.UnitType != "" && c.UnitNumber != "":
		f.Unit = Abbreviate(c.UnitType) + " " + c.UnitNumber
	}

	if c.POBox != "" {
		f.POBox = "PO BOX " + c.POBox
	}

	f.City = strings.ToUpper(c.City)
	f.State = strings.ToUpper(c.State)
	f.ZipCode = c.ZipCode
	return f
}

// coreStreetName strips directionals that normalization already folded into
// the street name so they are not emitted twice.
func coreStreetName(c business.Components) string {
	name := c.StreetName
	if p := c.StreetDirectionalPrefix; p != "" {
		if name == p {
			return ""
		}
		name = strings.TrimPrefix(name, p+" ")
	}
	if s := c.StreetDirectionalSuffix; s != "" {
		if name == s {
			return ""
		}
		name = strings.TrimSuffix(name, " "+s)
	}
	return name
}

func streetLine(f business.Components) string {
	if f.StreetNumber != "" && f.StreetName != "" {
		return f.StreetNumber + " " + f.StreetName
	}
	return f.StreetName
}

// SingleLine renders f as one comma separated line, ending in
// "CITY, ST ZIP".
func SingleLine(f business.Components) string {
	return join(", ",
		streetLine(f),
		f.Unit,
		f.POBox,
		join(", ", f.City, join(" ", f.State, f.ZipCode)),
	)
}

// MultiLine renders f as a delivery line followed by a last line.
func MultiLine(f business.Components) []string {
	lines := []string{}

	first := f.POBox
	if first == "" {
		first = join(" ", streetLine(f), f.Unit)
	}
	if first != "" {
		lines = append(lines, first)
	}

	if last := join(" ", f.City, f.State, f.ZipCode); last != "" {
		lines = append(lines, last)
	}
	return lines
}

// BuildResult assembles the terminal record for one address. Confidence
// comes from tagging; validity and issues come from validation.
func BuildResult(original string, tagged business.TaggedResult, validated business.ValidationOutcome) business.FormattedAddress {
	parsed := parser.Normalize(tagged.Tokens)
	formatted := FormatUSPS(parsed)

	addressType := tagged.AddressType
	if addressType == "" {
		addressType = constants.AddressTypeUnknown
	}

	issues := make([]string, len(validated.Issues))
	copy(issues, validated.Issues)

	return business.FormattedAddress{
		Original:    original,
		Parsed:      parsed,
		Formatted:   formatted,
		SingleLine:  SingleLine(formatted),
		MultiLine:   MultiLine(formatted),
		Confidence:  tagged.Confidence,
		Valid:       validated.Valid,
		Issues:      issues,
		AddressType: addressType,
		Validation:  validated,
	}
}

func join(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

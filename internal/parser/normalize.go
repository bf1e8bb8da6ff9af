package parser

import (
	"github.com/address-cleanser/address-cleanser/internal/tagger"
	"github.com/address-cleanser/address-cleanser/internal/types/business"
)

type labelField struct {
	label string
	field business.Field
}

// labelFields is applied in order; a later entry overwrites an earlier one
// targeting the same field.
var labelFields = []labelField{
	{tagger.AddressNumber, business.FieldStreetNumber},
	{tagger.StreetName, business.FieldStreetName},
	{tagger.StreetNamePreDirectional, business.FieldStreetDirectionalPrefix},
	{tagger.StreetNamePostDirectional, business.FieldStreetDirectionalSuffix},
	{tagger.StreetNamePostModifier, business.FieldStreetType},
	{tagger.StreetNamePostType, business.FieldStreetType},
	{tagger.OccupancyType, business.FieldUnitType},
	{tagger.OccupancyIdentifier, business.FieldUnitNumber},
	{tagger.PlaceName, business.FieldCity},
	{tagger.StateName, business.FieldState},
	{tagger.ZipCode, business.FieldZipCode},
	{tagger.ZipPlus4, business.FieldZipPlus4},
}

// Normalize maps tagger labels onto canonical components.
func Normalize(tokens map[string]string) business.Components {
	var c business.Components
	if len(tokens) == 0 {
		return c
	}

	for _, lf := range labelFields {
		if v := Clean(tokens[lf.label]); v != "" {
			c.Set(lf.field, v)
		}
	}

	// The box identifier wins over the box type.
	if v := Clean(tokens[tagger.USPSBoxID]); v != "" {
		c.POBox = v
	} else if v := Clean(tokens[tagger.USPSBoxType]); v != "" {
		c.POBox = v
	}

	c.StreetName = joinNonEmpty(" ",
		c.StreetDirectionalPrefix,
		Clean(tokens[tagger.StreetName]),
		c.StreetDirectionalSuffix,
	)

	if c.ZipCode != "" && c.ZipPlus4 != "" {
		c.ZipCode = c.ZipCode + "-" + c.ZipPlus4
	}

	switch {
	case c.UnitType != "" && c.UnitNumber != "":
		c.Unit = c.UnitType + " " + c.UnitNumber
	case c.UnitNumber != "":
		c.Unit = c.UnitNumber
	}

	return c
}

func joinNonEmpty(sep string, parts ...string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}

package export

import (
	"strings"
	"unicode"
)

var addressKeywords = []string{
	"address", "street", "city", "state", "zip", "postal",
	"location", "addr", "street_address", "shipping_address",
	"billing_address", "mailing_address",
}

var (
	streetKeywords = []string{"street", "address", "addr", "road", "avenue", "lane", "drive", "boulevard", "blvd"}
	// Short street words only match as whole words so "st" does not claim "state".
	streetWords = map[string]bool{"rd": true, "st": true, "ave": true, "ln": true, "dr": true}
	zipKeywords = []string{"zip", "postal", "postcode"}
)

type columnRole int

const (
	roleOther columnRole = iota
	roleStreet
	roleCity
	roleState
	roleZip
)

// DetectAddressColumns returns the headers that look address related,
// grouped by the keyword that matched them.
func DetectAddressColumns(headers []string) []string {
	var detected []string
	seen := make(map[string]bool)
	for _, keyword := range addressKeywords {
		for _, h := range headers {
			if !seen[h] && strings.Contains(strings.ToLower(h), keyword) {
				detected = append(detected, h)
				seen[h] = true
			}
		}
	}
	return detected
}

func classifyColumn(name string) columnRole {
	lower := strings.ToLower(name)
	switch {
	case strings.Contains(lower, "city"):
		return roleCity
	case strings.Contains(lower, "state"):
		return roleState
	case containsAny(lower, zipKeywords):
		return roleZip
	case containsAny(lower, streetKeywords) || hasStreetWord(lower):
		return roleStreet
	default:
		return roleOther
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func hasStreetWord(s string) bool {
	words := strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, w := range words {
		if streetWords[w] {
			return true
		}
	}
	return false
}

// CombineColumns joins the address parts spread over columns into one
// address per row. The first street, city, state and ZIP column is used; a
// table without a street column uses the first unclassified column instead.
// Empty parts are skipped and the rest joined with ", ".
func (t *Table) CombineColumns(columns []string) ([]string, error) {
	if err := t.Require(columns...); err != nil {
		return nil, err
	}

	picked := map[columnRole]int{}
	other := -1
	for _, name := range columns {
		idx, _ := t.Column(name)
		role := classifyColumn(name)
		if role == roleOther {
			if other < 0 {
				other = idx
			}
			continue
		}
		if _, ok := picked[role]; !ok {
			picked[role] = idx
		}
	}
	if _, ok := picked[roleStreet]; !ok && other >= 0 {
		picked[roleStreet] = other
	}

	order := []columnRole{roleStreet, roleCity, roleState, roleZip}
	combined := make([]string, t.Len())
	for row := range t.Rows {
		parts := make([]string, 0, len(order))
		for _, role := range order {
			col, ok := picked[role]
			if !ok {
				continue
			}
			if v := strings.TrimSpace(t.Cell(row, col)); v != "" {
				parts = append(parts, v)
			}
		}
		combined[row] = strings.Join(parts, ", ")
	}
	return combined, nil
}

// AddressColumn picks the column uploads are read from: "address" when
// present, otherwise the first column.
func (t *Table) AddressColumn() int {
	if idx, ok := t.Column("address"); ok {
		return idx
	}
	return 0
}

package tagger

import (
	"strings"

	"github.com/address-cleanser/address-cleanser/internal/usps"
)

type phase int

const (
	phaseStart phase = iota
	phaseNumber
	phasePreDir
	phaseName
	phaseType
	phasePostDir
	phaseOccType
	phaseOccID
	phaseBoxType
	phaseBoxID
)

// street walks the street part of an address left to right.
type street struct {
	toks   []token
	labels []string
	phase  phase
	second bool
}

func tagStreet(toks []token, labels []string) {
	s := &street{toks: toks, labels: labels}
	for i := 0; i < len(toks); i++ {
		i = s.step(i)
	}
}

func (s *street) next(i int) (string, bool) {
	if i+1 >= len(s.toks) || s.toks[i+1].seg != s.toks[i].seg {
		return "", false
	}
	return s.toks[i+1].text, true
}

// step labels token i and returns the index of the last token it consumed.
func (s *street) step(i int) int {
	w := s.toks[i].text

	switch {
	case w == "PO" && i+1 < len(s.toks) && s.toks[i+1].text == "BOX":
		s.label(i, USPSBoxType, phaseBoxType)
		s.label(i+1, USPSBoxType, phaseBoxType)
		return i + 1
	case w == "BOX" && s.phase == phaseStart:
		s.label(i, USPSBoxType, phaseBoxType)
	case s.phase == phaseBoxType:
		s.label(i, USPSBoxID, phaseBoxID)
	case isSeparator(w) && s.phase != phaseStart:
		s.label(i, IntersectionSeparator, phaseStart)
		s.second = true
	case strings.HasPrefix(w, "#"):
		s.label(i, OccupancyIdentifier, phaseOccID)
	case usps.IsUnitType(w) && s.afterStreet() && i+1 < len(s.toks):
		s.label(i, OccupancyType, phaseOccType)
	case s.phase == phaseOccType || s.phase == phaseOccID:
		s.label(i, OccupancyIdentifier, phaseOccID)
	case isNumeric(w):
		s.number(i, w)
	case usps.IsDirectional(w):
		s.directional(i)
	case usps.IsStreetType(w) && s.phase == phaseName && s.typeEnds(i):
		s.label(i, s.pick(StreetNamePostType, SecondStreetNamePostType), phaseType)
	default:
		s.label(i, s.pick(StreetName, SecondStreetName), phaseName)
	}
	return i
}

func (s *street) label(i int, label string, p phase) {
	s.labels[i] = label
	s.phase = p
}

func (s *street) pick(first, second string) string {
	if s.second {
		return second
	}
	return first
}

func (s *street) afterStreet() bool {
	switch s.phase {
	case phaseName, phaseType, phasePostDir, phaseBoxID:
		return true
	}
	return false
}

func (s *street) number(i int, w string) {
	switch s.phase {
	case phaseStart:
		if s.second {
			s.label(i, SecondStreetName, phaseName)
			return
		}
		s.label(i, AddressNumber, phaseNumber)
	case phaseNumber:
		if strings.Contains(w, "/") {
			s.label(i, AddressNumber, phaseNumber)
			return
		}
		s.label(i, s.pick(StreetName, SecondStreetName), phaseName)
	case phasePreDir, phaseName:
		s.label(i, s.pick(StreetName, SecondStreetName), phaseName)
	default:
		// A second house number after a complete street.
		s.label(i, AddressNumber, phaseNumber)
	}
}

func (s *street) directional(i int) {
	next, ok := s.next(i)
	switch s.phase {
	case phaseStart, phaseNumber:
		if ok && !usps.IsStreetType(next) {
			s.label(i, s.pick(StreetNamePreDirectional, SecondStreetNamePreDirectional), phasePreDir)
			return
		}
	case phaseName, phaseType:
		if !ok || usps.IsUnitType(next) || strings.HasPrefix(next, "#") || isSeparator(next) {
			s.label(i, s.pick(StreetNamePostDirectional, SecondStreetNamePostDirectional), phasePostDir)
			return
		}
	}
	s.label(i, s.pick(StreetName, SecondStreetName), phaseName)
}

// typeEnds reports whether a street type at i closes the street name.
func (s *street) typeEnds(i int) bool {
	next, ok := s.next(i)
	if !ok {
		return true
	}
	return usps.IsDirectional(next) ||
		usps.IsUnitType(next) ||
		strings.HasPrefix(next, "#") ||
		isSeparator(next) ||
		isNumeric(next)
}

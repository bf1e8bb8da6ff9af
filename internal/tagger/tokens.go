package tagger

import (
	"regexp"
	"strings"
)

var (
	zipPattern      = regexp.MustCompile(`^\d{5}$`)
	zipPlus4Pattern = regexp.MustCompile(`^(\d{5})-(\d{4})$`)
	badZipPattern   = regexp.MustCompile(`^\d{3,}(-\d*)?$`)
)

type token struct {
	text string
	// seg is the index of the comma separated segment holding the token.
	seg int
	// plus4 marks the trailing half of a split ZIP+4.
	plus4 bool
}

// tokenize splits text into upper-cased tokens, recording which comma
// segment each one came from. ZIP+4 codes become two tokens and a bare "#"
// is glued to the identifier that follows it.
func tokenize(text string) []token {
	var out []token
	seg := 0
	for _, part := range strings.Split(text, ",") {
		fields := strings.Fields(strings.ToUpper(part))
		if len(fields) == 0 {
			continue
		}
		for i := 0; i < len(fields); i++ {
			f := strings.TrimRight(fields[i], ".;")
			if f == "" {
				continue
			}
			if f == "#" && i+1 < len(fields) {
				i++
				f = "#" + fields[i]
			}
			if m := zipPlus4Pattern.FindStringSubmatch(f); m != nil {
				out = append(out, token{text: m[1], seg: seg}, token{text: m[2], seg: seg, plus4: true})
				continue
			}
			out = append(out, token{text: f, seg: seg})
		}
		seg++
	}
	return out
}

func isNumeric(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

// isPlainWord reports whether s looks like part of a place name.
func isPlainWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r == '\'' || r == '-' || r == '.':
		default:
			return false
		}
	}
	return true
}

func isSeparator(s string) bool {
	return s == "AND" || s == "&"
}

package token

import (
	"unicode"
	"unicode/utf8"
)

// Identifier lexical rule: a leading Unicode letter (Lu/Lt/Lm/Lo/Ll),
// letter-number (Nl), Other_ID_Start or underscore, continued by the
// same set plus marks (Mn/Mc), decimal digits (Nd), connector
// punctuation (Pc) and Other_ID_Continue.

var (
	idStartTables    = []*unicode.RangeTable{unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl, unicode.Other_ID_Start}
	idContinueTables = []*unicode.RangeTable{unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue}
)

func IsIDStart(r rune) bool {
	return r == '_' || unicode.In(r, idStartTables...)
}

func IsIDContinue(r rune) bool {
	return IsIDStart(r) || unicode.In(r, idContinueTables...)
}

// IsIdentifier reports whether s is a non-empty identifier under the
// rule above. The canonical formatter uses it to decide between
// dot-form and bracket-form for string keys.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == utf8.RuneError {
			return false
		}
		if i == 0 {
			if !IsIDStart(r) {
				return false
			}
			continue
		}
		if !IsIDContinue(r) {
			return false
		}
	}
	return true
}

package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// Strategy describes one way to locate a field's text within a post
// fragment: a CSS selector paired with an acceptance test. Strategies are
// evaluated in slice order; the first accepted match wins.
type Strategy struct {
	// Scope narrows the search to the first element matching this selector
	// before Selector is applied. When the first scope element lacks a
	// Selector match the strategy fails, even if a later scope element
	// would match.
	Scope string

	// Selector is the CSS selector matched within the fragment.
	Selector string

	// MinLength is the exclusive minimum accepted text length in runes.
	MinLength int

	// ScanAll evaluates every element matched by Selector instead of only
	// the first. Used where the first match is commonly short filler.
	ScanAll bool

	// RejectNumeric rejects values consisting solely of digits.
	RejectNumeric bool
}

// accept reports whether the extracted text passes the strategy's
// acceptance rules.
func (s Strategy) accept(text string) bool {
	if utf8.RuneCountInString(text) <= s.MinLength {
		return false
	}
	if s.RejectNumeric && isDigits(text) {
		return false
	}
	return true
}

// FirstMatch runs strategies in order against the fragment and returns the
// first accepted value. A strategy that matches nothing, or whose text
// fails acceptance, means "no match, try next" rather than an error, so
// cascade order is deterministic and a primary selector always beats its
// fallbacks.
func FirstMatch(fragment *goquery.Selection, strategies []Strategy) (string, bool) {
	for _, s := range strategies {
		root := fragment
		if s.Scope != "" {
			root = fragment.Find(s.Scope).First()
		}
		matches := root.Find(s.Selector)
		if !s.ScanAll {
			matches = matches.First()
		}

		var value string
		var found bool
		matches.EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			text := normalizeText(sel)
			if !s.accept(text) {
				return true
			}
			value, found = text, true
			return false
		})
		if found {
			return value, true
		}
	}
	return "", false
}

// normalizeText returns the selection's text with runs of whitespace
// collapsed to single spaces and surrounding whitespace removed.
func normalizeText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

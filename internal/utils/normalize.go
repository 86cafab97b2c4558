// Package utils implements internal helpers for normalization, formatting and
// input validation shared across lexigram's packages.
package utils

import "strings"

// StripToLetters drops every code point that is not an ASCII letter
// (non-ASCII letters included) and lowercases the rest, producing the raw
// letter bag a query operates on.
func StripToLetters(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		} else if r >= 'A' && r <= 'Z' {
			b.WriteRune(r - 'A' + 'a')
		}
	}
	return b.String()
}

// RemoveLetters deducts, with multiplicity, the letters of word from bag.
// It reports ok=false if bag does not contain enough of some letter to fit
// word entirely, leaving bag untouched in that case.
func RemoveLetters(bag, word string) (residual string, ok bool) {
	var counts [26]int
	for _, r := range bag {
		counts[r-'a']++
	}
	for _, r := range word {
		if r < 'a' || r > 'z' {
			continue
		}
		counts[r-'a']--
		if counts[r-'a'] < 0 {
			return bag, false
		}
	}
	var b strings.Builder
	b.Grow(len(bag))
	for i, c := range counts {
		for n := 0; n < c; n++ {
			b.WriteByte(byte('a' + i))
		}
	}
	return b.String(), true
}

// ApplyIncludes strips seed to letters and removes each include word's
// letters in order, failing the whole query (ok=false) the moment one
// include word does not fit in what remains of the bag.
func ApplyIncludes(seed string, includes []string) (residual string, ok bool) {
	residual = StripToLetters(seed)
	for _, included := range includes {
		residual, ok = RemoveLetters(residual, strings.ToLower(included))
		if !ok {
			return "", false
		}
	}
	return residual, true
}

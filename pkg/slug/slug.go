// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug generates URL slugs from arbitrary Unicode strings.
//
// # Usage
//
// Slugs are human-readable identifiers for products (e.g., "mouse-toy").
// Accents are stripped from Latin text; letters of other scripts are kept so
// names like "쥐돌이" still produce a usable slug.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is returned when the input contains no letters or digits.
const Fallback = "item"

var (
	// nonSlug matches any sequence of characters that are not letters, digits or hyphens.
	nonSlug = regexp.MustCompile(`[^\p{L}\p{N}-]+`)
	// multiHyphen collapses multiple consecutive hyphens into one.
	multiHyphen = regexp.MustCompile(`-{2,}`)
)

// From converts an arbitrary Unicode string into a URL-safe slug.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD and removes combining marks (é → e).
// 2. Recomposes to NFC so Hangul syllables survive intact.
// 3. Converts to lowercase.
// 4. Replaces runs of other characters with a single hyphen and trims the ends.
func From(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	result = strings.ToLower(result)
	result = nonSlug.ReplaceAllString(result, "-")
	result = multiHyphen.ReplaceAllString(result, "-")
	result = strings.Trim(result, "-")

	if result == "" {
		return Fallback
	}
	return result
}

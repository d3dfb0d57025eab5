package utils

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify converts a display name into a URL slug: lowercase, diacritics
// stripped, runs of non-alphanumeric characters collapsed to a single hyphen.
func Slugify(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, name)
	if err != nil {
		stripped = name
	}

	slug := strings.ToLower(stripped)
	slug = nonAlphanumeric.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// UniqueSlug probes exists with base, then base-1, base-2, ... until a free
// slug is found. A concurrent import can still win the race for the returned
// slug; callers treat the resulting duplicate-key error as a skip.
func UniqueSlug(base string, exists func(string) bool) string {
	if !exists(base) {
		return base
	}

	for i := 1; ; i++ {
		candidate := base + "-" + strconv.Itoa(i)
		if !exists(candidate) {
			return candidate
		}
	}
}

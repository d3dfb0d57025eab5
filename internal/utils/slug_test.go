package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple", "Burger Haus", "burger-haus"},
		{"diacritics", "Café Zürich", "cafe-zurich"},
		{"french accents", "Crêperie L'Étoile", "creperie-l-etoile"},
		{"punctuation collapsed", "Joe's  Pizza & Pasta!", "joe-s-pizza-pasta"},
		{"leading trailing", "  - Trattoria -  ", "trattoria"},
		{"numbers kept", "Block 21", "block-21"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}

func TestUniqueSlug(t *testing.T) {
	t.Run("base free", func(t *testing.T) {
		slug := UniqueSlug("burger-haus", func(string) bool { return false })
		assert.Equal(t, "burger-haus", slug)
	})

	t.Run("probes numeric suffixes", func(t *testing.T) {
		taken := map[string]bool{"burger-haus": true, "burger-haus-1": true}
		slug := UniqueSlug("burger-haus", func(s string) bool { return taken[s] })
		assert.Equal(t, "burger-haus-2", slug)
	})
}

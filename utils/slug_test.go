package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		lang     string
		expected string
	}{
		{"english title", "Hello World!", LangEN, "hello-world"},
		{"english punctuation", "Top 10 Deals: Best of 2026!", LangEN, "top-10-deals-best-of-2026"},
		{"english multiple spaces", "  multiple   spaces   here ", LangEN, "multiple-spaces-here"},
		{"english emoji stripped", "Great 🎉 News", LangEN, "great-news"},
		{"bangla title", "নিউজ এন্ড নিশ", LangBN, "নিউজ-এন্ড-নিশ"},
		{"bangla with punctuation", "বাংলা, খবর!", LangBN, "বাংলা-খবর"},
		{"bangla keeps ascii", "iPhone 15 রিভিউ", LangBN, "iPhone-15-রিভিউ"},
		{"bangla stripped from english", "নিউজ and News", LangEN, "and-news"},
		{"empty english", "", LangEN, ""},
		{"empty bangla", "", LangBN, ""},
		{"only punctuation", "!!!", LangEN, ""},
		{"hyphens collapse", "a -- b --- c", LangEN, "a-b-c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.text, tt.lang))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []struct {
		text string
		lang string
	}{
		{"Hello World!", LangEN},
		{"নিউজ এন্ড নিশ", LangBN},
		{"Top 10 Deals: Best of 2026!", LangEN},
		{"", LangEN},
		{"", LangBN},
	}
	for _, in := range inputs {
		once := Slugify(in.text, in.lang)
		twice := Slugify(once, in.lang)
		assert.Equal(t, once, twice, "Slugify must be idempotent for %q (%s)", in.text, in.lang)
	}
}

func TestSlugifyNormalized(t *testing.T) {
	assert.Equal(t, "cafe-deco", SlugifyNormalized("Café Déco", LangEN))
	assert.Equal(t, "uber-review", SlugifyNormalized("Über Review", LangEN))
	// Already-clean input goes through unchanged.
	assert.Equal(t, Slugify("plain title", LangEN), SlugifyNormalized("plain title", LangEN))
}

package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const wordsPerMinute = 200

// PlainText strips markup from stored post content, collapsing whitespace.
// Content that fails to parse is returned unchanged.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// EstimateReadTime returns reading minutes at ~200 words per minute.
// Non-empty content reads for at least one minute.
func EstimateReadTime(html string) int {
	words := len(strings.Fields(PlainText(html)))
	if words == 0 {
		return 0
	}
	minutes := words / wordsPerMinute
	if words%wordsPerMinute > 0 {
		minutes++
	}
	return minutes
}

// ExcerptFrom builds a plain-text excerpt of at most maxRunes runes from
// post content, cutting on a word boundary with a trailing ellipsis.
func ExcerptFrom(html string, maxRunes int) string {
	text := PlainText(html)
	if utf8.RuneCountInString(text) <= maxRunes {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:maxRunes])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}

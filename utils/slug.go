package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

var hyphenRuns = regexp.MustCompile(`-{2,}`)

// Slugify derives a URL-safe slug from a title or name.
//
// English slugs are lowercased and reduced to [a-z0-9-]. Bangla has no case,
// so bn input keeps its letters as-is and additionally admits the Bengali
// Unicode block (U+0980–U+09FF) alongside ASCII letters and digits. Runs of
// whitespace become a single hyphen; everything else is dropped. Empty input
// yields an empty slug, never an error.
func Slugify(text, lang string) string {
	if lang != LangBN {
		text = strings.ToLower(text)
	}
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			b.WriteRune('-')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case lang == LangBN && (r >= 'A' && r <= 'Z' || r >= 0x0980 && r <= 0x09FF):
			b.WriteRune(r)
		}
	}
	out := hyphenRuns.ReplaceAllString(b.String(), "-")
	return strings.Trim(out, "-")
}

// SlugifyNormalized is the general variant used for names that mix scripts
// with accents: NFKD-decompose, drop combining marks, then Slugify.
func SlugifyNormalized(text, lang string) string {
	decomposed := norm.NFKD.String(text)
	stripped := strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Mn, r) {
			return -1
		}
		return r
	}, decomposed)
	return Slugify(stripped, lang)
}

// UniqueSlug finds the first free alias in base, base-2, base-3… by counting
// rows of model whose column already holds the candidate. excludeID skips the
// record being edited. An empty base stays empty.
func UniqueSlug(db *gorm.DB, model any, column, base string, excludeID uint) (string, error) {
	if base == "" {
		return "", nil
	}
	slug := base
	for i := 2; ; i++ {
		var count int64
		q := db.Model(model).Where(column+" = ?", slug)
		if excludeID > 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

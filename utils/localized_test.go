package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalizedTextMerge(t *testing.T) {
	stored := LocalizedText{LangEN: "English title", LangBN: "বাংলা শিরোনাম"}

	t.Run("bn edit leaves en untouched", func(t *testing.T) {
		merged := stored.Merge(LocalizedText{LangBN: "নতুন শিরোনাম"})
		assert.Equal(t, "English title", merged.Get(LangEN))
		assert.Equal(t, "নতুন শিরোনাম", merged.Get(LangBN))
	})

	t.Run("absent key keeps stored value", func(t *testing.T) {
		merged := stored.Merge(LocalizedText{})
		assert.Equal(t, stored, merged)
	})

	t.Run("present empty value overwrites", func(t *testing.T) {
		merged := stored.Merge(LocalizedText{LangEN: ""})
		assert.Equal(t, "", merged.Get(LangEN))
		assert.Equal(t, "বাংলা শিরোনাম", merged.Get(LangBN))
	})

	t.Run("input maps are not mutated", func(t *testing.T) {
		overlay := LocalizedText{LangEN: "changed"}
		_ = stored.Merge(overlay)
		assert.Equal(t, "English title", stored.Get(LangEN))
		assert.Equal(t, LocalizedText{LangEN: "changed"}, overlay)
	})
}

func TestLocalizedTextPreferredLang(t *testing.T) {
	assert.Equal(t, LangEN, LocalizedText{LangEN: "hi"}.PreferredLang())
	assert.Equal(t, LangEN, LocalizedText{LangEN: "hi", LangBN: "ওহে"}.PreferredLang())
	assert.Equal(t, LangBN, LocalizedText{LangBN: "ওহে"}.PreferredLang())
	assert.Equal(t, LangEN, LocalizedText{}.PreferredLang())
	// Empty string counts as "no content", not content.
	assert.Equal(t, LangBN, LocalizedText{LangEN: "", LangBN: "ওহে"}.PreferredLang())
}

func TestLocalizedTextRoundTrip(t *testing.T) {
	orig := LocalizedText{LangEN: "hello", LangBN: "ওহে"}
	parsed := ParseLocalizedText(JSONFrom(orig))
	assert.Equal(t, orig, parsed)

	assert.Equal(t, LocalizedText{}, ParseLocalizedText(nil))
	assert.Equal(t, LocalizedText{}, ParseLocalizedText(JSONFrom(nil)))
}

func TestLocalizedListMerge(t *testing.T) {
	stored := LocalizedList{LangEN: {"go", "web"}}
	merged := stored.Merge(LocalizedList{LangBN: {"গো"}})
	assert.Equal(t, []string{"go", "web"}, merged.Get(LangEN))
	assert.Equal(t, []string{"গো"}, merged.Get(LangBN))
}

func TestNormalizeLang(t *testing.T) {
	assert.Equal(t, LangEN, NormalizeLang("en"))
	assert.Equal(t, LangBN, NormalizeLang("bn"))
	assert.Equal(t, LangEN, NormalizeLang(""))
	assert.Equal(t, LangEN, NormalizeLang("fr"))
}

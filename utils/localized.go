package utils

import (
	"encoding/json"

	"gorm.io/datatypes"
)

const (
	LangEN = "en"
	LangBN = "bn"
)

// NormalizeLang clamps an arbitrary language value to a supported code.
func NormalizeLang(lang string) string {
	switch lang {
	case LangEN, LangBN:
		return lang
	default:
		return LangEN
	}
}

// LocalizedText maps a language code to the content for that language.
// A missing key means "no content for that language" — callers must not
// backfill empty strings into storage.
type LocalizedText map[string]string

func (t LocalizedText) Get(lang string) string {
	if t == nil {
		return ""
	}
	return t[lang]
}

func (t LocalizedText) Set(lang, value string) LocalizedText {
	if t == nil {
		t = LocalizedText{}
	}
	t[lang] = value
	return t
}

// Has reports whether the language carries non-empty content.
func (t LocalizedText) Has(lang string) bool {
	return t.Get(lang) != ""
}

func (t LocalizedText) IsEmpty() bool {
	for _, v := range t {
		if v != "" {
			return false
		}
	}
	return true
}

// Merge overlays the present keys of overlay onto a copy of t. A key absent
// from overlay keeps t's value; a key present in overlay wins even when its
// value is empty. Neither receiver nor argument is mutated.
func (t LocalizedText) Merge(overlay LocalizedText) LocalizedText {
	out := LocalizedText{}
	for k, v := range t {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// PreferredLang picks the language a record should render in by default:
// Bangla when it is the only language with content, English otherwise.
func (t LocalizedText) PreferredLang() string {
	if t.Has(LangBN) && !t.Has(LangEN) {
		return LangBN
	}
	return LangEN
}

// LocalizedList is the list-valued counterpart of LocalizedText, used for
// per-language keyword lists.
type LocalizedList map[string][]string

func (l LocalizedList) Get(lang string) []string {
	if l == nil {
		return nil
	}
	return l[lang]
}

func (l LocalizedList) Merge(overlay LocalizedList) LocalizedList {
	out := LocalizedList{}
	for k, v := range l {
		out[k] = v
	}
	for k, v := range overlay {
		out[k] = v
	}
	return out
}

// LocalizedInt holds per-language integer values (read time in minutes).
type LocalizedInt map[string]int

func (i LocalizedInt) Get(lang string) int {
	if i == nil {
		return 0
	}
	return i[lang]
}

// JSONFrom marshals v into a jsonb column value.
func JSONFrom(v any) datatypes.JSON {
	b, _ := json.Marshal(v)
	return datatypes.JSON(b)
}

func ParseLocalizedText(j datatypes.JSON) LocalizedText {
	if len(j) == 0 {
		return LocalizedText{}
	}
	var out LocalizedText
	if err := json.Unmarshal(j, &out); err != nil || out == nil {
		return LocalizedText{}
	}
	return out
}

func ParseLocalizedList(j datatypes.JSON) LocalizedList {
	if len(j) == 0 {
		return LocalizedList{}
	}
	var out LocalizedList
	if err := json.Unmarshal(j, &out); err != nil || out == nil {
		return LocalizedList{}
	}
	return out
}

func ParseLocalizedInt(j datatypes.JSON) LocalizedInt {
	if len(j) == 0 {
		return LocalizedInt{}
	}
	var out LocalizedInt
	if err := json.Unmarshal(j, &out); err != nil || out == nil {
		return LocalizedInt{}
	}
	return out
}

func ParseStringSlice(j datatypes.JSON) []string {
	if len(j) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(j, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

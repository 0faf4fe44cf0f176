package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Hello world", PlainText("<p>Hello <strong>world</strong></p>"))
	assert.Equal(t, "one two", PlainText("<div>one</div>\n<div>  two  </div>"))
	assert.Equal(t, "plain text", PlainText("plain text"))
	assert.Equal(t, "", PlainText(""))
}

func TestEstimateReadTime(t *testing.T) {
	assert.Equal(t, 0, EstimateReadTime(""))
	assert.Equal(t, 1, EstimateReadTime("<p>short post</p>"))
	long := "<p>" + strings.Repeat("word ", 450) + "</p>"
	assert.Equal(t, 3, EstimateReadTime(long))
}

func TestExcerptFrom(t *testing.T) {
	assert.Equal(t, "short", ExcerptFrom("<p>short</p>", 100))
	out := ExcerptFrom("<p>"+strings.Repeat("word ", 100)+"</p>", 50)
	assert.True(t, strings.HasSuffix(out, "…"))
	assert.LessOrEqual(t, len([]rune(out)), 51)
}

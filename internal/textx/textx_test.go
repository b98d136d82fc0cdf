package textx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripTags(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain text untouched", "just words", "just words"},
		{"simple tags", "<p>hello</p>", "hello"},
		{"nested markup", "<div><b>bold</b> and <i>italic</i></div>", "bold and italic"},
		{"attributes", `<a href="https://example.com">link</a>`, "link"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripTags(tt.content))
		})
	}
}

func TestExcerpt(t *testing.T) {
	long := "<p>" + strings.Repeat("a", 300) + "</p>"
	got := Excerpt(long, 200)
	assert.Len(t, got, 203)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.NotContains(t, got, "<p>")

	// short content keeps everything, the ellipsis is unconditional
	assert.Equal(t, "hi...", Excerpt("<b>hi</b>", 200))
}

func TestReadTime(t *testing.T) {
	assert.Equal(t, 0, ReadTime(""))
	assert.Equal(t, 1, ReadTime("one two three"))
	assert.Equal(t, 1, ReadTime(strings.Repeat("word ", 200)))
	assert.Equal(t, 2, ReadTime(strings.Repeat("word ", 201)))
	assert.Equal(t, 3, ReadTime("<p>"+strings.Repeat("word ", 450)+"</p>"))
}

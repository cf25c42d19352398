package usecase

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayoutMetrics(t *testing.T) {
	l := DefaultLayout()
	assert.Equal(t, 70, l.Columns(ContentWidthMM))
	assert.Equal(t, 51, l.LinesPerPage())
	assert.Equal(t, 1, l.Columns(0.1))
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"short line kept", "hello world", 20, []string{"hello world"}},
		{"greedy packing", "aa bb cc dd", 5, []string{"aa bb", "cc dd"}},
		{"newlines kept", "a\n\nb", 10, []string{"a", "", "b"}},
		{"long word broken", "abcdefgh", 3, []string{"abc", "def", "gh"}},
		{"crlf", "a\r\nb", 10, []string{"a", "b"}},
		{"indent kept when wrapping", "  - Shipped search across three regions", 20, []string{"  - Shipped search", "across three regions"}},
		{"indent dropped for word that only fits alone", "  abcdefghij xy", 10, []string{"abcdefghij", "xy"}},
		{"empty", "", 10, []string{""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.text, tt.width))
		})
	}
}

func TestWrap_WideRunes(t *testing.T) {
	lines := Wrap("日本語のテキスト", 6)
	for _, l := range lines {
		assert.LessOrEqual(t, runewidth.StringWidth(l), 6)
	}
	assert.Equal(t, "日本語のテキスト", strings.Join(lines, ""))
}

func TestPaginate(t *testing.T) {
	lines := make([]string, 7)
	pages := Paginate(lines, 3)
	require.Len(t, pages, 3)
	assert.Equal(t, 1, pages[0].Number)
	assert.Len(t, pages[0].Lines, 3)
	assert.Len(t, pages[2].Lines, 1)
	assert.Equal(t, 3, pages[2].Number)

	empty := Paginate(nil, 3)
	require.Len(t, empty, 1)
	assert.Empty(t, empty[0].Lines)
}

func TestMonospaceLayout_Layout(t *testing.T) {
	l := DefaultLayout()
	text := strings.Repeat("word ", 2000)
	pages, err := l.Layout(text, ContentWidthMM)
	require.NoError(t, err)
	require.Greater(t, len(pages), 1)
	for _, p := range pages {
		assert.LessOrEqual(t, len(p.Lines), l.LinesPerPage())
		for _, line := range p.Lines {
			assert.LessOrEqual(t, runewidth.StringWidth(line), 70)
		}
	}

	_, err = l.Layout("x", 0)
	assert.Error(t, err)
	_, err = MonospaceLayout{}.Layout("x", ContentWidthMM)
	assert.Error(t, err)
}

package usecase

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Page is one laid-out page of export text.
type Page struct {
	Number int      `json:"number"`
	Lines  []string `json:"lines"`
}

// PageLayout wraps text to a content width (millimetres) and splits it into
// pages.
type PageLayout interface {
	Layout(text string, contentWidthMM float64) ([]Page, error)
}

const mmPerPt = 25.4 / 72

// MonospaceLayout lays text out in a fixed-pitch font on a portrait page.
type MonospaceLayout struct {
	FontSizePt     float64
	LineHeightMM   float64
	PageHeightMM   float64
	MarginTopMM    float64
	MarginBottomMM float64
}

// DefaultLayout is A4 with 20 mm top and bottom margins and 12 pt text.
func DefaultLayout() MonospaceLayout {
	return MonospaceLayout{
		FontSizePt:     12,
		LineHeightMM:   5,
		PageHeightMM:   297,
		MarginTopMM:    20,
		MarginBottomMM: 20,
	}
}

// Columns is the number of character cells that fit in widthMM.
func (l MonospaceLayout) Columns(widthMM float64) int {
	cell := 0.6 * l.FontSizePt * mmPerPt
	n := int(widthMM / cell)
	if n < 1 {
		n = 1
	}
	return n
}

// LinesPerPage is the number of lines that fit between the margins.
func (l MonospaceLayout) LinesPerPage() int {
	n := int((l.PageHeightMM - l.MarginTopMM - l.MarginBottomMM) / l.LineHeightMM)
	if n < 1 {
		n = 1
	}
	return n
}

func (l MonospaceLayout) Layout(text string, contentWidthMM float64) ([]Page, error) {
	if contentWidthMM <= 0 {
		return nil, fmt.Errorf("content width must be positive, got %v", contentWidthMM)
	}
	if l.FontSizePt <= 0 || l.LineHeightMM <= 0 {
		return nil, fmt.Errorf("invalid layout metrics: font %vpt, line height %vmm", l.FontSizePt, l.LineHeightMM)
	}
	return Paginate(Wrap(text, l.Columns(contentWidthMM)), l.LinesPerPage()), nil
}

// Paginate splits lines into pages of at most perPage lines. There is
// always at least one page.
func Paginate(lines []string, perPage int) []Page {
	pages := []Page{}
	for start := 0; start < len(lines); start += perPage {
		end := start + perPage
		if end > len(lines) {
			end = len(lines)
		}
		pages = append(pages, Page{Number: len(pages) + 1, Lines: lines[start:end]})
	}
	if len(pages) == 0 {
		pages = append(pages, Page{Number: 1, Lines: []string{}})
	}
	return pages
}

// Wrap breaks text into lines no wider than width display columns. Explicit
// newlines are kept, words are packed greedily, and words wider than a line
// are hard-broken.
func Wrap(text string, width int) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", "    ")
	out := []string{}
	for _, para := range strings.Split(text, "\n") {
		out = append(out, wrapLine(para, width)...)
	}
	return out
}

func wrapLine(line string, width int) []string {
	line = strings.TrimRight(line, " ")
	if runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	// leading indent stays on the first segment
	indent := line[:len(line)-len(strings.TrimLeft(line, " "))]
	if runewidth.StringWidth(indent) >= width {
		indent = ""
	}

	out := []string{}
	cur, hasWord := indent, false
	flush := func() {
		if cur != "" {
			out = append(out, cur)
		}
		cur, hasWord = "", false
	}
	for _, w := range strings.Fields(line) {
		if hasWord {
			if runewidth.StringWidth(cur)+1+runewidth.StringWidth(w) <= width {
				cur += " " + w
				continue
			}
			flush()
		}
		// cur is empty or holds only the indent here
		for runewidth.StringWidth(cur)+runewidth.StringWidth(w) > width {
			if cur != "" && runewidth.StringWidth(w) <= width {
				cur = ""
				break
			}
			var head string
			head, w = splitColumns(w, width-runewidth.StringWidth(cur))
			out = append(out, cur+head)
			cur = ""
		}
		cur += w
		hasWord = cur != ""
	}
	flush()
	return out
}

// splitColumns returns the longest prefix of s that fits in width columns
// (at least one rune) and the remainder.
func splitColumns(s string, width int) (string, string) {
	used := 0
	for i, r := range s {
		rw := runewidth.RuneWidth(r)
		if used+rw > width && i > 0 {
			return s[:i], s[i:]
		}
		used += rw
	}
	return s, ""
}

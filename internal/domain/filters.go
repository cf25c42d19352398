package domain

import "strings"

// Axis is one of the stylistic filter dimensions.
type Axis string

const (
	AxisTone      Axis = "tone"
	AxisFocus     Axis = "focus"
	AxisHighlight Axis = "highlight"
)

// Axes lists the filter axes in narrative order.
var Axes = []Axis{AxisTone, AxisFocus, AxisHighlight}

// Tone, Focus and Highlight are catalog identifiers for their axis. Values
// coming from outside the process go through ParseTone, ParseFocus and
// ParseHighlight so an unknown id never reaches a FilterSelection.
type (
	Tone      string
	Focus     string
	Highlight string
)

const (
	ToneEnergetic Tone = "energetic"
	ToneElegant   Tone = "elegant"
	ToneConfident Tone = "confident"

	FocusProduct     Focus = "product"
	FocusEngineering Focus = "engineering"
	FocusLeadership  Focus = "leadership"

	HighlightSkills  Highlight = "skills"
	HighlightImpact  Highlight = "impact"
	HighlightPersona Highlight = "persona"
)

// Option is a catalog entry.
type Option struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var (
	ToneOptions = []Option{
		{ID: string(ToneEnergetic), Label: "Dynamic", Description: "Startup energy with uplifting language"},
		{ID: string(ToneElegant), Label: "Elegant", Description: "Premium tone tailored to luxury brands"},
		{ID: string(ToneConfident), Label: "Confident", Description: "Crisp corporate voice with clarity"},
	}
	FocusOptions = []Option{
		{ID: string(FocusProduct), Label: "Product Design", Description: "Highlights UI/UX, experience, and user impact"},
		{ID: string(FocusEngineering), Label: "Engineering", Description: "Emphasises technical depth and success metrics"},
		{ID: string(FocusLeadership), Label: "Leadership", Description: "Spotlights team building and growth narratives"},
	}
	HighlightOptions = []Option{
		{ID: string(HighlightSkills), Label: "Skill Boost", Description: "Spotlight your signature skill set"},
		{ID: string(HighlightImpact), Label: "Impact Story", Description: "Tell measurable achievement stories"},
		{ID: string(HighlightPersona), Label: "Creative Persona", Description: "Project your personal brand tone"},
	}
)

// Catalog returns the ordered options of an axis.
func Catalog(axis Axis) []Option {
	switch axis {
	case AxisTone:
		return ToneOptions
	case AxisFocus:
		return FocusOptions
	case AxisHighlight:
		return HighlightOptions
	}
	return nil
}

func lookup(axis Axis, id string) (Option, bool) {
	for _, o := range Catalog(axis) {
		if o.ID == id {
			return o, true
		}
	}
	return Option{}, false
}

func (t Tone) Option() (Option, bool)      { return lookup(AxisTone, string(t)) }
func (f Focus) Option() (Option, bool)     { return lookup(AxisFocus, string(f)) }
func (h Highlight) Option() (Option, bool) { return lookup(AxisHighlight, string(h)) }

func ParseTone(id string) (Tone, error) {
	if _, ok := lookup(AxisTone, id); !ok {
		return "", &UnknownOptionError{Axis: AxisTone, ID: id}
	}
	return Tone(id), nil
}

func ParseFocus(id string) (Focus, error) {
	if _, ok := lookup(AxisFocus, id); !ok {
		return "", &UnknownOptionError{Axis: AxisFocus, ID: id}
	}
	return Focus(id), nil
}

func ParseHighlight(id string) (Highlight, error) {
	if _, ok := lookup(AxisHighlight, id); !ok {
		return "", &UnknownOptionError{Axis: AxisHighlight, ID: id}
	}
	return Highlight(id), nil
}

// FilterSelection holds exactly one choice per axis.
type FilterSelection struct {
	Tone      Tone      `json:"tone" yaml:"tone"`
	Focus     Focus     `json:"focus" yaml:"focus"`
	Highlight Highlight `json:"highlight" yaml:"highlight"`
}

// DefaultFilters returns the initial selection: first tone, first focus,
// second highlight.
func DefaultFilters() FilterSelection {
	return FilterSelection{
		Tone:      Tone(ToneOptions[0].ID),
		Focus:     Focus(FocusOptions[0].ID),
		Highlight: Highlight(HighlightOptions[1].ID),
	}
}

// Select sets the choice for one axis from a raw id. The selection is left
// unchanged and an *UnknownOptionError returned when id is not in the
// axis catalog.
func (f *FilterSelection) Select(axis Axis, id string) error {
	switch axis {
	case AxisTone:
		t, err := ParseTone(id)
		if err != nil {
			return err
		}
		f.Tone = t
	case AxisFocus:
		v, err := ParseFocus(id)
		if err != nil {
			return err
		}
		f.Focus = v
	case AxisHighlight:
		h, err := ParseHighlight(id)
		if err != nil {
			return err
		}
		f.Highlight = h
	default:
		return &UnknownOptionError{Axis: axis, ID: id}
	}
	return nil
}

// Selected returns the id chosen on an axis.
func (f FilterSelection) Selected(axis Axis) string {
	switch axis {
	case AxisTone:
		return string(f.Tone)
	case AxisFocus:
		return string(f.Focus)
	case AxisHighlight:
		return string(f.Highlight)
	}
	return ""
}

// Label returns the display label of the choice on an axis, or "" when the
// stored id is not in the catalog.
func (f FilterSelection) Label(axis Axis) string {
	if o, ok := lookup(axis, f.Selected(axis)); ok {
		return o.Label
	}
	return ""
}

// LabelPlaceholder stands in for a label that cannot be resolved.
const LabelPlaceholder = "-"

// NarrativeSeparator joins the per-axis parts of Describe.
const NarrativeSeparator = " • "

// Describe renders the selection as a single line, e.g.
// "Tone: Dynamic • Focus: Product Design • Highlight: Impact Story".
func Describe(f FilterSelection) string {
	parts := make([]string, 0, len(Axes))
	for _, axis := range Axes {
		label := f.Label(axis)
		if label == "" {
			label = LabelPlaceholder
		}
		parts = append(parts, axisTitle(axis)+": "+label)
	}
	return strings.Join(parts, NarrativeSeparator)
}

func axisTitle(axis Axis) string {
	switch axis {
	case AxisTone:
		return "Tone"
	case AxisFocus:
		return "Focus"
	case AxisHighlight:
		return "Highlight"
	}
	return string(axis)
}

package domain

import "strings"

// ResumeDraft is the user's in-progress resume content. Every field is free
// text and may be empty; emptiness is only checked when a draft is submitted
// for generation.
type ResumeDraft struct {
	FullName   string `json:"fullName" yaml:"fullName"`
	Headline   string `json:"headline" yaml:"headline"`
	Summary    string `json:"summary" yaml:"summary"`
	Skills     string `json:"skills" yaml:"skills"`         // comma separated
	Experience string `json:"experience" yaml:"experience"` // one entry per line
	Education  string `json:"education" yaml:"education"`   // one entry per line
}

// Field names a single ResumeDraft field.
type Field string

const (
	FieldFullName   Field = "fullName"
	FieldHeadline   Field = "headline"
	FieldSummary    Field = "summary"
	FieldSkills     Field = "skills"
	FieldExperience Field = "experience"
	FieldEducation  Field = "education"
)

// Fields lists the draft fields in their display order.
var Fields = []Field{FieldFullName, FieldHeadline, FieldSummary, FieldSkills, FieldExperience, FieldEducation}

// ParseField returns the Field with the given name.
func ParseField(name string) (Field, bool) {
	for _, f := range Fields {
		if string(f) == name {
			return f, true
		}
	}
	return "", false
}

// Set replaces the value of a single field. Unknown fields are ignored.
func (d *ResumeDraft) Set(f Field, value string) {
	switch f {
	case FieldFullName:
		d.FullName = value
	case FieldHeadline:
		d.Headline = value
	case FieldSummary:
		d.Summary = value
	case FieldSkills:
		d.Skills = value
	case FieldExperience:
		d.Experience = value
	case FieldEducation:
		d.Education = value
	}
}

// Get returns the value of a single field.
func (d ResumeDraft) Get(f Field) string {
	switch f {
	case FieldFullName:
		return d.FullName
	case FieldHeadline:
		return d.Headline
	case FieldSummary:
		return d.Summary
	case FieldSkills:
		return d.Skills
	case FieldExperience:
		return d.Experience
	case FieldEducation:
		return d.Education
	}
	return ""
}

// IsBlank reports whether every field is empty or whitespace only.
func (d ResumeDraft) IsBlank() bool {
	for _, f := range Fields {
		if !Blank(d.Get(f)) {
			return false
		}
	}
	return true
}

// Blank reports whether s is empty or whitespace only.
func Blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// SkillsList splits the skills field on commas, trims each token and drops
// empty ones. Order is preserved.
func SkillsList(d ResumeDraft) []string {
	return splitTrim(d.Skills, ",")
}

// Lines splits newline-delimited free text into trimmed, non-empty lines.
func Lines(s string) []string {
	return splitTrim(s, "\n")
}

func splitTrim(s, sep string) []string {
	out := []string{}
	for _, part := range strings.Split(s, sep) {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}

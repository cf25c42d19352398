package formatters

import "cv-amplify/internal/domain"

// Labels are the section headings used in the narrative, the preview and the
// plain-text export.
type Labels struct {
	FullName   string `json:"full_name" yaml:"full_name"`
	Headline   string `json:"headline" yaml:"headline"`
	Summary    string `json:"summary" yaml:"summary"`
	Skills     string `json:"skills" yaml:"skills"`
	Experience string `json:"experience" yaml:"experience"`
	Education  string `json:"education" yaml:"education"`
}

func DefaultLabels() Labels {
	return Labels{
		FullName:   "Full Name",
		Headline:   "Headline",
		Summary:    "Summary",
		Skills:     "Skills",
		Experience: "Experience",
		Education:  "Education",
	}
}

// For returns the heading of a draft field.
func (l Labels) For(f domain.Field) string {
	switch f {
	case domain.FieldFullName:
		return l.FullName
	case domain.FieldHeadline:
		return l.Headline
	case domain.FieldSummary:
		return l.Summary
	case domain.FieldSkills:
		return l.Skills
	case domain.FieldExperience:
		return l.Experience
	case domain.FieldEducation:
		return l.Education
	}
	return string(f)
}

package formatters

import (
	"context"

	"cv-amplify/internal/domain"
)

// ExperienceFormatter and EducationFormatter share the line-list rules: the
// narrative keeps the user's text as typed, the suggestion keeps trimmed
// non-empty lines.
type ExperienceFormatter struct {
	labels Labels
}

func NewExperienceFormatter(labels Labels) *ExperienceFormatter {
	return &ExperienceFormatter{labels: labels}
}

func (ef *ExperienceFormatter) Format(_ context.Context, d domain.ResumeDraft, s *domain.StructuredSuggestion) (string, error) {
	s.Experience = linesOr(d.Experience, ExperienceDefault)
	return block(ef.labels.Experience, orPlaceholder(d.Experience, PlaceholderExperience)), nil
}

type EducationFormatter struct {
	labels Labels
}

func NewEducationFormatter(labels Labels) *EducationFormatter {
	return &EducationFormatter{labels: labels}
}

func (ef *EducationFormatter) Format(_ context.Context, d domain.ResumeDraft, s *domain.StructuredSuggestion) (string, error) {
	s.Education = linesOr(d.Education, EducationDefault)
	return block(ef.labels.Education, orPlaceholder(d.Education, PlaceholderEducation)), nil
}

func linesOr(text, fallback string) []string {
	if lines := domain.Lines(text); len(lines) > 0 {
		return lines
	}
	return []string{fallback}
}

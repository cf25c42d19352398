// Package formatters builds the templated sections of an improved resume.
// Each formatter owns one section: it writes its part of the structured
// suggestion and returns the narrative block for that section.
package formatters

import (
	"context"
	"strings"

	"cv-amplify/internal/domain"
)

// Formatter produces one section of a generation result.
type Formatter interface {
	Format(ctx context.Context, draft domain.ResumeDraft, s *domain.StructuredSuggestion) (string, error)
}

// Default returns the section formatters in narrative order.
func Default(labels Labels) []Formatter {
	return []Formatter{
		NewProfileFormatter(labels),
		NewSummaryFormatter(labels),
		NewSkillsFormatter(labels),
		NewExperienceFormatter(labels),
		NewEducationFormatter(labels),
	}
}

// orPlaceholder returns the trimmed value, or the placeholder when blank.
func orPlaceholder(value, placeholder string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return placeholder
}

func block(heading, body string) string {
	return heading + ":\n" + body
}

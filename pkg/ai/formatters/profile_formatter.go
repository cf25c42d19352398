package formatters

import (
	"context"

	"cv-amplify/internal/domain"
)

// ProfileFormatter renders the name/headline header and the suggestion title.
type ProfileFormatter struct {
	labels Labels
}

func NewProfileFormatter(labels Labels) *ProfileFormatter {
	return &ProfileFormatter{labels: labels}
}

func (pf *ProfileFormatter) Format(_ context.Context, d domain.ResumeDraft, s *domain.StructuredSuggestion) (string, error) {
	name := orPlaceholder(d.FullName, PlaceholderFullName)
	s.Title = name + TitleSeparator + orPlaceholder(d.Headline, TitleRole)

	return pf.labels.FullName + ": " + name + "\n" +
		pf.labels.Headline + ": " + orPlaceholder(d.Headline, PlaceholderHeadline), nil
}

package formatters

import (
	"context"
	"strings"

	"cv-amplify/internal/domain"
)

type SummaryFormatter struct {
	labels Labels
}

func NewSummaryFormatter(labels Labels) *SummaryFormatter {
	return &SummaryFormatter{labels: labels}
}

func (sf *SummaryFormatter) Format(_ context.Context, d domain.ResumeDraft, s *domain.StructuredSuggestion) (string, error) {
	summary := strings.TrimSpace(d.Summary)
	if summary == "" {
		s.Summary = SummaryFallback
		return block(sf.labels.Summary, PlaceholderSummary), nil
	}
	s.Summary = RefinedPrefix + summary
	return block(sf.labels.Summary, "Refined summary: "+summary), nil
}

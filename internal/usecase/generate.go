package usecase

import (
	"context"
	"strings"

	"cv-amplify/internal/domain"
	"cv-amplify/pkg/ai/formatters"
)

// Generator turns a draft and filter selection into an improved resume.
// The template implementation below is deterministic; a model-backed or
// remote implementation can replace it without changing callers.
type Generator interface {
	Generate(ctx context.Context, draft domain.ResumeDraft, filters domain.FilterSelection) (*domain.GenerationResult, error)
}

const (
	MockBanner = "✅ TEMPLATE MODE — MOCK AI RESPONSE"
	Disclaimer = "Note: This response was generated from a template, not by a language model. " +
		"Connect a model backend to receive richer, more natural language."
)

// TemplateGenerator fills a fixed template from the draft. Filters do not
// influence the text.
type TemplateGenerator struct {
	formatters []formatters.Formatter
}

func NewTemplateGenerator() *TemplateGenerator {
	return &TemplateGenerator{formatters: formatters.Default(formatters.DefaultLabels())}
}

// NewTemplateGeneratorWith builds a generator from explicit section formatters.
func NewTemplateGeneratorWith(fs ...formatters.Formatter) *TemplateGenerator {
	return &TemplateGenerator{formatters: fs}
}

func (g *TemplateGenerator) Generate(ctx context.Context, draft domain.ResumeDraft, _ domain.FilterSelection) (*domain.GenerationResult, error) {
	if draft.IsBlank() {
		return nil, &domain.EmptyDraftError{}
	}

	s := &domain.StructuredSuggestion{}
	blocks := make([]string, 0, len(g.formatters))
	for _, f := range g.formatters {
		b, err := f.Format(ctx, draft, s)
		if err != nil {
			return nil, &domain.InternalError{Message: "section formatting failed", Cause: err}
		}
		blocks = append(blocks, b)
	}

	var sb strings.Builder
	sb.WriteString(MockBanner)
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(blocks, "\n\n"))
	sb.WriteString("\n\n---\n\n")
	sb.WriteString(Disclaimer)
	sb.WriteString("\n")

	return &domain.GenerationResult{Narrative: sb.String(), Suggestion: s}, nil
}

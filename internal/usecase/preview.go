package usecase

import (
	"strings"

	"cv-amplify/internal/domain"
	"cv-amplify/pkg/ai/formatters"
)

// Preview is the display-ready projection of the studio state. Blank fields
// carry the same placeholders as the generated narrative.
type Preview struct {
	FullName          string
	Headline          string
	FilterNarrative   string
	Summary           string
	Skills            []string
	SkillsPlaceholder bool
	Experience        string
	Education         string

	// Set only when a generation result is available.
	Narrative  string
	Suggestion *domain.StructuredSuggestion
}

// RenderPreview is a pure function of its inputs.
func RenderPreview(draft domain.ResumeDraft, filters domain.FilterSelection, result *domain.GenerationResult) Preview {
	p := Preview{
		FullName:        orDefault(draft.FullName, formatters.PlaceholderFullName),
		Headline:        orDefault(draft.Headline, formatters.PlaceholderHeadline),
		FilterNarrative: domain.Describe(filters),
		Summary:         orDefault(draft.Summary, formatters.PlaceholderSummary),
		Experience:      orDefault(draft.Experience, formatters.PlaceholderExperience),
		Education:       orDefault(draft.Education, formatters.PlaceholderEducation),
		Skills:          domain.SkillsList(draft),
	}
	if len(p.Skills) == 0 {
		p.Skills = domain.SkillsList(domain.ResumeDraft{Skills: formatters.PlaceholderSkills})
		p.SkillsPlaceholder = true
	}
	if result != nil {
		p.Narrative = result.Narrative
		p.Suggestion = result.Suggestion
	}
	return p
}

// Text renders the preview as plain text for terminals.
func (p Preview) Text(labels formatters.Labels) string {
	var sb strings.Builder
	sb.WriteString(p.FullName + "\n" + p.Headline + "\n\n")
	sb.WriteString("Selected configuration: " + p.FilterNarrative + "\n\n")
	sb.WriteString(labels.Summary + ":\n" + p.Summary + "\n\n")
	skills := strings.Join(p.Skills, " · ")
	if p.SkillsPlaceholder {
		skills = "Example: " + strings.Join(p.Skills, ", ")
	}
	sb.WriteString(labels.Skills + ":\n" + skills + "\n\n")
	sb.WriteString(labels.Experience + ":\n" + p.Experience + "\n\n")
	sb.WriteString(labels.Education + ":\n" + p.Education + "\n")
	return sb.String()
}

func orDefault(v, placeholder string) string {
	if domain.Blank(v) {
		return placeholder
	}
	return v
}

package formatters

import (
	"context"
	"strings"

	"cv-amplify/internal/domain"
)

type SkillsFormatter struct {
	labels Labels
}

func NewSkillsFormatter(labels Labels) *SkillsFormatter {
	return &SkillsFormatter{labels: labels}
}

func (kf *SkillsFormatter) Format(_ context.Context, d domain.ResumeDraft, s *domain.StructuredSuggestion) (string, error) {
	skills := domain.SkillsList(d)
	if len(skills) == 0 {
		s.Skills = DefaultSkills()
		return block(kf.labels.Skills, PlaceholderSkills), nil
	}
	s.Skills = skills
	return block(kf.labels.Skills, strings.Join(skills, ", ")), nil
}

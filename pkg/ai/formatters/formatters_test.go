package formatters

import (
	"context"
	"testing"

	"cv-amplify/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func format(t *testing.T, f Formatter, d domain.ResumeDraft) (string, domain.StructuredSuggestion) {
	t.Helper()
	var s domain.StructuredSuggestion
	out, err := f.Format(context.Background(), d, &s)
	require.NoError(t, err)
	return out, s
}

func TestProfileFormatter(t *testing.T) {
	pf := NewProfileFormatter(DefaultLabels())

	out, s := format(t, pf, domain.ResumeDraft{FullName: "Jordan Lee"})
	assert.Equal(t, "Jordan Lee — Role", s.Title)
	assert.Equal(t, "Full Name: Jordan Lee\nHeadline: Role / Title", out)

	out, s = format(t, pf, domain.ResumeDraft{Headline: "Staff Engineer"})
	assert.Equal(t, "Full name — Staff Engineer", s.Title)
	assert.Contains(t, out, "Full Name: Full name")
}

func TestSummaryFormatter(t *testing.T) {
	sf := NewSummaryFormatter(DefaultLabels())

	out, s := format(t, sf, domain.ResumeDraft{Summary: " Builds calm systems. "})
	assert.Equal(t, "Refined: Builds calm systems.", s.Summary)
	assert.Equal(t, "Summary:\nRefined summary: Builds calm systems.", out)

	out, s = format(t, sf, domain.ResumeDraft{Summary: "   "})
	assert.Equal(t, SummaryFallback, s.Summary)
	assert.Contains(t, out, PlaceholderSummary)
}

func TestSkillsFormatter(t *testing.T) {
	kf := NewSkillsFormatter(DefaultLabels())

	out, s := format(t, kf, domain.ResumeDraft{Skills: "Go, , Postgres "})
	assert.Equal(t, []string{"Go", "Postgres"}, s.Skills)
	assert.Equal(t, "Skills:\nGo, Postgres", out)

	out, s = format(t, kf, domain.ResumeDraft{Skills: " , "})
	assert.Equal(t, DefaultSkills(), s.Skills)
	assert.Equal(t, "Skills:\n"+PlaceholderSkills, out)
}

func TestLineFormatters(t *testing.T) {
	ef := NewExperienceFormatter(DefaultLabels())
	out, s := format(t, ef, domain.ResumeDraft{Experience: "Acme • Engineer\n\n  - Shipped search  "})
	assert.Equal(t, []string{"Acme • Engineer", "- Shipped search"}, s.Experience)
	assert.Equal(t, "Experience:\nAcme • Engineer\n\n  - Shipped search", out)

	_, s = format(t, ef, domain.ResumeDraft{Experience: "\n \n"})
	assert.Equal(t, []string{ExperienceDefault}, s.Experience)

	uf := NewEducationFormatter(DefaultLabels())
	out, s = format(t, uf, domain.ResumeDraft{})
	assert.Equal(t, []string{EducationDefault}, s.Education)
	assert.Equal(t, "Education:\n"+PlaceholderEducation, out)
}

func TestLabelsFor(t *testing.T) {
	l := DefaultLabels()
	assert.Equal(t, "Full Name", l.For(domain.FieldFullName))
	assert.Equal(t, "Education", l.For(domain.FieldEducation))
	assert.Equal(t, "other", l.For(domain.Field("other")))
}

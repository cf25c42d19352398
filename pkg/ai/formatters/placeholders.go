package formatters

// Canned text substituted for blank draft fields. The live preview uses the
// same values so it stays consistent with the generated narrative.
const (
	PlaceholderFullName   = "Full name"
	PlaceholderHeadline   = "Role / Title"
	PlaceholderSummary    = "A short, powerful, and engaging professional intro."
	PlaceholderSkills     = "React, Next.js, JavaScript"
	PlaceholderExperience = "Company X • Role • 2022 - 2024\n- Responsibility 1\n- Achievement 1"
	PlaceholderEducation  = "High School / University • Major • Graduation Year"
)

// Structured suggestion fallbacks.
const (
	TitleRole         = "Role"
	TitleSeparator    = " — "
	RefinedPrefix     = "Refined: "
	SummaryFallback   = "Short, outcome-driven overview."
	ExperienceDefault = "Company X — Intern (2022)"
	EducationDefault  = "High School — General"
)

// DefaultSkills is used when the draft yields no skills.
func DefaultSkills() []string {
	return []string{"React", "Next.js", "Node.js"}
}

package domain

// StructuredSuggestion is the machine-readable decomposition of a
// generation result into resume sections.
type StructuredSuggestion struct {
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
}

// GenerationResult is produced fresh for every generation request and is
// never merged with a previous one.
type GenerationResult struct {
	Narrative  string                `json:"improved"`
	Suggestion *StructuredSuggestion `json:"structured"`
}

package model

import "cv-amplify/internal/domain"

// Wire shapes of the generation endpoint. Absent string fields decode to "".

type FiltersPayload struct {
	Tone      string `json:"tone,omitempty"`
	Focus     string `json:"focus,omitempty"`
	Highlight string `json:"highlight,omitempty"`
}

type ImproveRequest struct {
	FullName   string          `json:"fullName"`
	Headline   string          `json:"headline"`
	Summary    string          `json:"summary"`
	Skills     string          `json:"skills"`
	Experience string          `json:"experience"`
	Education  string          `json:"education"`
	Filters    *FiltersPayload `json:"filters,omitempty"`
}

type Structured struct {
	Title      string   `json:"title"`
	Summary    string   `json:"summary"`
	Skills     []string `json:"skills"`
	Experience []string `json:"experience"`
	Education  []string `json:"education"`
}

type ImproveResponse struct {
	Improved   string     `json:"improved"`
	Structured Structured `json:"structured"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// NewImproveRequest builds the request body for a draft and selection.
func NewImproveRequest(d domain.ResumeDraft, f domain.FilterSelection) ImproveRequest {
	return ImproveRequest{
		FullName:   d.FullName,
		Headline:   d.Headline,
		Summary:    d.Summary,
		Skills:     d.Skills,
		Experience: d.Experience,
		Education:  d.Education,
		Filters: &FiltersPayload{
			Tone:      string(f.Tone),
			Focus:     string(f.Focus),
			Highlight: string(f.Highlight),
		},
	}
}

func (r ImproveRequest) Draft() domain.ResumeDraft {
	return domain.ResumeDraft{
		FullName:   r.FullName,
		Headline:   r.Headline,
		Summary:    r.Summary,
		Skills:     r.Skills,
		Experience: r.Experience,
		Education:  r.Education,
	}
}

// Selection resolves the request filters, falling back to the defaults for
// any axis that was not sent. Unknown ids yield *domain.UnknownOptionError.
func (r ImproveRequest) Selection() (domain.FilterSelection, error) {
	sel := domain.DefaultFilters()
	if r.Filters == nil {
		return sel, nil
	}
	ids := map[domain.Axis]string{
		domain.AxisTone:      r.Filters.Tone,
		domain.AxisFocus:     r.Filters.Focus,
		domain.AxisHighlight: r.Filters.Highlight,
	}
	for _, axis := range domain.Axes {
		id := ids[axis]
		if id == "" {
			continue
		}
		if err := sel.Select(axis, id); err != nil {
			return sel, err
		}
	}
	return sel, nil
}

func NewImproveResponse(res *domain.GenerationResult) ImproveResponse {
	out := ImproveResponse{Improved: res.Narrative}
	if s := res.Suggestion; s != nil {
		out.Structured = Structured{
			Title:      s.Title,
			Summary:    s.Summary,
			Skills:     s.Skills,
			Experience: s.Experience,
			Education:  s.Education,
		}
	}
	return out
}

func (r ImproveResponse) Result() *domain.GenerationResult {
	return &domain.GenerationResult{
		Narrative: r.Improved,
		Suggestion: &domain.StructuredSuggestion{
			Title:      r.Structured.Title,
			Summary:    r.Structured.Summary,
			Skills:     r.Structured.Skills,
			Experience: r.Structured.Experience,
			Education:  r.Structured.Education,
		},
	}
}

package model

import (
	"errors"
	"testing"

	"cv-amplify/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeImproveRequest(t *testing.T) {
	req, err := DecodeImproveRequest([]byte(`{"fullName":"Jordan Lee","skills":"Go, SQL","filters":{"tone":"elegant"}}`))
	require.NoError(t, err)
	assert.Equal(t, domain.ResumeDraft{FullName: "Jordan Lee", Skills: "Go, SQL"}, req.Draft())

	sel, err := req.Selection()
	require.NoError(t, err)
	assert.Equal(t, domain.ToneElegant, sel.Tone)
	assert.Equal(t, domain.DefaultFilters().Focus, sel.Focus)
}

func TestDecodeImproveRequest_AbsentAndNullFieldsAreEmpty(t *testing.T) {
	req, err := DecodeImproveRequest([]byte(`{"headline":null}`))
	require.NoError(t, err)
	assert.Equal(t, domain.ResumeDraft{}, req.Draft())

	sel, err := req.Selection()
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultFilters(), sel)
}

func TestDecodeImproveRequest_Malformed(t *testing.T) {
	bodies := map[string]string{
		"not json":        `{"fullName":`,
		"array":           `["a"]`,
		"number field":    `{"fullName": 42}`,
		"filters as text": `{"filters": "elegant"}`,
		"empty body":      ``,
	}
	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, err := DecodeImproveRequest([]byte(body))
			var bad *domain.BadRequestError
			assert.True(t, errors.As(err, &bad), "got %v", err)
		})
	}
}

func TestSelection_UnknownFilter(t *testing.T) {
	req := ImproveRequest{Filters: &FiltersPayload{Focus: "sales"}}
	_, err := req.Selection()
	var unk *domain.UnknownOptionError
	assert.True(t, errors.As(err, &unk))
}

func TestSelection_FirstUnknownAxisIsReported(t *testing.T) {
	req := ImproveRequest{Filters: &FiltersPayload{Tone: "loud", Focus: "sales", Highlight: "glitter"}}
	for i := 0; i < 20; i++ {
		_, err := req.Selection()
		var unk *domain.UnknownOptionError
		require.True(t, errors.As(err, &unk))
		assert.Equal(t, domain.AxisTone, unk.Axis)
		assert.Equal(t, "loud", unk.ID)
	}
}

func TestValidateImproveResponse(t *testing.T) {
	ok := ImproveResponse{
		Improved: "text",
		Structured: Structured{
			Title:      "A — B",
			Summary:    "s",
			Skills:     []string{"Go"},
			Experience: []string{"x"},
			Education:  []string{"y"},
		},
	}
	assert.NoError(t, ValidateImproveResponse(ok))

	missing := ok
	missing.Structured.Skills = []string{}
	assert.Error(t, ValidateImproveResponse(missing))

	blank := ok
	blank.Improved = ""
	assert.Error(t, ValidateImproveResponse(blank))
}

func TestImproveRequestRoundTrip(t *testing.T) {
	d := domain.ResumeDraft{FullName: "A", Education: "B"}
	f := domain.FilterSelection{Tone: domain.ToneConfident, Focus: domain.FocusLeadership, Highlight: domain.HighlightSkills}
	req := NewImproveRequest(d, f)
	assert.Equal(t, d, req.Draft())
	sel, err := req.Selection()
	require.NoError(t, err)
	assert.Equal(t, f, sel)
}

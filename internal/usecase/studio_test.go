package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cv-amplify/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type genFunc func(ctx context.Context, d domain.ResumeDraft, f domain.FilterSelection) (*domain.GenerationResult, error)

func (g genFunc) Generate(ctx context.Context, d domain.ResumeDraft, f domain.FilterSelection) (*domain.GenerationResult, error) {
	return g(ctx, d, f)
}

func TestStudio_InitialState(t *testing.T) {
	s := NewStudio(NewTemplateGenerator())
	st := s.State()
	assert.Equal(t, PhaseIdle, st.Phase)
	assert.Equal(t, domain.DefaultFilters(), st.Filters)
	assert.Nil(t, st.Result())
	assert.Equal(t, "Tone: Dynamic • Focus: Product Design • Highlight: Impact Story", s.FilterNarrative())
}

func TestStudio_GenerateSuccess(t *testing.T) {
	s := NewStudio(NewTemplateGenerator())
	s.SetField(domain.FieldFullName, "Jordan Lee")
	s.SetField(domain.FieldSkills, "Go, , SQL")
	assert.Equal(t, []string{"Go", "SQL"}, s.SkillsList())

	require.NoError(t, s.Generate(context.Background()))
	st := s.State()
	assert.Equal(t, PhaseReady, st.Phase)
	assert.Empty(t, st.Error)
	require.NotNil(t, st.Suggestion)
	assert.Equal(t, "Jordan Lee — Role", st.Suggestion.Title)
	assert.Contains(t, s.Preview().Narrative, MockBanner)
}

func TestStudio_EmptyDraft(t *testing.T) {
	s := NewStudio(NewTemplateGenerator())
	err := s.Generate(context.Background())

	var empty *domain.EmptyDraftError
	require.True(t, errors.As(err, &empty))
	st := s.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, domain.MsgEmptyDraft, st.Error)
	assert.Nil(t, st.Result())
}

func TestStudio_ErrorClearsPreviousResult(t *testing.T) {
	fail := false
	s := NewStudio(genFunc(func(ctx context.Context, d domain.ResumeDraft, f domain.FilterSelection) (*domain.GenerationResult, error) {
		if fail {
			return nil, &domain.TransportError{Op: "POST /api/improve", Cause: errors.New("connection refused")}
		}
		return &domain.GenerationResult{Narrative: "first", Suggestion: &domain.StructuredSuggestion{}}, nil
	}))
	s.SetField(domain.FieldSummary, "x")
	require.NoError(t, s.Generate(context.Background()))
	assert.Equal(t, "first", s.State().Narrative)

	fail = true
	require.Error(t, s.Generate(context.Background()))
	st := s.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, domain.MsgRetry, st.Error)
	assert.Empty(t, st.Narrative)
	assert.Nil(t, st.Suggestion)
	assert.Equal(t, "x", st.Draft.Summary)
}

func TestStudio_EmptyResponse(t *testing.T) {
	s := NewStudio(genFunc(func(context.Context, domain.ResumeDraft, domain.FilterSelection) (*domain.GenerationResult, error) {
		return &domain.GenerationResult{}, nil
	}))
	require.Error(t, s.Generate(context.Background()))
	assert.Equal(t, MsgNoResponse, s.State().Error)
}

func TestStudio_Timeout(t *testing.T) {
	s := NewStudio(genFunc(func(ctx context.Context, _ domain.ResumeDraft, _ domain.FilterSelection) (*domain.GenerationResult, error) {
		<-ctx.Done()
		return nil, &domain.TransportError{Op: "POST", Cause: ctx.Err()}
	}), WithGenerateTimeout(20*time.Millisecond))

	require.Error(t, s.Generate(context.Background()))
	st := s.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, domain.MsgTimeout, st.Error)
}

func TestStudio_NewRequestSupersedesInFlight(t *testing.T) {
	started := make(chan struct{})
	var calls int
	var mu sync.Mutex
	s := NewStudio(genFunc(func(ctx context.Context, d domain.ResumeDraft, _ domain.FilterSelection) (*domain.GenerationResult, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(started)
			<-ctx.Done()
			return &domain.GenerationResult{Narrative: "stale"}, nil
		}
		return &domain.GenerationResult{Narrative: "fresh " + d.FullName}, nil
	}))
	s.SetField(domain.FieldFullName, "A")

	firstErr := make(chan error, 1)
	go func() { firstErr <- s.Generate(context.Background()) }()
	<-started

	// edits are accepted while a request is in flight
	s.SetField(domain.FieldFullName, "B")
	assert.Equal(t, PhaseGenerating, s.State().Phase)

	require.NoError(t, s.Generate(context.Background()))
	assert.ErrorIs(t, <-firstErr, ErrSuperseded)

	st := s.State()
	assert.Equal(t, PhaseReady, st.Phase)
	assert.Equal(t, "fresh B", st.Narrative)
}

func TestStudio_SelectUnknownKeepsFilters(t *testing.T) {
	s := NewStudio(NewTemplateGenerator())
	require.NoError(t, s.Select(domain.AxisTone, "elegant"))
	assert.Error(t, s.Select(domain.AxisTone, "shouty"))
	assert.Equal(t, domain.ToneElegant, s.State().Filters.Tone)
}

type exporterFunc func(ctx context.Context, d domain.ResumeDraft, f domain.FilterSelection, r *domain.GenerationResult) (*ExportArtifact, error)

func (e exporterFunc) Export(ctx context.Context, d domain.ResumeDraft, f domain.FilterSelection, r *domain.GenerationResult) (*ExportArtifact, error) {
	return e(ctx, d, f, r)
}

func TestStudio_Export(t *testing.T) {
	var gotResult *domain.GenerationResult
	exp := exporterFunc(func(_ context.Context, _ domain.ResumeDraft, _ domain.FilterSelection, r *domain.GenerationResult) (*ExportArtifact, error) {
		gotResult = r
		return &ExportArtifact{Name: ArtifactName}, nil
	})
	s := NewStudio(NewTemplateGenerator(), WithExporter(exp))
	s.SetField(domain.FieldFullName, "Jordan Lee")

	_, err := s.Export(context.Background())
	require.NoError(t, err)
	assert.Nil(t, gotResult)

	require.NoError(t, s.Generate(context.Background()))
	art, err := s.Export(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ArtifactName, art.Name)
	require.NotNil(t, gotResult)
	assert.Equal(t, s.State().Narrative, gotResult.Narrative)
}

func TestStudio_ExportFailureKeepsDraft(t *testing.T) {
	s := NewStudio(NewTemplateGenerator(), WithExporter(NewExporter(DefaultLayout(), &fakeRenderer{err: errors.New("no chrome")}, nil)))
	s.SetField(domain.FieldHeadline, "Engineer")

	art, err := s.Export(context.Background())
	assert.Nil(t, art)
	require.Error(t, err)
	st := s.State()
	assert.Equal(t, domain.MsgExport, st.ExportError)
	assert.Equal(t, "Engineer", st.Draft.Headline)

	s2 := NewStudio(NewTemplateGenerator())
	_, err = s2.Export(context.Background())
	var ef *domain.ExportFailure
	assert.True(t, errors.As(err, &ef))
}

func TestStudio_TimeoutWithUncooperativeGenerator(t *testing.T) {
	s := NewStudio(genFunc(func(context.Context, domain.ResumeDraft, domain.FilterSelection) (*domain.GenerationResult, error) {
		time.Sleep(300 * time.Millisecond)
		return &domain.GenerationResult{Narrative: "late", Suggestion: &domain.StructuredSuggestion{}}, nil
	}), WithGenerateTimeout(20*time.Millisecond))
	s.SetField(domain.FieldSummary, "x")

	start := time.Now()
	err := s.Generate(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 250*time.Millisecond)

	st := s.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Equal(t, domain.MsgTimeout, st.Error)
	assert.Empty(t, st.Narrative)

	// the late response never lands
	time.Sleep(350 * time.Millisecond)
	st = s.State()
	assert.Equal(t, PhaseFailed, st.Phase)
	assert.Empty(t, st.Narrative)
}

func TestStudio_GeneratingClearsSuggestionKeepsNarrative(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{})
	var calls int
	s := NewStudio(genFunc(func(context.Context, domain.ResumeDraft, domain.FilterSelection) (*domain.GenerationResult, error) {
		calls++
		if calls == 2 {
			close(started)
			<-release
		}
		return &domain.GenerationResult{Narrative: "first", Suggestion: &domain.StructuredSuggestion{Title: "t"}}, nil
	}))
	s.SetField(domain.FieldFullName, "Jordan Lee")
	require.NoError(t, s.Generate(context.Background()))
	require.NotNil(t, s.State().Suggestion)

	done := make(chan error, 1)
	go func() { done <- s.Generate(context.Background()) }()
	<-started

	st := s.State()
	assert.Equal(t, PhaseGenerating, st.Phase)
	assert.Nil(t, st.Suggestion)
	assert.Equal(t, "first", st.Narrative)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, PhaseReady, s.State().Phase)
	assert.NotNil(t, s.State().Suggestion)
}

package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"cv-amplify/internal/domain"
	"cv-amplify/internal/logger"

	"github.com/rs/zerolog"
)

// Phase is the studio's generation state.
type Phase int

const (
	PhaseIdle       Phase = iota // no result yet
	PhaseGenerating              // a request is in flight
	PhaseReady                   // idle with the latest result
	PhaseFailed                  // idle with a user-facing error
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseGenerating:
		return "generating"
	case PhaseReady:
		return "ready"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// DefaultGenerateTimeout bounds a generation request.
const DefaultGenerateTimeout = 30 * time.Second

// MsgNoResponse is shown when the service answered without a narrative.
const MsgNoResponse = "No response received from the AI service."

// ErrSuperseded is returned to the caller of a generation request whose
// response arrived after a newer request was issued. The response is
// discarded.
var ErrSuperseded = errors.New("generation superseded by a newer request")

// DocumentExporter produces the export artifact from studio state.
type DocumentExporter interface {
	Export(ctx context.Context, draft domain.ResumeDraft, filters domain.FilterSelection, result *domain.GenerationResult) (*ExportArtifact, error)
}

// StudioState is a snapshot of the studio.
type StudioState struct {
	Phase       Phase
	Draft       domain.ResumeDraft
	Filters     domain.FilterSelection
	Narrative   string
	Suggestion  *domain.StructuredSuggestion
	Error       string
	ExportError string
}

// Result returns the current generation result, or nil when there is no
// narrative to show.
func (s StudioState) Result() *domain.GenerationResult {
	if s.Narrative == "" {
		return nil
	}
	return &domain.GenerationResult{Narrative: s.Narrative, Suggestion: s.Suggestion}
}

// Studio orchestrates one editing session. Edits are always accepted,
// including while a generation is in flight. A new generation request
// supersedes the previous one: the older request is cancelled and its
// response, if it still arrives, is dropped.
type Studio struct {
	mu sync.Mutex

	gen      Generator
	exporter DocumentExporter
	timeout  time.Duration
	log      zerolog.Logger

	draft       domain.ResumeDraft
	filters     domain.FilterSelection
	phase       Phase
	narrative   string
	suggestion  *domain.StructuredSuggestion
	errMsg      string
	exportErr   string
	seq         uint64
	cancelInFly context.CancelFunc
}

type StudioOption func(*Studio)

func WithGenerateTimeout(d time.Duration) StudioOption {
	return func(s *Studio) {
		if d > 0 {
			s.timeout = d
		}
	}
}

func WithExporter(e DocumentExporter) StudioOption {
	return func(s *Studio) { s.exporter = e }
}

func WithLogger(l zerolog.Logger) StudioOption {
	return func(s *Studio) { s.log = l }
}

// NewStudio starts a session with an empty draft and the default filters.
func NewStudio(gen Generator, opts ...StudioOption) *Studio {
	s := &Studio{
		gen:     gen,
		timeout: DefaultGenerateTimeout,
		log:     logger.Component("studio"),
		filters: domain.DefaultFilters(),
		phase:   PhaseIdle,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Studio) SetField(f domain.Field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Set(f, value)
}

func (s *Studio) SetDraft(d domain.ResumeDraft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = d
}

// Select changes one filter axis; unknown ids leave the selection unchanged.
func (s *Studio) Select(axis domain.Axis, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Select(axis, id)
}

func (s *Studio) SkillsList() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.SkillsList(s.draft)
}

func (s *Studio) FilterNarrative() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.Describe(s.filters)
}

func (s *Studio) State() StudioState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return StudioState{
		Phase:       s.phase,
		Draft:       s.draft,
		Filters:     s.filters,
		Narrative:   s.narrative,
		Suggestion:  s.suggestion,
		Error:       s.errMsg,
		ExportError: s.exportErr,
	}
}

// Preview projects the current state.
func (s *Studio) Preview() Preview {
	st := s.State()
	return RenderPreview(st.Draft, st.Filters, st.Result())
}

// Generate runs one generation request with the draft and filters as they
// are now. It blocks until the response arrives or the timeout expires.
// Failures are recorded as a user-facing message and also returned.
func (s *Studio) Generate(ctx context.Context) error {
	s.mu.Lock()
	if s.cancelInFly != nil {
		s.cancelInFly()
	}
	s.seq++
	seq := s.seq
	draft, filters := s.draft, s.filters
	s.phase = PhaseGenerating
	s.suggestion = nil
	s.errMsg = ""
	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	s.cancelInFly = cancel
	s.mu.Unlock()
	defer cancel()

	start := time.Now()
	res, err := s.await(reqCtx, draft, filters)
	if err == nil && (res == nil || res.Narrative == "") {
		err = &domain.InternalError{Message: MsgNoResponse}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if seq != s.seq {
		s.log.Debug().Uint64("seq", seq).Msg("dropping superseded generation response")
		return ErrSuperseded
	}
	s.cancelInFly = nil

	if err != nil {
		s.phase = PhaseFailed
		s.narrative = ""
		s.suggestion = nil
		s.errMsg = s.failureMessage(reqCtx, err)
		s.log.Warn().Err(err).Dur("elapsed", time.Since(start)).Str("shown", s.errMsg).Msg("generation failed")
		return err
	}

	s.phase = PhaseReady
	s.narrative = res.Narrative
	s.suggestion = res.Suggestion
	s.log.Debug().Dur("elapsed", time.Since(start)).Msg("generation completed")
	return nil
}

type generated struct {
	res *domain.GenerationResult
	err error
}

// await runs the generator and stops waiting when ctx ends, whether or not
// the generator observes ctx. A response arriving after that is discarded.
func (s *Studio) await(ctx context.Context, draft domain.ResumeDraft, filters domain.FilterSelection) (*domain.GenerationResult, error) {
	done := make(chan generated, 1)
	go func() {
		res, err := s.gen.Generate(ctx, draft, filters)
		done <- generated{res: res, err: err}
	}()

	select {
	case g := <-done:
		return g.res, g.err
	case <-ctx.Done():
		return nil, &domain.TransportError{Op: "generate", Cause: ctx.Err()}
	}
}

func (s *Studio) failureMessage(reqCtx context.Context, err error) string {
	var internal *domain.InternalError
	switch {
	case errors.Is(reqCtx.Err(), context.DeadlineExceeded):
		return domain.MsgTimeout
	case errors.As(err, &internal) && internal.Message == MsgNoResponse:
		return MsgNoResponse
	}
	return domain.UserMessage(err)
}

// Export builds the document from the current state. On failure the draft
// and result are kept and a user-facing message is recorded.
func (s *Studio) Export(ctx context.Context) (*ExportArtifact, error) {
	st := s.State()
	if s.exporter == nil {
		return nil, s.exportFailed(&domain.ExportFailure{Stage: "setup", Cause: errors.New("no exporter configured")})
	}

	art, err := s.exporter.Export(ctx, st.Draft, st.Filters, st.Result())
	if err != nil {
		var ef *domain.ExportFailure
		if !errors.As(err, &ef) {
			err = &domain.ExportFailure{Stage: "export", Cause: err}
		}
		return nil, s.exportFailed(err)
	}

	s.mu.Lock()
	s.exportErr = ""
	s.mu.Unlock()
	return art, nil
}

func (s *Studio) exportFailed(err error) error {
	s.log.Error().Err(err).Msg("export failed")
	s.mu.Lock()
	s.exportErr = domain.UserMessage(err)
	s.mu.Unlock()
	return err
}

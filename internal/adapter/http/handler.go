package http

import (
	"context"
	"time"

	"cv-amplify/internal/adapter/repository"
	"cv-amplify/internal/domain"
	"cv-amplify/internal/logger"
	"cv-amplify/internal/model"
	"cv-amplify/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// EventRecorder stores generation metadata.
type EventRecorder interface {
	Save(ctx context.Context, ev *repository.GenerationEvent) error
}

type HandlerConfig struct {
	Generator usecase.Generator
	Sessions  domain.SessionProvider
	Events    EventRecorder
	LoginURL  string
	Timeout   time.Duration
}

type Handler struct {
	gen      usecase.Generator
	sessions domain.SessionProvider
	events   EventRecorder
	loginURL string
	timeout  time.Duration
	log      zerolog.Logger
}

func NewHandler(cfg HandlerConfig) *Handler {
	h := &Handler{
		gen:      cfg.Generator,
		sessions: cfg.Sessions,
		events:   cfg.Events,
		loginURL: cfg.LoginURL,
		timeout:  cfg.Timeout,
		log:      logger.Component("http"),
	}
	if h.sessions == nil {
		h.sessions = demoSessions{}
	}
	if h.loginURL == "" {
		h.loginURL = "/auth/login"
	}
	if h.timeout <= 0 {
		h.timeout = usecase.DefaultGenerateTimeout
	}
	return h
}

// Improve is the generation endpoint.
func (h *Handler) Improve(c *fiber.Ctx) error {
	start := time.Now()
	sess := SessionFrom(c)

	req, err := model.DecodeImproveRequest(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	filters, err := req.Selection()
	if err != nil {
		return h.fail(c, err)
	}

	ctx, cancel := context.WithTimeout(c.UserContext(), h.timeout)
	defer cancel()
	res, err := h.gen.Generate(ctx, req.Draft(), filters)
	if err == nil {
		resp := model.NewImproveResponse(res)
		if verr := model.ValidateImproveResponse(resp); verr != nil {
			err = &domain.InternalError{Message: "generated response failed validation", Cause: verr}
		} else {
			h.record(sess, filters, nil, time.Since(start))
			return c.Status(fiber.StatusOK).JSON(resp)
		}
	}

	h.record(sess, filters, err, time.Since(start))
	return h.fail(c, err)
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := HTTPStatus(err)
	if status >= fiber.StatusInternalServerError {
		h.log.Error().Err(err).Str("path", c.Path()).Msg("generation failed")
	} else {
		h.log.Debug().Err(err).Str("path", c.Path()).Msg("generation rejected")
	}
	return c.Status(status).JSON(model.ErrorResponse{Error: domain.UserMessage(err)})
}

// record stores the event without letting storage problems reach the caller.
func (h *Handler) record(sess domain.Session, filters domain.FilterSelection, genErr error, elapsed time.Duration) {
	if h.events == nil {
		return
	}
	ev := repository.NewGenerationEvent(sess.User, filters, repository.StatusFor(genErr), elapsed)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := h.events.Save(ctx, ev); err != nil {
		h.log.Warn().Err(err).Str("event_id", ev.ID.String()).Msg("failed to record generation event")
	}
}

type catalogResponse struct {
	Tone      []domain.Option        `json:"tone"`
	Focus     []domain.Option        `json:"focus"`
	Highlight []domain.Option        `json:"highlight"`
	Defaults  domain.FilterSelection `json:"defaults"`
}

// Filters returns the filter catalogs and the default selection.
func (h *Handler) Filters(c *fiber.Ctx) error {
	return c.JSON(catalogResponse{
		Tone:      domain.ToneOptions,
		Focus:     domain.FocusOptions,
		Highlight: domain.HighlightOptions,
		Defaults:  domain.DefaultFilters(),
	})
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

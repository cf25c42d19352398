// Package ai is the client side of the generation endpoint. Client
// satisfies the studio's Generator so a remote service can stand in for
// the in-process template generator.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"cv-amplify/internal/domain"
	"cv-amplify/internal/logger"
	"cv-amplify/internal/model"

	"github.com/rs/zerolog"
)

const (
	ImprovePath    = "/api/improve"
	DefaultBaseURL = "http://localhost:3000"
)

// Client posts drafts to a running generation service. Requests are sent
// once; the caller owns timeouts through ctx.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	log     zerolog.Logger
}

// NewClient reads AI_SERVICE_URL, falling back to DefaultBaseURL.
func NewClient() *Client {
	return NewClientWithURL(os.Getenv("AI_SERVICE_URL"))
}

func NewClientWithURL(base string) *Client {
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(base, "/"),
		HTTP:    &http.Client{Timeout: 60 * time.Second},
		log:     logger.Component("ai.client"),
	}
}

// Generate sends one improve request and maps the outcome onto the domain
// error classes.
func (c *Client) Generate(ctx context.Context, draft domain.ResumeDraft, filters domain.FilterSelection) (*domain.GenerationResult, error) {
	body, err := json.Marshal(model.NewImproveRequest(draft, filters))
	if err != nil {
		return nil, &domain.InternalError{Message: "encode request", Cause: err}
	}

	url := c.BaseURL + ImprovePath
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, &domain.TransportError{Op: "POST " + ImprovePath, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.Debug().Str("url", url).Int("bytes", len(body)).Msg("sending improve request")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: "POST " + ImprovePath, Cause: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Op: "read response", Cause: err}
	}
	c.log.Debug().Int("status", resp.StatusCode).Int("bytes", len(respBytes)).Msg("improve response")

	switch {
	case resp.StatusCode == http.StatusOK:
		return decodeResult(respBytes)
	case resp.StatusCode == http.StatusBadRequest:
		msg := errorMessage(respBytes)
		if msg == domain.MsgEmptyDraft {
			return nil, &domain.EmptyDraftError{}
		}
		return nil, &domain.BadRequestError{Message: msg}
	default:
		return nil, &domain.InternalError{
			Message: fmt.Sprintf("generation service returned status %d", resp.StatusCode),
			Cause:   errors.New(errorMessage(respBytes)),
		}
	}
}

func decodeResult(b []byte) (*domain.GenerationResult, error) {
	var out model.ImproveResponse
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, &domain.InternalError{Message: "generation service returned non-json content", Cause: err}
	}
	if err := model.ValidateImproveResponse(out); err != nil {
		return nil, &domain.InternalError{Message: "generation service response failed validation", Cause: err}
	}
	return out.Result(), nil
}

func errorMessage(b []byte) string {
	var e model.ErrorResponse
	if err := json.Unmarshal(b, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(b))
}

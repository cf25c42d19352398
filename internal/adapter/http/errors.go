package http

import (
	"errors"

	"cv-amplify/internal/domain"
	"cv-amplify/internal/logger"
	"cv-amplify/internal/model"

	"github.com/gofiber/fiber/v2"
)

// MsgInternal is returned for panics and unhandled errors.
const MsgInternal = "Internal error."

// HTTPStatus maps the error taxonomy to a response status.
func HTTPStatus(err error) int {
	var (
		empty *domain.EmptyDraftError
		bad   *domain.BadRequestError
		unk   *domain.UnknownOptionError
	)
	switch {
	case err == nil:
		return fiber.StatusOK
	case errors.As(err, &empty), errors.As(err, &bad), errors.As(err, &unk):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// ErrorHandler answers errors that escape a handler, including recovered
// panics.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(model.ErrorResponse{Error: fe.Message})
	}
	log := logger.Component("http")
	log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("unhandled error")
	return c.Status(fiber.StatusInternalServerError).JSON(model.ErrorResponse{Error: MsgInternal})
}

package domain

import (
	"errors"
	"fmt"
)

// EmptyDraftError is returned when every draft field is blank.
type EmptyDraftError struct{}

func (e *EmptyDraftError) Error() string {
	return "Form submitted empty."
}

// BadRequestError indicates a request that could not be parsed into the
// expected shape.
type BadRequestError struct {
	Message string
	Cause   error
}

func (e *BadRequestError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bad request: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("bad request: %s", e.Message)
}

func (e *BadRequestError) Unwrap() error {
	return e.Cause
}

// InternalError is an unexpected fault inside the generation service. The
// Message is safe to show; the Cause is for logs only.
type InternalError struct {
	Message string
	Cause   error
}

func (e *InternalError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("internal error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("internal error: %s", e.Message)
}

func (e *InternalError) Unwrap() error {
	return e.Cause
}

// TransportError is a failure reaching the generation service.
type TransportError struct {
	Op    string
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s: %v", e.Op, e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// ExportFailure wraps a fault raised while laying out, rendering or
// verifying the exported document.
type ExportFailure struct {
	Stage string
	Cause error
}

func (e *ExportFailure) Error() string {
	return fmt.Sprintf("export failed during %s: %v", e.Stage, e.Cause)
}

func (e *ExportFailure) Unwrap() error {
	return e.Cause
}

// UnknownOptionError is returned when a filter id is not in its catalog.
type UnknownOptionError struct {
	Axis Axis
	ID   string
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown %s option %q", e.Axis, e.ID)
}

// User-facing messages for each error class.
const (
	MsgEmptyDraft = "Form submitted empty."
	MsgBadRequest = "The request could not be understood."
	MsgRetry      = "Something went wrong. Please try again."
	MsgTimeout    = "The AI service took too long to respond. Please try again."
	MsgExport     = "PDF export failed. Your draft is safe, please try again."
)

// UserMessage maps an error to the message shown to the user. Causes are
// never included.
func UserMessage(err error) string {
	var (
		empty  *EmptyDraftError
		bad    *BadRequestError
		unk    *UnknownOptionError
		export *ExportFailure
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &empty):
		return MsgEmptyDraft
	case errors.As(err, &bad), errors.As(err, &unk):
		return MsgBadRequest
	case errors.As(err, &export):
		return MsgExport
	default:
		// InternalError, TransportError and anything unexpected.
		return MsgRetry
	}
}

package screening

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Pipeline stages, logged as screening progresses.
const (
	StageReceived    = "received"
	StageExtracting  = "extracting"
	StageScoring     = "scoring"
	StageAggregating = "aggregating"
	StageNotifying   = "notifying"
	StageCompleted   = "completed"
	StageFailed      = "failed"
)

// ErrKind classifies a pipeline failure for HTTP mapping and retry decisions.
type ErrKind string

const (
	KindValidation   ErrKind = "validation"
	KindExtraction   ErrKind = "extraction"
	KindTransport    ErrKind = "transport"
	KindSchema       ErrKind = "schema"
	KindNotification ErrKind = "notification"
	KindInternal     ErrKind = "internal"
)

// ErrNotFound is returned by repositories when no record matches.
var ErrNotFound = errors.New("screening not found")

// StageError records which stage failed and how. It wraps the underlying
// cause so callers can still errors.As into provider errors.
type StageError struct {
	Stage string
	Kind  ErrKind
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func failStage(stage string, kind ErrKind, err error) *StageError {
	return &StageError{Stage: stage, Kind: kind, Err: err}
}

// HTTPStatus maps a pipeline error to a status code and a user-safe message.
// Internal detail never leaks into the message; it is logged separately.
func HTTPStatus(err error) (int, string) {
	var se *StageError
	if !errors.As(err, &se) {
		return http.StatusInternalServerError, "Unexpected server error"
	}
	switch se.Kind {
	case KindValidation:
		return http.StatusBadRequest, se.Err.Error()
	case KindExtraction:
		return http.StatusUnprocessableEntity, "Could not extract text from the uploaded PDF"
	case KindTransport:
		if errors.Is(se.Err, context.DeadlineExceeded) {
			return http.StatusGatewayTimeout, "Scoring service timed out"
		}
		return http.StatusBadGateway, "Scoring service is unavailable"
	case KindSchema:
		return http.StatusBadGateway, "Scoring service returned an unusable response"
	default:
		return http.StatusInternalServerError, "Unexpected server error"
	}
}

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pkordes/hotel-reservations/backend/internal/domain"
	"github.com/pkordes/hotel-reservations/backend/internal/handler/gen"
)

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the human-readable message (e.g. "reservation not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an ErrorResponse for a domain validation failure.
// The message is extracted from the wrapped domain.ErrValidation error.
func validationBody(err error) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an ErrorResponse for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) gen.ErrorResponse {
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "validation_error", Message: message}}
}

func stateBody(se *domain.StateError) gen.ErrorResponse {
	current := gen.ReservationStatus(se.Current)
	transition := string(se.Transition)
	return gen.ErrorResponse{Error: gen.ErrorDetail{
		Code:          "invalid_state",
		Message:       se.Error(),
		CurrentStatus: &current,
		Transition:    &transition,
	}}
}

func conflictBody(err error) gen.ErrorResponse {
	var ce *domain.ConflictError
	if errors.As(err, &ce) {
		rooms := ce.RoomNumbers
		return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "conflict", Message: ce.Error(), Rooms: &rooms}}
	}
	return gen.ErrorResponse{Error: gen.ErrorDetail{Code: "conflict", Message: unwrapMessage(err)}}
}

var staleBody = gen.ErrorResponse{Error: gen.ErrorDetail{
	Code:    "conflict",
	Message: "the reservation was modified concurrently, retry the request",
}}

var internalBody = gen.ErrorResponse{Error: gen.ErrorDetail{
	Code:    "internal_error",
	Message: "internal server error",
}}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.RoomService.Create: validation error: number is required" → "number is required"
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, sentinel := range []error{domain.ErrValidation, domain.ErrConflict} {
		marker := sentinel.Error() + ": "
		if i := strings.Index(msg, marker); i >= 0 {
			return msg[i+len(marker):]
		}
	}
	return msg
}

// describeValidation turns validator errors into one readable line using the
// JSON field names, e.g. "guest.email must be a valid email".
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:] // drop the struct name
		}
		parts = append(parts, fmt.Sprintf("%s %s", field, ruleText(fe)))
	}
	return strings.Join(parts, "; ")
}

func ruleText(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "oneof":
		return "must be one of " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	}
	return "failed " + fe.Tag()
}

// classify maps a service error onto a status code and body. notFound is
// the message used for domain.ErrNotFound. ok is false for errors that have
// no client-facing meaning; handlers return those to the strict wrapper,
// which routes them to responseError.
func classify(err error, notFound string) (status int, body gen.ErrorResponse, ok bool) {
	var se *domain.StateError
	switch {
	case errors.As(err, &se):
		return http.StatusConflict, stateBody(se), true
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity, validationBody(err), true
	case errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrDuplicate):
		return http.StatusConflict, conflictBody(err), true
	case errors.Is(err, domain.ErrStaleWrite):
		return http.StatusConflict, staleBody, true
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, notFoundBody(notFound), true
	}
	return http.StatusInternalServerError, internalBody, false
}

// invalid runs the struct tags of a decoded request body.
func (s *Server) invalid(body any) (gen.ErrorResponse, bool) {
	if err := s.validate.Struct(body); err != nil {
		return requestBody(describeValidation(err)), true
	}
	return gen.ErrorResponse{}, false
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// requestError handles bodies the strict wrapper could not decode.
func (s *Server) requestError(w http.ResponseWriter, _ *http.Request, err error) {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		writeJSON(w, http.StatusRequestEntityTooLarge, gen.ErrorResponse{Error: gen.ErrorDetail{
			Code:    "payload_too_large",
			Message: fmt.Sprintf("request body exceeds %d bytes", maxErr.Limit),
		}})
	case errors.Is(err, io.EOF):
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("request body is required"))
	default:
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("malformed JSON: "+strings.TrimPrefix(err.Error(), "can't decode JSON body: ")))
	}
}

// paramError handles path and query parameters that failed to bind.
func (s *Server) paramError(w http.ResponseWriter, _ *http.Request, err error) {
	writeJSON(w, http.StatusUnprocessableEntity, requestBody(err.Error()))
}

// responseError handles errors returned by a handler. Known domain errors
// still get their mapped status; anything else is logged and hidden behind
// a 500.
func (s *Server) responseError(w http.ResponseWriter, r *http.Request, err error) {
	status, body, ok := classify(err, "not found")
	if !ok {
		s.log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
	}
	writeJSON(w, status, body)
}

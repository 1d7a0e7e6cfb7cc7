package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/SiphoChris/afrilex/internal/domain"
	"github.com/SiphoChris/afrilex/internal/editor"
	"github.com/SiphoChris/afrilex/internal/wordform"
)

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 1 << 20

// errorResponse is the JSON body of every failed request.
type errorResponse struct {
	Error  string              `json:"error"`
	Fields []domain.FieldError `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps domain errors to HTTP statuses. Unexpected errors are
// logged and hidden behind a generic message.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		fields := domain.FieldErrorsOf(err)
		msg := "validation failed"
		if len(fields) == 1 {
			msg = fields[0].Message
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg, Fields: fields})
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict")
	case errors.Is(err, editor.ErrSubmitInProgress), errors.Is(err, wordform.ErrSubmitInProgress):
		writeError(w, http.StatusConflict, "submit already in progress")
	case errors.Is(err, wordform.ErrUploadInProgress):
		writeError(w, http.StatusConflict, "audio upload already in progress")
	case errors.Is(err, wordform.ErrUploadFailed):
		log.ErrorContext(r.Context(), "upload failed", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "Failed to upload audio file")
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON reads a JSON body into v. It writes a 400 and returns false on
// malformed input.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody))
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathUUID parses a UUID path variable. It writes a 400 and returns false
// when the value is malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// pathInt parses a non-negative integer path variable.
func pathInt(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	n, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil || n < 0 {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return n, true
}

// queryInt returns an integer query parameter, or def when absent or malformed.
func queryInt(r *http.Request, name string, def int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// pageResponse wraps a page of a listing.
type pageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// noticeResponse carries a confirmation together with the result.
type noticeResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

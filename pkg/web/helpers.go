package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
)

// Envelope is the body shape of every JSON response.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// RouteNotFoundMessage is returned by the fallback handler for unmatched routes.
const RouteNotFoundMessage = "route not found"

// ErrTrailingData is returned by DecodeJSON when the body holds more than one JSON value.
var ErrTrailingData = errors.New("unexpected data after JSON value")

func RespondJSON(w http.ResponseWriter, logger *slog.Logger, status int, payload any) {
	// Handle nil payload
	if payload == nil {
		w.WriteHeader(status)
		return
	}

	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error encoding response to JSON", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(response)
}

// RespondSuccess writes a successful envelope carrying data.
func RespondSuccess(w http.ResponseWriter, logger *slog.Logger, status int, message string, data any) {
	RespondJSON(w, logger, status, Envelope{Success: true, Message: message, Data: data})
}

// RespondError writes a failed envelope with a null data field.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, message string) {
	RespondJSON(w, logger, status, Envelope{Success: false, Message: message, Data: nil})
}

// NotFound is the fallback for unmatched routes and unsupported methods.
func NotFound(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger.DebugContext(r.Context(), "No route matched", "method", r.Method, "path", r.URL.Path)
		RespondError(w, logger, http.StatusNotFound, RouteNotFoundMessage)
	}
}

// ParseInt64Param reads an integer path parameter.
func ParseInt64Param(r *http.Request, key string) (int64, error) {
	raw := r.PathValue(key)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return id, nil
}

// DecodeJSON decodes exactly one JSON value from body into dst. Errors of the first
// value are returned unwrapped; anything but whitespace after it yields ErrTrailingData.
func DecodeJSON(body io.Reader, dst any) error {
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&json.RawMessage{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrTrailingData, err)
	}
	return nil
}

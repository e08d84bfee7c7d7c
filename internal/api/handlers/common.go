package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	api "reportboard/internal/api/application"
	"reportboard/internal/infrastructure/responseformat"
	"reportboard/internal/presentation"
	reportingapp "reportboard/internal/reporting/application"
	"reportboard/internal/reporting/domain"
)

var formatter = responseformat.NewFormatter()

// getLogger extracts the logger from the request context
// Falls back to slog.Default() if not found
func getLogger(r *http.Request) *slog.Logger {
	if ctxLogger := r.Context().Value("logger"); ctxLogger != nil {
		if l, ok := ctxLogger.(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}

// respond sends a JSON response, or MessagePack when the client asks for it
func respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	if err := formatter.WriteResponse(w, r, status, data); err != nil {
		getLogger(r).Error("Failed to write response", "err", err)
	}
}

// respondError sends an error response
func respondError(w http.ResponseWriter, r *http.Request, status int, message string) {
	respond(w, r, status, api.ErrorResponse{Error: message})
}

// statusFor maps reporting errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, presentation.ErrUnsupportedFormat):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownChart),
		errors.Is(err, reportingapp.ErrUnknownBreakdown):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDivisionByZero):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondErr logs err and answers with its mapped status
func respondErr(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		getLogger(r).Error("Request failed", "path", r.URL.Path, "err", err)
	} else {
		getLogger(r).Debug("Request rejected", "path", r.URL.Path, "status", status, "err", err)
	}
	respondError(w, r, status, err.Error())
}

// resolveRange reads ?range=, falling back to def when it is blank
func resolveRange(r *http.Request, def domain.TimeRange) (domain.TimeRange, error) {
	return reportingapp.ResolveRange(r.URL.Query().Get("range"), def)
}

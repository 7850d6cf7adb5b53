package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ieee-igdtuw/techfeed/internal/domain"
)

const maxLimit = 100

// statusForError maps engine errors to HTTP statuses. Anything unrecognised
// is a server error, as is a *domain.StoreError even when it wraps a
// validation failure of stored data.
func statusForError(err error) int {
	var storeErr *domain.StoreError
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError
	switch {
	case errors.As(err, &storeErr):
		return http.StatusInternalServerError
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	status := statusForError(err)
	logger := domain.LoggerFromContext(ctx)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
	} else {
		logger.InfoContext(ctx, msg, "error", err, "status", status)
	}
	w.WriteHeader(status)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// setCacheMaxAge only marks anonymous responses as cacheable. Every response
// varies on Authorization so shared caches never hand an anonymous copy to a
// signed-in reader.
func setCacheMaxAge(ctx context.Context, w http.ResponseWriter, maxAge time.Duration) {
	w.Header().Add("Vary", "Authorization")
	if domain.UserIDFromContext(ctx) != "" {
		w.Header().Set("Cache-Control", "private, no-store")
		return
	}
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(maxAge.Seconds())))
}

// parseLimit returns 0 when no limit is given, leaving the default to the command.
func parseLimit(q url.Values) (int, error) {
	if !q.Has("limit") {
		return 0, nil
	}
	limit, err := strconv.ParseInt(q.Get("limit"), 10, 32)
	if err != nil {
		return 0, &domain.ValidationError{Field: "limit", Value: q.Get("limit"), Reason: "not an integer"}
	}
	if limit < 1 {
		return 0, &domain.ValidationError{Field: "limit", Value: q.Get("limit"), Reason: "must be positive"}
	}
	if limit > maxLimit {
		return 0, &domain.ValidationError{
			Field:  "limit",
			Value:  q.Get("limit"),
			Reason: fmt.Sprintf("exceeds limit [%d]", maxLimit),
		}
	}
	return int(limit), nil
}

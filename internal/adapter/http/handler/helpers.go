package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/iho/tickstock/internal/adapter/http/dto"
	"github.com/iho/tickstock/internal/domain"
	"github.com/iho/tickstock/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// writeDomainError maps a domain error to a status code and writes it.
// Availability failures carry the candidate batches so the client can
// resubmit with an explicit ticket code.
func writeDomainError(w http.ResponseWriter, err error, message string) {
	var availErr *domain.AvailabilityError
	if errors.As(err, &availErr) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(dto.ErrorResponse{
			Error:      message,
			Message:    availErr.Error(),
			Candidates: dto.BatchCandidatesFromDomain(availErr.Candidates),
		})

		return
	}

	writeError(w, mapDomainError(err), message, err.Error())
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrDistributorNotFound),
		errors.Is(err, domain.ErrPartyNotFound),
		errors.Is(err, domain.ErrEntryNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrCategoryExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrStockUnavailable),
		errors.Is(err, domain.ErrStockAmbiguous):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidRange),
		errors.Is(err, domain.ErrInvalidCategoryName),
		errors.Is(err, domain.ErrInvalidRate),
		errors.Is(err, domain.ErrMissingField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseEntryFilter parses the common listing query parameters.
func parseEntryFilter(r *http.Request) usecase.EntryFilter {
	filter := usecase.EntryFilter{
		CategoryID: r.URL.Query().Get("category_id"),
		Limit:      parseIntQuery(r, "limit", 20),
		Offset:     parseIntQuery(r, "offset", 0),
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		if date, err := time.Parse(dto.EntryDateFormat, raw); err == nil {
			filter.Date = &date
		}
	}

	return filter
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/tickstock/internal/adapter/http/dto"
	"github.com/iho/tickstock/internal/usecase"
)

// RangeService defines the behavior needed by RangeHandler.
type RangeService interface {
	ResolveRange(ctx context.Context, startDigits, endDigits string) (*usecase.ResolvedRange, error)
	PreviewQuantityAndAmount(ctx context.Context, input usecase.PreviewInput) *usecase.Preview
}

// RangeHandler handles range resolution and preview HTTP requests.
type RangeHandler struct {
	rangeUC RangeService
}

// NewRangeHandler creates a new RangeHandler.
func NewRangeHandler(rangeUC RangeService) *RangeHandler {
	return &RangeHandler{rangeUC: rangeUC}
}

// Resolve interprets a start/end pair, applying the prefix-completion
// shorthand to a short end number.
func (h *RangeHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req dto.ResolveRangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	resolved, err := h.rangeUC.ResolveRange(r.Context(), req.StartNumber, req.EndNumber)
	if err != nil {
		writeDomainError(w, err, "failed to resolve range")
		return
	}

	writeJSON(w, http.StatusOK, dto.ResolvedRangeFromUseCase(resolved))
}

// Preview computes the live quantity and amount for a partially typed
// form. It always answers 200; invalid input yields a zero preview.
func (h *RangeHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req dto.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	preview := h.rangeUC.PreviewQuantityAndAmount(r.Context(), req.ToUseCaseInput())

	writeJSON(w, http.StatusOK, dto.PreviewFromUseCase(preview))
}

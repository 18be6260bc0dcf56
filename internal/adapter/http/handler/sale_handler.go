package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/tickstock/internal/adapter/http/dto"
	"github.com/iho/tickstock/internal/domain"
	"github.com/iho/tickstock/internal/usecase"
)

// SaleService defines the behavior needed by SaleHandler.
type SaleService interface {
	CreateSaleEntry(ctx context.Context, input usecase.SaleEntryInput) (*domain.SaleEntry, error)
	GetSaleEntry(ctx context.Context, id string) (*domain.SaleEntry, error)
	UpdateSaleEntry(ctx context.Context, id string, input usecase.SaleEntryInput) (*domain.SaleEntry, error)
	DeleteSaleEntry(ctx context.Context, id string) error
	ListSaleEntries(ctx context.Context, filter usecase.EntryFilter) ([]*domain.SaleEntry, error)
	CheckStockRange(ctx context.Context, input usecase.CheckStockInput) (*usecase.CheckStockResult, error)
}

// SaleHandler handles sale entry HTTP requests.
type SaleHandler struct {
	saleUC SaleService
}

// NewSaleHandler creates a new SaleHandler.
func NewSaleHandler(saleUC SaleService) *SaleHandler {
	return &SaleHandler{saleUC: saleUC}
}

// Create records a new sale. An unavailable or ambiguous range is
// rejected with 409 and, for ambiguity, the candidate batches.
func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.SaleEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.saleUC.CreateSaleEntry(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to create sale entry")
		return
	}

	writeJSON(w, http.StatusCreated, dto.SaleEntryFromDomain(entry))
}

// Get retrieves a sale entry by ID.
func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	entry, err := h.saleUC.GetSaleEntry(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get sale entry")
		return
	}

	writeJSON(w, http.StatusOK, dto.SaleEntryFromDomain(entry))
}

// Update rewrites a sale entry, re-checking availability with the edited
// entry excluded from the sale history.
func (h *SaleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	var req dto.SaleEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.saleUC.UpdateSaleEntry(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to update sale entry")
		return
	}

	writeJSON(w, http.StatusOK, dto.SaleEntryFromDomain(entry))
}

// Delete deletes a sale entry, returning its range to stock.
func (h *SaleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	if err := h.saleUC.DeleteSaleEntry(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete sale entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists sale entries, optionally filtered by category and date.
func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.saleUC.ListSaleEntries(r.Context(), parseEntryFilter(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sale entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListSaleEntriesResponse{
		Entries: dto.SaleEntriesFromDomain(entries),
		Total:   int64(len(entries)),
	})
}

// Check probes availability for a range without recording anything.
func (h *SaleHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.saleUC.CheckStockRange(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to check stock")
		return
	}

	writeJSON(w, http.StatusOK, dto.CheckStockFromUseCase(result))
}

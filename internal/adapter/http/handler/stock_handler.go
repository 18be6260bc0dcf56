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

// StockService defines the behavior needed by StockHandler.
type StockService interface {
	CreateStockEntry(ctx context.Context, input usecase.StockEntryInput) (*domain.StockEntry, error)
	GetStockEntry(ctx context.Context, id string) (*domain.StockEntry, error)
	UpdateStockEntry(ctx context.Context, id string, input usecase.StockEntryInput) (*domain.StockEntry, error)
	DeleteStockEntry(ctx context.Context, id string) error
	ListStockEntries(ctx context.Context, filter usecase.EntryFilter) ([]*domain.StockEntry, error)
	StockSummary(ctx context.Context) ([]*domain.CategoryTotals, error)
}

// StockHandler handles stock entry HTTP requests.
type StockHandler struct {
	stockUC StockService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(stockUC StockService) *StockHandler {
	return &StockHandler{stockUC: stockUC}
}

// Create records a new purchase batch.
func (h *StockHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.StockEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.stockUC.CreateStockEntry(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to create stock entry")
		return
	}

	writeJSON(w, http.StatusCreated, dto.StockEntryFromDomain(entry))
}

// Get retrieves a stock entry by ID.
func (h *StockHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	entry, err := h.stockUC.GetStockEntry(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get stock entry")
		return
	}

	writeJSON(w, http.StatusOK, dto.StockEntryFromDomain(entry))
}

// Update rewrites a stock entry.
func (h *StockHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	var req dto.StockEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	entry, err := h.stockUC.UpdateStockEntry(r.Context(), id, req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to update stock entry")
		return
	}

	writeJSON(w, http.StatusOK, dto.StockEntryFromDomain(entry))
}

// Delete deletes a stock entry.
func (h *StockHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing entry ID", "")
		return
	}

	if err := h.stockUC.DeleteStockEntry(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete stock entry")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists stock entries, optionally filtered by category and date.
func (h *StockHandler) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.stockUC.ListStockEntries(r.Context(), parseEntryFilter(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list stock entries", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListStockEntriesResponse{
		Entries: dto.StockEntriesFromDomain(entries),
		Total:   int64(len(entries)),
	})
}

// Summary reports the on-hand position per category.
func (h *StockHandler) Summary(w http.ResponseWriter, r *http.Request) {
	totals, err := h.stockUC.StockSummary(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute stock summary", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.StockSummaryFromDomain(totals))
}

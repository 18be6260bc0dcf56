package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/tickstock/internal/adapter/http/dto"
	"github.com/iho/tickstock/internal/domain"
)

// CounterpartyService defines the behavior needed by CounterpartyHandler.
type CounterpartyService interface {
	CreateDistributor(ctx context.Context, name string) (*domain.Distributor, error)
	GetDistributor(ctx context.Context, id string) (*domain.Distributor, error)
	DeleteDistributor(ctx context.Context, id string) error
	ListDistributors(ctx context.Context, limit, offset int) ([]*domain.Distributor, error)
	CreateParty(ctx context.Context, name string) (*domain.Party, error)
	GetParty(ctx context.Context, id string) (*domain.Party, error)
	DeleteParty(ctx context.Context, id string) error
	ListParties(ctx context.Context, limit, offset int) ([]*domain.Party, error)
}

// CounterpartyHandler handles distributor and party HTTP requests.
type CounterpartyHandler struct {
	counterpartyUC CounterpartyService
}

// NewCounterpartyHandler creates a new CounterpartyHandler.
func NewCounterpartyHandler(counterpartyUC CounterpartyService) *CounterpartyHandler {
	return &CounterpartyHandler{counterpartyUC: counterpartyUC}
}

// CreateDistributor creates a new distributor.
func (h *CounterpartyHandler) CreateDistributor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCounterpartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	distributor, err := h.counterpartyUC.CreateDistributor(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, err, "failed to create distributor")
		return
	}

	writeJSON(w, http.StatusCreated, dto.DistributorFromDomain(distributor))
}

// GetDistributor retrieves a distributor by ID.
func (h *CounterpartyHandler) GetDistributor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing distributor ID", "")
		return
	}

	distributor, err := h.counterpartyUC.GetDistributor(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get distributor")
		return
	}

	writeJSON(w, http.StatusOK, dto.DistributorFromDomain(distributor))
}

// DeleteDistributor deletes a distributor.
func (h *CounterpartyHandler) DeleteDistributor(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing distributor ID", "")
		return
	}

	if err := h.counterpartyUC.DeleteDistributor(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete distributor")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListDistributors lists distributors.
func (h *CounterpartyHandler) ListDistributors(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	distributors, err := h.counterpartyUC.ListDistributors(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list distributors", err.Error())
		return
	}

	result := make([]*dto.CounterpartyResponse, len(distributors))
	for i, d := range distributors {
		result[i] = dto.DistributorFromDomain(d)
	}

	writeJSON(w, http.StatusOK, dto.ListCounterpartiesResponse{
		Counterparties: result,
		Total:          int64(len(result)),
	})
}

// CreateParty creates a new party.
func (h *CounterpartyHandler) CreateParty(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCounterpartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	party, err := h.counterpartyUC.CreateParty(r.Context(), req.Name)
	if err != nil {
		writeDomainError(w, err, "failed to create party")
		return
	}

	writeJSON(w, http.StatusCreated, dto.PartyFromDomain(party))
}

// GetParty retrieves a party by ID.
func (h *CounterpartyHandler) GetParty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	party, err := h.counterpartyUC.GetParty(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get party")
		return
	}

	writeJSON(w, http.StatusOK, dto.PartyFromDomain(party))
}

// DeleteParty deletes a party.
func (h *CounterpartyHandler) DeleteParty(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing party ID", "")
		return
	}

	if err := h.counterpartyUC.DeleteParty(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete party")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListParties lists parties.
func (h *CounterpartyHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	parties, err := h.counterpartyUC.ListParties(r.Context(), limit, offset)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list parties", err.Error())
		return
	}

	result := make([]*dto.CounterpartyResponse, len(parties))
	for i, p := range parties {
		result[i] = dto.PartyFromDomain(p)
	}

	writeJSON(w, http.StatusOK, dto.ListCounterpartiesResponse{
		Counterparties: result,
		Total:          int64(len(result)),
	})
}

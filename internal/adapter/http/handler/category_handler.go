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

// CategoryService defines the behavior needed by CategoryHandler.
type CategoryService interface {
	CreateCategory(ctx context.Context, input usecase.CreateCategoryInput) (*domain.Category, error)
	GetCategory(ctx context.Context, id string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, input usecase.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
	ListCategories(ctx context.Context, input usecase.ListCategoriesInput) ([]*domain.Category, error)
}

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	categoryUC CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryUC CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryUC: categoryUC}
}

// Create creates a new category.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.categoryUC.CreateCategory(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to create category")
		return
	}

	writeJSON(w, http.StatusCreated, dto.CategoryFromDomain(category))
}

// Get retrieves a category by ID.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing category ID", "")
		return
	}

	category, err := h.categoryUC.GetCategory(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get category")
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoryFromDomain(category))
}

// Update updates a category.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing category ID", "")
		return
	}

	var req dto.UpdateCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	category, err := h.categoryUC.UpdateCategory(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeDomainError(w, err, "failed to update category")
		return
	}

	writeJSON(w, http.StatusOK, dto.CategoryFromDomain(category))
}

// Delete deletes a category.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing category ID", "")
		return
	}

	if err := h.categoryUC.DeleteCategory(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete category")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := parseIntQuery(r, "limit", 20)
	offset := parseIntQuery(r, "offset", 0)

	categories, err := h.categoryUC.ListCategories(r.Context(), usecase.ListCategoriesInput{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list categories", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListCategoriesResponse{
		Categories: dto.CategoriesFromDomain(categories),
		Total:      int64(len(categories)),
	})
}

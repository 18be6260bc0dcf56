package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/tickstock/internal/domain"
)

// CategoryUseCase handles category registry logic.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	idGen        IDGenerator
	cache        Cache
}

// NewCategoryUseCase creates a new CategoryUseCase. cache may be nil.
func NewCategoryUseCase(categoryRepo CategoryRepository, idGen IDGenerator, cache Cache) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		idGen:        idGen,
		cache:        cache,
	}
}

// CreateCategoryInput represents input for creating a category.
type CreateCategoryInput struct {
	Name         string
	PurchaseRate decimal.Decimal
	SaleRate     decimal.Decimal
}

// CreateCategory registers a new category; the series and denomination
// are parsed from names like "M25".
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, input CreateCategoryInput) (*domain.Category, error) {
	name, series, denomination, err := domain.ParseCategoryName(input.Name)
	if err != nil {
		return nil, err
	}

	if existing, err := uc.categoryRepo.GetByName(ctx, name); err == nil && existing != nil {
		return nil, domain.ErrCategoryExists
	}

	now := time.Now().UTC()
	category := &domain.Category{
		ID:           uc.idGen.Generate(),
		Name:         name,
		Series:       series,
		Denomination: denomination,
		PurchaseRate: input.PurchaseRate,
		SaleRate:     input.SaleRate,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// GetCategory retrieves a category, through the cache when available.
func (uc *CategoryUseCase) GetCategory(ctx context.Context, id string) (*domain.Category, error) {
	if uc.cache != nil {
		if raw, err := uc.cache.Get(ctx, categoryCacheKey(id)); err == nil {
			var category domain.Category
			if err := json.Unmarshal([]byte(raw), &category); err == nil {
				return &category, nil
			}
		}
	}

	category, err := uc.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if raw, err := json.Marshal(category); err == nil {
			_ = uc.cache.Set(ctx, categoryCacheKey(id), string(raw), CategoryCacheTTL)
		}
	}

	return category, nil
}

// UpdateCategoryInput represents input for updating a category.
type UpdateCategoryInput struct {
	ID           string
	Name         string
	PurchaseRate decimal.Decimal
	SaleRate     decimal.Decimal
}

// UpdateCategory renames or re-prices a category. Denomination follows
// the new name.
func (uc *CategoryUseCase) UpdateCategory(ctx context.Context, input UpdateCategoryInput) (*domain.Category, error) {
	category, err := uc.categoryRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	name, series, denomination, err := domain.ParseCategoryName(input.Name)
	if err != nil {
		return nil, err
	}

	if existing, err := uc.categoryRepo.GetByName(ctx, name); err == nil && existing != nil && existing.ID != input.ID {
		return nil, domain.ErrCategoryExists
	}

	category.Name = name
	category.Series = series
	category.Denomination = denomination
	category.PurchaseRate = input.PurchaseRate
	category.SaleRate = input.SaleRate
	category.UpdatedAt = time.Now().UTC()

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := uc.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	uc.invalidate(ctx, input.ID)

	return category, nil
}

// DeleteCategory removes a category.
func (uc *CategoryUseCase) DeleteCategory(ctx context.Context, id string) error {
	if err := uc.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}

	uc.invalidate(ctx, id)

	return nil
}

// ListCategoriesInput represents input for listing categories.
type ListCategoriesInput struct {
	Limit  int
	Offset int
}

// ListCategories lists categories with pagination.
func (uc *CategoryUseCase) ListCategories(ctx context.Context, input ListCategoriesInput) ([]*domain.Category, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	return uc.categoryRepo.List(ctx, input.Limit, input.Offset)
}

func (uc *CategoryUseCase) invalidate(ctx context.Context, id string) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, categoryCacheKey(id))
	}
}

func categoryCacheKey(id string) string {
	return fmt.Sprintf("category:%s", id)
}

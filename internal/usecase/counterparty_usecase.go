package usecase

import (
	"context"
	"time"

	"github.com/iho/tickstock/internal/domain"
)

// CounterpartyUseCase handles the distributor and party name registries.
type CounterpartyUseCase struct {
	distributorRepo DistributorRepository
	partyRepo       PartyRepository
	idGen           IDGenerator
}

// NewCounterpartyUseCase creates a new CounterpartyUseCase.
func NewCounterpartyUseCase(distributorRepo DistributorRepository, partyRepo PartyRepository, idGen IDGenerator) *CounterpartyUseCase {
	return &CounterpartyUseCase{
		distributorRepo: distributorRepo,
		partyRepo:       partyRepo,
		idGen:           idGen,
	}
}

// CreateDistributor registers a purchase-side counterparty.
func (uc *CounterpartyUseCase) CreateDistributor(ctx context.Context, name string) (*domain.Distributor, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	distributor := &domain.Distributor{
		ID:        uc.idGen.Generate(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.distributorRepo.Create(ctx, distributor); err != nil {
		return nil, err
	}

	return distributor, nil
}

// GetDistributor retrieves a distributor by ID.
func (uc *CounterpartyUseCase) GetDistributor(ctx context.Context, id string) (*domain.Distributor, error) {
	return uc.distributorRepo.GetByID(ctx, id)
}

// DeleteDistributor removes a distributor.
func (uc *CounterpartyUseCase) DeleteDistributor(ctx context.Context, id string) error {
	return uc.distributorRepo.Delete(ctx, id)
}

// ListDistributors lists distributors with pagination.
func (uc *CounterpartyUseCase) ListDistributors(ctx context.Context, limit, offset int) ([]*domain.Distributor, error) {
	return uc.distributorRepo.List(ctx, clampLimit(limit), offset)
}

// CreateParty registers a sale-side counterparty.
func (uc *CounterpartyUseCase) CreateParty(ctx context.Context, name string) (*domain.Party, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	party := &domain.Party{
		ID:        uc.idGen.Generate(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}

	if err := uc.partyRepo.Create(ctx, party); err != nil {
		return nil, err
	}

	return party, nil
}

// GetParty retrieves a party by ID.
func (uc *CounterpartyUseCase) GetParty(ctx context.Context, id string) (*domain.Party, error) {
	return uc.partyRepo.GetByID(ctx, id)
}

// DeleteParty removes a party.
func (uc *CounterpartyUseCase) DeleteParty(ctx context.Context, id string) error {
	return uc.partyRepo.Delete(ctx, id)
}

// ListParties lists parties with pagination.
func (uc *CounterpartyUseCase) ListParties(ctx context.Context, limit, offset int) ([]*domain.Party, error) {
	return uc.partyRepo.List(ctx, clampLimit(limit), offset)
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 20
	}
	if limit > 100 {
		return 100
	}

	return limit
}

package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/tickstock/internal/domain"
	"github.com/iho/tickstock/internal/infrastructure/postgres/generated"
)

// DistributorRepository implements usecase.DistributorRepository.
type DistributorRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewDistributorRepository creates a new DistributorRepository.
func NewDistributorRepository(pool *pgxpool.Pool) *DistributorRepository {
	return &DistributorRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new distributor.
func (r *DistributorRepository) Create(ctx context.Context, distributor *domain.Distributor) error {
	_, err := r.queries.CreateDistributor(ctx, generated.CreateDistributorParams{
		ID:        distributor.ID,
		Name:      distributor.Name,
		CreatedAt: timeToPgTimestamptz(distributor.CreatedAt),
	})

	return err
}

// GetByID retrieves a distributor by ID.
func (r *DistributorRepository) GetByID(ctx context.Context, id string) (*domain.Distributor, error) {
	row, err := r.queries.GetDistributorByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDistributorNotFound
		}

		return nil, err
	}

	return &domain.Distributor{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt.Time}, nil
}

// Delete deletes a distributor.
func (r *DistributorRepository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteDistributor(ctx, id)
}

// List lists distributors with pagination.
func (r *DistributorRepository) List(ctx context.Context, limit, offset int) ([]*domain.Distributor, error) {
	rows, err := r.queries.ListDistributors(ctx, generated.ListDistributorsParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	distributors := make([]*domain.Distributor, 0, len(rows))
	for _, row := range rows {
		distributors = append(distributors, &domain.Distributor{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt.Time})
	}

	return distributors, nil
}

// PartyRepository implements usecase.PartyRepository.
type PartyRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewPartyRepository creates a new PartyRepository.
func NewPartyRepository(pool *pgxpool.Pool) *PartyRepository {
	return &PartyRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create creates a new party.
func (r *PartyRepository) Create(ctx context.Context, party *domain.Party) error {
	_, err := r.queries.CreateParty(ctx, generated.CreatePartyParams{
		ID:        party.ID,
		Name:      party.Name,
		CreatedAt: timeToPgTimestamptz(party.CreatedAt),
	})

	return err
}

// GetByID retrieves a party by ID.
func (r *PartyRepository) GetByID(ctx context.Context, id string) (*domain.Party, error) {
	row, err := r.queries.GetPartyByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPartyNotFound
		}

		return nil, err
	}

	return &domain.Party{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt.Time}, nil
}

// Delete deletes a party.
func (r *PartyRepository) Delete(ctx context.Context, id string) error {
	return r.queries.DeleteParty(ctx, id)
}

// List lists parties with pagination.
func (r *PartyRepository) List(ctx context.Context, limit, offset int) ([]*domain.Party, error) {
	rows, err := r.queries.ListParties(ctx, generated.ListPartiesParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, err
	}

	parties := make([]*domain.Party, 0, len(rows))
	for _, row := range rows {
		parties = append(parties, &domain.Party{ID: row.ID, Name: row.Name, CreatedAt: row.CreatedAt.Time})
	}

	return parties, nil
}

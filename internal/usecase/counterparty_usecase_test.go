package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/iho/tickstock/internal/domain"
	"github.com/iho/tickstock/internal/usecase"
	"github.com/iho/tickstock/internal/usecase/mocks"
)

func newCounterpartyUseCase() (*usecase.CounterpartyUseCase, *mocks.MockDistributorRepository, *mocks.MockPartyRepository) {
	distributorRepo := mocks.NewMockDistributorRepository()
	partyRepo := mocks.NewMockPartyRepository()
	uc := usecase.NewCounterpartyUseCase(distributorRepo, partyRepo, mocks.NewMockIDGenerator())
	return uc, distributorRepo, partyRepo
}

func TestCounterpartyUseCase_CreateDistributor(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		errorType   error
	}{
		{name: "valid name", input: "Kerala Agencies"},
		{name: "empty name", input: "", expectError: true, errorType: domain.ErrMissingField},
		{name: "whitespace only", input: "   ", expectError: true, errorType: domain.ErrMissingField},
		{name: "name too long", input: strings.Repeat("x", 300), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, distributorRepo, _ := newCounterpartyUseCase()
			distributor, err := uc.CreateDistributor(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorType != nil && !errors.Is(err, tt.errorType) {
					t.Errorf("expected error %v, got %v", tt.errorType, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if distributor.ID == "" {
				t.Error("expected generated ID")
			}
			if got, err := distributorRepo.GetByID(context.Background(), distributor.ID); err != nil || got.Name != tt.input {
				t.Errorf("expected distributor persisted, got %v (%v)", got, err)
			}
		})
	}
}

func TestCounterpartyUseCase_CreateParty(t *testing.T) {
	uc, _, partyRepo := newCounterpartyUseCase()

	party, err := uc.CreateParty(context.Background(), "Varghese Stores")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := partyRepo.GetByID(context.Background(), party.ID); err != nil {
		t.Errorf("expected party persisted, got %v", err)
	}

	if _, err := uc.CreateParty(context.Background(), ""); !errors.Is(err, domain.ErrMissingField) {
		t.Errorf("expected ErrMissingField, got %v", err)
	}
}

func TestCounterpartyUseCase_GetAndDelete(t *testing.T) {
	uc, _, _ := newCounterpartyUseCase()

	distributor, err := uc.CreateDistributor(context.Background(), "Kerala Agencies")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := uc.GetDistributor(context.Background(), distributor.ID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := uc.DeleteDistributor(context.Background(), distributor.ID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if _, err := uc.GetDistributor(context.Background(), distributor.ID); !errors.Is(err, domain.ErrDistributorNotFound) {
		t.Errorf("expected ErrDistributorNotFound, got %v", err)
	}

	if err := uc.DeleteParty(context.Background(), "missing"); !errors.Is(err, domain.ErrPartyNotFound) {
		t.Errorf("expected ErrPartyNotFound, got %v", err)
	}
}

func TestCounterpartyUseCase_ListClampsLimit(t *testing.T) {
	uc, distributorRepo, partyRepo := newCounterpartyUseCase()

	var distributorLimit, partyLimit int
	distributorRepo.ListFunc = func(ctx context.Context, limit, offset int) ([]*domain.Distributor, error) {
		distributorLimit = limit
		return nil, nil
	}
	partyRepo.ListFunc = func(ctx context.Context, limit, offset int) ([]*domain.Party, error) {
		partyLimit = limit
		return nil, nil
	}

	if _, err := uc.ListDistributors(context.Background(), 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if distributorLimit != 20 {
		t.Errorf("expected default limit 20, got %d", distributorLimit)
	}

	if _, err := uc.ListParties(context.Background(), 1000, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if partyLimit != 100 {
		t.Errorf("expected capped limit 100, got %d", partyLimit)
	}
}

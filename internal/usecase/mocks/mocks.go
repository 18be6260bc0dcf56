package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/iho/tickstock/internal/domain"
	"github.com/iho/tickstock/internal/usecase"
)

// MockCategoryRepository is a mock implementation of CategoryRepository.
type MockCategoryRepository struct {
	mu         sync.RWMutex
	categories map[string]*domain.Category

	CreateFunc           func(ctx context.Context, category *domain.Category) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Category, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Category, error)
	GetByNameFunc        func(ctx context.Context, name string) (*domain.Category, error)
	UpdateFunc           func(ctx context.Context, category *domain.Category) error
	DeleteFunc           func(ctx context.Context, id string) error
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.Category, error)
}

func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		categories: make(map[string]*domain.Category),
	}
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id string) (*domain.Category, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.categories[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Category, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockCategoryRepository) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if m.GetByNameFunc != nil {
		return m.GetByNameFunc(ctx, name)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, c := range m.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[category.ID]; !ok {
		return domain.ErrCategoryNotFound
	}
	m.categories[category.ID] = category
	return nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return domain.ErrCategoryNotFound
	}
	delete(m.categories, id)
	return nil
}

func (m *MockCategoryRepository) List(ctx context.Context, limit, offset int) ([]*domain.Category, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var categories []*domain.Category
	for _, c := range m.categories {
		categories = append(categories, c)
	}
	return categories, nil
}

// MockDistributorRepository is a mock implementation of DistributorRepository.
type MockDistributorRepository struct {
	mu           sync.RWMutex
	distributors map[string]*domain.Distributor

	CreateFunc  func(ctx context.Context, distributor *domain.Distributor) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Distributor, error)
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.Distributor, error)
}

func NewMockDistributorRepository() *MockDistributorRepository {
	return &MockDistributorRepository{
		distributors: make(map[string]*domain.Distributor),
	}
}

func (m *MockDistributorRepository) Create(ctx context.Context, distributor *domain.Distributor) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, distributor)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.distributors[distributor.ID] = distributor
	return nil
}

func (m *MockDistributorRepository) GetByID(ctx context.Context, id string) (*domain.Distributor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if d, ok := m.distributors[id]; ok {
		return d, nil
	}
	return nil, domain.ErrDistributorNotFound
}

func (m *MockDistributorRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.distributors[id]; !ok {
		return domain.ErrDistributorNotFound
	}
	delete(m.distributors, id)
	return nil
}

func (m *MockDistributorRepository) List(ctx context.Context, limit, offset int) ([]*domain.Distributor, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var distributors []*domain.Distributor
	for _, d := range m.distributors {
		distributors = append(distributors, d)
	}
	return distributors, nil
}

// MockPartyRepository is a mock implementation of PartyRepository.
type MockPartyRepository struct {
	mu      sync.RWMutex
	parties map[string]*domain.Party

	CreateFunc  func(ctx context.Context, party *domain.Party) error
	GetByIDFunc func(ctx context.Context, id string) (*domain.Party, error)
	DeleteFunc  func(ctx context.Context, id string) error
	ListFunc    func(ctx context.Context, limit, offset int) ([]*domain.Party, error)
}

func NewMockPartyRepository() *MockPartyRepository {
	return &MockPartyRepository{
		parties: make(map[string]*domain.Party),
	}
}

func (m *MockPartyRepository) Create(ctx context.Context, party *domain.Party) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, party)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.parties[party.ID] = party
	return nil
}

func (m *MockPartyRepository) GetByID(ctx context.Context, id string) (*domain.Party, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.parties[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPartyNotFound
}

func (m *MockPartyRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.parties[id]; !ok {
		return domain.ErrPartyNotFound
	}
	delete(m.parties, id)
	return nil
}

func (m *MockPartyRepository) List(ctx context.Context, limit, offset int) ([]*domain.Party, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var parties []*domain.Party
	for _, p := range m.parties {
		parties = append(parties, p)
	}
	return parties, nil
}

// MockStockEntryRepository is a mock implementation of StockEntryRepository.
type MockStockEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.StockEntry

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, entry *domain.StockEntry) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.StockEntry, error)
	ListByCategoryFunc   func(ctx context.Context, categoryID string) ([]*domain.StockEntry, error)
	ListByCategoryTxFunc func(ctx context.Context, tx usecase.Transaction, categoryID string) ([]*domain.StockEntry, error)
	ListFunc             func(ctx context.Context, filter usecase.EntryFilter) ([]*domain.StockEntry, error)
	UpdateFunc           func(ctx context.Context, tx usecase.Transaction, entry *domain.StockEntry) error
	DeleteFunc           func(ctx context.Context, id string) error
	TotalsByCategoryFunc func(ctx context.Context) ([]*domain.CategoryTotals, error)
}

func NewMockStockEntryRepository() *MockStockEntryRepository {
	return &MockStockEntryRepository{
		entries: make(map[string]*domain.StockEntry),
	}
}

func (m *MockStockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.StockEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockStockEntryRepository) GetByID(ctx context.Context, id string) (*domain.StockEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockStockEntryRepository) ListByCategory(ctx context.Context, categoryID string) ([]*domain.StockEntry, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, categoryID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.StockEntry
	for _, e := range m.entries {
		if e.CategoryID == categoryID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockStockEntryRepository) ListByCategoryTx(ctx context.Context, tx usecase.Transaction, categoryID string) ([]*domain.StockEntry, error) {
	if m.ListByCategoryTxFunc != nil {
		return m.ListByCategoryTxFunc(ctx, tx, categoryID)
	}
	return m.ListByCategory(ctx, categoryID)
}

func (m *MockStockEntryRepository) List(ctx context.Context, filter usecase.EntryFilter) ([]*domain.StockEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.StockEntry
	for _, e := range m.entries {
		if filter.CategoryID != "" && e.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Date != nil && !e.EntryDate.Equal(*filter.Date) {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (m *MockStockEntryRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.StockEntry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return domain.ErrEntryNotFound
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockStockEntryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MockStockEntryRepository) TotalsByCategory(ctx context.Context) ([]*domain.CategoryTotals, error) {
	if m.TotalsByCategoryFunc != nil {
		return m.TotalsByCategoryFunc(ctx)
	}
	return nil, nil
}

// MockSaleEntryRepository is a mock implementation of SaleEntryRepository.
type MockSaleEntryRepository struct {
	mu      sync.RWMutex
	entries map[string]*domain.SaleEntry

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, entry *domain.SaleEntry) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.SaleEntry, error)
	ListByCategoryFunc   func(ctx context.Context, categoryID string) ([]*domain.SaleEntry, error)
	ListByCategoryTxFunc func(ctx context.Context, tx usecase.Transaction, categoryID string) ([]*domain.SaleEntry, error)
	ListFunc             func(ctx context.Context, filter usecase.EntryFilter) ([]*domain.SaleEntry, error)
	UpdateFunc           func(ctx context.Context, tx usecase.Transaction, entry *domain.SaleEntry) error
	DeleteFunc           func(ctx context.Context, id string) error
	TotalsByCategoryFunc func(ctx context.Context) ([]*domain.CategoryTotals, error)
}

func NewMockSaleEntryRepository() *MockSaleEntryRepository {
	return &MockSaleEntryRepository{
		entries: make(map[string]*domain.SaleEntry),
	}
}

func (m *MockSaleEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.SaleEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockSaleEntryRepository) GetByID(ctx context.Context, id string) (*domain.SaleEntry, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.entries[id]; ok {
		return e, nil
	}
	return nil, domain.ErrEntryNotFound
}

func (m *MockSaleEntryRepository) ListByCategory(ctx context.Context, categoryID string) ([]*domain.SaleEntry, error) {
	if m.ListByCategoryFunc != nil {
		return m.ListByCategoryFunc(ctx, categoryID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.SaleEntry
	for _, e := range m.entries {
		if e.CategoryID == categoryID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

func (m *MockSaleEntryRepository) ListByCategoryTx(ctx context.Context, tx usecase.Transaction, categoryID string) ([]*domain.SaleEntry, error) {
	if m.ListByCategoryTxFunc != nil {
		return m.ListByCategoryTxFunc(ctx, tx, categoryID)
	}
	return m.ListByCategory(ctx, categoryID)
}

func (m *MockSaleEntryRepository) List(ctx context.Context, filter usecase.EntryFilter) ([]*domain.SaleEntry, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.SaleEntry
	for _, e := range m.entries {
		if filter.CategoryID != "" && e.CategoryID != filter.CategoryID {
			continue
		}
		if filter.Date != nil && !e.EntryDate.Equal(*filter.Date) {
			continue
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (m *MockSaleEntryRepository) Update(ctx context.Context, tx usecase.Transaction, entry *domain.SaleEntry) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[entry.ID]; !ok {
		return domain.ErrEntryNotFound
	}
	m.entries[entry.ID] = entry
	return nil
}

func (m *MockSaleEntryRepository) Delete(ctx context.Context, id string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.entries[id]; !ok {
		return domain.ErrEntryNotFound
	}
	delete(m.entries, id)
	return nil
}

func (m *MockSaleEntryRepository) TotalsByCategory(ctx context.Context) ([]*domain.CategoryTotals, error) {
	if m.TotalsByCategoryFunc != nil {
		return m.TotalsByCategoryFunc(ctx)
	}
	return nil, nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	GenerateFunc func() string
	counter      int
	mu           sync.Mutex
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}

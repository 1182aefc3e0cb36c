package storage

import (
	"sort"
	"sync"

	"github.com/OWOTL/nuomi/internal/domain/voucher"
	"github.com/OWOTL/nuomi/internal/refstore"
)

// MockRepository is an in-memory Repository for tests.
type MockRepository struct {
	mu     sync.Mutex
	tables refstore.Tables
	runs   []GenerationRun

	// Optional error injection
	LoadErr error
	SaveErr error
}

// Compile-time check that MockRepository implements Repository
var _ Repository = (*MockRepository)(nil)

// NewMockRepository creates an empty mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// SeedTables pre-populates the mock's reference tables
func (m *MockRepository) SeedTables(t refstore.Tables) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tables = t
}

// LoadTables implements TableRepository
func (m *MockRepository) LoadTables() (refstore.Tables, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return refstore.Tables{}, m.LoadErr
	}
	return m.tables, nil
}

// SaveAccounts implements TableRepository
func (m *MockRepository) SaveAccounts(accounts []voucher.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.tables.Accounts = accounts
	return nil
}

// SaveCustomers implements TableRepository
func (m *MockRepository) SaveCustomers(customers []voucher.Customer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.tables.Customers = customers
	return nil
}

// SaveRules implements TableRepository
func (m *MockRepository) SaveRules(rules []voucher.Rule) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.tables.Rules = rules
	return nil
}

// RecordRun implements RunRepository
func (m *MockRepository) RecordRun(run *GenerationRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.runs = append(m.runs, *run)
	return nil
}

// ListRuns implements RunRepository
func (m *MockRepository) ListRuns(limit int) ([]GenerationRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if limit <= 0 {
		limit = 50
	}

	runs := make([]GenerationRun, len(m.runs))
	copy(runs, m.runs)
	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].StartedAt.After(runs[j].StartedAt)
	})
	if len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}

// Close implements Repository
func (m *MockRepository) Close() error {
	return nil
}

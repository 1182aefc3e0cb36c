// Package refstore holds the three reference tables the generator reads: the
// chart of accounts, the customer directory and the ordered rule table.
//
// The store is safe for concurrent use, but the engine never sees it directly;
// a generation run takes a Snapshot and works on its own copies, so edits made
// mid-run cannot tear a pass.
package refstore

import (
	"sync"

	"github.com/OWOTL/nuomi/internal/domain/voucher"
)

// Tables is one consistent view of the three reference tables. Slices in a
// snapshot are owned by the caller.
type Tables struct {
	Accounts  []voucher.Account
	Customers []voucher.Customer
	Rules     []voucher.Rule
}

// Store is the mutable home of the reference tables between generation runs.
type Store struct {
	mu     sync.RWMutex
	tables Tables
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// NewFromTables returns a store seeded with t, copying the slices.
func NewFromTables(t Tables) *Store {
	s := New()
	s.ReplaceAccounts(t.Accounts)
	s.ReplaceCustomers(t.Customers)
	s.ReplaceRules(t.Rules)
	return s
}

// Snapshot returns an independent copy of all three tables for one generation
// run.
func (s *Store) Snapshot() Tables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Tables{
		Accounts:  copyAccounts(s.tables.Accounts),
		Customers: copyCustomers(s.tables.Customers),
		Rules:     copyRules(s.tables.Rules),
	}
}

// ReplaceAccounts swaps in a whole new chart of accounts, keeping list order.
func (s *Store) ReplaceAccounts(accounts []voucher.Account) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables.Accounts = copyAccounts(accounts)
}

// ReplaceCustomers swaps in a whole new customer directory, keeping list order.
func (s *Store) ReplaceCustomers(customers []voucher.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables.Customers = copyCustomers(customers)
}

// ReplaceRules swaps in a whole new rule table. Order matters: it is the
// matcher's tie-break.
func (s *Store) ReplaceRules(rules []voucher.Rule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables.Rules = copyRules(rules)
}

// AppendAccounts adds accounts to the chart, dropping any whose code is
// already present. The first occurrence of a code wins, the import semantics
// of a batch upload.
func (s *Store) AppendAccounts(accounts []voucher.Account) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(s.tables.Accounts))
	for _, a := range s.tables.Accounts {
		seen[a.Code] = true
	}

	added := 0
	for _, a := range accounts {
		if seen[a.Code] {
			continue
		}
		seen[a.Code] = true
		s.tables.Accounts = append(s.tables.Accounts, a)
		added++
	}
	return added
}

// AppendCustomers adds customers to the directory with the same
// dedupe-by-code, first-wins semantics as AppendAccounts.
func (s *Store) AppendCustomers(customers []voucher.Customer) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool, len(s.tables.Customers))
	for _, c := range s.tables.Customers {
		seen[c.Code] = true
	}

	added := 0
	for _, c := range customers {
		if seen[c.Code] {
			continue
		}
		seen[c.Code] = true
		s.tables.Customers = append(s.tables.Customers, c)
		added++
	}
	return added
}

func copyAccounts(in []voucher.Account) []voucher.Account {
	out := make([]voucher.Account, len(in))
	copy(out, in)
	return out
}

func copyCustomers(in []voucher.Customer) []voucher.Customer {
	out := make([]voucher.Customer, len(in))
	copy(out, in)
	return out
}

func copyRules(in []voucher.Rule) []voucher.Rule {
	out := make([]voucher.Rule, len(in))
	copy(out, in)
	return out
}

package storage

import (
	"github.com/OWOTL/nuomi/internal/domain/voucher"
	"github.com/OWOTL/nuomi/internal/refstore"
)

// Repository defines the complete storage interface.
// This interface allows swapping implementations (SQLite, PostgreSQL, etc.)
// and makes testing with mocks straightforward.
type Repository interface {
	TableRepository
	RunRepository
	Close() error
}

// TableRepository persists the three reference tables between processes.
// Row order is part of the data: rules are matched in list order and the
// account/customer tables keep insertion order for display.
type TableRepository interface {
	// LoadTables reads all three reference tables
	LoadTables() (refstore.Tables, error)

	// SaveAccounts replaces the stored chart of accounts
	SaveAccounts(accounts []voucher.Account) error

	// SaveCustomers replaces the stored customer directory
	SaveCustomers(customers []voucher.Customer) error

	// SaveRules replaces the stored rule table
	SaveRules(rules []voucher.Rule) error
}

// RunRepository keeps the history of generation runs so skipped-row counts
// stay auditable after the fact.
type RunRepository interface {
	// RecordRun stores one finished generation run
	RecordRun(run *GenerationRun) error

	// ListRuns returns recent runs, newest first
	ListRuns(limit int) ([]GenerationRun, error)
}

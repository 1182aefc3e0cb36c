package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/OWOTL/nuomi/internal/domain/voucher"
	"github.com/OWOTL/nuomi/internal/refstore"
)

// Storage provides SQLite database access for the reference tables and run
// history. It implements the Repository interface.
type Storage struct {
	db *sql.DB
}

// Compile-time check that Storage implements Repository
var _ Repository = (*Storage)(nil)

// NewStorage creates a new storage instance with SQLite database
func NewStorage(dbPath string) (*Storage, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}

	// Enable foreign key constraints (SQLite-specific)
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	s := &Storage{db: db}

	if err := s.runMigrations(); err != nil {
		_ = db.Close()
		return nil, err
	}

	return s, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

// LoadTables reads all three reference tables in stored order
func (s *Storage) LoadTables() (refstore.Tables, error) {
	var t refstore.Tables

	rows, err := s.db.Query(`SELECT code, name FROM accounts ORDER BY position`)
	if err != nil {
		return t, fmt.Errorf("load accounts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a voucher.Account
		if err := rows.Scan(&a.Code, &a.Name); err != nil {
			return t, err
		}
		t.Accounts = append(t.Accounts, a)
	}
	if err := rows.Err(); err != nil {
		return t, err
	}

	rows, err = s.db.Query(`SELECT code, name FROM customers ORDER BY position`)
	if err != nil {
		return t, fmt.Errorf("load customers: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var c voucher.Customer
		if err := rows.Scan(&c.Code, &c.Name); err != nil {
			return t, err
		}
		t.Customers = append(t.Customers, c)
	}
	if err := rows.Err(); err != nil {
		return t, err
	}

	rows, err = s.db.Query(`SELECT keyword, debit_account, credit_account FROM rules ORDER BY position`)
	if err != nil {
		return t, fmt.Errorf("load rules: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r voucher.Rule
		if err := rows.Scan(&r.Keyword, &r.DebitAccount, &r.CreditAccount); err != nil {
			return t, err
		}
		t.Rules = append(t.Rules, r)
	}
	return t, rows.Err()
}

// SaveAccounts replaces the stored chart of accounts
func (s *Storage) SaveAccounts(accounts []voucher.Account) error {
	return s.replaceTable("accounts", len(accounts), func(stmt *sql.Stmt, i int) error {
		_, err := stmt.Exec(i, accounts[i].Code, accounts[i].Name)
		return err
	}, `INSERT INTO accounts (position, code, name) VALUES (?, ?, ?)`)
}

// SaveCustomers replaces the stored customer directory
func (s *Storage) SaveCustomers(customers []voucher.Customer) error {
	return s.replaceTable("customers", len(customers), func(stmt *sql.Stmt, i int) error {
		_, err := stmt.Exec(i, customers[i].Code, customers[i].Name)
		return err
	}, `INSERT INTO customers (position, code, name) VALUES (?, ?, ?)`)
}

// SaveRules replaces the stored rule table, preserving list order
func (s *Storage) SaveRules(rules []voucher.Rule) error {
	return s.replaceTable("rules", len(rules), func(stmt *sql.Stmt, i int) error {
		_, err := stmt.Exec(i, rules[i].Keyword, rules[i].DebitAccount, rules[i].CreditAccount)
		return err
	}, `INSERT INTO rules (position, keyword, debit_account, credit_account) VALUES (?, ?, ?, ?)`)
}

// replaceTable swaps a whole table's contents inside one transaction, so a
// failed save never leaves a half-written table behind.
func (s *Storage) replaceTable(table string, n int, bind func(*sql.Stmt, int) error, insert string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec(`DELETE FROM ` + table); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear %s: %w", table, err)
	}

	stmt, err := tx.Prepare(insert)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for i := 0; i < n; i++ {
		if err := bind(stmt, i); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert into %s: %w", table, err)
		}
	}

	return tx.Commit()
}

// RecordRun stores one finished generation run
func (s *Storage) RecordRun(run *GenerationRun) error {
	_, err := s.db.Exec(`
	INSERT INTO generation_runs (id, started_at, finished_at, start_no, matched, skipped, line_count)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.StartedAt, run.FinishedAt, run.StartNo, run.Matched, run.Skipped, run.LineCount)
	return err
}

// ListRuns returns recent runs, newest first
func (s *Storage) ListRuns(limit int) ([]GenerationRun, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(`
	SELECT id, started_at, finished_at, start_no, matched, skipped, line_count
	FROM generation_runs ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []GenerationRun
	for rows.Next() {
		var r GenerationRun
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.StartNo, &r.Matched, &r.Skipped, &r.LineCount); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

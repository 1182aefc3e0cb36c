// Package service wires the reference store, the generation engine and
// persistence together behind one application-facing API.
package service

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/OWOTL/nuomi/internal/domain/voucher"
	"github.com/OWOTL/nuomi/internal/infrastructure/storage"
	"github.com/OWOTL/nuomi/internal/refstore"
)

// VoucherService owns the live reference tables and runs generation passes
// against per-call snapshots of them.
type VoucherService struct {
	store  *refstore.Store
	repo   storage.Repository
	logger *slog.Logger
}

// NewVoucherService builds the service, loading the persisted reference
// tables into memory.
func NewVoucherService(repo storage.Repository, logger *slog.Logger) (*VoucherService, error) {
	if logger == nil {
		logger = slog.Default()
	}

	tables, err := repo.LoadTables()
	if err != nil {
		return nil, fmt.Errorf("load reference tables: %w", err)
	}

	return &VoucherService{
		store:  refstore.NewFromTables(tables),
		repo:   repo,
		logger: logger,
	}, nil
}

// GenerateRequest carries one generation run's inputs. Records are raw
// field-name→value rows; the engine validates the schema before touching any
// of them.
type GenerateRequest struct {
	StartNo int
	Records []map[string]string
}

// GenerateResult is one finished run: the engine output plus the history id
// it was recorded under.
type GenerateResult struct {
	RunID   string
	Lines   []voucher.LedgerLine
	Matched int
	Skipped int
}

// Generate runs one pass over the supplied records against a snapshot of the
// current reference tables and records the outcome counters in history.
func (s *VoucherService) Generate(req GenerateRequest) (*GenerateResult, error) {
	txs, err := voucher.FromRecords(req.Records)
	if err != nil {
		return nil, err
	}

	startedAt := time.Now().UTC()
	tables := s.store.Snapshot()

	result, err := voucher.Generate(txs, tables.Rules, tables.Customers, req.StartNo)
	if err != nil {
		return nil, err
	}

	run := &storage.GenerationRun{
		ID:         uuid.NewString(),
		StartedAt:  startedAt,
		FinishedAt: time.Now().UTC(),
		StartNo:    req.StartNo,
		Matched:    result.Matched,
		Skipped:    result.Skipped,
		LineCount:  len(result.Lines),
	}
	// History is an audit aid; a failed insert must not discard a finished run.
	if err := s.repo.RecordRun(run); err != nil {
		s.logger.Warn("failed to record generation run", "run_id", run.ID, "error", err)
	}

	s.logger.Info("generation run finished",
		"run_id", run.ID,
		"matched", result.Matched,
		"skipped", result.Skipped,
		"lines", len(result.Lines))

	return &GenerateResult{
		RunID:   run.ID,
		Lines:   result.Lines,
		Matched: result.Matched,
		Skipped: result.Skipped,
	}, nil
}

// Tables returns a snapshot of the current reference tables.
func (s *VoucherService) Tables() refstore.Tables {
	return s.store.Snapshot()
}

// ReplaceAccounts swaps the chart of accounts and persists it.
func (s *VoucherService) ReplaceAccounts(accounts []voucher.Account) error {
	s.store.ReplaceAccounts(accounts)
	return s.repo.SaveAccounts(s.store.Snapshot().Accounts)
}

// ReplaceCustomers swaps the customer directory and persists it.
func (s *VoucherService) ReplaceCustomers(customers []voucher.Customer) error {
	s.store.ReplaceCustomers(customers)
	return s.repo.SaveCustomers(s.store.Snapshot().Customers)
}

// ReplaceRules swaps the rule table and persists it, preserving list order.
func (s *VoucherService) ReplaceRules(rules []voucher.Rule) error {
	s.store.ReplaceRules(rules)
	return s.repo.SaveRules(s.store.Snapshot().Rules)
}

// ImportAccounts appends uploaded accounts, skipping codes already present,
// and persists the merged table. Returns how many rows were actually added.
func (s *VoucherService) ImportAccounts(accounts []voucher.Account) (int, error) {
	added := s.store.AppendAccounts(accounts)
	return added, s.repo.SaveAccounts(s.store.Snapshot().Accounts)
}

// ImportCustomers appends uploaded customers with the same dedupe-by-code
// semantics as ImportAccounts.
func (s *VoucherService) ImportCustomers(customers []voucher.Customer) (int, error) {
	added := s.store.AppendCustomers(customers)
	return added, s.repo.SaveCustomers(s.store.Snapshot().Customers)
}

// Backup captures the three reference tables as the portable document shape.
func (s *VoucherService) Backup() refstore.Document {
	return s.store.Backup()
}

// Restore replaces all three reference tables from a backup document and
// persists them.
func (s *VoucherService) Restore(doc refstore.Document) error {
	s.store.Restore(doc)
	t := s.store.Snapshot()
	if err := s.repo.SaveAccounts(t.Accounts); err != nil {
		return err
	}
	if err := s.repo.SaveCustomers(t.Customers); err != nil {
		return err
	}
	return s.repo.SaveRules(t.Rules)
}

// Runs returns recent generation runs, newest first.
func (s *VoucherService) Runs(limit int) ([]storage.GenerationRun, error) {
	return s.repo.ListRuns(limit)
}

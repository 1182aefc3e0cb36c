package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/OWOTL/nuomi/internal/domain/voucher"
	"github.com/OWOTL/nuomi/internal/export"
	"github.com/OWOTL/nuomi/internal/ingest"
)

// RunGenerate performs a one-shot generation from files on disk: loads the
// reference tables and the bank statement, matches, and writes the ledger.
func RunGenerate(flags *GenerateFlags) error {
	if flags.Rules == "" {
		return errors.New("missing -rules file")
	}
	if flags.Statement == "" {
		return errors.New("missing -statement file")
	}

	var customers []voucher.Customer
	if flags.Customers != "" {
		_, rows, err := readTableFile(flags.Customers)
		if err != nil {
			return fmt.Errorf("customers: %w", err)
		}
		customers = ingest.ParseCustomers(rows)
	}

	ruleHeader, ruleRows, err := readTableFile(flags.Rules)
	if err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	rules := ingest.ParseRules(ruleHeader, ruleRows)

	stmtHeader, stmtRows, err := readTableFile(flags.Statement)
	if err != nil {
		return fmt.Errorf("statement: %w", err)
	}
	txs, err := ingest.ParseStatement(stmtHeader, stmtRows)
	if err != nil {
		return fmt.Errorf("statement: %w", err)
	}

	result, err := voucher.Generate(txs, rules, customers, flags.StartNo)
	if err != nil {
		return err
	}

	outPath := flags.Output
	if outPath == "" {
		outPath = fmt.Sprintf("凭证结果_%s.xlsx", time.Now().Format("01021504"))
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer out.Close()

	if strings.EqualFold(filepath.Ext(outPath), ".csv") {
		err = export.WriteCSV(out, result.Lines)
	} else {
		err = export.WriteXLSX(out, result.Lines)
	}
	if err != nil {
		return err
	}

	PrintSummary(result, outPath)
	return nil
}

// readTableFile opens a csv or xlsx file and returns header plus data rows.
func readTableFile(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	return ingest.ReadTable(f, filepath.Base(path))
}

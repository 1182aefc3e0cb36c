// Package export serializes generated ledger lines to spreadsheet artifacts,
// one row per line, in the fixed column order downstream accounting tools
// expect.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/OWOTL/nuomi/internal/domain/voucher"
)

// SheetName is the single sheet vouchers are written to.
const SheetName = "凭证结果"

// Columns is the fixed output column order.
var Columns = []string{"凭证号", "日期", "摘要", "科目", "借方", "贷方", "客户编码", "客户名称"}

func lineCells(l voucher.LedgerLine) []string {
	return []string{l.VoucherNo, l.Date, l.Memo, l.Account, l.Debit, l.Credit, l.CustomerCode, l.CustomerName}
}

// WriteXLSX writes lines as an xlsx workbook with a header row.
func WriteXLSX(w io.Writer, lines []voucher.LedgerLine) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(Columns))
	for i, c := range Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, line := range lines {
		cells := lineCells(line)
		row := make([]any, len(cells))
		for j, c := range cells {
			// Cells stay strings so codes and amounts pass through untouched.
			row[j] = c
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(SheetName, addr, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	return f.Write(w)
}

// WriteCSV writes lines as UTF-8 CSV with a header row.
func WriteCSV(w io.Writer, lines []voucher.LedgerLine) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, line := range lines {
		if err := cw.Write(lineCells(line)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

package ingest

import (
	"strings"

	"github.com/OWOTL/nuomi/internal/domain/voucher"
)

// Header aliases per logical statement field. Chinese names come from the bank
// exports this tool was built around; English ones cover re-exported data.
var statementAliases = map[string][]string{
	voucher.FieldDate:         {"时间", "日期", "date", "time"},
	voucher.FieldMemo:         {"摘要", "memo", "description"},
	voucher.FieldAmount:       {"金额", "amount"},
	voucher.FieldCounterparty: {"单位", "客户名称", "客户", "counterparty", "customer"},
}

var ruleAliases = map[string][]string{
	"keyword": {"关键词", "keyword"},
	"debit":   {"借方科目", "debit", "debit_account"},
	"credit":  {"贷方科目", "credit", "credit_account"},
}

// ParseAccounts maps data rows to accounts. The upload contract is positional:
// the first two columns are code and name, whatever the header says. Rows
// without both cells are dropped.
func ParseAccounts(rows [][]string) []voucher.Account {
	accounts := make([]voucher.Account, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 || (row[0] == "" && row[1] == "") {
			continue
		}
		accounts = append(accounts, voucher.Account{Code: row[0], Name: row[1]})
	}
	return accounts
}

// ParseCustomers maps data rows to customers with the same first-two-columns
// contract as ParseAccounts.
func ParseCustomers(rows [][]string) []voucher.Customer {
	customers := make([]voucher.Customer, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 || (row[0] == "" && row[1] == "") {
			continue
		}
		customers = append(customers, voucher.Customer{Code: row[0], Name: row[1]})
	}
	return customers
}

// ParseRules maps data rows to the ordered rule table. Columns are located by
// header alias, falling back to positions 0/1/2 when the header is foreign.
// Row order is preserved: it is the matcher's tie-break.
func ParseRules(header []string, rows [][]string) []voucher.Rule {
	kw := columnIndex(header, ruleAliases["keyword"], 0)
	debit := columnIndex(header, ruleAliases["debit"], 1)
	credit := columnIndex(header, ruleAliases["credit"], 2)

	rules := make([]voucher.Rule, 0, len(rows))
	for _, row := range rows {
		r := voucher.Rule{
			Keyword:       cell(row, kw),
			DebitAccount:  cell(row, debit),
			CreditAccount: cell(row, credit),
		}
		if r.Keyword == "" && r.DebitAccount == "" && r.CreditAccount == "" {
			continue
		}
		rules = append(rules, r)
	}
	return rules
}

// ParseStatement maps bank-file rows to transactions. The four logical fields
// must all be present in the header; if any are missing the whole file is
// refused with a SchemaError before a single row is converted.
func ParseStatement(header []string, rows [][]string) ([]voucher.Transaction, error) {
	indexes := make(map[string]int, len(statementAliases))
	var missing []string
	for _, field := range voucher.RequiredFields() {
		idx := columnIndex(header, statementAliases[field], -1)
		if idx < 0 {
			missing = append(missing, field)
			continue
		}
		indexes[field] = idx
	}
	if len(missing) > 0 {
		return nil, &voucher.SchemaError{Missing: missing}
	}

	txs := make([]voucher.Transaction, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		txs = append(txs, voucher.Transaction{
			Date:         cell(row, indexes[voucher.FieldDate]),
			Memo:         cell(row, indexes[voucher.FieldMemo]),
			Amount:       cell(row, indexes[voucher.FieldAmount]),
			Counterparty: cell(row, indexes[voucher.FieldCounterparty]),
		})
	}
	return txs, nil
}

// columnIndex finds the first header cell matching any alias
// (case-insensitive), or returns fallback.
func columnIndex(header []string, aliases []string, fallback int) int {
	for i, h := range header {
		for _, alias := range aliases {
			if strings.EqualFold(h, alias) {
				return i
			}
		}
	}
	if fallback >= 0 && fallback < len(header) {
		return fallback
	}
	return -1
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}

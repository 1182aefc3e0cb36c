// Package voucher turns raw bank-statement rows into balanced double-entry
// vouchers.
//
// Each statement row is classified by an ordered list of keyword rules. A row
// whose memo contains a rule's keyword produces one voucher: a debit line and a
// credit line sharing a zero-padded voucher number. Rows no rule claims are
// skipped and counted, never silently dropped.
//
// Example usage:
//
//	result, err := voucher.Generate(txs, rules, customers, 1)
//	if err != nil {
//		// schema or configuration problem, nothing was generated
//	}
//	fmt.Println(result.Matched, result.Skipped)
package voucher

// Account is one row of the chart of accounts. Codes are opaque strings and
// must keep their leading zeros.
type Account struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Customer is one row of the customer directory, looked up by name.
type Customer struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Rule maps a memo keyword to a debit/credit account pair. The account fields
// hold the resolved "<code> <name>" label chosen when the rule was authored;
// they are not re-checked against the chart of accounts at generation time.
//
// Rules are evaluated in slice order and the first match wins, so the order
// the user arranged them in is part of the data.
type Rule struct {
	Keyword       string `json:"keyword"`
	DebitAccount  string `json:"debit_account"`
	CreditAccount string `json:"credit_account"`
}

// Transaction is one bank-statement row. All fields are carried as strings;
// Amount in particular is never parsed, it is copied verbatim into exactly one
// side of the generated pair.
type Transaction struct {
	Date         string `json:"date"`
	Memo         string `json:"memo"`
	Amount       string `json:"amount"`
	Counterparty string `json:"counterparty"`
}

// LedgerLine is a single debit or credit posting. A matched transaction emits
// two lines that agree on everything except which of Debit/Credit holds the
// amount.
type LedgerLine struct {
	VoucherNo    string `json:"voucher_no"`
	Date         string `json:"date"`
	Memo         string `json:"memo"`
	Account      string `json:"account"`
	Debit        string `json:"debit"`
	Credit       string `json:"credit"`
	CustomerCode string `json:"customer_code"`
	CustomerName string `json:"customer_name"`
}

// Result is the outcome of one generation pass.
type Result struct {
	Lines   []LedgerLine `json:"lines"`
	Matched int          `json:"matched"`
	Skipped int          `json:"skipped"`
}

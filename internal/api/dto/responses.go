package dto

// LedgerLine is one generated posting row on the wire. Debit/credit amounts
// are the input amount string passed through verbatim, "0" on the other side.
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

// GenerateResponse reports one finished generation pass. MatchedCount and
// SkippedCount are always surfaced so operators notice rows that produced no
// accounting entry.
type GenerateResponse struct {
	RunID        string       `json:"run_id"`
	VoucherCount int          `json:"voucher_count"`
	MatchedCount int          `json:"matched_count"`
	SkippedCount int          `json:"skipped_count"`
	Lines        []LedgerLine `json:"lines"`
}

// AccountListResponse lists the chart of accounts in stored order.
type AccountListResponse struct {
	Accounts   []Account `json:"accounts"`
	TotalCount int       `json:"total_count"`
}

// CustomerListResponse lists the customer directory in stored order.
type CustomerListResponse struct {
	Customers  []Customer `json:"customers"`
	TotalCount int        `json:"total_count"`
}

// RuleListResponse lists the rule table in match order.
type RuleListResponse struct {
	Rules      []Rule `json:"rules"`
	TotalCount int    `json:"total_count"`
}

// ImportResponse reports a batch upload: how many rows were appended after
// dedupe, and the table size afterwards.
type ImportResponse struct {
	Added      int `json:"added"`
	TotalCount int `json:"total_count"`
}

// Run is one generation-run history entry.
type Run struct {
	ID         string `json:"id"`
	StartedAt  string `json:"started_at"`
	FinishedAt string `json:"finished_at"`
	StartNo    int    `json:"start_no"`
	Matched    int    `json:"matched"`
	Skipped    int    `json:"skipped"`
	LineCount  int    `json:"line_count"`
}

// RunListResponse lists recent generation runs, newest first.
type RunListResponse struct {
	Runs       []Run `json:"runs"`
	TotalCount int   `json:"total_count"`
}

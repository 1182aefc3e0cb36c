package dto

// Account is one chart-of-accounts row on the wire. Codes stay strings end to
// end; the API never coerces them to numbers.
type Account struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Customer is one customer-directory row on the wire.
type Customer struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Rule is one rule-table row on the wire. Array order is meaningful and is
// preserved verbatim: it is the matcher's tie-break.
type Rule struct {
	Keyword       string `json:"keyword"`
	DebitAccount  string `json:"debit_account"`
	CreditAccount string `json:"credit_account"`
}

// AccountsRequest replaces the whole chart of accounts (PUT /api/accounts).
type AccountsRequest struct {
	Accounts []Account `json:"accounts"`
}

// CustomersRequest replaces the whole customer directory (PUT /api/customers).
type CustomersRequest struct {
	Customers []Customer `json:"customers"`
}

// RulesRequest replaces the whole rule table (PUT /api/rules).
type RulesRequest struct {
	Rules []Rule `json:"rules"`
}

// GenerateRequest starts one generation pass (POST /api/generate).
//
// Transactions are raw field→value records rather than a typed struct so the
// engine can tell "field absent from the schema" apart from "field empty" and
// refuse incomplete files with the missing names.
type GenerateRequest struct {
	StartNo      int                 `json:"start_no"`
	Transactions []map[string]string `json:"transactions"`
}

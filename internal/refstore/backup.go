package refstore

import "github.com/OWOTL/nuomi/internal/domain/voucher"

// Document is the portable backup shape for the three reference tables: plain
// record lists under the keys coa, cust and rules. Round-tripping a store
// through a Document must reproduce it exactly: same rows, same order, codes
// untouched as strings.
type Document struct {
	COA   []map[string]string `json:"coa"`
	Cust  []map[string]string `json:"cust"`
	Rules []map[string]string `json:"rules"`
}

// Record field names used inside a Document.
const (
	fieldCode    = "code"
	fieldName    = "name"
	fieldKeyword = "keyword"
	fieldDebit   = "debit_account"
	fieldCredit  = "credit_account"
)

// Backup captures the current tables as a Document.
func (s *Store) Backup() Document {
	t := s.Snapshot()

	doc := Document{
		COA:   make([]map[string]string, 0, len(t.Accounts)),
		Cust:  make([]map[string]string, 0, len(t.Customers)),
		Rules: make([]map[string]string, 0, len(t.Rules)),
	}
	for _, a := range t.Accounts {
		doc.COA = append(doc.COA, map[string]string{fieldCode: a.Code, fieldName: a.Name})
	}
	for _, c := range t.Customers {
		doc.Cust = append(doc.Cust, map[string]string{fieldCode: c.Code, fieldName: c.Name})
	}
	for _, r := range t.Rules {
		doc.Rules = append(doc.Rules, map[string]string{
			fieldKeyword: r.Keyword,
			fieldDebit:   r.DebitAccount,
			fieldCredit:  r.CreditAccount,
		})
	}
	return doc
}

// Restore replaces all three tables with the contents of doc.
func (s *Store) Restore(doc Document) {
	accounts := make([]voucher.Account, 0, len(doc.COA))
	for _, rec := range doc.COA {
		accounts = append(accounts, voucher.Account{Code: rec[fieldCode], Name: rec[fieldName]})
	}
	customers := make([]voucher.Customer, 0, len(doc.Cust))
	for _, rec := range doc.Cust {
		customers = append(customers, voucher.Customer{Code: rec[fieldCode], Name: rec[fieldName]})
	}
	rules := make([]voucher.Rule, 0, len(doc.Rules))
	for _, rec := range doc.Rules {
		rules = append(rules, voucher.Rule{
			Keyword:       rec[fieldKeyword],
			DebitAccount:  rec[fieldDebit],
			CreditAccount: rec[fieldCredit],
		})
	}

	s.ReplaceAccounts(accounts)
	s.ReplaceCustomers(customers)
	s.ReplaceRules(rules)
}

package voucher

import "fmt"

// Generate runs one pass over txs in order and emits a balanced pair of ledger
// lines for every transaction a rule claims. startNo seeds the voucher
// numbering and must be at least 1.
//
// Per matched transaction the debit line is emitted first, then the credit
// line; both share the voucher number, date, memo and counterparty fields, and
// the amount string is copied verbatim into one side with "0" on the other.
// Unmatched transactions consume no voucher number and produce no output, only
// a skip count the caller is expected to surface.
//
// The tables are only read. Callers that mutate them between runs must pass a
// consistent snapshot; Generate itself keeps no state across calls.
func Generate(txs []Transaction, rules []Rule, customers []Customer, startNo int) (Result, error) {
	if startNo < 1 {
		return Result{}, fmt.Errorf("start number must be positive, got %d", startNo)
	}
	if len(rules) == 0 {
		return Result{}, ErrEmptyRuleSet
	}

	numbering := NewNumbering(startNo)
	result := Result{Lines: make([]LedgerLine, 0, 2*len(txs))}

	for _, tx := range txs {
		rule, ok := MatchRule(tx.Memo, rules)
		if !ok {
			result.Skipped++
			continue
		}

		code := ResolveCounterparty(tx.Counterparty, customers)
		no := numbering.Next()

		result.Lines = append(result.Lines,
			LedgerLine{
				VoucherNo:    no,
				Date:         tx.Date,
				Memo:         tx.Memo,
				Account:      rule.DebitAccount,
				Debit:        tx.Amount,
				Credit:       "0",
				CustomerCode: code,
				CustomerName: tx.Counterparty,
			},
			LedgerLine{
				VoucherNo:    no,
				Date:         tx.Date,
				Memo:         tx.Memo,
				Account:      rule.CreditAccount,
				Debit:        "0",
				Credit:       tx.Amount,
				CustomerCode: code,
				CustomerName: tx.Counterparty,
			},
		)
		result.Matched++
	}

	return result, nil
}

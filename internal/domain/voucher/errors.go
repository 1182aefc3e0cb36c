package voucher

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyRuleSet is returned when generation is attempted with no rules
// configured. There is nothing to match against, so the run is refused
// outright rather than skipping every row.
var ErrEmptyRuleSet = errors.New("rule table is empty, nothing to match against")

// SchemaError reports that the statement schema is missing required fields.
// Generation refuses to start in this case; a partial ledger is worse than no
// ledger.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("statement is missing required fields: %s", strings.Join(e.Missing, ", "))
}

// Logical field names of a statement row, shared by every upstream that maps a
// tabular or JSON schema onto Transaction.
const (
	FieldDate         = "date"
	FieldMemo         = "memo"
	FieldAmount       = "amount"
	FieldCounterparty = "counterparty"
)

// RequiredFields lists the statement fields generation cannot run without, in
// reporting order.
func RequiredFields() []string {
	return []string{FieldDate, FieldMemo, FieldAmount, FieldCounterparty}
}

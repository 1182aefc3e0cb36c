package voucher

// FromRecords converts raw field-name→value records into transactions,
// refusing when the record schema lacks any required field.
//
// The schema is judged from the first record (tabular and JSON upstreams give
// every row the same keys); the error names every absent field at once so the
// operator fixes the file in one round trip. Values are carried verbatim,
// missing keys on later records become empty strings.
func FromRecords(records []map[string]string) ([]Transaction, error) {
	if len(records) == 0 {
		return nil, nil
	}

	var missing []string
	for _, f := range RequiredFields() {
		if _, ok := records[0][f]; !ok {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing}
	}

	txs := make([]Transaction, 0, len(records))
	for _, rec := range records {
		txs = append(txs, Transaction{
			Date:         rec[FieldDate],
			Memo:         rec[FieldMemo],
			Amount:       rec[FieldAmount],
			Counterparty: rec[FieldCounterparty],
		})
	}
	return txs, nil
}

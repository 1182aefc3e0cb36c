package voucher

import "strings"

// UnmatchedCounterparty is the sentinel code used when a counterparty name has
// no exact entry in the customer directory. Accounting codes must not be
// guessed, so there is deliberately no fuzzy fallback.
const UnmatchedCounterparty = "未匹配"

// ResolveCounterparty returns the code of the first customer whose name
// exactly equals the trimmed counterparty name, or UnmatchedCounterparty when
// none does.
//
// When several customers share a name, the first row in table order wins; the
// directory defines no other ordering.
func ResolveCounterparty(name string, customers []Customer) string {
	name = strings.TrimSpace(name)
	for _, c := range customers {
		if c.Name == name {
			return c.Code
		}
	}
	return UnmatchedCounterparty
}

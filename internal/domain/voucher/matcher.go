package voucher

import "strings"

// MatchRule returns the first rule whose keyword appears in memo, scanning the
// rules in slice order.
//
// Matching is plain case-sensitive substring containment. No tokenization, no
// normalization, no "best" match: the list order is the user's only tie-break,
// so the earliest matching rule always wins. Rules with an empty keyword are
// inert rather than matching everything.
//
// A false return is a normal outcome, not an error; the caller counts the row
// as skipped.
func MatchRule(memo string, rules []Rule) (Rule, bool) {
	for _, r := range rules {
		if r.Keyword == "" {
			continue
		}
		if strings.Contains(memo, r.Keyword) {
			return r, true
		}
	}
	return Rule{}, false
}

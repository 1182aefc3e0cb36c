package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchRule_FirstMatchWins(t *testing.T) {
	rules := []Rule{
		{Keyword: "货款", DebitAccount: "1001 现金", CreditAccount: "2001 应收账款"},
		{Keyword: "款", DebitAccount: "1002 银行存款", CreditAccount: "2002 其他应收"},
	}

	// Both keywords appear in the memo; the earlier rule must win.
	rule, ok := MatchRule("收到货款", rules)

	assert.True(t, ok)
	assert.Equal(t, "1001 现金", rule.DebitAccount)
}

func TestMatchRule_ListOrderIsTheTieBreak(t *testing.T) {
	reversed := []Rule{
		{Keyword: "款", DebitAccount: "1002 银行存款", CreditAccount: "2002 其他应收"},
		{Keyword: "货款", DebitAccount: "1001 现金", CreditAccount: "2001 应收账款"},
	}

	rule, ok := MatchRule("收到货款", reversed)

	assert.True(t, ok)
	assert.Equal(t, "1002 银行存款", rule.DebitAccount)
}

func TestMatchRule_NoMatch(t *testing.T) {
	rules := []Rule{{Keyword: "货款", DebitAccount: "1001 现金", CreditAccount: "2001 应收账款"}}

	_, ok := MatchRule("办公用品", rules)

	assert.False(t, ok)
}

func TestMatchRule_CaseSensitive(t *testing.T) {
	rules := []Rule{{Keyword: "Rent", DebitAccount: "6602 管理费用", CreditAccount: "1002 银行存款"}}

	_, ok := MatchRule("monthly rent payment", rules)
	assert.False(t, ok)

	_, ok = MatchRule("monthly Rent payment", rules)
	assert.True(t, ok)
}

func TestMatchRule_EmptyKeywordIsInert(t *testing.T) {
	rules := []Rule{
		{Keyword: "", DebitAccount: "9999 不应出现", CreditAccount: "9999 不应出现"},
		{Keyword: "货款", DebitAccount: "1001 现金", CreditAccount: "2001 应收账款"},
	}

	rule, ok := MatchRule("收到货款", rules)

	assert.True(t, ok)
	assert.Equal(t, "1001 现金", rule.DebitAccount)

	// An empty keyword alone must not match anything.
	_, ok = MatchRule("收到货款", rules[:1])
	assert.False(t, ok)
}

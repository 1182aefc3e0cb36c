package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCounterparty(t *testing.T) {
	customers := []Customer{
		{Code: "C001", Name: "宁波陆尊"},
		{Code: "C002", Name: "杭州贸易"},
	}

	t.Run("exact match returns code", func(t *testing.T) {
		assert.Equal(t, "C001", ResolveCounterparty("宁波陆尊", customers))
	})

	t.Run("unknown name returns sentinel", func(t *testing.T) {
		assert.Equal(t, UnmatchedCounterparty, ResolveCounterparty("未知商行", customers))
	})

	t.Run("input is trimmed before comparison", func(t *testing.T) {
		assert.Equal(t, "C001", ResolveCounterparty("  宁波陆尊 ", customers))
	})

	t.Run("no partial matching", func(t *testing.T) {
		assert.Equal(t, UnmatchedCounterparty, ResolveCounterparty("宁波", customers))
	})

	t.Run("duplicate names resolve to first row", func(t *testing.T) {
		dup := append(customers, Customer{Code: "C009", Name: "宁波陆尊"})
		assert.Equal(t, "C001", ResolveCounterparty("宁波陆尊", dup))
	})

	t.Run("table-side whitespace is not forgiven", func(t *testing.T) {
		padded := []Customer{{Code: "C003", Name: "宁波陆尊 "}}
		assert.Equal(t, UnmatchedCounterparty, ResolveCounterparty("宁波陆尊", padded))
	})
}

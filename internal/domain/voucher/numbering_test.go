package voucher

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumbering_ZeroPadding(t *testing.T) {
	n := NewNumbering(1)

	assert.Equal(t, "001", n.Next())
	assert.Equal(t, "002", n.Next())
	assert.Equal(t, "003", n.Next())
}

func TestNumbering_StartsAtSeed(t *testing.T) {
	n := NewNumbering(98)

	assert.Equal(t, "098", n.Next())
	assert.Equal(t, "099", n.Next())
	assert.Equal(t, "100", n.Next())
}

func TestNumbering_WidthPadsButNeverClips(t *testing.T) {
	n := NewNumbering(999)

	assert.Equal(t, "999", n.Next())
	assert.Equal(t, "1000", n.Next())
	assert.Equal(t, "1001", n.Next())
}

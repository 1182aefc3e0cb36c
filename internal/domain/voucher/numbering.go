package voucher

import "fmt"

// Numbering hands out sequential voucher numbers as zero-padded strings.
// It is private to one generation pass and never shared between runs.
type Numbering struct {
	next int
}

// NewNumbering seeds a counter at start. The generator validates start before
// constructing one.
func NewNumbering(start int) *Numbering {
	return &Numbering{next: start}
}

// Next returns the current number formatted to at least three digits, then
// advances by one. Width 3 only pads; 1000 and up come out unclipped.
func (n *Numbering) Next() string {
	s := fmt.Sprintf("%03d", n.next)
	n.next++
	return s
}

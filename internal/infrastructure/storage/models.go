package storage

import "time"

// GenerationRun records the outcome counters of one generation pass. The
// generated lines themselves are not stored (the export artifact is their
// only persistent form) but the counters are, so unmatched rows can be
// audited later.
type GenerationRun struct {
	ID         string    `json:"id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	StartNo    int       `json:"start_no"`
	Matched    int       `json:"matched"`
	Skipped    int       `json:"skipped"`
	LineCount  int       `json:"line_count"`
}

// Package progress persists per-opening mastery and review metadata. The
// durable form is a single JSON document keyed by opening name; a missing or
// unreadable file degrades to an empty store so corrupt data never blocks
// study access.
package progress

import "time"

// Record holds the review metadata for one opening. Records are created
// lazily with zero values on first access and are never deleted.
type Record struct {
	Mastered     bool       `json:"mastered"`
	LastReviewed *time.Time `json:"last_reviewed"`
	ReviewCount  int        `json:"review_count"`
}

// Clone returns a copy of the record, including the timestamp.
func (r *Record) Clone() *Record {
	c := *r
	if r.LastReviewed != nil {
		t := *r.LastReviewed
		c.LastReviewed = &t
	}
	return &c
}

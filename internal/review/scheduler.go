// Package review decides when an opening is due for another look. The
// schedule is a fixed expanding interval table, not a computed algorithm:
// the record's review count indexes the table, clamped at the last bucket.
package review

import (
	"fmt"
	"time"

	"github.com/smahajan/openbook/internal/progress"
)

// Intervals is the review schedule in days, indexed by review count.
// A record with four or more reviews plateaus at the 30-day bucket.
var Intervals = []int{1, 3, 7, 14, 30}

// IsDue reports whether a record needs review at the given time. Mastered
// openings are never due; never-reviewed ones always are. Pure function of
// its arguments.
func IsDue(rec *progress.Record, now time.Time) bool {
	if rec == nil {
		return true
	}
	if rec.Mastered {
		return false
	}
	if rec.LastReviewed == nil {
		return true
	}
	return !now.Before(rec.LastReviewed.AddDate(0, 0, intervalDays(rec.ReviewCount)))
}

// NextDue returns when the record next comes due. The second result is false
// when there is no scheduled date: mastered records never come due and
// never-reviewed records are due immediately.
func NextDue(rec *progress.Record, now time.Time) (time.Time, bool) {
	if rec == nil || rec.Mastered || rec.LastReviewed == nil {
		return time.Time{}, false
	}
	return rec.LastReviewed.AddDate(0, 0, intervalDays(rec.ReviewCount)), true
}

func intervalDays(reviewCount int) int {
	if reviewCount >= len(Intervals) {
		return Intervals[len(Intervals)-1]
	}
	return Intervals[reviewCount]
}

// Scheduler binds the due-date rule to a progress store. Every mutation is
// written through immediately; the durable write is the commit point, so a
// failed save rolls the in-memory record back.
type Scheduler struct {
	store   progress.Store
	records map[string]*progress.Record
}

// NewScheduler loads the store and returns the scheduler. When the store
// reports a corrupt document the scheduler still starts with the empty
// records it returned; the error is passed along so the caller can log it.
func NewScheduler(store progress.Store) (*Scheduler, error) {
	records, err := store.Load()
	if err != nil {
		return &Scheduler{store: store, records: records}, fmt.Errorf("load progress: %w", err)
	}
	return &Scheduler{store: store, records: records}, nil
}

// Record returns the record for an opening, creating a default one in memory
// on first access. The default is not persisted until a mutation commits.
func (s *Scheduler) Record(name string) *progress.Record {
	rec := s.records[name]
	if rec == nil {
		rec = &progress.Record{}
		s.records[name] = rec
	}
	return rec
}

// IsDue reports whether the named opening is due now.
func (s *Scheduler) IsDue(name string, now time.Time) bool {
	return IsDue(s.records[name], now)
}

// RecordReview stamps a review at now and increments the review count. The
// stored count grows without bound; only the interval lookup clamps.
func (s *Scheduler) RecordReview(name string, now time.Time) error {
	rec := s.Record(name)
	prev := rec.Clone()

	t := now
	rec.LastReviewed = &t
	rec.ReviewCount++

	if err := s.store.Save(s.records); err != nil {
		*rec = *prev
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// ToggleMastered flips the mastered flag and persists it.
func (s *Scheduler) ToggleMastered(name string) error {
	rec := s.Record(name)
	rec.Mastered = !rec.Mastered

	if err := s.store.Save(s.records); err != nil {
		rec.Mastered = !rec.Mastered
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}

// DueNames filters names down to those due at now, preserving order.
func (s *Scheduler) DueNames(names []string, now time.Time) []string {
	var due []string
	for _, name := range names {
		if s.IsDue(name, now) {
			due = append(due, name)
		}
	}
	return due
}

// MasteredCount returns how many of the given names are marked mastered.
func (s *Scheduler) MasteredCount(names []string) int {
	n := 0
	for _, name := range names {
		if rec := s.records[name]; rec != nil && rec.Mastered {
			n++
		}
	}
	return n
}

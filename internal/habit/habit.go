// Package habit defines the tracked-habit model and the pure streak and
// summary calculators over its completion history.
package habit

import (
	"encoding/hex"
	"sort"

	"github.com/google/uuid"
)

// Habit is one tracked behavior. Completions holds the ISO calendar dates
// the habit was marked done on; after any mutation it is kept deduplicated
// and sorted ascending, which is also the persisted canonical form.
type Habit struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	CreatedAt   string   `json:"created_at"`
	Completions []string `json:"completions"`
}

// New creates a fresh habit with an opaque id, the given creation date and
// an empty completion history.
func New(name string, createdAt string) *Habit {
	return &Habit{
		ID:          NewID(),
		Name:        name,
		CreatedAt:   createdAt,
		Completions: []string{},
	}
}

// NewID returns an 8-hex-char opaque identifier derived from a random UUID.
func NewID() string {
	u := uuid.New()
	return hex.EncodeToString(u[:])[:8]
}

// CompletionSet returns the completion dates as a set for membership tests.
func (h *Habit) CompletionSet() map[string]struct{} {
	s := make(map[string]struct{}, len(h.Completions))
	for _, d := range h.Completions {
		s[d] = struct{}{}
	}
	return s
}

// IsCompletedOn reports whether the habit was marked done on day.
func (h *Habit) IsCompletedOn(day string) bool {
	_, ok := h.CompletionSet()[day]
	return ok
}

// MarkComplete inserts day into the completion set. It returns false when
// the day was already present, so marking is idempotent and never an error.
func (h *Habit) MarkComplete(day string) bool {
	s := h.CompletionSet()
	if _, ok := s[day]; ok {
		return false
	}
	s[day] = struct{}{}
	h.Completions = sortedDays(s)
	return true
}

// UnmarkComplete removes day from the completion set. It returns false when
// the day was not marked, leaving the habit untouched.
func (h *Habit) UnmarkComplete(day string) bool {
	s := h.CompletionSet()
	if _, ok := s[day]; !ok {
		return false
	}
	delete(s, day)
	h.Completions = sortedDays(s)
	return true
}

// sortedDays flattens a date set into the canonical stored form:
// deduplicated (by construction) and ascending. ISO dates sort correctly
// as plain strings.
func sortedDays(s map[string]struct{}) []string {
	days := make([]string, 0, len(s))
	for d := range s {
		days = append(days, d)
	}
	sort.Strings(days)
	return days
}

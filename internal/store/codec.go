// Package store converts between the persisted JSON document and habit
// entities, and reads/writes that document at a fixed path on disk.
//
// Decoding is deliberately tolerant: a hand-edited or partially garbled
// file loses only the broken entries, never the whole store.
package store

import (
	"encoding/json"
	"sort"

	"github.com/dmitrijs2005/habitkeep/internal/datex"
	"github.com/dmitrijs2005/habitkeep/internal/habit"
)

// SchemaVersion tags the persisted document format.
const SchemaVersion = 1

// Document is the persisted aggregate. Habit entries stay raw so one
// malformed entry cannot fail decoding of the rest.
type Document struct {
	Version int               `json:"version"`
	Habits  []json.RawMessage `json:"habits"`
}

// NewDocument returns a fresh empty document at the current schema version.
func NewDocument() *Document {
	return &Document{Version: SchemaVersion, Habits: []json.RawMessage{}}
}

// Decode converts the document's entries into habits, preserving entry
// order (order is display order). Entries that are not JSON objects are
// skipped; missing id and name default to the empty string, a missing
// created_at defaults to today, missing completions to an empty list.
// Entries whose id or name is still empty after defaulting are dropped.
// The number of skipped/dropped entries is returned for diagnostics.
//
// Duplicate ids or names across entries are preserved as separate habits.
func Decode(doc *Document) ([]*habit.Habit, int) {
	habits := make([]*habit.Habit, 0, len(doc.Habits))
	dropped := 0
	today := datex.TodayISO()

	for _, raw := range doc.Habits {
		h, ok := decodeEntry(raw, today)
		if !ok {
			dropped++
			continue
		}
		habits = append(habits, h)
	}

	return habits, dropped
}

func decodeEntry(raw json.RawMessage, today string) (*habit.Habit, bool) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, false
	}

	h := &habit.Habit{
		ID:          stringField(m, "id", ""),
		Name:        stringField(m, "name", ""),
		CreatedAt:   stringField(m, "created_at", today),
		Completions: dateList(m["completions"]),
	}

	if h.ID == "" || h.Name == "" {
		return nil, false
	}
	return h, true
}

// stringField reads a string field from a decoded object. A field that is
// absent or not a string counts as missing and yields the default.
func stringField(m map[string]any, key, def string) string {
	v, ok := m[key]
	if !ok {
		return def
	}
	s, ok := v.(string)
	if !ok {
		return def
	}
	if s == "" {
		return def
	}
	return s
}

// dateList coerces a decoded completions value into a string slice,
// discarding non-string elements. Anything that is not a list yields an
// empty slice.
func dateList(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return []string{}
	}
	days := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			days = append(days, s)
		}
	}
	return days
}

// Encode rebuilds the full document from the in-memory habit sequence.
// Completions are written in the canonical form: deduplicated, ascending.
func Encode(habits []*habit.Habit) (*Document, error) {
	doc := NewDocument()
	doc.Habits = make([]json.RawMessage, 0, len(habits))

	for _, h := range habits {
		out := *h
		out.Completions = normalizedDays(h.Completions)
		raw, err := json.Marshal(&out)
		if err != nil {
			return nil, err
		}
		doc.Habits = append(doc.Habits, raw)
	}

	return doc, nil
}

func normalizedDays(days []string) []string {
	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for d := range set {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

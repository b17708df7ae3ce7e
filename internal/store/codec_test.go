package store

import (
	"encoding/json"
	"testing"

	"github.com/dmitrijs2005/habitkeep/internal/datex"
	"github.com/dmitrijs2005/habitkeep/internal/habit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func docFromJSON(t *testing.T, raw string) *Document {
	t.Helper()
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return &doc
}

func TestDecode_WellFormed(t *testing.T) {
	doc := docFromJSON(t, `{
		"version": 1,
		"habits": [
			{"id": "aaaa1111", "name": "Run", "created_at": "2026-08-01",
			 "completions": ["2026-08-30", "2026-08-31"]},
			{"id": "bbbb2222", "name": "Read", "created_at": "2026-08-02",
			 "completions": []}
		]
	}`)

	habits, dropped := Decode(doc)
	require.Len(t, habits, 2)
	assert.Zero(t, dropped)

	// Entry order is display order.
	assert.Equal(t, "Run", habits[0].Name)
	assert.Equal(t, "aaaa1111", habits[0].ID)
	assert.Equal(t, []string{"2026-08-30", "2026-08-31"}, habits[0].Completions)
	assert.Equal(t, "Read", habits[1].Name)
	assert.Empty(t, habits[1].Completions)
}

func TestDecode_SkipsNonRecordEntries(t *testing.T) {
	doc := docFromJSON(t, `{
		"version": 1,
		"habits": [
			"just a string",
			42,
			[1, 2],
			{"id": "aaaa1111", "name": "Run"}
		]
	}`)

	habits, dropped := Decode(doc)
	require.Len(t, habits, 1)
	assert.Equal(t, 3, dropped)
	assert.Equal(t, "Run", habits[0].Name)
}

func TestDecode_DropsEntriesWithoutIDOrName(t *testing.T) {
	doc := docFromJSON(t, `{
		"version": 1,
		"habits": [
			{"name": "no id"},
			{"id": "cccc3333"},
			{"id": "", "name": ""},
			{"id": "dddd4444", "name": "Keep me"}
		]
	}`)

	habits, dropped := Decode(doc)
	require.Len(t, habits, 1)
	assert.Equal(t, 3, dropped)
	assert.Equal(t, "Keep me", habits[0].Name)
}

func TestDecode_DefaultsMissingFields(t *testing.T) {
	doc := docFromJSON(t, `{
		"version": 1,
		"habits": [{"id": "aaaa1111", "name": "Run"}]
	}`)

	habits, dropped := Decode(doc)
	require.Len(t, habits, 1)
	assert.Zero(t, dropped)

	// Missing created_at defaults to today, missing completions to empty.
	assert.Equal(t, datex.TodayISO(), habits[0].CreatedAt)
	assert.NotNil(t, habits[0].Completions)
	assert.Empty(t, habits[0].Completions)
}

func TestDecode_WrongTypedFieldsTreatedAsMissing(t *testing.T) {
	doc := docFromJSON(t, `{
		"version": 1,
		"habits": [
			{"id": 5, "name": "wrong id type"},
			{"id": "aaaa1111", "name": "Run", "completions": "not-a-list"},
			{"id": "bbbb2222", "name": "Read", "completions": ["2026-08-30", 7, null]}
		]
	}`)

	habits, dropped := Decode(doc)
	require.Len(t, habits, 2)
	assert.Equal(t, 1, dropped, "non-string id defaults to empty, so the entry is dropped")

	assert.Empty(t, habits[0].Completions)
	assert.Equal(t, []string{"2026-08-30"}, habits[1].Completions, "non-string completion elements are discarded")
}

func TestDecode_PreservesDuplicateEntries(t *testing.T) {
	doc := docFromJSON(t, `{
		"version": 1,
		"habits": [
			{"id": "aaaa1111", "name": "Run"},
			{"id": "aaaa1111", "name": "run"}
		]
	}`)

	habits, dropped := Decode(doc)
	require.Len(t, habits, 2, "decoding does not deduplicate ids or names")
	assert.Zero(t, dropped)
}

func TestEncode_NormalizesCompletions(t *testing.T) {
	h := &habit.Habit{ID: "aaaa1111", Name: "Run", CreatedAt: "2026-08-01",
		Completions: []string{"2026-08-31", "2026-08-29", "2026-08-31"}}

	doc, err := Encode([]*habit.Habit{h})
	require.NoError(t, err)
	assert.Equal(t, SchemaVersion, doc.Version)
	require.Len(t, doc.Habits, 1)

	var out habit.Habit
	require.NoError(t, json.Unmarshal(doc.Habits[0], &out))
	assert.Equal(t, []string{"2026-08-29", "2026-08-31"}, out.Completions)

	// The habit itself is left untouched.
	assert.Equal(t, []string{"2026-08-31", "2026-08-29", "2026-08-31"}, h.Completions)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	in := []*habit.Habit{
		{ID: "aaaa1111", Name: "Run", CreatedAt: "2026-08-01",
			Completions: []string{"2026-08-30", "2026-08-31"}},
		{ID: "bbbb2222", Name: "Read", CreatedAt: "2026-08-02",
			Completions: []string{}},
	}

	doc, err := Encode(in)
	require.NoError(t, err)

	// Through the wire format and back.
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	out, dropped := Decode(docFromJSON(t, string(raw)))

	assert.Zero(t, dropped)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].ID, out[i].ID)
		assert.Equal(t, in[i].Name, out[i].Name)
		assert.Equal(t, in[i].CreatedAt, out[i].CreatedAt)
		assert.Equal(t, in[i].Completions, out[i].Completions)
	}
}

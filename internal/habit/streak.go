package habit

import (
	"time"

	"github.com/dmitrijs2005/habitkeep/internal/datex"
)

// CurrentStreak counts the consecutive completed days ending at ref.
//
// If ref itself is completed the walk starts there; otherwise it starts at
// ref minus one day, so an unbroken streak still reports correctly when
// today has not been marked yet. A single missed day breaks the streak
// immediately; there is no grace period.
func CurrentStreak(h *Habit, ref time.Time) int {
	completed := h.CompletionSet()
	if len(completed) == 0 {
		return 0
	}

	start := ref
	if _, ok := completed[datex.Format(start)]; !ok {
		start = datex.AddDays(ref, -1)
	}

	streak := 0
	for day := start; ; day = datex.AddDays(day, -1) {
		if _, ok := completed[datex.Format(day)]; !ok {
			break
		}
		streak++
	}

	return streak
}

// WeeklySummary counts completions among the 7 calendar days ending at ref
// inclusive. It is a plain membership count, not a streak.
func WeeklySummary(h *Habit, ref time.Time) int {
	completed := h.CompletionSet()

	count := 0
	for i := 0; i < 7; i++ {
		if _, ok := completed[datex.Format(datex.AddDays(ref, -i))]; ok {
			count++
		}
	}
	return count
}

package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/habitkeep/internal/datex"
)

// MarkToday marks a chosen habit complete for today. Marking an already
// completed day is a no-op reported as information.
func (a *App) MarkToday(ctx context.Context) error {
	a.Clear()
	printHeader(a.out, "Mark Habit Complete (Today)")

	h, err := chooseHabit(a.reader, a.habits.Habits(), a.out)
	if err != nil || h == nil {
		return err
	}

	if h.MarkComplete(datex.TodayISO()) {
		fmt.Fprintf(a.out, "Marked '%s' complete for today.\n", h.Name)
	} else {
		fmt.Fprintf(a.out, "'%s' is already marked complete today.\n", h.Name)
	}
	return nil
}

// UnmarkToday removes today's completion from a chosen habit. Unmarking a
// day that was never marked is a no-op reported as information.
func (a *App) UnmarkToday(ctx context.Context) error {
	a.Clear()
	printHeader(a.out, "Undo Today Completion")

	h, err := chooseHabit(a.reader, a.habits.Habits(), a.out)
	if err != nil || h == nil {
		return err
	}

	if h.UnmarkComplete(datex.TodayISO()) {
		fmt.Fprintf(a.out, "Unmarked '%s' for today.\n", h.Name)
	} else {
		fmt.Fprintf(a.out, "'%s' was not marked complete today.\n", h.Name)
	}
	return nil
}

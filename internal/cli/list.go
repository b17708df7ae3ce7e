package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/habitkeep/internal/datex"
	"github.com/dmitrijs2005/habitkeep/internal/habit"
)

const (
	markDone   = "✅"
	markMissed = "—"
)

// List shows every habit with its done-today state and current streak.
func (a *App) List(ctx context.Context) error {
	a.Clear()
	printHeader(a.out, "Your Habits")

	habits := a.habits.Habits()
	if len(habits) == 0 {
		fmt.Fprintln(a.out, "No habits yet.")
		return nil
	}

	today := datex.TodayISO()
	now := time.Now()
	for _, h := range habits {
		done := markMissed
		if h.IsCompletedOn(today) {
			done = markDone
		}
		fmt.Fprintf(a.out, "- %s  [%s]  Streak: %d\n", h.Name, done, habit.CurrentStreak(h, now))
	}
	return nil
}

// Weekly shows per-habit completion counts over the last 7 days.
func (a *App) Weekly(ctx context.Context) error {
	a.Clear()
	printHeader(a.out, "Weekly Summary (Last 7 Days)")

	habits := a.habits.Habits()
	if len(habits) == 0 {
		fmt.Fprintln(a.out, "No habits yet.")
		return nil
	}

	now := time.Now()
	for _, h := range habits {
		fmt.Fprintf(a.out, "- %s: %d/7 days\n", h.Name, habit.WeeklySummary(h, now))
	}
	return nil
}

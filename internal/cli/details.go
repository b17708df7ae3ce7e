package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/habitkeep/internal/datex"
	"github.com/dmitrijs2005/habitkeep/internal/habit"
)

// Details shows one habit: creation date, done-today state, current streak
// and a last-7-days grid, oldest day first.
func (a *App) Details(ctx context.Context) error {
	a.Clear()
	printHeader(a.out, "Habit Details")

	h, err := chooseHabit(a.reader, a.habits.Habits(), a.out)
	if err != nil || h == nil {
		return err
	}

	now := time.Now()
	today := datex.TodayISO()

	doneToday := "No"
	if h.IsCompletedOn(today) {
		doneToday = "Yes"
	}

	fmt.Fprintf(a.out, "\nName: %s\n", h.Name)
	fmt.Fprintf(a.out, "Created: %s\n", h.CreatedAt)
	fmt.Fprintf(a.out, "Done today: %s\n", doneToday)
	fmt.Fprintf(a.out, "Current streak: %d\n", habit.CurrentStreak(h, now))

	fmt.Fprintln(a.out, "\nLast 7 days:")
	for i := 6; i >= 0; i-- {
		day := datex.Format(datex.AddDays(now, -i))
		mark := markMissed
		if h.IsCompletedOn(day) {
			mark = markDone
		}
		fmt.Fprintf(a.out, "  %s: %s\n", day, mark)
	}
	return nil
}

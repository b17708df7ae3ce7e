package cli

import (
	"context"
	"fmt"
)

// Delete removes a chosen habit after a y/n confirmation.
func (a *App) Delete(ctx context.Context) error {
	a.Clear()
	printHeader(a.out, "Delete a Habit")

	h, err := chooseHabit(a.reader, a.habits.Habits(), a.out)
	if err != nil || h == nil {
		return err
	}

	confirm, err := GetChoice(a.reader, fmt.Sprintf("Delete '%s'? (y/n):", h.Name), []string{"y", "n"}, a.out)
	if err != nil {
		return err
	}
	if confirm != "y" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.habits.Delete(h.ID); err != nil {
		a.log.Error(ctx, "delete failed", "id", h.ID, "error", err)
		fmt.Fprintln(a.out, "Could not delete that habit.")
		return nil
	}
	fmt.Fprintln(a.out, "Deleted.")
	return nil
}

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/habitkeep/internal/common"
)

const maxNameLen = 50

// Add prompts for a name and creates a new habit. A name already taken
// (case-insensitively) is rejected with a message, not an error.
func (a *App) Add(ctx context.Context) error {
	a.Clear()
	printHeader(a.out, "Add a Habit")

	name, err := GetNonEmpty(a.reader, "Habit name:", maxNameLen, a.out)
	if err != nil {
		return err
	}

	h, err := a.habits.Add(name)
	if err != nil {
		if errors.Is(err, common.ErrDuplicateName) {
			fmt.Fprintln(a.out, "A habit with that name already exists.")
			return nil
		}
		return err
	}

	fmt.Fprintf(a.out, "Added habit: %s\n", h.Name)
	return nil
}

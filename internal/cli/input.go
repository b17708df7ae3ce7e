package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/habitkeep/internal/habit"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetNonEmpty keeps prompting until the user enters a non-empty line of at
// most maxLen characters.
func GetNonEmpty(reader *bufio.Reader, prompt string, maxLen int, w io.Writer) (string, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		if s == "" {
			fmt.Fprintln(w, "Input cannot be empty.")
			continue
		}
		if len(s) > maxLen {
			fmt.Fprintf(w, "Please keep it under %d characters.\n", maxLen)
			continue
		}
		return s, nil
	}
}

// GetChoice keeps prompting until the answer matches one of choices,
// compared case-insensitively. The matched choice is returned lowercased.
func GetChoice(reader *bufio.Reader, prompt string, choices []string, w io.Writer) (string, error) {
	for {
		s, err := GetSimpleText(reader, prompt, w)
		if err != nil {
			return "", err
		}
		s = strings.ToLower(s)
		for _, c := range choices {
			if s == strings.ToLower(c) {
				return s, nil
			}
		}
		fmt.Fprintf(w, "Please enter one of: %s\n", strings.Join(choices, ", "))
	}
}

// PressEnter blocks until the user presses Enter, so a screen stays
// readable before the menu redraws.
func PressEnter(reader *bufio.Reader, w io.Writer) {
	fmt.Fprint(w, "\nPress Enter to continue...")
	_, _ = reader.ReadString('\n')
	fmt.Fprintln(w)
}

// chooseHabit shows a numbered list of habits and reads a selection.
// An empty answer cancels and returns (nil, nil); out-of-range or
// non-numeric answers re-prompt.
func chooseHabit(reader *bufio.Reader, habits []*habit.Habit, w io.Writer) (*habit.Habit, error) {
	if len(habits) == 0 {
		fmt.Fprintln(w, "No habits yet. Add one first.")
		return nil, nil
	}

	fmt.Fprintln(w, "\nHabits:")
	for i, h := range habits {
		fmt.Fprintf(w, "  %d. %s\n", i+1, h.Name)
	}

	for {
		raw, err := GetSimpleText(reader, "\nSelect a habit number (or Enter to cancel):", w)
		if err != nil {
			return nil, err
		}
		if raw == "" {
			return nil, nil
		}
		idx, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(w, "Please enter a number.")
			continue
		}
		if idx < 1 || idx > len(habits) {
			fmt.Fprintln(w, "That number is out of range.")
			continue
		}
		return habits[idx-1], nil
	}
}

package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// menuIface defines the minimal command surface the menu loop needs to
// operate. The real App type satisfies this interface; tests can provide a
// lightweight stub.
type menuIface interface {
	Clear()
	List(ctx context.Context) error
	Add(ctx context.Context) error
	MarkToday(ctx context.Context) error
	UnmarkToday(ctx context.Context) error
	Details(ctx context.Context) error
	Weekly(ctx context.Context) error
	Delete(ctx context.Context) error
	Save(ctx context.Context) error
}

// runMenu drives the interactive loop: print the numbered menu, read one
// choice, dispatch, repeat. After every mutating action the whole store is
// saved; a failed save is reported and the loop continues with the state
// still in memory, so a later mutation can retry the write. The loop exits
// on EOF or choice 0 (with a final save).
func runMenu(ctx context.Context, a menuIface, reader *bufio.Reader, w io.Writer) {
	for {
		a.Clear()
		printHeader(w, "Habit Tracker v1")
		fmt.Fprintln(w, "1) List habits")
		fmt.Fprintln(w, "2) Add habit")
		fmt.Fprintln(w, "3) Mark habit complete (today)")
		fmt.Fprintln(w, "4) Undo today completion")
		fmt.Fprintln(w, "5) Habit details")
		fmt.Fprintln(w, "6) Weekly summary")
		fmt.Fprintln(w, "7) Delete habit")
		fmt.Fprintln(w, "0) Exit")

		choice, err := GetSimpleText(reader, "\nChoose an option:", w)
		if err != nil {
			return
		}

		switch choice {
		case "1":
			_ = a.List(ctx)
			PressEnter(reader, w)

		case "2":
			_ = a.Add(ctx)
			saveNow(ctx, a)
			PressEnter(reader, w)

		case "3":
			_ = a.MarkToday(ctx)
			saveNow(ctx, a)
			PressEnter(reader, w)

		case "4":
			_ = a.UnmarkToday(ctx)
			saveNow(ctx, a)
			PressEnter(reader, w)

		case "5":
			_ = a.Details(ctx)
			PressEnter(reader, w)

		case "6":
			_ = a.Weekly(ctx)
			PressEnter(reader, w)

		case "7":
			_ = a.Delete(ctx)
			saveNow(ctx, a)
			PressEnter(reader, w)

		case "0":
			// Autosave on exit too.
			saveNow(ctx, a)
			printlnFn("Goodbye!")
			return

		default:
			printlnFn("Invalid choice. Please try again.")
			PressEnter(reader, w)
		}
	}
}

func saveNow(ctx context.Context, a menuIface) {
	if err := a.Save(ctx); err != nil {
		printlnFn("Could not save your data. Check disk space and permissions, then try again.")
	}
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isTerminalFn is a test seam for term.IsTerminal.
var isTerminalFn = term.IsTerminal

// Clear wipes the screen before the next menu or action screen. It is a
// no-op when disabled in config or when output is not a real terminal
// (pipes and test buffers keep everything).
func (a *App) Clear() {
	if !a.config.ClearScreen {
		return
	}
	f, ok := a.out.(*os.File)
	if !ok || !isTerminalFn(int(f.Fd())) {
		return
	}
	// ANSI: erase display, cursor home.
	fmt.Fprint(a.out, "\x1b[2J\x1b[H")
}

func printHeader(w io.Writer, title string) {
	line := strings.Repeat("=", 40)
	fmt.Fprintln(w, line)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, line)
}

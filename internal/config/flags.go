package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/habitkeep/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   data directory (default from Config)
//	-f string   data file name (default from Config)
//	-no-clear   disable screen clearing between menus
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-f", "-no-clear"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.DataFile, "f", cfg.DataFile, "data file name")
	noClear := fs.Bool("no-clear", !cfg.ClearScreen, "do not clear the screen between menus")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.ClearScreen = !*noClear
}

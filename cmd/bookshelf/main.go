// Command bookshelf browses the Project Gutenberg catalog from the terminal.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cristianoliveira/bookshelf/cmd"
	"github.com/cristianoliveira/bookshelf/internal/colors"
	"github.com/cristianoliveira/bookshelf/internal/config"
	"github.com/cristianoliveira/bookshelf/internal/errors"
	"github.com/cristianoliveira/bookshelf/internal/logging"
	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run(os.Args[1:], cmd.Execute))
}

// run loads .env and config, then executes the command line and returns the
// process exit code.
func run(args []string, execute func(args []string) error) int {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		colors.Warning(fmt.Sprintf("unable to load .env: %v", err))
	}
	config.Load()

	defer func() {
		if err := deps.Close(); err != nil {
			colors.Debug(fmt.Sprintf("closing wishlist storage: %v", err))
		}
		_ = logging.ShutdownGlobal()
	}()

	if err := execute(withDefaultCommand(args)); err != nil {
		logging.Error("command failed", "error", err)
		errors.NewDefaultCLIHandler().Report(err)
		return 1
	}
	return 0
}

// withDefaultCommand opens the browser when no subcommand is given.
func withDefaultCommand(args []string) []string {
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "-h", arg == "--help", arg == "help", arg == "-v", arg == "--version":
			return args
		case arg == "--backend":
			i++
		case !strings.HasPrefix(arg, "-"):
			return args
		}
	}
	return append([]string{"browse"}, args...)
}

// Package cmd holds the root command shared by the bookshelf binary.
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/bookshelf/internal/colors"
	"github.com/cristianoliveira/bookshelf/internal/config"
	"github.com/cristianoliveira/bookshelf/internal/logging"
	"github.com/cristianoliveira/bookshelf/internal/version"
	"github.com/spf13/cobra"
)

const shortDescription = "Browse the Project Gutenberg catalog and keep a wishlist."

// Persistent flag values.
var (
	debugFlag     bool
	quietFlag     bool
	ephemeralFlag bool
	backendFlag   string
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:               "bookshelf",
	Short:             shortDescription,
	Long:              shortDescription,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: applyGlobalFlags,
}

// Execute runs the root command with the given arguments.
func Execute(args []string) error {
	RootCmd.SetArgs(args)
	return RootCmd.Execute()
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd != RootCmd {
			fmt.Fprint(cmd.OutOrStdout(), cmd.UsageString())
			return
		}
		printHelpText(cmd)
	})

	flags := RootCmd.PersistentFlags()
	flags.BoolVar(&debugFlag, "debug", false, "Print debug output and log at debug level")
	flags.BoolVar(&quietFlag, "quiet", false, "Only print warnings and errors")
	flags.BoolVar(&ephemeralFlag, "ephemeral", false, "Keep the wishlist in memory for this run only")
	flags.StringVar(&backendFlag, "backend", "", "Wishlist backend: memory, file, sqlite, redis")
}

// applyGlobalFlags lets command-line flags override file and env config,
// then starts the logger with the result.
func applyGlobalFlags(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	if flags.Changed("debug") {
		config.Set("debug", strconv.FormatBool(debugFlag))
		if debugFlag {
			config.Set("logging_level", "debug")
		}
	}
	if flags.Changed("quiet") {
		config.Set("quiet", strconv.FormatBool(quietFlag))
	}
	if flags.Changed("backend") {
		config.Set("wishlist_backend", strings.ToLower(backendFlag))
	}
	if ephemeralFlag {
		config.Set("wishlist_backend", "memory")
	}

	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))

	if err := logging.InitGlobal(); err != nil {
		colors.Warning(fmt.Sprintf("logging disabled: %v", err))
	}
	logging.Debug("command started", "command", cmd.CommandPath())
	return nil
}

func printHelpText(cmd *cobra.Command) {
	commandOrder := []string{
		"browse",
		"search",
		"genres",
		"show",
		"wishlist",
		"version",
	}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Use, found.Short))
	}

	helpText := fmt.Sprintf(`bookshelf v%s

%s

USAGE:
    bookshelf [COMMAND] [OPTIONS]

Without a command, bookshelf opens the interactive browser.

COMMANDS:
%s

OPTIONS:
    --backend <name>  Wishlist backend: memory, file, sqlite, redis
    --ephemeral       Keep the wishlist in memory for this run only
    --debug           Print debug output
    --quiet           Only print warnings and errors
    -h, --help        Show help message
`, version.String(), shortDescription, strings.Join(cmdLines, "\n"))
	fmt.Fprint(cmd.OutOrStdout(), helpText)
}

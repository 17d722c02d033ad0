package main

import (
	"fmt"

	"github.com/cristianoliveira/bookshelf/cmd"
	"github.com/spf13/cobra"
)

type versionClient interface {
	Version() string
}

// NewVersionCmd creates the version command with explicit dependencies.
func NewVersionCmd(client versionClient) *cobra.Command {
	if client == nil {
		panic("NewVersionCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of bookshelf.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "bookshelf version %s\n", client.Version())
			return nil
		},
	}
}

var versionCmd = NewVersionCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(versionCmd)
}

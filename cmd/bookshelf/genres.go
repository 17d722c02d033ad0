package main

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/bookshelf/cmd"
	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/format"
	"github.com/cristianoliveira/bookshelf/internal/tui/render"
	"github.com/spf13/cobra"
)

type genresClient interface {
	FetchCollection(ctx context.Context) (domain.Collection, error)
}

// NewGenresCmd creates the genres command with explicit dependencies.
func NewGenresCmd(client genresClient) *cobra.Command {
	if client == nil {
		panic("NewGenresCmd: client dependency cannot be nil")
	}

	var formatName string
	genresCmd := &cobra.Command{
		Use:   "genres",
		Short: "List the genres of the loaded collection",
		Long:  `List every subject found in the collection, in the order first seen.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatterType, err := format.ParseType(formatName)
			if err != nil {
				return fmt.Errorf("genres: %w", err)
			}
			collection, err := client.FetchCollection(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s: %w", render.MsgLoadFailed, err)
			}
			return format.NewFormatter(formatterType).FormatGenres(collection.Genres, cmd.OutOrStdout())
		},
	}
	genresCmd.Flags().StringVar(&formatName, "format", string(format.FormatterTypeSimple), "Output format: simple, table, json")
	return genresCmd
}

var genresCmd = NewGenresCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(genresCmd)
}

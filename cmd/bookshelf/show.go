package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cristianoliveira/bookshelf/cmd"
	"github.com/cristianoliveira/bookshelf/internal/catalog"
	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/tui/render"
	"github.com/cristianoliveira/bookshelf/internal/wishlist"
	"github.com/spf13/cobra"
)

const showWidth = 80

type showClient interface {
	FetchBook(ctx context.Context, id string) (domain.Book, error)
	Wishlist() (*wishlist.Store, error)
}

// NewShowCmd creates the show command with explicit dependencies.
func NewShowCmd(client showClient) *cobra.Command {
	if client == nil {
		panic("NewShowCmd: client dependency cannot be nil")
	}

	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the details of one book",
		Long:  `Fetch one book by its catalog id and print its details.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := strings.TrimSpace(args[0])
			if id == "" {
				return fmt.Errorf("show: book id cannot be empty")
			}
			wl, err := client.Wishlist()
			if err != nil {
				return err
			}
			book, err := client.FetchBook(cmd.Context(), id)
			if errors.Is(err, catalog.ErrNotFound) {
				return fmt.Errorf("show: book %s not found", id)
			}
			if err != nil {
				return fmt.Errorf("%s: %w", render.MsgDetailsFailed, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), render.Details(book, wl.IsMember(book.ID), showWidth))
			return err
		},
	}
}

var showCmd = NewShowCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(showCmd)
}

package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cristianoliveira/bookshelf/cmd"
	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/tui/render"
	"github.com/cristianoliveira/bookshelf/internal/wishlist"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

type wishlistClient interface {
	FetchBook(ctx context.Context, id string) (domain.Book, error)
	Wishlist() (*wishlist.Store, error)
}

// NewWishlistCmd creates the wishlist command and its subcommands.
func NewWishlistCmd(client wishlistClient) *cobra.Command {
	if client == nil {
		panic("NewWishlistCmd: client dependency cannot be nil")
	}

	wishlistCmd := &cobra.Command{
		Use:   "wishlist",
		Short: "Count, list, toggle or clear wishlisted books",
		Long: `Manage the wishlist kept in the configured storage backend.

USAGE:
    bookshelf wishlist count
    bookshelf wishlist list
    bookshelf wishlist toggle <id>
    bookshelf wishlist clear`,
		Args: cobra.NoArgs,
	}

	wishlistCmd.AddCommand(
		&cobra.Command{
			Use:   "count",
			Short: "Print the number of wishlisted books",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				wl, err := client.Wishlist()
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), wl.Count())
				return err
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "Fetch and print every wishlisted book",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				wl, err := client.Wishlist()
				if err != nil {
					return err
				}
				return listWishlist(cmd.Context(), client, wl.IDs(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			},
		},
		&cobra.Command{
			Use:   "toggle <id>",
			Short: "Add a book to the wishlist, or remove it",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id := strings.TrimSpace(args[0])
				if id == "" {
					return fmt.Errorf("wishlist toggle: book id cannot be empty")
				}
				wl, err := client.Wishlist()
				if err != nil {
					return err
				}
				added, err := wl.Toggle(id)
				if err != nil {
					return fmt.Errorf("wishlist toggle: %w", err)
				}
				verb := "Removed"
				if added {
					verb = "Added"
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%d in wishlist)\n", verb, id, wl.Count())
				return err
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove every book from the wishlist",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				wl, err := client.Wishlist()
				if err != nil {
					return err
				}
				if err := wl.Clear(); err != nil {
					return fmt.Errorf("wishlist clear: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Wishlist cleared")
				return err
			},
		},
	)
	return wishlistCmd
}

// listWishlist resolves ids one by one, reporting progress on progress, and
// prints one line per entry on w. Failed entries are listed, not fatal.
func listWishlist(ctx context.Context, fetcher wishlist.Fetcher, ids []string, w, progress io.Writer) error {
	if len(ids) == 0 {
		_, err := fmt.Fprintln(w, render.MsgWishlistEmpty)
		return err
	}

	bar := progressbar.NewOptions(len(ids),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("fetching wishlist"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
	details := wishlist.Resolve(ctx, ids, fetcher, func(wishlist.Item) {
		_ = bar.Add(1)
	})
	_ = bar.Finish()

	for _, item := range details.Items {
		var err error
		if item.Err != nil {
			_, err = fmt.Fprintf(w, "! %-8s %s\n", item.ID, render.MsgDetailsFailed)
		} else {
			_, err = fmt.Fprintf(w, "* %-8s %s by %s\n", item.ID, item.Book.Title, item.Book.DisplayAuthor())
		}
		if err != nil {
			return err
		}
	}
	if failed := len(details.Failed()); failed > 0 {
		_, err := fmt.Fprintf(w, "%d of %d entries could not be loaded\n", failed, len(details.Items))
		return err
	}
	return nil
}

var wishlistCmd = NewWishlistCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(wishlistCmd)
}

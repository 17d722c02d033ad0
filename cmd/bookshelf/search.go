package main

import (
	"context"
	"fmt"
	"io"

	"github.com/cristianoliveira/bookshelf/cmd"
	"github.com/cristianoliveira/bookshelf/internal/browser"
	"github.com/cristianoliveira/bookshelf/internal/config"
	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/format"
	"github.com/cristianoliveira/bookshelf/internal/tui/render"
	"github.com/cristianoliveira/bookshelf/internal/wishlist"
	"github.com/spf13/cobra"
)

type searchClient interface {
	FetchCollection(ctx context.Context) (domain.Collection, error)
	Wishlist() (*wishlist.Store, error)
}

// SearchOptions holds the search filters and output settings.
type SearchOptions struct {
	Query    string
	Genre    string
	PageSize int
	Page     int
	Format   string
}

const searchCommandLong = `Search the catalog without opening the browser.

USAGE:
    bookshelf search [OPTIONS]

OPTIONS:
    --query <text>       Case-insensitive title substring
    --genre <subject>    Exact subject to filter by
    --page-size <n>      Books per page
    --page <n>           Page to print (clamped to the last page)
    --format <format>    Output format: simple (default), table, json`

// NewSearchCmd creates the search command with explicit dependencies.
func NewSearchCmd(client searchClient) *cobra.Command {
	if client == nil {
		panic("NewSearchCmd: client dependency cannot be nil")
	}

	opts := SearchOptions{}
	searchCmd := &cobra.Command{
		Use:   "search",
		Short: "Search books and print one page",
		Long:  searchCommandLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("page-size") {
				opts.PageSize = config.GetInt("page_size", config.DefaultPageSize)
			}
			return runSearch(cmd.Context(), client, opts, cmd.OutOrStdout())
		},
	}

	searchCmd.Flags().StringVar(&opts.Query, "query", "", "Title substring")
	searchCmd.Flags().StringVar(&opts.Genre, "genre", "", "Exact subject")
	searchCmd.Flags().IntVar(&opts.PageSize, "page-size", config.DefaultPageSize, "Books per page")
	searchCmd.Flags().IntVar(&opts.Page, "page", 1, "Page to print")
	searchCmd.Flags().StringVar(&opts.Format, "format", string(format.FormatterTypeSimple), "Output format: simple, table, json")
	return searchCmd
}

func runSearch(ctx context.Context, client searchClient, opts SearchOptions, w io.Writer) error {
	formatterType, err := format.ParseType(opts.Format)
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	wl, err := client.Wishlist()
	if err != nil {
		return err
	}

	var view browser.View
	var isMember browser.Membership
	b := browser.New(wl,
		browser.WithPageSize(opts.PageSize),
		browser.WithRenderer(browser.RendererFunc(func(v browser.View, m browser.Membership) {
			view, isMember = v, m
		})),
	)

	collection, err := client.FetchCollection(ctx)
	if err != nil {
		b.LoadFailed(err)
		return fmt.Errorf("%s: %w", render.MsgLoadFailed, err)
	}
	b.Loaded(collection)
	if opts.Query != "" {
		b.OnQueryChange(opts.Query)
	}
	if opts.Genre != "" {
		b.OnGenreChange(opts.Genre)
	}
	if opts.Page > 1 {
		b.OnPageClick(opts.Page)
	}

	return format.NewFormatter(formatterType).FormatListing(format.Listing{
		Query: view.Query,
		Genre: view.Genre,
		Page:  view.Page,
		Cards: render.Cards(view.Page.Items, isMember),
	}, w)
}

var searchCmd = NewSearchCmd(deps)

func init() {
	cmd.RootCmd.AddCommand(searchCmd)
}

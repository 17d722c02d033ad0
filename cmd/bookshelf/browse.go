package main

import (
	"context"
	"fmt"
	"time"

	"github.com/cristianoliveira/bookshelf/cmd"
	"github.com/cristianoliveira/bookshelf/internal/colors"
	"github.com/cristianoliveira/bookshelf/internal/config"
	"github.com/cristianoliveira/bookshelf/internal/metrics"
	"github.com/cristianoliveira/bookshelf/internal/tui/state"
	"github.com/cristianoliveira/bookshelf/internal/wishlist"
	"github.com/spf13/cobra"
)

const metricsShutdownTimeout = 2 * time.Second

type browseClient interface {
	state.Catalog
	Wishlist() (*wishlist.Store, error)
	Metrics() *metrics.Metrics
}

// NewBrowseCmd creates the browse command. run starts the interactive program.
func NewBrowseCmd(client browseClient, run func(state.Options) error) *cobra.Command {
	if client == nil {
		panic("NewBrowseCmd: client dependency cannot be nil")
	}
	if run == nil {
		panic("NewBrowseCmd: run dependency cannot be nil")
	}

	var pageSize int
	var metricsAddr string

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive browser",
		Long: `Open the interactive browser.

Search titles with /, cycle genres with g, change the page size with + and -,
toggle the wishlist with w and open details with enter. Press W to see the
wishlist and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wl, err := client.Wishlist()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("page-size") {
				pageSize = config.GetInt("page_size", config.DefaultPageSize)
			}
			if !cmd.Flags().Changed("metrics-addr") {
				metricsAddr = config.Get("metrics_addr", "")
			}

			m := client.Metrics()
			if metricsAddr != "" {
				stop, err := m.Serve(metricsAddr)
				if err != nil {
					return err
				}
				colors.Debug(fmt.Sprintf("serving metrics on %s", metricsAddr))
				defer func() {
					ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
					defer cancel()
					_ = stop(ctx)
				}()
			}

			return run(state.Options{
				Catalog:  client,
				Wishlist: wl,
				PageSize: pageSize,
				Metrics:  m,
				Context:  cmd.Context(),
			})
		},
	}

	browseCmd.Flags().IntVar(&pageSize, "page-size", config.DefaultPageSize, "Books per page")
	browseCmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while browsing")
	return browseCmd
}

var browseCmd = NewBrowseCmd(deps, state.Run)

func init() {
	cmd.RootCmd.AddCommand(browseCmd)
}

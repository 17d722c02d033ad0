package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/cristianoliveira/bookshelf/internal/catalog"
	"github.com/cristianoliveira/bookshelf/internal/config"
	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/metrics"
	"github.com/cristianoliveira/bookshelf/internal/storage"
	"github.com/cristianoliveira/bookshelf/internal/version"
	"github.com/cristianoliveira/bookshelf/internal/wishlist"
)

// appDeps builds the catalog client and wishlist on first use, after
// config has been loaded and flags applied.
type appDeps struct {
	once sync.Once
	err  error

	metrics  *metrics.Metrics
	catalog  *catalog.Client
	slot     storage.Store
	wishlist *wishlist.Store
}

var deps = &appDeps{}

func (d *appDeps) init() error {
	d.once.Do(func() {
		d.metrics = metrics.New()
		d.catalog = catalog.NewClient(catalog.ConfigFromGlobal(), catalog.WithMetrics(d.metrics))

		slot, err := storage.NewFromConfig()
		if err != nil {
			d.err = fmt.Errorf("open wishlist storage: %w", err)
			return
		}
		d.slot = slot
		d.wishlist = wishlist.New(slot, config.Get("wishlist_key", config.DefaultWishlistKey), wishlist.WithMetrics(d.metrics))
	})
	return d.err
}

func (d *appDeps) FetchCollection(ctx context.Context) (domain.Collection, error) {
	if err := d.init(); err != nil {
		return domain.Collection{}, err
	}
	return d.catalog.FetchCollection(ctx)
}

func (d *appDeps) FetchBook(ctx context.Context, id string) (domain.Book, error) {
	if err := d.init(); err != nil {
		return domain.Book{}, err
	}
	return d.catalog.FetchBook(ctx, id)
}

func (d *appDeps) Wishlist() (*wishlist.Store, error) {
	if err := d.init(); err != nil {
		return nil, err
	}
	return d.wishlist, nil
}

func (d *appDeps) Metrics() *metrics.Metrics {
	if err := d.init(); err != nil {
		return nil
	}
	return d.metrics
}

func (d *appDeps) Version() string {
	return version.String()
}

// Close releases the wishlist storage if it was opened.
func (d *appDeps) Close() error {
	if d.slot == nil {
		return nil
	}
	return d.slot.Close()
}

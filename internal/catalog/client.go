// Package catalog loads books from a Gutendex-compatible JSON API.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cristianoliveira/bookshelf/internal/config"
	"github.com/cristianoliveira/bookshelf/internal/domain"
	"github.com/cristianoliveira/bookshelf/internal/logging"
	"github.com/cristianoliveira/bookshelf/internal/metrics"
	"github.com/cristianoliveira/bookshelf/internal/version"
	jsoniter "github.com/json-iterator/go"
	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/time/rate"
)

var (
	// ErrLoadFailed wraps every failure to load catalog data.
	ErrLoadFailed = errors.New("catalog: load failed")
	// ErrNotFound indicates the API has no book with the requested id.
	ErrNotFound = errors.New("catalog: book not found")
)

// Operation labels for metrics and logs.
const (
	opCollection = "collection"
	opBook       = "book"
)

const (
	defaultTimeout = 10 * time.Second
	coverFormat    = "image/jpeg"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Config holds the client settings.
type Config struct {
	BaseURL           string
	MaxPages          int
	Timeout           time.Duration
	RequestsPerSecond float64
	UserAgent         string
}

// ConfigFromGlobal builds a Config from the loaded configuration.
func ConfigFromGlobal() Config {
	return Config{
		BaseURL:           config.Get("api_url", config.DefaultAPIURL),
		MaxPages:          config.GetInt("max_pages", 1),
		Timeout:           time.Duration(config.GetInt("request_timeout", 10)) * time.Second,
		RequestsPerSecond: config.GetFloat("requests_per_second", 2),
	}
}

// Client fetches collections and single books.
type Client struct {
	httpClient *http.Client
	cfg        Config
	limiter    *rate.Limiter
	sanitizer  *bluemonday.Policy
	metrics    *metrics.Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics records request metrics on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a client. Zero config fields fall back to defaults.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = config.DefaultAPIURL
	}
	if cfg.MaxPages < 1 {
		cfg.MaxPages = 1
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = version.UserAgent()
	}
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	c := &Client{
		httpClient: &http.Client{},
		cfg:        cfg,
		limiter:    rate.NewLimiter(limit, 1),
		sanitizer:  bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchCollection loads the collection, following next links for up to
// MaxPages pages. Any failure discards the partial result.
func (c *Client) FetchCollection(ctx context.Context) (domain.Collection, error) {
	next := c.cfg.BaseURL
	var books []domain.Book

	for page := 1; page <= c.cfg.MaxPages && next != ""; page++ {
		var body gutendexPage
		if err := c.get(ctx, opCollection, next, &body); err != nil {
			return domain.Collection{}, err
		}
		for _, raw := range body.Results {
			books = append(books, c.toBook(raw))
		}

		next = ""
		if body.Next != nil && *body.Next != "" {
			resolved, err := resolveNext(c.cfg.BaseURL, *body.Next)
			if err != nil {
				return domain.Collection{}, fmt.Errorf("%w: bad next link: %w", ErrLoadFailed, err)
			}
			next = resolved
		}
	}

	if books == nil {
		books = []domain.Book{}
	}
	logging.Info("catalog collection loaded", "books", len(books))
	return domain.NewCollection(books), nil
}

// FetchBook loads a single book by id.
func (c *Client) FetchBook(ctx context.Context, id string) (domain.Book, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.Book{}, fmt.Errorf("%w: empty book id", ErrLoadFailed)
	}
	var raw gutendexBook
	if err := c.get(ctx, opBook, c.BookURL(id), &raw); err != nil {
		return domain.Book{}, err
	}
	return c.toBook(raw), nil
}

// BookURL returns the API location of a single book.
func (c *Client) BookURL(id string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + "/" + url.PathEscape(id) + "/"
}

func (c *Client) get(ctx context.Context, op, target string, v any) (err error) {
	start := time.Now()
	defer func() {
		c.metrics.ObserveCatalogRequest(op, err, time.Since(start))
		if err != nil {
			logging.Warn("catalog request failed", "op", op, "url", target, "error", err)
		}
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %w", ErrLoadFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %w", ErrLoadFailed, ErrNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", ErrLoadFailed, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode response: %w", ErrLoadFailed, err)
	}
	return nil
}

func resolveNext(base, next string) (string, error) {
	baseURL, err := url.Parse(base)
	if err != nil {
		return "", err
	}
	ref, err := url.Parse(next)
	if err != nil {
		return "", err
	}
	return baseURL.ResolveReference(ref).String(), nil
}

type gutendexPage struct {
	Count    int            `json:"count"`
	Next     *string        `json:"next"`
	Previous *string        `json:"previous"`
	Results  []gutendexBook `json:"results"`
}

type gutendexBook struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Authors       []domain.Person   `json:"authors"`
	Subjects      []string          `json:"subjects"`
	Bookshelves   []string          `json:"bookshelves"`
	Languages     []string          `json:"languages"`
	Formats       map[string]string `json:"formats"`
	DownloadCount int               `json:"download_count"`
	Description   string            `json:"description"`
	Summaries     []string          `json:"summaries"`
}

func (c *Client) toBook(raw gutendexBook) domain.Book {
	description := raw.Description
	if description == "" && len(raw.Summaries) > 0 {
		description = raw.Summaries[0]
	}
	return domain.Book{
		ID:            strconv.FormatInt(raw.ID, 10),
		Title:         raw.Title,
		Authors:       raw.Authors,
		Subjects:      raw.Subjects,
		Bookshelves:   raw.Bookshelves,
		Languages:     raw.Languages,
		CoverURL:      raw.Formats[coverFormat],
		DownloadCount: raw.DownloadCount,
		Description:   c.sanitize(description),
	}
}

// sanitize strips markup and decodes entities left behind.
func (c *Client) sanitize(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(c.sanitizer.Sanitize(text)))
}

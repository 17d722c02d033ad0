// Package wishlist keeps the persistent set of wishlisted book identifiers.
package wishlist

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cristianoliveira/bookshelf/internal/config"
	"github.com/cristianoliveira/bookshelf/internal/logging"
	"github.com/cristianoliveira/bookshelf/internal/metrics"
	"github.com/cristianoliveira/bookshelf/internal/storage"
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store reads and writes the wishlist slot. The slot holds a JSON array of
// identifiers. Every read goes back to the slot, so changes made by another
// process are picked up; concurrent writers are last-write-wins.
type Store struct {
	slot    storage.Store
	key     string
	metrics *metrics.Metrics
}

// Option configures a Store.
type Option func(*Store)

// WithMetrics records toggles on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// New creates a wishlist over slot under key. An empty key uses the default.
func New(slot storage.Store, key string, opts ...Option) *Store {
	if strings.TrimSpace(key) == "" {
		key = config.DefaultWishlistKey
	}
	s := &Store{slot: slot, key: key}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the slot key.
func (s *Store) Key() string {
	return s.key
}

// load returns the stored identifiers as written, duplicates included.
// Absent, unreadable or malformed slots read as empty.
func (s *Store) load() []string {
	raw, found, err := s.slot.Get(s.key)
	if err != nil {
		logging.Debug("wishlist slot unreadable, treating as empty", "key", s.key, "error", err)
		return []string{}
	}
	if !found || strings.TrimSpace(raw) == "" {
		return []string{}
	}
	ids, err := decode(raw)
	if err != nil {
		logging.Debug("wishlist slot malformed, treating as empty", "key", s.key, "error", err)
		return []string{}
	}
	return ids
}

// decode accepts a JSON array of strings or numbers. Anything else is malformed.
func decode(raw string) ([]string, error) {
	var values []any
	if err := json.UnmarshalFromString(raw, &values); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(values))
	for i, v := range values {
		switch typed := v.(type) {
		case string:
			ids = append(ids, typed)
		case float64:
			ids = append(ids, strconv.FormatFloat(typed, 'f', -1, 64))
		default:
			return nil, fmt.Errorf("entry %d has unsupported type %T", i, v)
		}
	}
	return ids, nil
}

func (s *Store) save(ids []string) error {
	raw, err := json.MarshalToString(ids)
	if err != nil {
		return fmt.Errorf("encode wishlist: %w", err)
	}
	if err := s.slot.Set(s.key, raw); err != nil {
		return fmt.Errorf("write wishlist: %w", err)
	}
	return nil
}

// IDs returns the distinct identifiers in stored order.
func (s *Store) IDs() []string {
	return distinct(s.load())
}

// IsMember reports whether id is in the wishlist.
func (s *Store) IsMember(id string) bool {
	for _, stored := range s.load() {
		if stored == id {
			return true
		}
	}
	return false
}

// Count returns the number of distinct identifiers.
func (s *Store) Count() int {
	return len(s.IDs())
}

// Toggle adds id when absent and removes every occurrence when present.
// It returns the membership after the toggle. On a write error the slot
// keeps its previous value and the previous membership is returned.
func (s *Store) Toggle(id string) (bool, error) {
	ids := s.load()
	kept := make([]string, 0, len(ids)+1)
	wasMember := false
	for _, stored := range ids {
		if stored == id {
			wasMember = true
			continue
		}
		kept = append(kept, stored)
	}
	if !wasMember {
		kept = append(kept, id)
	}

	if err := s.save(kept); err != nil {
		s.metrics.ObserveToggle(!wasMember, 0, err)
		logging.Warn("wishlist toggle failed", "id", id, "error", err)
		return wasMember, err
	}
	s.metrics.ObserveToggle(!wasMember, len(distinct(kept)), nil)
	logging.Debug("wishlist toggled", "id", id, "member", !wasMember)
	return !wasMember, nil
}

// Clear empties the wishlist.
func (s *Store) Clear() error {
	return s.save([]string{})
}

func distinct(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

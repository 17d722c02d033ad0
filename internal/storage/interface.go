// Package storage provides durable key-value slots for client state.
package storage

// Store is a durable key-value slot holding text values.
//
// Stores do not provide transactions: a read-modify-write sequence across two
// processes sharing the same slot is last-write-wins.
type Store interface {
	// Get returns the value stored under key. found is false when the key
	// has never been written.
	Get(key string) (value string, found bool, err error)
	// Set replaces the value stored under key.
	Set(key, value string) error
	// Close releases resources held by the store.
	Close() error
}

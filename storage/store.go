// Package storage holds the key/value slots the game keeps between runs.
package storage

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store is a small integer key/value store.
type Store interface {
	Get(key string) (int, error)
	Set(key string, value int) error
	Close() error
}

// Open builds the store named by driver. path is ignored by "memory".
func Open(driver, path string) (Store, error) {
	switch strings.ToLower(driver) {
	case "", "memory":
		return NewMemoryStore(), nil
	case "file", "json":
		return NewFileStore(path)
	case "sqlite":
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", driver)
	}
}

// parseValue decodes a stored value. Values are kept as decimal text.
func parseValue(key, raw string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("storage: parsing %q: %w", key, err)
	}
	return v, nil
}

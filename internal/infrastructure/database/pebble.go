package database

import (
	"fmt"

	"github.com/cockroachdb/pebble"
)

// OpenPebble opens (creating if needed) the embedded estimate store under dir.
func OpenPebble(dir string) (*pebble.DB, error) {
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open pebble at %s: %w", dir, err)
	}
	return db, nil
}
